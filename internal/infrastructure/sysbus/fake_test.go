package sysbus

import (
	"context"
	"errors"
	"sync"

	"github.com/godbus/dbus/v5"
)

// fakeConn records match rules and lets tests inject signals.
type fakeConn struct {
	mu      sync.Mutex
	matches int
	removed int
	addErr  error
	// failAddAt makes the n-th AddMatchSignal call fail with addErr (0 fails every call).
	failAddAt int
	addCalls  int
	signals   chan<- *dbus.Signal
	objects   map[dbus.ObjectPath]*fakeObject
	closed    bool
	detached  bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{objects: make(map[dbus.ObjectPath]*fakeObject)}
}

func (c *fakeConn) AddMatchSignal(...dbus.MatchOption) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addCalls++
	if c.addErr != nil && (c.failAddAt == 0 || c.failAddAt == c.addCalls) {
		return c.addErr
	}
	c.matches++
	return nil
}

func (c *fakeConn) RemoveMatchSignal(...dbus.MatchOption) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removed++
	c.matches--
	return nil
}

func (c *fakeConn) Signal(ch chan<- *dbus.Signal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.signals = ch
}

func (c *fakeConn) RemoveSignal(chan<- *dbus.Signal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detached = true
}

func (c *fakeConn) Object(_ string, path dbus.ObjectPath) dbus.BusObject {
	c.mu.Lock()
	defer c.mu.Unlock()
	if obj, ok := c.objects[path]; ok {
		return obj
	}
	return &fakeObject{path: path}
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) emit(sig *dbus.Signal) {
	c.mu.Lock()
	ch := c.signals
	c.mu.Unlock()
	ch <- sig
}

func (c *fakeConn) object(path dbus.ObjectPath) *fakeObject {
	c.mu.Lock()
	defer c.mu.Unlock()
	obj := &fakeObject{
		path:       path,
		properties: make(map[string]interface{}),
		methods:    make(map[string]func(args ...interface{}) ([]interface{}, error)),
	}
	c.objects[path] = obj
	return obj
}

// fakeObject serves properties and method calls from maps. Methods not
// overridden panic through the embedded nil interface.
type fakeObject struct {
	dbus.BusObject

	path       dbus.ObjectPath
	properties map[string]interface{}
	methods    map[string]func(args ...interface{}) ([]interface{}, error)
}

var errUnknown = errors.New("org.freedesktop.DBus.Error.UnknownObject")

func (o *fakeObject) GetProperty(name string) (dbus.Variant, error) {
	v, ok := o.properties[name]
	if !ok {
		return dbus.Variant{}, errUnknown
	}
	return dbus.MakeVariant(v), nil
}

func (o *fakeObject) CallWithContext(_ context.Context, method string, _ dbus.Flags, args ...interface{}) *dbus.Call {
	fn, ok := o.methods[method]
	if !ok {
		return &dbus.Call{Err: errUnknown}
	}
	body, err := fn(args...)
	return &dbus.Call{Body: body, Err: err}
}

func (o *fakeObject) Path() dbus.ObjectPath {
	return o.path
}
