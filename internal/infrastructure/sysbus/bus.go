// Package sysbus adapts D-Bus system bus services (UPower, systemd-logind,
// systemd) to the platform ports used by the event coordinator.
package sysbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/duskd/internal/application/port"
	"github.com/bnema/duskd/internal/logging"
	"github.com/cenkalti/backoff/v4"
	"github.com/godbus/dbus/v5"
)

const (
	signalBufferSize      = 32
	defaultConnectTimeout = 30 * time.Second
)

// ErrBusClosed is returned by Run when the connection drops.
var ErrBusClosed = errors.New("system bus connection closed")

// Conn is the subset of *dbus.Conn the adapters use.
type Conn interface {
	AddMatchSignal(options ...dbus.MatchOption) error
	RemoveMatchSignal(options ...dbus.MatchOption) error
	Signal(ch chan<- *dbus.Signal)
	RemoveSignal(ch chan<- *dbus.Signal)
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	Close() error
}

var _ Conn = (*dbus.Conn)(nil)

// route delivers matching signals of one subscription family. A family may
// need several match rules.
type route struct {
	matches [][]dbus.MatchOption
	accept  func(*dbus.Signal) bool
	handle  func(*dbus.Signal)
}

// Bus routes system bus signals to the handlers registered by the adapters.
// Handlers run on the goroutine calling Run and must not block.
type Bus struct {
	conn    Conn
	signals chan *dbus.Signal

	mu     sync.Mutex
	routes map[string]route
}

// NewBus wraps an established connection. Signals are buffered until Run is called.
func NewBus(conn Conn) *Bus {
	b := &Bus{
		conn:    conn,
		signals: make(chan *dbus.Signal, signalBufferSize),
		routes:  make(map[string]route),
	}
	conn.Signal(b.signals)
	return b
}

// Connect opens the system bus, retrying with exponential backoff for up to timeout.
func Connect(ctx context.Context, timeout time.Duration) (*Bus, error) {
	log := logging.FromContext(ctx).With().Str("component", "sysbus").Logger()

	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	var conn *dbus.Conn
	operation := func() error {
		c, err := dbus.ConnectSystemBus(dbus.WithContext(ctx))
		if err != nil {
			return err
		}
		conn = c
		return nil
	}
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Dur("retry_in", wait).Msg("system bus unavailable")
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 200 * time.Millisecond
	expBackoff.MaxInterval = 5 * time.Second
	expBackoff.MaxElapsedTime = timeout

	if err := backoff.RetryNotify(operation, backoff.WithContext(expBackoff, ctx), notify); err != nil {
		return nil, fmt.Errorf("connect system bus: %w", err)
	}

	log.Debug().Msg("connected to system bus")
	return NewBus(conn), nil
}

// Run dispatches signals until ctx is done or the connection closes.
func (b *Bus) Run(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "sysbus").Logger()
	log.Debug().Msg("signal router started")

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("signal router stopped")
			return nil
		case sig, ok := <-b.signals:
			if !ok {
				return ErrBusClosed
			}
			if sig == nil {
				continue
			}
			b.dispatch(sig)
		}
	}
}

// Object returns a remote object proxy.
func (b *Bus) Object(dest string, path dbus.ObjectPath) dbus.BusObject {
	return b.conn.Object(dest, path)
}

// Close detaches the router and closes the connection.
func (b *Bus) Close() error {
	b.conn.RemoveSignal(b.signals)
	return b.conn.Close()
}

func (b *Bus) dispatch(sig *dbus.Signal) {
	b.mu.Lock()
	handlers := make([]func(*dbus.Signal), 0, len(b.routes))
	for _, r := range b.routes {
		if r.accept(sig) {
			handlers = append(handlers, r.handle)
		}
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(sig)
	}
}

// addRoute installs the match rules and handler for a family. Rules added
// before a failure are removed again.
func (b *Bus) addRoute(name string, r route) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.routes[name]; ok {
		return fmt.Errorf("%s: %w", name, port.ErrAlreadySubscribed)
	}
	for i, match := range r.matches {
		if err := b.conn.AddMatchSignal(match...); err != nil {
			for _, added := range r.matches[:i] {
				_ = b.conn.RemoveMatchSignal(added...)
			}
			return fmt.Errorf("add match for %s: %w", name, err)
		}
	}
	b.routes[name] = r
	return nil
}

// removeRoute drops the handler of a family. The route is forgotten even if
// a match rule cannot be removed.
func (b *Bus) removeRoute(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.routes[name]
	if !ok {
		return fmt.Errorf("%s: %w", name, port.ErrNotSubscribed)
	}
	delete(b.routes, name)

	var errs []error
	for _, match := range r.matches {
		if err := b.conn.RemoveMatchSignal(match...); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("remove match for %s: %w", name, err)
	}
	return nil
}

func (b *Bus) hasRoute(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.routes[name]
	return ok
}
