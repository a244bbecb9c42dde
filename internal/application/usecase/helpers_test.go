package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/duskd/internal/application/port"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/bnema/duskd/internal/logging"
	"github.com/stretchr/testify/require"
)

const (
	timeout = 2 * time.Second
	tick    = 10 * time.Millisecond
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// fakePlatform is an in-memory platform layer. Like the real bus adapters it
// refuses to attach a second handler to a family and reports ErrNotSubscribed
// when detaching one that is not attached.
type fakePlatform struct {
	mu sync.Mutex

	build    int
	buildErr error
	status   entity.PowerLineStatus

	batteryHandler   func()
	sessionHandler   func(entity.SessionSwitchReason)
	powerModeHandler func(entity.PowerMode)

	batterySubscribes     int
	batteryUnsubscribes   int
	sessionSubscribes     int
	sessionUnsubscribes   int
	powerModeSubscribes   int
	powerModeUnsubscribes int

	// failNextUnsubscribe makes the next Unsubscribe* keep its handler and fail.
	failNextUnsubscribe bool

	// conflicts counts subscribes onto an attached family and unsubscribes
	// of a detached one.
	conflicts int
}

var (
	_ port.BatteryMonitor = (*fakePlatform)(nil)
	_ port.SessionMonitor = (*fakePlatform)(nil)
	_ port.PlatformProbe  = (*fakePlatform)(nil)
)

func newFakePlatform(build int) *fakePlatform {
	return &fakePlatform{build: build, status: entity.PowerLineOnline}
}

func (f *fakePlatform) SubscribeBatteryStatus(_ context.Context, handler func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.batteryHandler != nil {
		f.conflicts++
		return port.ErrAlreadySubscribed
	}
	f.batteryHandler = handler
	f.batterySubscribes++
	return nil
}

func (f *fakePlatform) UnsubscribeBatteryStatus(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batteryUnsubscribes++
	if f.failNextUnsubscribe {
		f.failNextUnsubscribe = false
		return port.ErrNotSubscribed
	}
	if f.batteryHandler == nil {
		f.conflicts++
		return port.ErrNotSubscribed
	}
	f.batteryHandler = nil
	return nil
}

func (f *fakePlatform) PowerLineStatus(_ context.Context) (entity.PowerLineStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, nil
}

func (f *fakePlatform) SubscribeSessionSwitch(_ context.Context, handler func(entity.SessionSwitchReason)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sessionHandler != nil {
		f.conflicts++
		return port.ErrAlreadySubscribed
	}
	f.sessionHandler = handler
	f.sessionSubscribes++
	return nil
}

func (f *fakePlatform) UnsubscribeSessionSwitch(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessionUnsubscribes++
	if f.failNextUnsubscribe {
		f.failNextUnsubscribe = false
		return port.ErrNotSubscribed
	}
	if f.sessionHandler == nil {
		f.conflicts++
		return port.ErrNotSubscribed
	}
	f.sessionHandler = nil
	return nil
}

func (f *fakePlatform) SubscribePowerMode(_ context.Context, handler func(entity.PowerMode)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.powerModeHandler != nil {
		f.conflicts++
		return port.ErrAlreadySubscribed
	}
	f.powerModeHandler = handler
	f.powerModeSubscribes++
	return nil
}

func (f *fakePlatform) UnsubscribePowerMode(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.powerModeUnsubscribes++
	if f.failNextUnsubscribe {
		f.failNextUnsubscribe = false
		return port.ErrNotSubscribed
	}
	if f.powerModeHandler == nil {
		f.conflicts++
		return port.ErrNotSubscribed
	}
	f.powerModeHandler = nil
	return nil
}

func (f *fakePlatform) BuildNumber(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.build, f.buildErr
}

func (f *fakePlatform) conflictCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.conflicts
}

func (f *fakePlatform) setStatus(status entity.PowerLineStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

// fireBattery delivers a battery notification to the attached handler, if any.
func (f *fakePlatform) fireBattery() {
	f.mu.Lock()
	h := f.batteryHandler
	f.mu.Unlock()
	if h != nil {
		h()
	}
}

func (f *fakePlatform) fireSession(reason entity.SessionSwitchReason) {
	f.mu.Lock()
	h := f.sessionHandler
	f.mu.Unlock()
	if h != nil {
		h(reason)
	}
}

func (f *fakePlatform) firePowerMode(mode entity.PowerMode) {
	f.mu.Lock()
	h := f.powerModeHandler
	f.mu.Unlock()
	if h != nil {
		h(mode)
	}
}

// startLoop runs the coordinator loop and returns a function that stops it
// after every queued event has been handled.
func startLoop(t *testing.T, run func(context.Context) error, stop func()) func() {
	t.Helper()

	done := make(chan error, 1)
	go func() {
		done <- run(testContext())
	}()

	return func() {
		t.Helper()
		stop()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(timeout):
			t.Fatal("event loop did not stop")
		}
	}
}
