package sysbus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/bnema/duskd/internal/application/port"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/godbus/dbus/v5"
)

const (
	logindDest             = "org.freedesktop.login1"
	logindPath             = dbus.ObjectPath("/org/freedesktop/login1")
	logindManagerInterface = "org.freedesktop.login1.Manager"
	logindSessionInterface = "org.freedesktop.login1.Session"

	prepareForSleep = logindManagerInterface + ".PrepareForSleep"
	sessionLock     = logindSessionInterface + ".Lock"
	sessionUnlock   = logindSessionInterface + ".Unlock"

	routeSessionSwitch = "session-switch"
	routePowerMode     = "power-mode"
)

// ErrNoSession is returned when the login session of the daemon cannot be found.
var ErrNoSession = errors.New("no logind session")

var _ port.SessionMonitor = (*Session)(nil)

// Session reports lock/unlock and sleep/resume from systemd-logind.
type Session struct {
	bus    *Bus
	getenv func(string) string
	getpid func() int
	getuid func() int

	mu   sync.Mutex
	path dbus.ObjectPath
}

// NewSession creates a logind adapter on bus.
func NewSession(bus *Bus) *Session {
	return &Session{
		bus:    bus,
		getenv: os.Getenv,
		getpid: os.Getpid,
		getuid: os.Getuid,
	}
}

// SubscribeSessionSwitch calls handler when the current session locks or
// unlocks. Both the Lock/Unlock requests and the LockedHint property set by
// screen lockers are watched; repeated reports of the same state are dropped.
func (s *Session) SubscribeSessionSwitch(ctx context.Context, handler func(entity.SessionSwitchReason)) error {
	path, err := s.sessionPath(ctx)
	if err != nil {
		return err
	}

	// Only touched from the router goroutine.
	var last entity.SessionSwitchReason
	deliver := func(reason entity.SessionSwitchReason) {
		if reason == last {
			return
		}
		last = reason
		handler(reason)
	}

	return s.bus.addRoute(routeSessionSwitch, route{
		matches: [][]dbus.MatchOption{
			{
				dbus.WithMatchSender(logindDest),
				dbus.WithMatchObjectPath(path),
				dbus.WithMatchInterface(logindSessionInterface),
			},
			{
				dbus.WithMatchSender(logindDest),
				dbus.WithMatchObjectPath(path),
				dbus.WithMatchInterface(propertiesInterface),
				dbus.WithMatchMember("PropertiesChanged"),
				dbus.WithMatchArg(0, logindSessionInterface),
			},
		},
		accept: func(sig *dbus.Signal) bool {
			if sig.Path != path {
				return false
			}
			if sig.Name == sessionLock || sig.Name == sessionUnlock {
				return true
			}
			_, ok := lockedHint(sig)
			return ok
		},
		handle: func(sig *dbus.Signal) {
			switch sig.Name {
			case sessionLock:
				deliver(entity.SessionSwitchLock)
			case sessionUnlock:
				deliver(entity.SessionSwitchUnlock)
			default:
				if locked, ok := lockedHint(sig); ok {
					if locked {
						deliver(entity.SessionSwitchLock)
					} else {
						deliver(entity.SessionSwitchUnlock)
					}
				}
			}
		},
	})
}

// lockedHint extracts LockedHint from a PropertiesChanged signal of a logind session.
func lockedHint(sig *dbus.Signal) (locked, ok bool) {
	if sig.Name != propertiesChanged || len(sig.Body) < 2 {
		return false, false
	}
	if iface, isString := sig.Body[0].(string); !isString || iface != logindSessionInterface {
		return false, false
	}
	changed, isMap := sig.Body[1].(map[string]dbus.Variant)
	if !isMap {
		return false, false
	}
	v, found := changed["LockedHint"]
	if !found {
		return false, false
	}
	locked, ok = v.Value().(bool)
	return locked, ok
}

// UnsubscribeSessionSwitch removes the handler installed by SubscribeSessionSwitch.
func (s *Session) UnsubscribeSessionSwitch(_ context.Context) error {
	return s.bus.removeRoute(routeSessionSwitch)
}

// SubscribePowerMode calls handler around system sleep: PrepareForSleep(true)
// is Suspend, PrepareForSleep(false) is Resume.
func (s *Session) SubscribePowerMode(_ context.Context, handler func(entity.PowerMode)) error {
	return s.bus.addRoute(routePowerMode, route{
		matches: [][]dbus.MatchOption{{
			dbus.WithMatchSender(logindDest),
			dbus.WithMatchObjectPath(logindPath),
			dbus.WithMatchInterface(logindManagerInterface),
			dbus.WithMatchMember("PrepareForSleep"),
		}},
		accept: func(sig *dbus.Signal) bool {
			if sig.Name != prepareForSleep || len(sig.Body) < 1 {
				return false
			}
			_, ok := sig.Body[0].(bool)
			return ok
		},
		handle: func(sig *dbus.Signal) {
			if entering := sig.Body[0].(bool); entering {
				handler(entity.PowerModeSuspend)
				return
			}
			handler(entity.PowerModeResume)
		},
	})
}

// UnsubscribePowerMode removes the handler installed by SubscribePowerMode.
func (s *Session) UnsubscribePowerMode(_ context.Context) error {
	return s.bus.removeRoute(routePowerMode)
}

// sessionPath resolves the logind session object once: from XDG_SESSION_ID,
// then from the process, then from the user's display session.
func (s *Session) sessionPath(ctx context.Context) (dbus.ObjectPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path != "" {
		return s.path, nil
	}

	manager := s.bus.Object(logindDest, logindPath)
	var errs []error

	if id := s.getenv("XDG_SESSION_ID"); id != "" {
		path, err := callForPath(ctx, manager, logindManagerInterface+".GetSession", id)
		if err == nil {
			s.path = path
			return path, nil
		}
		errs = append(errs, fmt.Errorf("GetSession(%s): %w", id, err))
	}

	path, err := callForPath(ctx, manager, logindManagerInterface+".GetSessionByPID", uint32(s.getpid()))
	if err == nil {
		s.path = path
		return path, nil
	}
	errs = append(errs, fmt.Errorf("GetSessionByPID: %w", err))

	path, err = s.displaySession(ctx, manager)
	if err == nil {
		s.path = path
		return path, nil
	}
	errs = append(errs, err)

	return "", fmt.Errorf("%w: %w", ErrNoSession, errors.Join(errs...))
}

func callForPath(ctx context.Context, obj dbus.BusObject, method string, args ...interface{}) (dbus.ObjectPath, error) {
	var path dbus.ObjectPath
	if err := obj.CallWithContext(ctx, method, 0, args...).Store(&path); err != nil {
		return "", err
	}
	if !path.IsValid() || path == "/" {
		return "", fmt.Errorf("invalid object path %q", path)
	}
	return path, nil
}

// displaySession reads the Display property, a (so) struct, of the logind user.
func (s *Session) displaySession(ctx context.Context, manager dbus.BusObject) (dbus.ObjectPath, error) {
	userPath, err := callForPath(ctx, manager, logindManagerInterface+".GetUser", uint32(s.getuid()))
	if err != nil {
		return "", fmt.Errorf("GetUser: %w", err)
	}

	v, err := s.bus.Object(logindDest, userPath).GetProperty("org.freedesktop.login1.User.Display")
	if err != nil {
		return "", fmt.Errorf("read user Display: %w", err)
	}
	display, ok := v.Value().([]interface{})
	if !ok || len(display) < 2 {
		return "", fmt.Errorf("read user Display: unexpected value %s", v.String())
	}
	path, ok := display[1].(dbus.ObjectPath)
	if !ok || path == "" || path == "/" {
		return "", errors.New("user has no display session")
	}
	return path, nil
}
