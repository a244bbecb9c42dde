// Package port defines interfaces for external dependencies.
package port

import (
	"context"
	"errors"

	"github.com/bnema/duskd/internal/domain/entity"
)

var (
	// ErrNotSubscribed indicates the platform has no handler attached for the
	// notification family being unsubscribed.
	ErrNotSubscribed = errors.New("handler not subscribed")
	// ErrAlreadySubscribed indicates a handler is already attached for the family.
	ErrAlreadySubscribed = errors.New("handler already subscribed")
)

// BatteryMonitor delivers power-line status change notifications.
// Handlers run on a platform goroutine and must return quickly.
type BatteryMonitor interface {
	SubscribeBatteryStatus(ctx context.Context, handler func()) error
	UnsubscribeBatteryStatus(ctx context.Context) error

	// PowerLineStatus reads the current AC power state.
	PowerLineStatus(ctx context.Context) (entity.PowerLineStatus, error)
}

// SessionMonitor delivers session-switch and power-mode notifications.
// Handlers run on a platform goroutine and must return quickly.
type SessionMonitor interface {
	SubscribeSessionSwitch(ctx context.Context, handler func(entity.SessionSwitchReason)) error
	UnsubscribeSessionSwitch(ctx context.Context) error

	SubscribePowerMode(ctx context.Context, handler func(entity.PowerMode)) error
	UnsubscribePowerMode(ctx context.Context) error
}

// PlatformProbe reports platform capabilities.
type PlatformProbe interface {
	// BuildNumber returns the platform build number used to pick the resume strategy.
	BuildNumber(ctx context.Context) (int, error)
}
