// Package usecase contains application business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/duskd/internal/application/port"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/bnema/duskd/internal/logging"
)

const (
	defaultEventQueueSize        = 16
	defaultSessionSwitchMinBuild = 209
)

var (
	// ErrDeregister wraps a platform failure while detaching an event handler.
	// The subscription is marked disabled regardless.
	ErrDeregister = errors.New("deregister event handler")
	// ErrCoordinatorRunning is returned when Run is called twice.
	ErrCoordinatorRunning = errors.New("event coordinator already running")
)

type eventKind int

const (
	eventBatteryStatus eventKind = iota + 1
	eventSessionSwitch
	eventPowerMode
	eventReevaluate
	eventStop
)

// coordinatorEvent is a platform notification queued for the evaluation loop.
// gen ties the event to the subscription that produced it.
type coordinatorEvent struct {
	kind   eventKind
	gen    uint64
	reason entity.SessionSwitchReason
	mode   entity.PowerMode
	source entity.SwitchSource
}

// subscription is the enable/disable state of one event family.
type subscription struct {
	mu       sync.Mutex
	enabled  bool
	gen      uint64
	strategy entity.ResumeStrategy
	// lockHeld is true while this coordinator owns the SessionLock postponement.
	lockHeld bool
}

// live reports whether an event of generation gen still belongs to an active subscription.
// Caller must hold s.mu.
func (s *subscription) live(gen uint64) bool {
	return s.enabled && s.gen == gen
}

// CoordinateEventsConfig holds the collaborators of the event coordinator.
type CoordinateEventsConfig struct {
	Switcher  port.ThemeSwitcher
	Postponer port.Postponer
	Battery   port.BatteryMonitor
	Session   port.SessionMonitor
	Probe     port.PlatformProbe

	// SessionSwitchMinBuild is the first platform build using session-switch
	// notifications. Zero means the default.
	SessionSwitchMinBuild int
	// QueueSize bounds the pending notification queue. Zero means the default.
	QueueSize int
}

// CoordinateEventsUseCase bridges OS power and session notifications to theme switches.
//
// Platform callbacks only enqueue events; a single goroutine running Run
// evaluates them in order, so at most one evaluation happens at a time.
// Each event family keeps its own lock for registration state.
type CoordinateEventsUseCase struct {
	switcher   port.ThemeSwitcher
	postponer  port.Postponer
	batteryMon port.BatteryMonitor
	sessionMon port.SessionMonitor
	probe      port.PlatformProbe

	battery subscription
	resume  subscription

	minBuild atomic.Int64

	events   chan coordinatorEvent
	stopped  chan struct{}
	running  atomic.Bool
	stopOnce sync.Once
}

// NewCoordinateEventsUseCase creates a new event coordinator.
func NewCoordinateEventsUseCase(cfg CoordinateEventsConfig) *CoordinateEventsUseCase {
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = defaultEventQueueSize
	}

	uc := &CoordinateEventsUseCase{
		switcher:   cfg.Switcher,
		postponer:  cfg.Postponer,
		batteryMon: cfg.Battery,
		sessionMon: cfg.Session,
		probe:      cfg.Probe,
		events:     make(chan coordinatorEvent, queueSize),
		stopped:    make(chan struct{}),
	}
	uc.SetSessionSwitchMinBuild(cfg.SessionSwitchMinBuild)
	return uc
}

// SetSessionSwitchMinBuild updates the build threshold. It applies to the next
// RegisterResumeEvent; an active subscription keeps its strategy.
func (uc *CoordinateEventsUseCase) SetSessionSwitchMinBuild(build int) {
	if build <= 0 {
		build = defaultSessionSwitchMinBuild
	}
	uc.minBuild.Store(int64(build))
}

// RegisterThemeEvent enables dark theme while running on battery.
// Calling it while already enabled is a no-op.
func (uc *CoordinateEventsUseCase) RegisterThemeEvent(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "event-coordinator").Logger()

	uc.battery.mu.Lock()
	defer uc.battery.mu.Unlock()

	if uc.battery.enabled {
		return nil
	}

	gen := uc.battery.gen + 1
	handler := func() {
		uc.post(coordinatorEvent{kind: eventBatteryStatus, gen: gen})
	}

	err := uc.batteryMon.SubscribeBatteryStatus(ctx, handler)
	if errors.Is(err, port.ErrAlreadySubscribed) {
		// A previous unsubscribe failed and the platform kept a stale handler.
		log.Warn().Msg("stale battery status handler found, resubscribing")
		_ = uc.batteryMon.UnsubscribeBatteryStatus(ctx)
		err = uc.batteryMon.SubscribeBatteryStatus(ctx, handler)
	}
	if err != nil {
		return fmt.Errorf("subscribe battery status: %w", err)
	}

	uc.battery.gen = gen
	uc.battery.enabled = true
	log.Info().Msg("enabling event handler for dark theme on battery discharging")
	return nil
}

// DeregisterThemeEvent disables dark theme on battery and requests one final
// re-evaluation so a battery-forced theme is reconsidered.
// Calling it while disabled is a no-op.
func (uc *CoordinateEventsUseCase) DeregisterThemeEvent(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "event-coordinator").Logger()

	uc.battery.mu.Lock()
	if !uc.battery.enabled {
		uc.battery.mu.Unlock()
		return nil
	}

	log.Info().Msg("disabling event handler for dark theme on battery discharging")
	err := uc.batteryMon.UnsubscribeBatteryStatus(ctx)
	uc.battery.enabled = false
	uc.battery.mu.Unlock()

	uc.post(coordinatorEvent{kind: eventReevaluate, source: entity.SwitchSourceBatteryStatusChanged})

	if err != nil {
		log.Error().Err(err).Msg("while deregistering battery status handler")
		return fmt.Errorf("%w: battery status: %w", ErrDeregister, err)
	}
	return nil
}

// RegisterResumeEvent enables a theme refresh when the user comes back:
// at session unlock if the platform supports session-switch notifications,
// at resume from suspend otherwise. Calling it while enabled is a no-op.
func (uc *CoordinateEventsUseCase) RegisterResumeEvent(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "event-coordinator").Logger()

	uc.resume.mu.Lock()
	defer uc.resume.mu.Unlock()

	if uc.resume.enabled {
		return nil
	}

	strategy := uc.selectStrategy(ctx)
	gen := uc.resume.gen + 1

	var err error
	switch strategy {
	case entity.ResumeStrategyModern:
		err = uc.subscribeSessionSwitch(ctx, gen)
		if err == nil {
			log.Info().Msg("enabling theme refresh at session unlock")
		}
	default:
		err = uc.subscribePowerMode(ctx, gen)
		if err == nil {
			log.Info().Msg("enabling theme refresh at system resume")
		}
	}
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", strategy, err)
	}

	uc.resume.gen = gen
	uc.resume.strategy = strategy
	uc.resume.enabled = true
	return nil
}

func (uc *CoordinateEventsUseCase) subscribeSessionSwitch(ctx context.Context, gen uint64) error {
	handler := func(reason entity.SessionSwitchReason) {
		uc.post(coordinatorEvent{kind: eventSessionSwitch, gen: gen, reason: reason})
	}
	err := uc.sessionMon.SubscribeSessionSwitch(ctx, handler)
	if errors.Is(err, port.ErrAlreadySubscribed) {
		_ = uc.sessionMon.UnsubscribeSessionSwitch(ctx)
		err = uc.sessionMon.SubscribeSessionSwitch(ctx, handler)
	}
	return err
}

func (uc *CoordinateEventsUseCase) subscribePowerMode(ctx context.Context, gen uint64) error {
	handler := func(mode entity.PowerMode) {
		uc.post(coordinatorEvent{kind: eventPowerMode, gen: gen, mode: mode})
	}
	err := uc.sessionMon.SubscribePowerMode(ctx, handler)
	if errors.Is(err, port.ErrAlreadySubscribed) {
		_ = uc.sessionMon.UnsubscribePowerMode(ctx)
		err = uc.sessionMon.SubscribePowerMode(ctx, handler)
	}
	return err
}

// selectStrategy probes the platform build. A failed probe falls back to the
// power-mode family, which every supported platform provides.
func (uc *CoordinateEventsUseCase) selectStrategy(ctx context.Context) entity.ResumeStrategy {
	log := logging.FromContext(ctx)

	threshold := int(uc.minBuild.Load())
	if uc.probe == nil {
		return entity.ResumeStrategyLegacy
	}
	build, err := uc.probe.BuildNumber(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("platform build probe failed, using system resume notifications")
		return entity.ResumeStrategyLegacy
	}

	strategy := entity.SelectResumeStrategy(build, threshold)
	log.Debug().
		Int("build", build).
		Int("threshold", threshold).
		Str("strategy", strategy.String()).
		Msg("resume strategy selected")
	return strategy
}

// DeregisterResumeEvent detaches exactly the notification family attached by
// RegisterResumeEvent. A SessionLock postponement held by this coordinator is
// released. Calling it while disabled is a no-op.
func (uc *CoordinateEventsUseCase) DeregisterResumeEvent(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "event-coordinator").Logger()

	uc.resume.mu.Lock()
	if !uc.resume.enabled {
		uc.resume.mu.Unlock()
		return nil
	}

	strategy := uc.resume.strategy
	var err error
	released := false
	switch strategy {
	case entity.ResumeStrategyModern:
		log.Info().Msg("disabling theme refresh at session unlock")
		err = uc.sessionMon.UnsubscribeSessionSwitch(ctx)
		if uc.resume.lockHeld {
			released = uc.postponer.Remove(entity.PostponeSessionLock)
			uc.resume.lockHeld = false
		}
	default:
		log.Info().Msg("disabling theme refresh at system resume")
		err = uc.sessionMon.UnsubscribePowerMode(ctx)
	}
	uc.resume.enabled = false
	uc.resume.strategy = entity.ResumeStrategyNone
	uc.resume.mu.Unlock()

	if released {
		uc.post(coordinatorEvent{kind: eventReevaluate, source: entity.SwitchSourceSystemUnlock})
	}

	if err != nil {
		log.Error().Err(err).Str("strategy", strategy.String()).Msg("while deregistering resume handler")
		return fmt.Errorf("%w: %s: %w", ErrDeregister, strategy, err)
	}
	return nil
}

// ThemeEventEnabled reports whether dark theme on battery is active.
func (uc *CoordinateEventsUseCase) ThemeEventEnabled() bool {
	uc.battery.mu.Lock()
	defer uc.battery.mu.Unlock()
	return uc.battery.enabled
}

// ResumeEventEnabled reports whether refresh on resume/unlock is active.
func (uc *CoordinateEventsUseCase) ResumeEventEnabled() bool {
	uc.resume.mu.Lock()
	defer uc.resume.mu.Unlock()
	return uc.resume.enabled
}

// ResumeStrategy returns the strategy of the active resume subscription,
// or ResumeStrategyNone when disabled.
func (uc *CoordinateEventsUseCase) ResumeStrategy() entity.ResumeStrategy {
	uc.resume.mu.Lock()
	defer uc.resume.mu.Unlock()
	return uc.resume.strategy
}

// RequestSwitch queues a re-evaluation tagged with source.
func (uc *CoordinateEventsUseCase) RequestSwitch(source entity.SwitchSource) {
	uc.post(coordinatorEvent{kind: eventReevaluate, source: source})
}

// Run evaluates queued notifications until ctx is done or Stop is called.
// Events queued before Stop are processed first.
func (uc *CoordinateEventsUseCase) Run(ctx context.Context) error {
	if !uc.running.CompareAndSwap(false, true) {
		return ErrCoordinatorRunning
	}
	defer close(uc.stopped)

	ctx = logging.WithComponent(ctx, "event-coordinator")
	log := logging.FromContext(ctx)
	log.Debug().Msg("event loop started")

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("event loop stopped")
			return nil
		case ev := <-uc.events:
			if ev.kind == eventStop {
				log.Debug().Msg("event loop stopped")
				return nil
			}
			uc.dispatch(ctx, ev)
		}
	}
}

// Stop ends Run after the events already queued have been processed.
// Safe to call multiple times.
func (uc *CoordinateEventsUseCase) Stop() {
	uc.stopOnce.Do(func() {
		uc.post(coordinatorEvent{kind: eventStop})
	})
}

// Done is closed once Run has returned.
func (uc *CoordinateEventsUseCase) Done() <-chan struct{} {
	return uc.stopped
}

// post hands an event to the loop. It blocks while the queue is full and
// drops the event once the loop has exited.
func (uc *CoordinateEventsUseCase) post(ev coordinatorEvent) {
	select {
	case uc.events <- ev:
	case <-uc.stopped:
	}
}

func (uc *CoordinateEventsUseCase) dispatch(ctx context.Context, ev coordinatorEvent) {
	switch ev.kind {
	case eventBatteryStatus:
		uc.handleBatteryStatus(ctx, ev)
	case eventSessionSwitch:
		uc.handleSessionSwitch(ctx, ev)
	case eventPowerMode:
		uc.handlePowerMode(ctx, ev)
	case eventReevaluate:
		uc.requestSwitch(ctx, entity.NewSwitchContext(ev.source))
	}
}

func (uc *CoordinateEventsUseCase) handleBatteryStatus(ctx context.Context, ev coordinatorEvent) {
	log := logging.FromContext(ctx)
	sc := entity.NewSwitchContext(entity.SwitchSourceBatteryStatusChanged)

	uc.battery.mu.Lock()
	live := uc.battery.live(ev.gen)
	uc.battery.mu.Unlock()

	if !live {
		// Unsubscribing does not cancel a notification already in flight.
		log.Debug().Msg("battery notification after deregistration, re-evaluating only")
		uc.requestSwitch(ctx, sc)
		return
	}

	status, err := uc.batteryMon.PowerLineStatus(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read power line status")
	}

	if status == entity.PowerLineOffline {
		log.Info().Msg("battery discharging, enabling dark theme")
		if err := uc.switcher.UpdateTheme(ctx, entity.ThemeDark, sc); err != nil {
			log.Error().Err(err).Msg("failed to apply dark theme")
		}
		return
	}

	uc.requestSwitch(ctx, sc)
}

func (uc *CoordinateEventsUseCase) handleSessionSwitch(ctx context.Context, ev coordinatorEvent) {
	log := logging.FromContext(ctx)
	sc := entity.NewSwitchContext(entity.SwitchSourceSystemUnlock)

	uc.resume.mu.Lock()
	if !uc.resume.live(ev.gen) {
		uc.resume.mu.Unlock()
		log.Debug().Str("reason", ev.reason.String()).Msg("session notification after deregistration, re-evaluating only")
		uc.requestSwitch(ctx, sc)
		return
	}

	switch ev.reason {
	case entity.SessionSwitchUnlock:
		uc.postponer.Remove(entity.PostponeSessionLock)
		uc.resume.lockHeld = false
		uc.resume.mu.Unlock()

		log.Info().Msg("system unlocked, refreshing theme")
		uc.requestSwitch(ctx, sc)
	case entity.SessionSwitchLock:
		uc.postponer.Add(entity.PostponeSessionLock)
		uc.resume.lockHeld = true
		uc.resume.mu.Unlock()

		log.Debug().Msg("system locked, postponing theme switches")
	default:
		uc.resume.mu.Unlock()
	}
}

func (uc *CoordinateEventsUseCase) handlePowerMode(ctx context.Context, ev coordinatorEvent) {
	log := logging.FromContext(ctx)
	sc := entity.NewSwitchContext(entity.SwitchSourceSystemResume)

	uc.resume.mu.Lock()
	live := uc.resume.live(ev.gen)
	uc.resume.mu.Unlock()

	if !live {
		log.Debug().Str("mode", ev.mode.String()).Msg("power mode notification after deregistration, re-evaluating only")
		uc.requestSwitch(ctx, sc)
		return
	}

	if ev.mode != entity.PowerModeResume {
		return
	}

	log.Info().Msg("system resuming from suspended state, refreshing theme")
	uc.requestSwitch(ctx, sc)
}

func (uc *CoordinateEventsUseCase) requestSwitch(ctx context.Context, sc entity.SwitchContext) {
	if err := uc.switcher.RequestSwitch(ctx, sc); err != nil {
		logging.FromContext(ctx).Error().
			Err(err).
			Str("source", string(sc.Source)).
			Msg("theme switch request failed")
	}
}
