// Package bootstrap wires the duskd daemon together.
package bootstrap

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/duskd/internal/application/port"
	"github.com/bnema/duskd/internal/application/usecase"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/bnema/duskd/internal/domain/service"
	"github.com/bnema/duskd/internal/infrastructure/config"
	"github.com/bnema/duskd/internal/logging"
)

// ConfigSource is the live configuration seen by the daemon.
type ConfigSource interface {
	Get() *config.Config
	Watch() error
	OnConfigChange(callback func(*config.Config))
}

// SignalRouter delivers platform notifications until ctx is done.
type SignalRouter interface {
	Run(ctx context.Context) error
}

// DaemonDeps holds the collaborators of the daemon.
type DaemonDeps struct {
	Config     ConfigSource
	Router     SignalRouter
	Battery    port.BatteryMonitor
	Session    port.SessionMonitor
	Probe      port.PlatformProbe
	Applier    port.ColorSchemeApplier
	Preference port.ThemePreference
}

// Daemon keeps the desktop theme in sync with power and session events.
type Daemon struct {
	deps        DaemonDeps
	postponer   *service.PostponeManager
	switcher    *usecase.SwitchThemeUseCase
	coordinator *usecase.CoordinateEventsUseCase

	mu       sync.Mutex
	closed   bool
	minBuild int
}

// NewDaemon creates the postponement registry, theme switcher and event
// coordinator for deps.
func NewDaemon(deps DaemonDeps) *Daemon {
	postponer := service.NewPostponeManager()
	switcher := usecase.NewSwitchThemeUseCase(deps.Applier, postponer, deps.Preference)

	cfg := deps.Config.Get()
	coordinator := usecase.NewCoordinateEventsUseCase(usecase.CoordinateEventsConfig{
		Switcher:              switcher,
		Postponer:             postponer,
		Battery:               deps.Battery,
		Session:               deps.Session,
		Probe:                 deps.Probe,
		SessionSwitchMinBuild: cfg.Events.SessionSwitchMinBuild,
	})

	return &Daemon{
		deps:        deps,
		postponer:   postponer,
		switcher:    switcher,
		coordinator: coordinator,
		minBuild:    cfg.Events.SessionSwitchMinBuild,
	}
}

// Coordinator returns the event coordinator.
func (d *Daemon) Coordinator() *usecase.CoordinateEventsUseCase {
	return d.coordinator
}

// Postponer returns the postponement registry.
func (d *Daemon) Postponer() *service.PostponeManager {
	return d.postponer
}

// Run applies the configured event toggles, requests a startup evaluation
// and serves events until ctx is done or the router fails. Both event
// families are deregistered before it returns.
func (d *Daemon) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "daemon")
	log := logging.FromContext(ctx)

	g, gctx := errgroup.WithContext(ctx)

	// The coordinator outlives gctx so the deregistration re-evaluation is handled.
	loopCtx := context.WithoutCancel(ctx)
	g.Go(func() error {
		return d.coordinator.Run(loopCtx)
	})
	g.Go(func() error {
		return d.deps.Router.Run(gctx)
	})

	unwatch := d.postponer.OnChange(func(keys []entity.PostponeKey) {
		log.Info().Interface("postponed_by", keys).Msg("theme switch postponement changed")
	})
	defer unwatch()

	d.mu.Lock()
	if !d.closed {
		d.applyTogglesLocked(gctx, d.deps.Config.Get())
	}
	d.mu.Unlock()
	d.coordinator.RequestSwitch(entity.SwitchSourceStartup)

	// Started after the initial toggles so shutdown always sees them.
	g.Go(func() error {
		<-gctx.Done()
		d.shutdown(loopCtx)
		d.coordinator.Stop()
		return nil
	})

	d.deps.Config.OnConfigChange(func(cfg *config.Config) {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.closed {
			return
		}
		log.Info().Msg("configuration reloaded")
		d.applyTogglesLocked(gctx, cfg)
		d.coordinator.RequestSwitch(entity.SwitchSourceConfigChanged)
	})
	if err := d.deps.Config.Watch(); err != nil {
		log.Warn().Err(err).Msg("config live reload disabled")
	}

	log.Info().Msg("duskd running")
	err := g.Wait()
	stopped := log.Info()
	if last, ok := d.switcher.LastSwitch(); ok {
		stopped = stopped.
			Str("last_theme", last.Theme.String()).
			Str("last_source", string(last.Source)).
			Time("last_switch_at", last.At)
	}
	stopped.Msg("duskd stopped")
	return err
}

// applyTogglesLocked registers or deregisters each event family to match cfg.
// Must be called with d.mu held.
func (d *Daemon) applyTogglesLocked(ctx context.Context, cfg *config.Config) {
	log := logging.FromContext(ctx)

	if cfg.Events.DarkOnBattery {
		if err := d.coordinator.RegisterThemeEvent(ctx); err != nil {
			log.Error().Err(err).Msg("failed to enable dark theme on battery")
		}
	} else if err := d.coordinator.DeregisterThemeEvent(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to disable dark theme on battery")
	}

	// A new threshold only takes effect on registration, so re-register.
	if cfg.Events.SessionSwitchMinBuild != d.minBuild {
		d.minBuild = cfg.Events.SessionSwitchMinBuild
		d.coordinator.SetSessionSwitchMinBuild(d.minBuild)
		if d.coordinator.ResumeEventEnabled() {
			if err := d.coordinator.DeregisterResumeEvent(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to disable theme refresh on resume")
			}
		}
	}

	if cfg.Events.RefreshOnResume {
		if err := d.coordinator.RegisterResumeEvent(ctx); err != nil {
			log.Error().Err(err).Msg("failed to enable theme refresh on resume")
		}
	} else if err := d.coordinator.DeregisterResumeEvent(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to disable theme refresh on resume")
	}
}

func (d *Daemon) shutdown(ctx context.Context) {
	log := logging.FromContext(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true

	err := errors.Join(
		d.coordinator.DeregisterThemeEvent(ctx),
		d.coordinator.DeregisterResumeEvent(ctx),
	)
	if err != nil {
		log.Warn().Err(err).Msg("while deregistering event handlers")
	}
}
