package bootstrap

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/duskd/internal/infrastructure/colorscheme"
	"github.com/bnema/duskd/internal/infrastructure/config"
	"github.com/bnema/duskd/internal/infrastructure/sysbus"
	"github.com/bnema/duskd/internal/logging"
)

// Platform bundles the system bus adapters.
type Platform struct {
	Bus     *sysbus.Bus
	Battery *sysbus.Battery
	Session *sysbus.Session
	Probe   *sysbus.Probe
}

// ConnectPlatform connects to the system bus and creates the adapters.
func ConnectPlatform(ctx context.Context, timeout time.Duration) (*Platform, error) {
	bus, err := sysbus.Connect(ctx, timeout)
	if err != nil {
		return nil, err
	}
	return &Platform{
		Bus:     bus,
		Battery: sysbus.NewBattery(bus),
		Session: sysbus.NewSession(bus),
		Probe:   sysbus.NewProbe(bus),
	}, nil
}

// Close closes the bus connection.
func (p *Platform) Close() error {
	return p.Bus.Close()
}

// NewLogger builds the daemon logger from cfg. The cleanup closes the log file.
func NewLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	return logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: time.RFC3339,
		},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			LogDir:        cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAge,
			WriteToStderr: true,
		},
	)
}

// RunDaemon connects to the platform and runs the daemon until ctx is done.
func RunDaemon(ctx context.Context, cfgSource ConfigSource) error {
	log := logging.FromContext(ctx)
	cfg := cfgSource.Get()

	platform, err := ConnectPlatform(ctx, cfg.Bus.ConnectTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if err := platform.Close(); err != nil {
			log.Debug().Err(err).Msg("closing system bus")
		}
	}()

	themes := colorscheme.NewConfigAdapter(cfgSource)
	applier := colorscheme.NewGsettingsApplier(themes)
	if !applier.Available() {
		log.Warn().Msg("gsettings not found, theme switches will fail")
	}

	daemon := NewDaemon(DaemonDeps{
		Config:     cfgSource,
		Router:     platform.Bus,
		Battery:    platform.Battery,
		Session:    platform.Session,
		Probe:      platform.Probe,
		Applier:    applier,
		Preference: themes,
	})
	return daemon.Run(ctx)
}
