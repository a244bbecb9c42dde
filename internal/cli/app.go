// Package cli holds the dependencies shared by the duskd commands.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/duskd/internal/cli/styles"
	"github.com/bnema/duskd/internal/domain/build"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/bnema/duskd/internal/infrastructure/colorscheme"
	"github.com/bnema/duskd/internal/infrastructure/config"
	"github.com/bnema/duskd/internal/logging"
)

const themeProbeTimeout = 2 * time.Second

// App holds CLI dependencies.
type App struct {
	Config    *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	Themes  *colorscheme.ConfigAdapter
	Applier *colorscheme.GsettingsApplier

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds the CLI dependencies.
func NewApp() (*App, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	mgr := config.GetManager()
	cfg := mgr.Get()

	// CLI commands log to stderr only; the daemon sets up its own file output.
	logger, logCleanup, _ := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{Enabled: false},
	)
	ctx := logging.WithContext(context.Background(), logger)

	themes := colorscheme.NewConfigAdapter(mgr)
	applier := colorscheme.NewGsettingsApplier(themes)

	return &App{
		Config:     mgr,
		Theme:      styles.NewTheme(currentTheme(ctx, applier)),
		Themes:     themes,
		Applier:    applier,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// currentTheme reads the desktop theme so CLI output matches it.
func currentTheme(ctx context.Context, applier *colorscheme.GsettingsApplier) entity.Theme {
	if !applier.Available() {
		return entity.ThemeUnknown
	}
	ctx, cancel := context.WithTimeout(ctx, themeProbeTimeout)
	defer cancel()
	theme, _ := applier.Current(ctx)
	return theme
}
