package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/duskd/internal/bootstrap"
	"github.com/bnema/duskd/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the theme daemon",
	Long: `Run connects to the system bus and keeps the desktop theme in step with
power and session events until it receives SIGINT or SIGTERM.

The configuration file is watched: toggling events.dark_on_battery or
events.refresh_on_resume takes effect without a restart.

Examples:
  duskd run
  DUSKD_LOG_LEVEL=debug duskd run`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDaemon(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logger, logCleanup, err := bootstrap.NewLogger(app.Config.Get())
	defer logCleanup()
	if err != nil {
		logger.Warn().Err(err).Msg("file logging disabled")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithContext(ctx, logger)
	defer logging.LogPanic(ctx)

	logger.Info().
		Str("version", app.BuildInfo.Version).
		Str("config", app.Config.GetConfigFile()).
		Msg("starting duskd")

	err = bootstrap.RunDaemon(ctx, app.Config)
	if err != nil && !errors.Is(err, ctx.Err()) {
		return err
	}
	return nil
}
