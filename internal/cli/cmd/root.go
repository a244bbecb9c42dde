// Package cmd provides Cobra CLI commands for duskd.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/duskd/internal/cli"
	"github.com/bnema/duskd/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "duskd",
		Short: "Switch the desktop between light and dark on power and session events",
		Long: `duskd - keeps the desktop color scheme in step with the machine.

It listens on the system bus and:
  - forces the dark theme while running on battery (UPower)
  - re-evaluates the theme when the session is unlocked (systemd-logind)
  - re-evaluates the theme after suspend/resume on older systemd releases
  - applies the preferred theme otherwise, through gsettings

Switches requested while the session is locked are held back until it is
unlocked again.

Use 'duskd run' to start the daemon, typically from a systemd user unit.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
