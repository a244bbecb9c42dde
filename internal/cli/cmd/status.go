package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/duskd/internal/application/port"
	"github.com/bnema/duskd/internal/application/usecase"
	"github.com/bnema/duskd/internal/bootstrap"
	"github.com/bnema/duskd/internal/cli/styles"
	"github.com/bnema/duskd/internal/infrastructure/config"
	"github.com/bnema/duskd/internal/logging"
)

var statusTimeout time.Duration

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration, platform and color scheme state",
	Long: `Status probes the system bus once and reports what the daemon would do:
the systemd version and the resume strategy it selects, whether the machine
runs on battery, and the active color scheme.

Examples:
  duskd status
  duskd status --timeout 10s`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().DurationVar(&statusTimeout, "timeout", 5*time.Second, "System bus connection timeout")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, cancel := context.WithTimeout(app.Ctx(), statusTimeout+time.Second)
	defer cancel()
	log := logging.FromContext(ctx)

	cfg := app.Config.Get()

	var (
		battery port.BatteryMonitor
		probe   port.PlatformProbe
		busErr  error
	)
	platform, err := bootstrap.ConnectPlatform(ctx, statusTimeout)
	if err != nil {
		busErr = err
	} else {
		defer func() {
			if err := platform.Close(); err != nil {
				log.Debug().Err(err).Msg("closing system bus")
			}
		}()
		battery = platform.Battery
		probe = platform.Probe
	}

	uc := usecase.NewGetStatusUseCase(battery, probe, app.Applier)
	out, err := uc.Execute(ctx, usecase.GetStatusInput{
		SessionSwitchMinBuild: cfg.Events.SessionSwitchMinBuild,
	})
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}

	report := buildStatusReport(app.Config.GetConfigFile(), cfg, out, busErr)
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewStatusRenderer(app.Theme).Render(report))
	return nil
}

func buildStatusReport(configFile string, cfg *config.Config, out *usecase.GetStatusOutput, busErr error) styles.StatusReport {
	report := styles.StatusReport{
		ConfigFile:       configFile,
		Preferred:        string(cfg.Theme.Preferred),
		DarkOnBattery:    cfg.Events.DarkOnBattery,
		RefreshOnResume:  cfg.Events.RefreshOnResume,
		Build:            out.Build,
		BuildError:       out.BuildError,
		Threshold:        out.Threshold,
		Strategy:         out.Strategy.String(),
		PowerLine:        out.PowerLine.String(),
		PowerLineError:   out.PowerLineError,
		Applier:          out.Applier,
		ApplierAvailable: out.ApplierAvailable,
		CurrentTheme:     out.CurrentTheme.String(),
	}
	if busErr != nil {
		msg := fmt.Sprintf("system bus unavailable: %v", busErr)
		report.BuildError = msg
		report.PowerLineError = msg
	}
	return report
}
