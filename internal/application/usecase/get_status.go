package usecase

import (
	"context"

	"github.com/bnema/duskd/internal/application/port"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/bnema/duskd/internal/logging"
)

// GetStatusUseCase gathers a one-shot view of the platform state.
type GetStatusUseCase struct {
	battery port.BatteryMonitor
	probe   port.PlatformProbe
	applier port.ColorSchemeApplier
}

// NewGetStatusUseCase creates a new status use case. Any collaborator may be nil.
func NewGetStatusUseCase(
	battery port.BatteryMonitor,
	probe port.PlatformProbe,
	applier port.ColorSchemeApplier,
) *GetStatusUseCase {
	return &GetStatusUseCase{battery: battery, probe: probe, applier: applier}
}

// GetStatusInput contains options for the status report.
type GetStatusInput struct {
	// SessionSwitchMinBuild is the threshold used to predict the resume strategy.
	// If zero, the default is used.
	SessionSwitchMinBuild int
}

// GetStatusOutput is the status report. Probe failures are reported per field.
type GetStatusOutput struct {
	Build      int
	BuildError string
	Threshold  int
	Strategy   entity.ResumeStrategy

	PowerLine      entity.PowerLineStatus
	PowerLineError string

	Applier          string
	ApplierAvailable bool
	CurrentTheme     entity.Theme
}

// Execute probes the platform. It only fails if ctx is canceled.
func (uc *GetStatusUseCase) Execute(ctx context.Context, input GetStatusInput) (*GetStatusOutput, error) {
	log := logging.FromContext(ctx).With().Str("component", "status").Logger()

	threshold := input.SessionSwitchMinBuild
	if threshold <= 0 {
		threshold = defaultSessionSwitchMinBuild
	}
	out := &GetStatusOutput{
		Threshold: threshold,
		Strategy:  entity.ResumeStrategyLegacy,
	}

	if uc.probe != nil {
		build, err := uc.probe.BuildNumber(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("build probe failed")
			out.BuildError = err.Error()
		} else {
			out.Build = build
			out.Strategy = entity.SelectResumeStrategy(build, threshold)
		}
	}

	if uc.battery != nil {
		status, err := uc.battery.PowerLineStatus(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("power line probe failed")
			out.PowerLineError = err.Error()
		}
		out.PowerLine = status
	}

	if uc.applier != nil {
		out.Applier = uc.applier.Name()
		out.ApplierAvailable = uc.applier.Available()
		if out.ApplierAvailable {
			if theme, ok := uc.applier.Current(ctx); ok {
				out.CurrentTheme = theme
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
