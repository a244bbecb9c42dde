package entity

// SwitchSource identifies what triggered a theme switch evaluation.
// It is carried for logging and downstream decisioning only.
type SwitchSource string

const (
	SwitchSourceBatteryStatusChanged SwitchSource = "battery_status_changed"
	SwitchSourceSystemResume         SwitchSource = "system_resume"
	SwitchSourceSystemUnlock         SwitchSource = "system_unlock"
	SwitchSourceManual               SwitchSource = "manual"
	SwitchSourceConfigChanged        SwitchSource = "config_changed"
	SwitchSourceStartup              SwitchSource = "startup"
)

// SwitchContext describes why a switch was requested.
type SwitchContext struct {
	Source SwitchSource
}

// NewSwitchContext returns a context tagged with source.
func NewSwitchContext(source SwitchSource) SwitchContext {
	return SwitchContext{Source: source}
}
