package config

import "time"

// Default configuration constants
const (
	// Logging defaults
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7 // days

	// Events defaults
	defaultSessionSwitchMinBuild = 209 // systemd release with reliable Lock/Unlock on sessions

	// Bus defaults
	defaultConnectTimeout = 30 * time.Second
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console", // console or json
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAge:        defaultMaxLogAgeDays,
		},
		Theme: ThemeConfig{
			Preferred: ThemePreferLight,
		},
		Events: EventsConfig{
			DarkOnBattery:         true,
			RefreshOnResume:       true,
			SessionSwitchMinBuild: defaultSessionSwitchMinBuild,
		},
		Bus: BusConfig{
			ConnectTimeout: defaultConnectTimeout,
		},
	}
}

func getDefaultLogDir() string {
	dir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return dir
}
