package config

import (
	"fmt"
	"strings"
)

// validateConfig collects every invalid value into a single error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateTheme(config)...)
	validationErrors = append(validationErrors, validateEvents(config)...)
	validationErrors = append(validationErrors, validateBus(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}

	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		validationErrors = append(validationErrors, "logging.log_dir is required when logging.enable_file_log is true")
	}
	return validationErrors
}

func validateTheme(config *Config) []string {
	switch config.Theme.Preferred {
	case ThemePreferLight, ThemePreferDark:
		return nil
	default:
		return []string{fmt.Sprintf("theme.preferred must be light or dark (got %q)", config.Theme.Preferred)}
	}
}

func validateEvents(config *Config) []string {
	if config.Events.SessionSwitchMinBuild < 1 {
		return []string{"events.session_switch_min_build must be positive"}
	}
	return nil
}

func validateBus(config *Config) []string {
	if config.Bus.ConnectTimeout < 0 {
		return []string{"bus.connect_timeout must be non-negative"}
	}
	return nil
}
