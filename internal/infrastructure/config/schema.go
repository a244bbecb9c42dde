package config

import (
	"time"

	"github.com/bnema/duskd/internal/domain/entity"
)

// Config represents the complete configuration for duskd.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Theme   ThemeConfig   `mapstructure:"theme" yaml:"theme" toml:"theme"`
	Events  EventsConfig  `mapstructure:"events" yaml:"events" toml:"events"`
	Bus     BusConfig     `mapstructure:"bus" yaml:"bus" toml:"bus"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
	// MaxAge is the number of days rotated log files are kept.
	MaxAge int `mapstructure:"max_age" yaml:"max_age" toml:"max_age"`
}

// ThemePreference is the theme applied when no event forces one.
type ThemePreference string

const (
	ThemePreferLight ThemePreference = "light"
	ThemePreferDark  ThemePreference = "dark"
)

// ThemeConfig holds the themes duskd applies.
type ThemeConfig struct {
	Preferred ThemePreference `mapstructure:"preferred" yaml:"preferred" toml:"preferred"`
	// Optional GTK theme names set alongside the color scheme. Empty leaves gtk-theme untouched.
	LightGTKTheme string `mapstructure:"light_gtk_theme" yaml:"light_gtk_theme" toml:"light_gtk_theme"`
	DarkGTKTheme  string `mapstructure:"dark_gtk_theme" yaml:"dark_gtk_theme" toml:"dark_gtk_theme"`
}

// EventsConfig toggles the OS event subscriptions.
type EventsConfig struct {
	// DarkOnBattery forces the dark theme while running on battery.
	DarkOnBattery bool `mapstructure:"dark_on_battery" yaml:"dark_on_battery" toml:"dark_on_battery"`
	// RefreshOnResume re-evaluates the theme at session unlock or system resume.
	RefreshOnResume bool `mapstructure:"refresh_on_resume" yaml:"refresh_on_resume" toml:"refresh_on_resume"`
	// SessionSwitchMinBuild is the first systemd version whose lock/unlock signals are used.
	SessionSwitchMinBuild int `mapstructure:"session_switch_min_build" yaml:"session_switch_min_build" toml:"session_switch_min_build"`
}

// BusConfig controls the system bus connection.
type BusConfig struct {
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" yaml:"connect_timeout" toml:"connect_timeout"`
}

// PreferredTheme maps the configured preference to a domain theme.
func (c *Config) PreferredTheme() entity.Theme {
	switch c.Theme.Preferred {
	case ThemePreferDark:
		return entity.ThemeDark
	case ThemePreferLight:
		return entity.ThemeLight
	default:
		return entity.ThemeUnknown
	}
}

// GTKTheme returns the GTK theme name configured for theme, or "".
func (c *Config) GTKTheme(theme entity.Theme) string {
	switch theme {
	case entity.ThemeDark:
		return c.Theme.DarkGTKTheme
	case entity.ThemeLight:
		return c.Theme.LightGTKTheme
	default:
		return ""
	}
}
