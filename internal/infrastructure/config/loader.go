// Package config loads, validates and watches the duskd configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager for the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(configDir)
}

func newManager(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// DUSKD_EVENTS_DARK_ON_BATTERY overrides events.dark_on_battery, and so on.
	v.SetEnvPrefix("DUSKD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DUSKD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUSKD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUSKD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUSKD_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile = filepath.Join(m.configDir, configFileName)
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "", "console", "text":
		config.Logging.Format = "console"
	case "json":
		config.Logging.Format = "json"
	}
	config.Logging.LogDir = strings.TrimSpace(config.Logging.LogDir)

	switch ThemePreference(strings.ToLower(strings.TrimSpace(string(config.Theme.Preferred)))) {
	case ThemePreferDark, "prefer-dark":
		config.Theme.Preferred = ThemePreferDark
	case ThemePreferLight, "prefer-light", "":
		config.Theme.Preferred = ThemePreferLight
	}
	config.Theme.LightGTKTheme = strings.TrimSpace(config.Theme.LightGTKTheme)
	config.Theme.DarkGTKTheme = strings.TrimSpace(config.Theme.DarkGTKTheme)

	if config.Events.SessionSwitchMinBuild == 0 {
		config.Events.SessionSwitchMinBuild = defaultSessionSwitchMinBuild
	}
	if config.Bus.ConnectTimeout == 0 {
		config.Bus.ConnectTimeout = defaultConnectTimeout
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configFileName)
}

// createDefaultConfig writes the defaults to the config directory.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, configFileName)

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setThemeDefaults(defaults)
	m.setEventsDefaults(defaults)
	m.setBusDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
}

func (m *Manager) setThemeDefaults(defaults *Config) {
	m.viper.SetDefault("theme.preferred", string(defaults.Theme.Preferred))
	m.viper.SetDefault("theme.light_gtk_theme", defaults.Theme.LightGTKTheme)
	m.viper.SetDefault("theme.dark_gtk_theme", defaults.Theme.DarkGTKTheme)
}

func (m *Manager) setEventsDefaults(defaults *Config) {
	m.viper.SetDefault("events.dark_on_battery", defaults.Events.DarkOnBattery)
	m.viper.SetDefault("events.refresh_on_resume", defaults.Events.RefreshOnResume)
	m.viper.SetDefault("events.session_switch_min_build", defaults.Events.SessionSwitchMinBuild)
}

func (m *Manager) setBusDefaults(defaults *Config) {
	m.viper.SetDefault("bus.connect_timeout", defaults.Bus.ConnectTimeout.String())
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}
