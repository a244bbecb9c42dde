package config

import (
	"testing"

	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.EnableFileLog)
	assert.Equal(t, entity.ThemeLight, cfg.PreferredTheme())
	assert.True(t, cfg.Events.DarkOnBattery)
	assert.True(t, cfg.Events.RefreshOnResume)
}

func TestGetXDGDirs(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	dirs, err := GetXDGDirs()
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/cfg/duskd", dirs.ConfigHome)
	assert.Equal(t, "/tmp/state/duskd", dirs.StateHome)

	logDir, err := GetLogDir()
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/state/duskd/logs", logDir)
}
