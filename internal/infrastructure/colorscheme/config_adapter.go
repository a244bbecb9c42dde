package colorscheme

import (
	"github.com/bnema/duskd/internal/application/port"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/bnema/duskd/internal/infrastructure/config"
)

// ConfigSource returns the current configuration.
type ConfigSource interface {
	Get() *config.Config
}

var _ port.ThemePreference = (*ConfigAdapter)(nil)

// ConfigAdapter reads theme settings from the live configuration, so reloads
// take effect on the next switch.
type ConfigAdapter struct {
	source ConfigSource
}

// NewConfigAdapter creates a new config adapter.
func NewConfigAdapter(source ConfigSource) *ConfigAdapter {
	return &ConfigAdapter{source: source}
}

// PreferredTheme implements port.ThemePreference.
func (a *ConfigAdapter) PreferredTheme() entity.Theme {
	if a.source == nil {
		return entity.ThemeUnknown
	}
	return a.source.Get().PreferredTheme()
}

// GTKTheme implements GTKThemeProvider.
func (a *ConfigAdapter) GTKTheme(theme entity.Theme) string {
	if a.source == nil {
		return ""
	}
	return a.source.Get().GTKTheme(theme)
}
