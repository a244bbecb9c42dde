package port

import (
	"context"

	"github.com/bnema/duskd/internal/domain/entity"
)

// ThemeSwitcher evaluates and applies the desktop theme.
type ThemeSwitcher interface {
	// RequestSwitch re-evaluates whether a theme change is due and applies it.
	// It is a no-op while switching is postponed and is safe to call redundantly.
	RequestSwitch(ctx context.Context, sc entity.SwitchContext) error

	// UpdateTheme applies theme immediately, bypassing evaluation and postponement.
	UpdateTheme(ctx context.Context, theme entity.Theme, sc entity.SwitchContext) error
}

// ColorSchemeApplier reads and writes the desktop color scheme.
type ColorSchemeApplier interface {
	// Name returns a human-readable name for this applier.
	Name() string

	// Available returns true if the backing tool can be used.
	Available() bool

	// Current returns the active theme. ok is false if it cannot be determined.
	Current(ctx context.Context) (theme entity.Theme, ok bool)

	// Apply switches the desktop to theme.
	Apply(ctx context.Context, theme entity.Theme) error
}

// ThemePreference resolves the theme that should be active when nothing forces one.
type ThemePreference interface {
	PreferredTheme() entity.Theme
}
