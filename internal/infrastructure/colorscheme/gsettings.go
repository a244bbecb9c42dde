// Package colorscheme applies the desktop color scheme through gsettings.
package colorscheme

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/duskd/internal/application/port"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/bnema/duskd/internal/logging"
)

const (
	applierNameGsettings = "gsettings"
	interfaceSchema      = "org.gnome.desktop.interface"
	keyColorScheme       = "color-scheme"
	keyGTKTheme          = "gtk-theme"

	schemePreferDark  = "prefer-dark"
	schemePreferLight = "prefer-light"
	schemeDefault     = "default"
)

// CommandRunner runs external commands.
type CommandRunner interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// GTKThemeProvider returns the GTK theme name paired with a theme, or "".
type GTKThemeProvider interface {
	GTKTheme(theme entity.Theme) string
}

// Compile-time interface check.
var _ port.ColorSchemeApplier = (*GsettingsApplier)(nil)

// GsettingsApplier switches GNOME's color-scheme and, when configured, gtk-theme.
type GsettingsApplier struct {
	runner CommandRunner
	gtk    GTKThemeProvider
}

// NewGsettingsApplier creates a gsettings-based applier. gtk may be nil.
func NewGsettingsApplier(gtk GTKThemeProvider) *GsettingsApplier {
	return &GsettingsApplier{runner: execRunner{}, gtk: gtk}
}

// Name implements port.ColorSchemeApplier.
func (*GsettingsApplier) Name() string {
	return applierNameGsettings
}

// Available implements port.ColorSchemeApplier.
// Returns true if gsettings command is available.
func (a *GsettingsApplier) Available() bool {
	_, err := a.runner.LookPath("gsettings")
	return err == nil
}

// Current implements port.ColorSchemeApplier. ok is false when the color
// scheme cannot be read or the configured GTK theme is not the active one.
func (a *GsettingsApplier) Current(ctx context.Context) (entity.Theme, bool) {
	scheme, err := a.get(ctx, keyColorScheme)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("gsettings: cannot read color-scheme")
		return entity.ThemeUnknown, false
	}

	theme := entity.ThemeLight
	switch scheme {
	case schemePreferDark:
		theme = entity.ThemeDark
	case schemePreferLight, schemeDefault:
	default:
		return entity.ThemeUnknown, false
	}

	if want := a.gtkTheme(theme); want != "" {
		got, err := a.get(ctx, keyGTKTheme)
		if err != nil || got != want {
			return theme, false
		}
	}
	return theme, true
}

// Apply implements port.ColorSchemeApplier.
func (a *GsettingsApplier) Apply(ctx context.Context, theme entity.Theme) error {
	log := logging.FromContext(ctx)

	var scheme string
	switch theme {
	case entity.ThemeDark:
		scheme = schemePreferDark
	case entity.ThemeLight:
		scheme = schemeDefault
	default:
		return fmt.Errorf("%w: %s", entity.ErrInvalidTheme, theme)
	}

	if err := a.set(ctx, keyColorScheme, scheme); err != nil {
		return err
	}

	if name := a.gtkTheme(theme); name != "" {
		if err := a.set(ctx, keyGTKTheme, name); err != nil {
			return err
		}
	}

	log.Debug().Str("color_scheme", scheme).Str("gtk_theme", a.gtkTheme(theme)).Msg("gsettings: theme applied")
	return nil
}

func (a *GsettingsApplier) gtkTheme(theme entity.Theme) string {
	if a.gtk == nil {
		return ""
	}
	return a.gtk.GTKTheme(theme)
}

func (a *GsettingsApplier) get(ctx context.Context, key string) (string, error) {
	output, err := a.runner.Output(ctx, "gsettings", "get", interfaceSchema, key)
	if err != nil {
		return "", fmt.Errorf("gsettings get %s: %w", key, err)
	}
	// Output is like "'prefer-dark'\n", strip quotes and whitespace
	result := strings.TrimSpace(string(output))
	return strings.Trim(result, "'\""), nil
}

func (a *GsettingsApplier) set(ctx context.Context, key, value string) error {
	if _, err := a.runner.Output(ctx, "gsettings", "set", interfaceSchema, key, value); err != nil {
		return fmt.Errorf("gsettings set %s %s: %w", key, value, err)
	}
	return nil
}
