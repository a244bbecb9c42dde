package styles_test

import (
	"testing"

	"github.com/bnema/duskd/internal/cli/styles"
	"github.com/bnema/duskd/internal/domain/build"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(entity.ThemeDark)
}

func TestNewTheme_PicksPalette(t *testing.T) {
	light := styles.NewTheme(entity.ThemeLight)
	dark := styles.NewTheme(entity.ThemeDark)
	unknown := styles.NewTheme(entity.ThemeUnknown)

	assert.NotEqual(t, light.Background, dark.Background)
	assert.Equal(t, dark.Background, unknown.Background)
}

func TestStatusRenderer_Render(t *testing.T) {
	r := styles.NewStatusRenderer(testTheme())

	out := r.Render(styles.StatusReport{
		ConfigFile:       "/home/u/.config/duskd/config.toml",
		Preferred:        "light",
		DarkOnBattery:    true,
		Build:            255,
		Threshold:        209,
		Strategy:         "modern",
		PowerLine:        "offline",
		Applier:          "gsettings",
		ApplierAvailable: true,
		CurrentTheme:     "dark",
	})

	assert.Contains(t, out, "/home/u/.config/duskd/config.toml")
	assert.Contains(t, out, "255")
	assert.Contains(t, out, "modern")
	assert.Contains(t, out, "offline")
	assert.Contains(t, out, "gsettings")
	assert.Contains(t, out, "off")
}

func TestStatusRenderer_RenderFailures(t *testing.T) {
	r := styles.NewStatusRenderer(testTheme())

	out := r.Render(styles.StatusReport{
		BuildError:     "no systemd",
		Threshold:      209,
		Strategy:       "legacy",
		PowerLineError: "upower unavailable",
		Applier:        "gsettings",
		CurrentTheme:   "unknown",
	})

	assert.Contains(t, out, "no systemd")
	assert.Contains(t, out, "upower unavailable")
	assert.Contains(t, out, "gsettings not found")
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(testTheme())

	out := r.Render(build.Info{Version: "v0.3.0", Commit: "abc1234", BuildDate: "2026-01-01", GoVersion: "go1.24"})

	assert.Contains(t, out, "v0.3.0")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, build.RepoURL())
}
