package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	statusOn  = "on"
	statusOff = "off"
)

// StatusRenderer renders the output of `duskd status`.
type StatusRenderer struct {
	theme *Theme
}

func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

type StatusReport struct {
	ConfigFile string
	Preferred  string

	DarkOnBattery   bool
	RefreshOnResume bool

	Build      int
	BuildError string
	Threshold  int
	Strategy   string

	PowerLine      string
	PowerLineError string

	Applier          string
	ApplierAvailable bool
	CurrentTheme     string
}

func (r *StatusRenderer) Render(report StatusReport) string {
	header := r.renderHeader(report.CurrentTheme)
	sections := []string{
		r.renderConfig(report),
		r.renderPlatform(report),
		r.renderDesktop(report),
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(sections, "\n\n"))
}

func (r *StatusRenderer) renderHeader(current string) string {
	icon := IconMoon
	if current == "light" {
		icon = IconSun
	}
	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(icon), r.theme.Title.Render("duskd"))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", r.theme.Badge.Render(current))
}

func (r *StatusRenderer) renderConfig(report StatusReport) string {
	lines := []string{
		r.kv("File", report.ConfigFile),
		r.kv("Preferred", report.Preferred),
		r.toggle("Dark on battery", report.DarkOnBattery),
		r.toggle("Refresh on resume", report.RefreshOnResume),
	}
	return r.box(IconConfig, "Config", lines)
}

func (r *StatusRenderer) renderPlatform(report StatusReport) string {
	lines := make([]string, 0, 3)

	if report.BuildError != "" {
		lines = append(lines, r.failure("systemd", report.BuildError))
	} else {
		lines = append(lines, r.kv("systemd", fmt.Sprintf("%d", report.Build)))
	}
	lines = append(lines, fmt.Sprintf(
		"%s %s %s",
		r.theme.Subtle.Render("Resume"),
		r.theme.Normal.Render(report.Strategy),
		r.theme.Subtle.Render(fmt.Sprintf("(lock/unlock from %d)", report.Threshold)),
	))

	if report.PowerLineError != "" {
		lines = append(lines, r.failure("Power line", report.PowerLineError))
	} else {
		icon := IconPlug
		if report.PowerLine == "offline" {
			icon = IconBattery
		}
		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			r.theme.Highlight.Render(icon),
			r.theme.Subtle.Render("Power line"),
			r.theme.Normal.Render(report.PowerLine),
		))
	}

	return r.box(IconLock, "Platform", lines)
}

func (r *StatusRenderer) renderDesktop(report StatusReport) string {
	lines := []string{}
	if report.ApplierAvailable {
		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			r.theme.SuccessStyle.Render(IconCheck),
			r.theme.Subtle.Render("Applier"),
			r.theme.Normal.Render(report.Applier),
		))
		lines = append(lines, r.kv("Color scheme", report.CurrentTheme))
	} else {
		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			r.theme.ErrorStyle.Render(IconX),
			r.theme.Subtle.Render("Applier"),
			r.theme.ErrorStyle.Render(report.Applier+" not found"),
		))
	}
	return r.box(IconDesktop, "Desktop", lines)
}

func (r *StatusRenderer) box(icon, title string, lines []string) string {
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.Highlight.Render(icon), title))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *StatusRenderer) kv(key, value string) string {
	return fmt.Sprintf("%s %s", r.theme.Subtle.Render(key), r.theme.Normal.Render(value))
}

func (r *StatusRenderer) toggle(key string, on bool) string {
	style := r.theme.SuccessStyle
	text := statusOn
	if !on {
		style = r.theme.Subtle
		text = statusOff
	}
	return fmt.Sprintf("%s %s", r.theme.Subtle.Render(key), r.theme.BadgeMuted.Render(style.Render(text)))
}

func (r *StatusRenderer) failure(key, msg string) string {
	return fmt.Sprintf(
		"%s %s %s",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.Subtle.Render(key),
		r.theme.WarningStyle.Render(msg),
	)
}
