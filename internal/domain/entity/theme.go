// Package entity defines domain entities for duskd.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Theme is the visual theme duskd applies to the desktop.
type Theme int

const (
	ThemeUnknown Theme = iota
	ThemeLight
	ThemeDark
)

var ErrInvalidTheme = errors.New("invalid theme")

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "unknown"
	}
}

// ParseTheme parses "light" or "dark" (case-insensitive).
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeUnknown, fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}
