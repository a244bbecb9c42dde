package sysbus

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/duskd/internal/application/port"
	"github.com/godbus/dbus/v5"
)

const (
	systemdDest             = "org.freedesktop.systemd1"
	systemdPath             = dbus.ObjectPath("/org/freedesktop/systemd1")
	systemdManagerInterface = "org.freedesktop.systemd1.Manager"
)

// ErrInvalidVersion is returned when the systemd version has no leading number.
var ErrInvalidVersion = errors.New("invalid systemd version")

var _ port.PlatformProbe = (*Probe)(nil)

// Probe reports the systemd major version as the platform build number.
type Probe struct {
	bus *Bus
}

// NewProbe creates a systemd version probe on bus.
func NewProbe(bus *Bus) *Probe {
	return &Probe{bus: bus}
}

// BuildNumber returns the systemd major version, e.g. 255 for "255.4-1ubuntu8".
func (p *Probe) BuildNumber(_ context.Context) (int, error) {
	v, err := p.bus.Object(systemdDest, systemdPath).GetProperty(systemdManagerInterface + ".Version")
	if err != nil {
		return 0, fmt.Errorf("read systemd version: %w", err)
	}
	version, ok := v.Value().(string)
	if !ok {
		return 0, fmt.Errorf("read systemd version: unexpected type %s", v.Signature())
	}
	return ParseSystemdVersion(version)
}

// ParseSystemdVersion extracts the major version from strings such as
// "255", "v256", "255.4-1ubuntu8" or "systemd 249 (249.11-0ubuntu3)".
func ParseSystemdVersion(version string) (int, error) {
	s := strings.TrimSpace(version)
	s = strings.TrimPrefix(s, "systemd ")
	s = strings.TrimPrefix(s, "v")

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}

	major, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidVersion, version, err)
	}
	return major, nil
}
