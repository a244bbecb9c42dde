package sysbus

import (
	"context"
	"fmt"

	"github.com/bnema/duskd/internal/application/port"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/godbus/dbus/v5"
)

const (
	upowerDest      = "org.freedesktop.UPower"
	upowerPath      = dbus.ObjectPath("/org/freedesktop/UPower")
	upowerInterface = "org.freedesktop.UPower"

	propertiesInterface = "org.freedesktop.DBus.Properties"
	propertiesChanged   = propertiesInterface + ".PropertiesChanged"

	routeBattery = "battery-status"
)

var _ port.BatteryMonitor = (*Battery)(nil)

// Battery reports the power line state from UPower.
type Battery struct {
	bus *Bus
}

// NewBattery creates a UPower adapter on bus.
func NewBattery(bus *Bus) *Battery {
	return &Battery{bus: bus}
}

// SubscribeBatteryStatus calls handler whenever UPower's OnBattery changes.
func (b *Battery) SubscribeBatteryStatus(_ context.Context, handler func()) error {
	return b.bus.addRoute(routeBattery, route{
		matches: [][]dbus.MatchOption{{
			dbus.WithMatchSender(upowerDest),
			dbus.WithMatchObjectPath(upowerPath),
			dbus.WithMatchInterface(propertiesInterface),
			dbus.WithMatchMember("PropertiesChanged"),
		}},
		accept: onBatteryChanged,
		handle: func(*dbus.Signal) { handler() },
	})
}

// UnsubscribeBatteryStatus removes the handler installed by SubscribeBatteryStatus.
func (b *Battery) UnsubscribeBatteryStatus(_ context.Context) error {
	return b.bus.removeRoute(routeBattery)
}

// PowerLineStatus reads OnBattery. Systems without a battery report Online.
func (b *Battery) PowerLineStatus(_ context.Context) (entity.PowerLineStatus, error) {
	v, err := b.bus.Object(upowerDest, upowerPath).GetProperty(upowerInterface + ".OnBattery")
	if err != nil {
		return entity.PowerLineUnknown, fmt.Errorf("read UPower OnBattery: %w", err)
	}
	onBattery, ok := v.Value().(bool)
	if !ok {
		return entity.PowerLineUnknown, fmt.Errorf("read UPower OnBattery: unexpected type %s", v.Signature())
	}
	if onBattery {
		return entity.PowerLineOffline, nil
	}
	return entity.PowerLineOnline, nil
}

// onBatteryChanged matches PropertiesChanged(interface, changed, invalidated)
// on the UPower manager when OnBattery is part of the change.
func onBatteryChanged(sig *dbus.Signal) bool {
	if sig.Name != propertiesChanged || sig.Path != upowerPath || len(sig.Body) < 2 {
		return false
	}
	iface, ok := sig.Body[0].(string)
	if !ok || iface != upowerInterface {
		return false
	}
	if changed, ok := sig.Body[1].(map[string]dbus.Variant); ok {
		if _, ok := changed["OnBattery"]; ok {
			return true
		}
	}
	if len(sig.Body) > 2 {
		if invalidated, ok := sig.Body[2].([]string); ok {
			for _, name := range invalidated {
				if name == "OnBattery" {
					return true
				}
			}
		}
	}
	return false
}
