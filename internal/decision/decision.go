// Package decision decides whether to raise a thermostat's target temperature, given the temperature measured by a
// local sensor and the state reported by the thermostat.
package decision

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/clambin/nest-alarm/internal/thermostat"
)

var _ slog.LogValuer = Decision{}

// Kind is the type of Decision.
type Kind int

const (
	NoOp Kind = iota
	SetTarget
)

func (k Kind) String() string {
	if k == SetTarget {
		return "set target"
	}
	return "no action"
}

// Reason explains why a NoOp decision was made.
type Reason int

const (
	NoReason Reason = iota
	NearOrAboveAmbient
	HVACOn
	EmergencyHeatActive
	HeatCoolModeActive
	StructureAway
)

var reasonNames = []string{
	"",
	"room temperature is near/above ambient",
	"hvac is currently on",
	"can't adjust target temperature while using emergency heat",
	"can't adjust target temperature while in Heat • Cool mode, use target_temperature_high/low instead",
	"can't adjust target temperature while structure is set to Away or Auto-away",
}

func (r Reason) String() string {
	if r >= 0 && int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Label returns a short, stable name for the reason, suitable as a metric label.
func (r Reason) Label() string {
	switch r {
	case NearOrAboveAmbient:
		return "near_or_above_ambient"
	case HVACOn:
		return "hvac_on"
	case EmergencyHeatActive:
		return "emergency_heat"
	case HeatCoolModeActive:
		return "heat_cool_mode"
	case StructureAway:
		return "structure_away"
	default:
		return "none"
	}
}

// Decision is the outcome of Decide. For a SetTarget decision, Value holds the new target temperature (in ºF).
// For a NoOp decision, Reason explains why no change is needed.
type Decision struct {
	Kind   Kind
	Value  float64
	Reason Reason
}

// IsChange returns true if the decision requires the thermostat's target temperature to be changed.
func (d Decision) IsChange() bool {
	return d.Kind == SetTarget
}

func (d Decision) String() string {
	if d.IsChange() {
		return fmt.Sprintf("setting target temperature to %.0fºF", d.Value)
	}
	return d.Reason.String()
}

func (d Decision) LogValue() slog.Value {
	if d.IsChange() {
		return slog.GroupValue(slog.String("kind", d.Kind.String()), slog.Float64("value", d.Value))
	}
	return slog.GroupValue(slog.String("kind", d.Kind.String()), slog.String("reason", d.Reason.String()))
}

// Decide determines if the thermostat's target temperature should be raised to one degree above the ambient temperature.
//
// The checks are evaluated in order and the first match wins: the measured room temperature is near or above the
// thermostat's ambient temperature, the hvac is running, emergency heat is on, the thermostat is in heat-cool mode,
// or the structure is away. measured may be the sensor's -1 sentinel: it is compared like any other reading.
func Decide(measured float64, t thermostat.ThermostatStatus, s thermostat.StructureStatus) Decision {
	switch {
	case measured+1 >= t.AmbientTemperatureF:
		return Decision{Kind: NoOp, Reason: NearOrAboveAmbient}
	case t.HVACState != thermostat.HVACStateOff:
		return Decision{Kind: NoOp, Reason: HVACOn}
	case t.IsUsingEmergencyHeat:
		return Decision{Kind: NoOp, Reason: EmergencyHeatActive}
	case t.HVACMode == thermostat.HVACModeHeatCool:
		return Decision{Kind: NoOp, Reason: HeatCoolModeActive}
	case strings.Contains(s.Away, thermostat.AwayAway):
		return Decision{Kind: NoOp, Reason: StructureAway}
	default:
		return Decision{Kind: SetTarget, Value: t.AmbientTemperatureF + 1}
	}
}
