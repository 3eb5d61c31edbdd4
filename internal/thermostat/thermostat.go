// Package thermostat contains the read-only view of a cloud thermostat account: its thermostats and the structures
// (homes) they belong to.
package thermostat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

var (
	ErrThermostatNotFound = errors.New("thermostat not found")
	ErrStructureNotFound  = errors.New("structure not found")
)

// HVAC states & modes, as reported by the cloud API.
const (
	HVACStateOff     = "off"
	HVACStateHeating = "heating"
	HVACStateCooling = "cooling"

	HVACModeHeat     = "heat"
	HVACModeCool     = "cool"
	HVACModeHeatCool = "heat-cool"
	HVACModeOff      = "off"
)

// Away states of a structure.
const (
	AwayHome     = "home"
	AwayAway     = "away"
	AwayAutoAway = "auto-away"
)

// A Client reads a Snapshot from a cloud thermostat API and changes a thermostat's target temperature.
type Client interface {
	GetSnapshot(ctx context.Context) (Snapshot, error)
	SetTargetTemperature(ctx context.Context, deviceID string, temperatureF float64) error
}

// ThermostatStatus is the state of a single thermostat.
type ThermostatStatus struct {
	DeviceID             string  `json:"device_id" yaml:"deviceId"`
	Name                 string  `json:"name" yaml:"name"`
	StructureID          string  `json:"structure_id" yaml:"structureId"`
	HVACState            string  `json:"hvac_state" yaml:"hvacState"`
	HVACMode             string  `json:"hvac_mode" yaml:"hvacMode"`
	IsUsingEmergencyHeat bool    `json:"is_using_emergency_heat" yaml:"isUsingEmergencyHeat"`
	AmbientTemperatureF  float64 `json:"ambient_temperature_f" yaml:"ambientTemperatureF"`
	TargetTemperatureF   float64 `json:"target_temperature_f" yaml:"targetTemperatureF"`
}

func (t ThermostatStatus) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", t.DeviceID),
		slog.String("name", t.Name),
		slog.String("hvac_state", t.HVACState),
		slog.String("hvac_mode", t.HVACMode),
		slog.Bool("emergency_heat", t.IsUsingEmergencyHeat),
		slog.Float64("ambient", t.AmbientTemperatureF),
		slog.Float64("target", t.TargetTemperatureF),
	)
}

// StructureStatus is the state of a structure. Away is one of "home", "away" or "auto-away".
type StructureStatus struct {
	StructureID string `json:"structure_id" yaml:"structureId"`
	Name        string `json:"name" yaml:"name"`
	Away        string `json:"away" yaml:"away"`
}

func (s StructureStatus) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", s.StructureID),
		slog.String("name", s.Name),
		slog.String("away", s.Away),
	)
}

// Snapshot holds all thermostats and structures of an account, keyed by their ID.
type Snapshot struct {
	Thermostats map[string]ThermostatStatus `json:"thermostats" yaml:"thermostats"`
	Structures  map[string]StructureStatus  `json:"structures" yaml:"structures"`
}

// Select returns the thermostat to control and the structure it belongs to.
//
// If name is not blank, Select returns the thermostat with that name. Otherwise, it returns the thermostat with the
// lexicographically first device ID.  The structure is the one referenced by the thermostat. If the thermostat does not
// reference a known structure, Select falls back to the structure with the lexicographically first ID.
func (s Snapshot) Select(name string) (ThermostatStatus, StructureStatus, error) {
	t, err := s.selectThermostat(name)
	if err != nil {
		return ThermostatStatus{}, StructureStatus{}, err
	}
	st, err := s.selectStructure(t.StructureID)
	return t, st, err
}

func (s Snapshot) selectThermostat(name string) (ThermostatStatus, error) {
	for _, id := range sortedKeys(s.Thermostats) {
		if t := s.Thermostats[id]; name == "" || t.Name == name {
			return t, nil
		}
	}
	if name != "" {
		return ThermostatStatus{}, fmt.Errorf("%w: %s", ErrThermostatNotFound, name)
	}
	return ThermostatStatus{}, ErrThermostatNotFound
}

func (s Snapshot) selectStructure(id string) (StructureStatus, error) {
	if st, ok := s.Structures[id]; ok {
		return st, nil
	}
	if ids := sortedKeys(s.Structures); len(ids) > 0 {
		return s.Structures[ids[0]], nil
	}
	return StructureStatus{}, ErrStructureNotFound
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}
