// Package testutils builds poller Updates for tests.
package testutils

import (
	"github.com/clambin/nest-alarm/internal/poller"
	"github.com/clambin/nest-alarm/internal/thermostat"
)

func Update(options ...UpdateOption) poller.Update {
	u := poller.Update{
		Snapshot: thermostat.Snapshot{
			Thermostats: make(map[string]thermostat.ThermostatStatus),
			Structures:  make(map[string]thermostat.StructureStatus),
		},
	}
	for _, option := range options {
		option(&u)
	}
	return u
}

type UpdateOption func(*poller.Update)

func WithStructure(id, name, away string) UpdateOption {
	return func(u *poller.Update) {
		u.Structures[id] = thermostat.StructureStatus{StructureID: id, Name: name, Away: away}
	}
}

func WithThermostat(id, name, structureID string, ambient, target float64, options ...ThermostatOption) UpdateOption {
	return func(u *poller.Update) {
		t := thermostat.ThermostatStatus{
			DeviceID:            id,
			Name:                name,
			StructureID:         structureID,
			HVACState:           thermostat.HVACStateOff,
			HVACMode:            thermostat.HVACModeHeat,
			AmbientTemperatureF: ambient,
			TargetTemperatureF:  target,
		}
		for _, option := range options {
			option(&t)
		}
		u.Thermostats[id] = t
	}
}

func WithMeasured(temperatureF float64) UpdateOption {
	return func(u *poller.Update) {
		u.MeasuredTemperatureF = temperatureF
	}
}

type ThermostatOption func(*thermostat.ThermostatStatus)

func WithHVAC(state, mode string) ThermostatOption {
	return func(t *thermostat.ThermostatStatus) {
		t.HVACState = state
		t.HVACMode = mode
	}
}

func WithEmergencyHeat() ThermostatOption {
	return func(t *thermostat.ThermostatStatus) {
		t.IsUsingEmergencyHeat = true
	}
}
