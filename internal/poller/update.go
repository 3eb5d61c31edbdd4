package poller

import (
	"log/slog"
	"slices"
	"time"

	"github.com/clambin/nest-alarm/internal/thermostat"
)

var _ slog.LogValuer = Update{}

// Update is the state published by the Poller: the thermostat snapshot and the temperature measured by the local sensor.
type Update struct {
	thermostat.Snapshot
	MeasuredTemperatureF float64   `json:"measured_temperature_f"`
	Timestamp            time.Time `json:"timestamp"`
}

func (u Update) LogValue() slog.Value {
	attribs := make([]slog.Attr, 0, 1+len(u.Thermostats)+len(u.Structures))
	attribs = append(attribs, slog.Float64("measured", u.MeasuredTemperatureF))
	for _, id := range sortedIDs(u.Thermostats) {
		attribs = append(attribs, slog.Any("thermostat_"+id, u.Thermostats[id]))
	}
	for _, id := range sortedIDs(u.Structures) {
		attribs = append(attribs, slog.Any("structure_"+id, u.Structures[id]))
	}
	return slog.GroupValue(attribs...)
}

func sortedIDs[T any](m map[string]T) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
