// Package controller runs the alarm's decision cycle: it reads the local sensor and the thermostat, decides whether
// to raise the thermostat's target temperature and, if so, sets it.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/clambin/nest-alarm/internal/decision"
	"github.com/clambin/nest-alarm/internal/thermostat"
	"github.com/prometheus/client_golang/prometheus"
)

type SensorReader interface {
	Read() float64
}

type Notifier interface {
	Notify(thermostat string, d decision.Decision)
}

var _ prometheus.Collector = &Controller{}

// A Controller performs one decision cycle each time Check is called.
//
// If DryRun is set, the Controller decides & notifies, but doesn't change the thermostat's target temperature.
type Controller struct {
	Sensor         SensorReader
	Client         thermostat.Client
	Notifier       Notifier
	ThermostatName string
	DryRun         bool
	logger         *slog.Logger
	decisions      *prometheus.CounterVec
	lock           sync.Mutex
}

func New(sensor SensorReader, client thermostat.Client, notifier Notifier, thermostatName string, dryRun bool, logger *slog.Logger) *Controller {
	return &Controller{
		Sensor:         sensor,
		Client:         client,
		Notifier:       notifier,
		ThermostatName: thermostatName,
		DryRun:         dryRun,
		logger:         logger,
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nest",
			Subsystem: "alarm",
			Name:      "decisions_total",
			Help:      "Number of decisions taken by the alarm, by decision & reason",
		}, []string{"decision", "reason"}),
	}
}

// Check performs one decision cycle and returns the decision it took. Concurrent calls are serialized.
func (c *Controller) Check(ctx context.Context) (decision.Decision, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	measured := c.Sensor.Read()

	snapshot, err := c.Client.GetSnapshot(ctx)
	if err != nil {
		return decision.Decision{}, fmt.Errorf("get thermostat: %w", err)
	}

	t, s, err := snapshot.Select(c.ThermostatName)
	if err != nil {
		return decision.Decision{}, err
	}
	c.logger.Debug("thermostat selected", "measured", measured, "thermostat", t, "structure", s)

	d := decision.Decide(measured, t, s)
	c.logger.Info("decision made", "thermostat", t.Name, "decision", d)
	c.decisions.WithLabelValues(d.Kind.String(), d.Reason.Label()).Inc()

	if d.IsChange() {
		if c.DryRun {
			c.logger.Info("dry run. not setting target temperature", "target", d.Value)
		} else if err = c.Client.SetTargetTemperature(ctx, t.DeviceID, d.Value); err != nil {
			return d, fmt.Errorf("set target temperature: %w", err)
		}
	}

	if c.Notifier != nil {
		c.Notifier.Notify(t.Name, d)
	}
	return d, nil
}

func (c *Controller) Describe(ch chan<- *prometheus.Desc) {
	c.decisions.Describe(ch)
}

func (c *Controller) Collect(ch chan<- prometheus.Metric) {
	c.decisions.Collect(ch)
}
