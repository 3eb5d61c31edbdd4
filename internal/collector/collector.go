package collector

import (
	"context"
	"log/slog"
	"sync"

	"github.com/clambin/go-common/set"
	"github.com/clambin/nest-alarm/internal/poller"
	"github.com/clambin/nest-alarm/internal/sensor"
	"github.com/clambin/nest-alarm/internal/thermostat"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	nestThermostatAmbientTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("nest", "thermostat", "ambient_temperature_fahrenheit"),
		"Ambient temperature reported by the thermostat in degrees fahrenheit",
		[]string{"thermostat", "id"},
		nil,
	)
	nestThermostatTargetTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("nest", "thermostat", "target_temperature_fahrenheit"),
		"Target temperature of the thermostat in degrees fahrenheit",
		[]string{"thermostat", "id"},
		nil,
	)
	nestThermostatHVACState = prometheus.NewDesc(
		prometheus.BuildFQName("nest", "thermostat", "hvac_state"),
		"HVAC state of the thermostat. 1 for the current state, 0 otherwise",
		[]string{"thermostat", "id", "hvac_state"},
		nil,
	)
	nestThermostatEmergencyHeat = prometheus.NewDesc(
		prometheus.BuildFQName("nest", "thermostat", "emergency_heat"),
		"1 if the thermostat is using emergency heat",
		[]string{"thermostat", "id"},
		nil,
	)
	nestStructureAway = prometheus.NewDesc(
		prometheus.BuildFQName("nest", "structure", "away"),
		"Away state of the structure. Always 1. Label away specifies the state",
		[]string{"structure", "id", "away"},
		nil,
	)
	nestSensorTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("nest", "sensor", "temperature_fahrenheit"),
		"Temperature measured by the local sensor in degrees fahrenheit",
		nil,
		nil,
	)
)

var _ prometheus.Collector = &Collector{}

// Collector exports the last update received from the Poller as Prometheus metrics. Thermostats & structures are
// labeled by name and by ID, as names need not be unique.
type Collector struct {
	Poller     poller.Poller
	Logger     *slog.Logger
	lock       sync.RWMutex
	lastUpdate *poller.Update
}

func (c *Collector) Run(ctx context.Context) error {
	c.Logger.Debug("started")
	defer c.Logger.Debug("stopped")

	ch := c.Poller.Subscribe()
	defer c.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			c.process(update)
		}
	}
}

func (c *Collector) process(update poller.Update) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.lastUpdate = &update
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- nestThermostatAmbientTemperature
	ch <- nestThermostatTargetTemperature
	ch <- nestThermostatHVACState
	ch <- nestThermostatEmergencyHeat
	ch <- nestStructureAway
	ch <- nestSensorTemperature
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.lastUpdate != nil {
		c.collectThermostats(ch)
		c.collectStructures(ch)
		c.collectSensor(ch)
	}
}

func (c *Collector) collectThermostats(ch chan<- prometheus.Metric) {
	for _, t := range c.lastUpdate.Thermostats {
		ch <- prometheus.MustNewConstMetric(nestThermostatAmbientTemperature, prometheus.GaugeValue, t.AmbientTemperatureF, t.Name, t.DeviceID)
		ch <- prometheus.MustNewConstMetric(nestThermostatTargetTemperature, prometheus.GaugeValue, t.TargetTemperatureF, t.Name, t.DeviceID)

		states := set.Create[string]()
		states.Add(thermostat.HVACStateOff)
		states.Add(thermostat.HVACStateHeating)
		states.Add(thermostat.HVACStateCooling)
		states.Add(t.HVACState)
		for _, state := range states.List() {
			var value float64
			if state == t.HVACState {
				value = 1
			}
			ch <- prometheus.MustNewConstMetric(nestThermostatHVACState, prometheus.GaugeValue, value, t.Name, t.DeviceID, state)
		}

		var value float64
		if t.IsUsingEmergencyHeat {
			value = 1
		}
		ch <- prometheus.MustNewConstMetric(nestThermostatEmergencyHeat, prometheus.GaugeValue, value, t.Name, t.DeviceID)
	}
}

func (c *Collector) collectStructures(ch chan<- prometheus.Metric) {
	for _, s := range c.lastUpdate.Structures {
		ch <- prometheus.MustNewConstMetric(nestStructureAway, prometheus.GaugeValue, 1, s.Name, s.StructureID, s.Away)
	}
}

func (c *Collector) collectSensor(ch chan<- prometheus.Metric) {
	if c.lastUpdate.MeasuredTemperatureF == sensor.Unavailable {
		c.Logger.Debug("sensor unavailable. skipping collection")
		return
	}
	ch <- prometheus.MustNewConstMetric(nestSensorTemperature, prometheus.GaugeValue, c.lastUpdate.MeasuredTemperatureF)
}
