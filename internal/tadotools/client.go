// Package tadotools presents a Tadoº account as a thermostat.Client: each zone is a thermostat and the home is
// the single structure.
package tadotools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/clambin/nest-alarm/internal/thermostat"
	"github.com/clambin/tado"
)

// HomeID is the structure ID under which the Tadoº home is reported.
const HomeID = "home"

var _ thermostat.Client = &Client{}

// TadoClient contains the Tadoº API calls used by Client. *tado.APIClient implements it.
type TadoClient interface {
	GetZones(ctx context.Context) (tado.Zones, error)
	GetZoneInfo(ctx context.Context, zoneID int) (tado.ZoneInfo, error)
	GetHomeState(ctx context.Context) (tado.HomeState, error)
	SetZoneOverlay(ctx context.Context, zoneID int, temperature float64) error
}

type Client struct {
	TadoClient
}

func New(c TadoClient) *Client {
	return &Client{TadoClient: c}
}

func (c *Client) GetSnapshot(ctx context.Context) (thermostat.Snapshot, error) {
	zones, err := c.TadoClient.GetZones(ctx)
	if err != nil {
		return thermostat.Snapshot{}, fmt.Errorf("tado: zones: %w", err)
	}
	snapshot := thermostat.Snapshot{
		Thermostats: make(map[string]thermostat.ThermostatStatus, len(zones)),
		Structures:  make(map[string]thermostat.StructureStatus, 1),
	}
	for _, zone := range zones {
		info, err := c.TadoClient.GetZoneInfo(ctx, zone.ID)
		if err != nil {
			return thermostat.Snapshot{}, fmt.Errorf("tado: zoneInfo %d: %w", zone.ID, err)
		}
		id := strconv.Itoa(zone.ID)
		snapshot.Thermostats[id] = zoneThermostat(id, zone.Name, info)
	}

	homeState, err := c.TadoClient.GetHomeState(ctx)
	if err != nil {
		return thermostat.Snapshot{}, fmt.Errorf("tado: homeState: %w", err)
	}
	away := thermostat.AwayAway
	if homeState.Presence == "HOME" {
		away = thermostat.AwayHome
	}
	snapshot.Structures[HomeID] = thermostat.StructureStatus{StructureID: HomeID, Name: HomeID, Away: away}

	return snapshot, nil
}

func zoneThermostat(id, name string, info tado.ZoneInfo) thermostat.ThermostatStatus {
	hvacMode := thermostat.HVACModeOff
	if info.Setting.Power == "ON" {
		hvacMode = thermostat.HVACModeHeat
	}
	hvacState := thermostat.HVACStateOff
	if info.ActivityDataPoints.HeatingPower.Percentage > 0 {
		hvacState = thermostat.HVACStateHeating
	}
	return thermostat.ThermostatStatus{
		DeviceID:            id,
		Name:                name,
		StructureID:         HomeID,
		HVACState:           hvacState,
		HVACMode:            hvacMode,
		AmbientTemperatureF: thermostat.CelsiusToFahrenheit(info.SensorDataPoints.InsideTemperature.Celsius),
		TargetTemperatureF:  thermostat.CelsiusToFahrenheit(info.Setting.Temperature.Celsius),
	}
}

// SetTargetTemperature sets a permanent overlay for the zone. deviceID is the zone ID.
func (c *Client) SetTargetTemperature(ctx context.Context, deviceID string, temperatureF float64) error {
	zoneID, err := strconv.Atoi(deviceID)
	if err != nil {
		return fmt.Errorf("tado: invalid zone id %q: %w", deviceID, err)
	}
	if err = c.TadoClient.SetZoneOverlay(ctx, zoneID, thermostat.FahrenheitToCelsius(temperatureF)); err != nil {
		return fmt.Errorf("tado: set overlay: %w", err)
	}
	return nil
}
