package tadotools_test

import (
	"context"
	"errors"
	"testing"

	"github.com/clambin/nest-alarm/internal/tadotools"
	"github.com/clambin/nest-alarm/internal/tadotools/mocks"
	"github.com/clambin/nest-alarm/internal/thermostat"
	"github.com/clambin/tado"
	"github.com/clambin/tado/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClient_GetSnapshot(t *testing.T) {
	api := mocks.NewTadoClient(t)
	api.EXPECT().GetZones(mock.Anything).Return(tado.Zones{{ID: 1, Name: "living room"}}, nil).Once()
	api.EXPECT().GetZoneInfo(mock.Anything, 1).Return(testutil.MakeZoneInfo(testutil.ZoneInfoTemperature(18, 20)), nil).Once()
	api.EXPECT().GetHomeState(mock.Anything).Return(tado.HomeState{Presence: "AWAY"}, nil).Once()

	c := tadotools.New(api)
	snapshot, err := c.GetSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Thermostats, 1)
	th := snapshot.Thermostats["1"]
	assert.Equal(t, "1", th.DeviceID)
	assert.Equal(t, "living room", th.Name)
	assert.Equal(t, tadotools.HomeID, th.StructureID)
	assert.Equal(t, thermostat.HVACModeHeat, th.HVACMode)
	assert.Equal(t, thermostat.HVACStateOff, th.HVACState)
	assert.InDelta(t, 64.4, th.AmbientTemperatureF, 0.01)
	assert.InDelta(t, 68.0, th.TargetTemperatureF, 0.01)

	assert.Equal(t, thermostat.StructureStatus{StructureID: "home", Name: "home", Away: "away"}, snapshot.Structures[tadotools.HomeID])
}

func TestClient_GetSnapshot_Failure(t *testing.T) {
	api := mocks.NewTadoClient(t)
	api.EXPECT().GetZones(mock.Anything).Return(nil, errors.New("fail")).Once()

	_, err := tadotools.New(api).GetSnapshot(context.Background())
	assert.ErrorContains(t, err, "tado: zones: fail")
}

func TestClient_SetTargetTemperature(t *testing.T) {
	api := mocks.NewTadoClient(t)
	api.EXPECT().
		SetZoneOverlay(mock.Anything, 1, mock.AnythingOfType("float64")).
		RunAndReturn(func(_ context.Context, _ int, temperature float64) error {
			assert.InDelta(t, 20.0, temperature, 0.01)
			return nil
		}).
		Once()

	c := tadotools.New(api)
	assert.NoError(t, c.SetTargetTemperature(context.Background(), "1", 68))
	assert.Error(t, c.SetTargetTemperature(context.Background(), "living room", 68))
}
