package controller_test

import (
	"log/slog"
	"testing"

	"github.com/clambin/nest-alarm/internal/controller"
	"github.com/clambin/nest-alarm/internal/decision"
	"github.com/clambin/nest-alarm/internal/nest"
	"github.com/clambin/nest-alarm/internal/testtools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type token string

func (t token) Token() (string, bool) { return string(t), t != "" }

func TestController_Check_Nest(t *testing.T) {
	api := testtools.NewNestAPI("c.token")
	t.Cleanup(api.Close)
	api.SetStructure("s1", map[string]any{"name": "home", "away": "home"})
	api.SetThermostat("t1", map[string]any{
		"name":                    "Upstairs",
		"structure_id":            "s1",
		"hvac_state":              "off",
		"hvac_mode":               "heat",
		"is_using_emergency_heat": false,
		"ambient_temperature_f":   65,
		"target_temperature_f":    62,
	})

	// an unavailable sensor reads -1 and is compared like any other value
	c := controller.New(fakeSensor(-1), nest.New(api.URL, token("c.token"), nil), nil, "Upstairs", false, slog.New(slog.DiscardHandler))
	d, err := c.Check(t.Context())
	require.NoError(t, err)
	assert.Equal(t, decision.Decision{Kind: decision.SetTarget, Value: 66}, d)
	assert.Equal(t, 66.0, api.Thermostat("t1")["target_temperature_f"])

	c = controller.New(fakeSensor(60), nest.New(api.URL, token(""), nil), nil, "Upstairs", false, slog.New(slog.DiscardHandler))
	_, err = c.Check(t.Context())
	assert.ErrorIs(t, err, nest.ErrNoToken)
}
