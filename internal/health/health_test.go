package health

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clambin/nest-alarm/internal/poller"
	"github.com/clambin/nest-alarm/internal/poller/mocks"
	"github.com/clambin/nest-alarm/internal/poller/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_ServeHTTP(t *testing.T) {
	var subscribed atomic.Bool

	ch := make(chan poller.Update)
	p := mocks.NewPoller(t)
	p.EXPECT().Subscribe().RunAndReturn(func() <-chan poller.Update {
		subscribed.Store(true)
		return ch
	}).Once()
	p.EXPECT().Unsubscribe((<-chan poller.Update)(ch)).Run(func(_ <-chan poller.Update) {
		subscribed.Store(false)
	}).Maybe()
	p.EXPECT().Refresh().Once()

	h := New(p, slog.New(slog.DiscardHandler))
	go func() { _ = h.Run(t.Context()) }()

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, &http.Request{})
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)

	ch <- testutils.Update(
		testutils.WithStructure("s1", "home", "home"),
		testutils.WithThermostat("t1", "Upstairs", "s1", 65, 62),
		testutils.WithMeasured(61),
	)

	require.Eventually(t, func() bool {
		resp = httptest.NewRecorder()
		h.ServeHTTP(resp, &http.Request{})
		return resp.Code == http.StatusOK
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
	var report struct {
		Thermostats map[string]struct {
			Name    string  `json:"name"`
			Ambient float64 `json:"ambient_temperature_f"`
		} `json:"thermostats"`
		Measured float64 `json:"measured_temperature_f"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, "Upstairs", report.Thermostats["t1"].Name)
	assert.Equal(t, 65.0, report.Thermostats["t1"].Ambient)
	assert.Equal(t, 61.0, report.Measured)
	assert.True(t, subscribed.Load())
}
