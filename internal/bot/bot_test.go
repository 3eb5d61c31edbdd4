package bot

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/clambin/nest-alarm/internal/bot/mocks"
	"github.com/clambin/nest-alarm/internal/decision"
	"github.com/clambin/nest-alarm/internal/poller"
	mockPoller "github.com/clambin/nest-alarm/internal/poller/mocks"
	"github.com/clambin/nest-alarm/internal/poller/testutils"
	"github.com/clambin/nest-alarm/internal/thermostat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	decision decision.Decision
	err      error
}

func (f fakeChecker) Check(_ context.Context) (decision.Decision, error) {
	return f.decision, f.err
}

type fakeAlarm struct {
	due      time.Time
	canceled bool
}

func (f *fakeAlarm) Pending() (time.Time, bool) {
	return f.due, !f.due.IsZero() && !f.canceled
}

func (f *fakeAlarm) Cancel() {
	f.canceled = true
}

func newSlackBot(t *testing.T) *mocks.SlackBot {
	b := mocks.NewSlackBot(t)
	b.EXPECT().Register(mock.AnythingOfType("string"), mock.Anything)
	return b
}

func TestBot_Run(t *testing.T) {
	ch := make(chan poller.Update)
	p := mockPoller.NewPoller(t)
	p.EXPECT().Subscribe().Return(ch).Once()
	p.EXPECT().Unsubscribe((<-chan poller.Update)(ch)).Return().Once()

	b := New(fakeChecker{}, &fakeAlarm{}, newSlackBot(t), p, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error)
	go func() { errCh <- b.Run(ctx) }()

	ch <- poller.Update{}

	assert.Eventually(t, func() bool {
		b.lock.RLock()
		defer b.lock.RUnlock()
		return b.updated
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-errCh)
}

func TestBot_ReportStatus(t *testing.T) {
	b := New(fakeChecker{}, &fakeAlarm{}, newSlackBot(t), nil, slog.New(slog.DiscardHandler))

	attachments := b.ReportStatus(t.Context())
	require.Len(t, attachments, 1)
	assert.Equal(t, "no updates yet. please check back later", attachments[0].Text)

	b.update = testutils.Update(
		testutils.WithStructure("s1", "Mark Twain", thermostat.AwayHome),
		testutils.WithThermostat("t1", "Upstairs", "s1", 65, 62),
		testutils.WithThermostat("t2", "Downstairs", "s1", 66, 70, testutils.WithHVAC(thermostat.HVACStateHeating, thermostat.HVACModeHeat), testutils.WithEmergencyHeat()),
		testutils.WithMeasured(61.25),
	)
	b.updated = true

	attachments = b.ReportStatus(t.Context())
	require.Len(t, attachments, 1)
	assert.Equal(t, "status:", attachments[0].Title)
	assert.Equal(t, `Downstairs: 66ºF (target: 70ºF, mode: heat, heating, emergency heat)
Mark Twain: home
Upstairs: 65ºF (target: 62ºF, mode: heat, off)
room: 61.2ºF`, attachments[0].Text)

	b.update.MeasuredTemperatureF = -1
	attachments = b.ReportStatus(t.Context())
	require.Len(t, attachments, 1)
	assert.Contains(t, attachments[0].Text, "room: sensor unavailable")
}

func TestBot_DoCheck(t *testing.T) {
	p := mockPoller.NewPoller(t)
	p.EXPECT().Refresh().Once()

	b := New(fakeChecker{decision: decision.Decision{Kind: decision.SetTarget, Value: 66}}, &fakeAlarm{}, newSlackBot(t), p, slog.New(slog.DiscardHandler))
	attachments := b.DoCheck(t.Context())
	require.Len(t, attachments, 1)
	assert.Equal(t, "good", attachments[0].Color)
	assert.Equal(t, "set target", attachments[0].Title)
	assert.Equal(t, "setting target temperature to 66ºF", attachments[0].Text)

	b.checker = fakeChecker{err: errors.New("token not set")}
	attachments = b.DoCheck(t.Context())
	require.Len(t, attachments, 1)
	assert.Equal(t, "bad", attachments[0].Color)
	assert.Equal(t, "check failed: token not set", attachments[0].Text)
}

func TestBot_ReportAlarm(t *testing.T) {
	var a fakeAlarm
	b := New(fakeChecker{}, &a, newSlackBot(t), nil, slog.New(slog.DiscardHandler))

	attachments := b.ReportAlarm(t.Context())
	require.Len(t, attachments, 1)
	assert.Equal(t, "no alarm check scheduled", attachments[0].Text)

	a.due = time.Now().Add(time.Hour)
	attachments = b.ReportAlarm(t.Context())
	require.Len(t, attachments, 1)
	assert.Contains(t, attachments[0].Text, "next check at "+a.due.Format(time.DateTime))

	attachments = b.ReportAlarm(t.Context(), "snooze")
	require.Len(t, attachments, 1)
	assert.Equal(t, "bad", attachments[0].Color)

	attachments = b.ReportAlarm(t.Context(), "cancel")
	require.Len(t, attachments, 1)
	assert.Equal(t, "alarm check canceled", attachments[0].Text)
	assert.True(t, a.canceled)
}

func TestBot_DoRefresh(t *testing.T) {
	p := mockPoller.NewPoller(t)
	p.EXPECT().Refresh().Once()
	b := New(fakeChecker{}, &fakeAlarm{}, newSlackBot(t), p, slog.New(slog.DiscardHandler))

	attachments := b.DoRefresh(t.Context())
	require.Len(t, attachments, 1)
	assert.Equal(t, "refreshing thermostat data", attachments[0].Text)
}
