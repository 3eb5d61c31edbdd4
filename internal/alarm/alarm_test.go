package alarm_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clambin/nest-alarm/internal/alarm"
	"github.com/clambin/nest-alarm/internal/decision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	calls atomic.Int32
	err   error
}

func (f *fakeChecker) Check(_ context.Context) (decision.Decision, error) {
	f.calls.Add(1)
	return decision.Decision{Kind: decision.NoOp, Reason: decision.HVACOn}, f.err
}

func TestScheduler_Schedule(t *testing.T) {
	var c fakeChecker
	s := alarm.NewScheduler(&c, 30*time.Minute, slog.New(slog.DiscardHandler))
	go func() { _ = s.Run(t.Context()) }()

	delay := s.Schedule(time.Now().Add(30*time.Minute + 100*time.Millisecond))
	assert.LessOrEqual(t, delay, 100*time.Millisecond)
	assert.Greater(t, delay, time.Duration(0))
	_, ok := s.Pending()
	assert.True(t, ok)

	assert.Eventually(t, func() bool { return c.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		_, ok = s.Pending()
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_Schedule_Past(t *testing.T) {
	c := fakeChecker{err: errors.New("fail")}
	s := alarm.NewScheduler(&c, 30*time.Minute, slog.New(slog.DiscardHandler))

	assert.Zero(t, s.Schedule(time.Now()))
	assert.Eventually(t, func() bool { return c.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
}

func TestScheduler_Reschedule(t *testing.T) {
	var c fakeChecker
	s := alarm.NewScheduler(&c, time.Minute, slog.New(slog.DiscardHandler))

	s.Schedule(time.Now().Add(time.Hour))
	first, ok := s.Pending()
	require.True(t, ok)

	s.Schedule(time.Now().Add(2 * time.Hour))
	second, ok := s.Pending()
	require.True(t, ok)
	assert.True(t, second.After(first))

	s.Cancel()
	_, ok = s.Pending()
	assert.False(t, ok)
	assert.Zero(t, c.calls.Load())

	// canceling without a pending check is a no-op
	s.Cancel()
}

type blockingChecker struct {
	started chan struct{}
	release chan struct{}
}

func (b blockingChecker) Check(_ context.Context) (decision.Decision, error) {
	close(b.started)
	<-b.release
	return decision.Decision{}, nil
}

func TestScheduler_Cancel_Running(t *testing.T) {
	c := blockingChecker{started: make(chan struct{}), release: make(chan struct{})}
	var out bytes.Buffer
	s := alarm.NewScheduler(c, time.Minute, slog.New(slog.NewTextHandler(&out, nil)))

	s.Schedule(time.Now())
	<-c.started
	s.Cancel()
	assert.NotContains(t, out.String(), "alarm canceled")
	close(c.release)
}

func TestScheduler_Run(t *testing.T) {
	var c fakeChecker
	s := alarm.NewScheduler(&c, time.Minute, slog.New(slog.DiscardHandler))
	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error)
	go func() { errCh <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		s.Schedule(time.Now().Add(time.Hour))
		_, ok := s.Pending()
		return ok
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-errCh)
	_, ok := s.Pending()
	assert.False(t, ok)
}

func TestCron_Run(t *testing.T) {
	var c fakeChecker
	cr := alarm.Cron{Checker: &c, Schedule: "@every 1s", Logger: slog.New(slog.DiscardHandler)}
	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error)
	go func() { errCh <- cr.Run(ctx) }()

	assert.Eventually(t, func() bool { return c.calls.Load() > 0 }, 5*time.Second, 100*time.Millisecond)
	cancel()
	assert.NoError(t, <-errCh)
}

func TestCron_Run_InvalidSchedule(t *testing.T) {
	cr := alarm.Cron{Checker: &fakeChecker{}, Schedule: "not a schedule", Logger: slog.New(slog.DiscardHandler)}
	assert.ErrorContains(t, cr.Run(t.Context()), `invalid schedule "not a schedule"`)
}
