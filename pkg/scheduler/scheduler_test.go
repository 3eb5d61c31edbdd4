package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clambin/nest-alarm/pkg/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MyTask struct {
	err error
}

func (t MyTask) Run(_ context.Context) error {
	return t.err
}

func TestScheduler_Queue(t *testing.T) {
	task := &MyTask{}
	job := scheduler.Schedule(context.Background(), task, 100*time.Millisecond)

	assert.Eventually(t, func() bool {
		done, err := job.Result()
		return done && err == nil
	}, time.Second, 10*time.Millisecond)

	task = &MyTask{err: errors.New("failed")}
	job = scheduler.Schedule(context.Background(), task, 100*time.Millisecond)

	<-job.Done()
	done, err := job.Result()
	assert.True(t, done)
	assert.ErrorIs(t, err, scheduler.ErrFailed)
	assert.EqualError(t, err, "job failed: failed")
}

func TestScheduler_Immediate(t *testing.T) {
	var ran bool
	job := scheduler.Schedule(context.Background(), scheduler.TaskFunc(func(_ context.Context) error {
		ran = true
		return nil
	}), -time.Minute)

	<-job.Done()
	assert.True(t, ran)
	assert.False(t, job.Due().After(time.Now()))
}

func TestScheduler_Cancel(t *testing.T) {
	task := &MyTask{}
	job := scheduler.Schedule(context.Background(), task, time.Hour)
	done, _ := job.Result()
	assert.False(t, done)

	assert.True(t, job.Cancel())
	<-job.Done()
	completed, err := job.Result()
	assert.True(t, completed)
	assert.ErrorIs(t, err, scheduler.ErrCanceled)
	assert.False(t, job.Cancel())
}

func TestScheduler_Cancel_Running(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	job := scheduler.Schedule(context.Background(), scheduler.TaskFunc(func(_ context.Context) error {
		close(started)
		<-release
		return nil
	}), 0)

	<-started
	assert.False(t, job.Cancel())
	close(release)
	<-job.Done()
	_, err := job.Result()
	assert.NoError(t, err)
}

func TestScheduler_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	job := scheduler.Schedule(ctx, &MyTask{}, time.Hour)
	cancel()

	select {
	case <-job.Done():
	case <-time.After(time.Second):
		require.Fail(t, "job not canceled")
	}
	_, err := job.Result()
	assert.ErrorIs(t, err, scheduler.ErrCanceled)
}
