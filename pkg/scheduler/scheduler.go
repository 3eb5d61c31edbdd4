// Package scheduler runs a Task once, after a delay. A scheduled Job can be canceled until it starts running.
package scheduler

import (
	"context"
	"sync"
	"time"
)

// Schedule runs task after waitTime has passed. If waitTime is zero or negative, task runs immediately.
// Canceling ctx cancels the job.
func Schedule(ctx context.Context, task Task, waitTime time.Duration) *Job {
	waitTime = max(waitTime, 0)
	ctx2, cancel := context.WithCancel(ctx)
	j := &Job{
		task:   task,
		state:  stateScheduled,
		due:    time.Now().Add(waitTime),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go j.run(ctx2, waitTime)

	return j
}

// A Task is the work performed by a Job.
type Task interface {
	Run(ctx context.Context) error
}

// TaskFunc is an adapter to use an ordinary function as a Task.
type TaskFunc func(ctx context.Context) error

func (f TaskFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Job is a scheduled Task.
type Job struct {
	task   Task
	state  state
	due    time.Time
	cancel context.CancelFunc
	done   chan struct{}
	err    error
	lock   sync.RWMutex
}

func (j *Job) run(ctx context.Context, waitTime time.Duration) {
	defer close(j.done)
	timer := time.NewTimer(waitTime)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		j.setState(stateCanceled, ErrCanceled)
	case <-timer.C:
		if !j.start() {
			return
		}
		err := j.task.Run(ctx)
		s := stateCompleted
		if err != nil {
			s = stateFailed
			err = &errFailed{err: err}
		}
		j.setState(s, err)
	}
}

// Cancel cancels the job and reports whether it did. Cancel has no effect once the job has started running.
func (j *Job) Cancel() bool {
	j.lock.Lock()
	defer j.lock.Unlock()
	if j.state != stateScheduled {
		return false
	}
	j.state = stateCanceled
	j.err = ErrCanceled
	j.cancel()
	return true
}

// Due returns the time the job is scheduled to run.
func (j *Job) Due() time.Time {
	return j.due
}

// Done returns a channel that is closed once the job has completed, failed or has been canceled.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Result returns whether the job is done and, if so, its outcome. The error is ErrCanceled for a canceled job,
// or wraps the task's error (and matches ErrFailed) for a failed job.
func (j *Job) Result() (bool, error) {
	j.lock.RLock()
	defer j.lock.RUnlock()
	if !j.state.done() {
		return false, nil
	}
	return true, j.err
}

func (j *Job) start() bool {
	j.lock.Lock()
	defer j.lock.Unlock()
	if j.state != stateScheduled {
		return false
	}
	j.state = stateRunning
	return true
}

func (j *Job) setState(state state, err error) {
	j.lock.Lock()
	defer j.lock.Unlock()
	if j.state.done() {
		return
	}
	j.state = state
	j.err = err
}

type state int

const (
	stateScheduled state = iota
	stateRunning
	stateCanceled
	stateCompleted
	stateFailed
)

func (s state) done() bool {
	return s == stateCompleted || s == stateFailed || s == stateCanceled
}
