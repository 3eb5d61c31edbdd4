// Package alarm schedules a decision cycle ahead of a wake-up alarm.
package alarm

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/clambin/nest-alarm/internal/decision"
	"github.com/clambin/nest-alarm/pkg/scheduler"
)

// A Checker performs a decision cycle.
type Checker interface {
	Check(ctx context.Context) (decision.Decision, error)
}

// Scheduler runs a check LeadTime before an alarm goes off. At most one check is pending at any time:
// scheduling a new check cancels the previous one.
type Scheduler struct {
	Checker  Checker
	LeadTime time.Duration
	logger   *slog.Logger
	ctx      context.Context
	job      *scheduler.Job
	lock     sync.Mutex
}

func NewScheduler(checker Checker, leadTime time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		Checker:  checker,
		LeadTime: leadTime,
		logger:   logger,
		ctx:      context.Background(),
	}
}

// Run ties the lifetime of scheduled checks to ctx. When ctx is canceled, any pending check is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Debug("started")
	defer s.logger.Debug("stopped")

	s.lock.Lock()
	s.ctx = ctx
	s.lock.Unlock()

	<-ctx.Done()
	s.Cancel()
	return nil
}

// Schedule cancels any pending check and schedules a new one, LeadTime before alarm. If that moment has already
// passed, the check runs immediately. Schedule returns how long until the check runs.
func (s *Scheduler) Schedule(alarm time.Time) time.Duration {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.cancel()
	delay := max(time.Until(alarm.Add(-s.LeadTime)), 0)
	s.job = scheduler.Schedule(s.ctx, scheduler.TaskFunc(s.check), delay)
	s.logger.Info("alarm set", "alarm", alarm, "check", s.job.Due(), "delay", delay)
	return delay
}

// Cancel cancels the pending check, if any.
func (s *Scheduler) Cancel() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.cancel()
}

func (s *Scheduler) cancel() {
	if s.job == nil {
		return
	}
	if s.job.Cancel() {
		s.logger.Info("alarm canceled", "check", s.job.Due())
	}
	s.job = nil
}

// Pending returns when the pending check is due, if there is one.
func (s *Scheduler) Pending() (time.Time, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.job == nil {
		return time.Time{}, false
	}
	if done, _ := s.job.Result(); done {
		return time.Time{}, false
	}
	return s.job.Due(), true
}

func (s *Scheduler) check(ctx context.Context) error {
	d, err := s.Checker.Check(ctx)
	if err != nil {
		s.logger.Error("alarm check failed", "err", err)
		return err
	}
	s.logger.Info("alarm check completed", "decision", d)
	return nil
}
