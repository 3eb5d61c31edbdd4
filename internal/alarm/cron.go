package alarm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Cron runs a check on a fixed, cron-style schedule (e.g. "30 6 * * 1-5"), independent of any alarm.
type Cron struct {
	Checker  Checker
	Schedule string
	Logger   *slog.Logger
}

func (c *Cron) Run(ctx context.Context) error {
	c.Logger.Debug("started", "schedule", c.Schedule)
	defer c.Logger.Debug("stopped")

	cr := cron.New(cron.WithLogger(cronLogger{logger: c.Logger}))
	if _, err := cr.AddFunc(c.Schedule, func() { c.check(ctx) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", c.Schedule, err)
	}
	cr.Start()
	<-ctx.Done()
	<-cr.Stop().Done()
	return nil
}

func (c *Cron) check(ctx context.Context) {
	d, err := c.Checker.Check(ctx)
	if err != nil {
		c.Logger.Error("scheduled check failed", "err", err)
		return
	}
	c.Logger.Info("scheduled check completed", "decision", d)
}

// cronLogger sends cron's log output to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "err", err)...)
}
