// Package bot exposes the alarm to Slack.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/clambin/go-common/slackbot"
	"github.com/clambin/nest-alarm/internal/decision"
	"github.com/clambin/nest-alarm/internal/poller"
	"github.com/clambin/nest-alarm/internal/sensor"
	"github.com/slack-go/slack"
)

type Bot struct {
	checker Checker
	alarm   Alarm
	poller  poller.Poller
	logger  *slog.Logger
	lock    sync.RWMutex
	update  poller.Update
	updated bool
}

type SlackBot interface {
	Register(name string, command slackbot.CommandFunc)
}

type Checker interface {
	Check(ctx context.Context) (decision.Decision, error)
}

type Alarm interface {
	Pending() (time.Time, bool)
	Cancel()
}

func New(checker Checker, alarm Alarm, nestBot SlackBot, p poller.Poller, logger *slog.Logger) *Bot {
	b := Bot{
		checker: checker,
		alarm:   alarm,
		poller:  p,
		logger:  logger,
	}
	nestBot.Register("status", b.ReportStatus)
	nestBot.Register("check", b.DoCheck)
	nestBot.Register("alarm", b.ReportAlarm)
	nestBot.Register("refresh", b.DoRefresh)

	return &b
}

func (b *Bot) Run(ctx context.Context) error {
	b.logger.Debug("started")
	defer b.logger.Debug("stopped")

	ch := b.poller.Subscribe()
	defer b.poller.Unsubscribe(ch)
	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			b.lock.Lock()
			b.update = update
			b.updated = true
			b.lock.Unlock()
		}
	}
}

func (b *Bot) ReportStatus(_ context.Context, _ ...string) []slack.Attachment {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if !b.updated {
		return []slack.Attachment{{
			Color: "bad",
			Text:  "no updates yet. please check back later",
		}}
	}

	text := make([]string, 0, len(b.update.Thermostats)+len(b.update.Structures)+1)
	for _, t := range b.update.Thermostats {
		state := t.HVACState
		if t.IsUsingEmergencyHeat {
			state += ", emergency heat"
		}
		text = append(text, fmt.Sprintf("%s: %.0fºF (target: %.0fºF, mode: %s, %s)",
			t.Name, t.AmbientTemperatureF, t.TargetTemperatureF, t.HVACMode, state,
		))
	}
	for _, s := range b.update.Structures {
		text = append(text, s.Name+": "+s.Away)
	}
	slices.Sort(text)

	if b.update.MeasuredTemperatureF == sensor.Unavailable {
		text = append(text, "room: sensor unavailable")
	} else {
		text = append(text, fmt.Sprintf("room: %.1fºF", b.update.MeasuredTemperatureF))
	}

	return []slack.Attachment{{
		Color: "good",
		Title: "status:",
		Text:  strings.Join(text, "\n"),
	}}
}

func (b *Bot) DoCheck(ctx context.Context, _ ...string) []slack.Attachment {
	d, err := b.checker.Check(ctx)
	if err != nil {
		return []slack.Attachment{{
			Color: "bad",
			Text:  "check failed: " + err.Error(),
		}}
	}
	b.poller.Refresh()

	return []slack.Attachment{{
		Color: "good",
		Title: d.Kind.String(),
		Text:  d.String(),
	}}
}

func (b *Bot) ReportAlarm(_ context.Context, args ...string) []slack.Attachment {
	if len(args) > 0 {
		if args[0] != "cancel" {
			return []slack.Attachment{{
				Color: "bad",
				Text:  "invalid command\nUsage: alarm [cancel]",
			}}
		}
		b.alarm.Cancel()
		return []slack.Attachment{{
			Color: "good",
			Text:  "alarm check canceled",
		}}
	}

	due, ok := b.alarm.Pending()
	if !ok {
		return []slack.Attachment{{
			Text: "no alarm check scheduled",
		}}
	}
	return []slack.Attachment{{
		Color: "good",
		Text:  "next check at " + due.Format(time.DateTime) + " (in " + time.Until(due).Round(time.Minute).String() + ")",
	}}
}

func (b *Bot) DoRefresh(_ context.Context, _ ...string) []slack.Attachment {
	b.poller.Refresh()
	return []slack.Attachment{{
		Text: "refreshing thermostat data",
	}}
}
