package notifier

import (
	"log/slog"

	"github.com/clambin/nest-alarm/internal/decision"
	"github.com/slack-go/slack"
)

type SlackNotifier struct {
	Slack   SlackSender
	Channel string
	Logger  *slog.Logger
}

type SlackSender interface {
	Send(channel string, attachments []slack.Attachment) error
}

var _ Notifier = &SlackNotifier{}

func (s *SlackNotifier) Notify(thermostat string, d decision.Decision) {
	color := "good"
	if !d.IsChange() {
		color = "warning"
	}
	err := s.Slack.Send(s.Channel, []slack.Attachment{{
		Color: color,
		Title: buildMessage(thermostat, d),
		Text:  d.String(),
	}})
	if err != nil && s.Logger != nil {
		s.Logger.Error("failed to send slack notification", "err", err)
	}
}
