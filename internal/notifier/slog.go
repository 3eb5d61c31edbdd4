package notifier

import (
	"log/slog"

	"github.com/clambin/nest-alarm/internal/decision"
)

type SLogNotifier struct {
	Logger *slog.Logger
}

var _ Notifier = &SLogNotifier{}

func (s SLogNotifier) Notify(thermostat string, d decision.Decision) {
	s.Logger.Info(buildMessage(thermostat, d), "reason", d.String())
}
