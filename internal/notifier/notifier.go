// Package notifier reports the decisions taken by the controller.
package notifier

import "github.com/clambin/nest-alarm/internal/decision"

type Notifier interface {
	Notify(thermostat string, d decision.Decision)
}

type Notifiers []Notifier

func (n Notifiers) Notify(thermostat string, d decision.Decision) {
	for _, l := range n {
		l.Notify(thermostat, d)
	}
}

func buildMessage(thermostat string, d decision.Decision) string {
	return thermostat + ": " + d.Kind.String()
}
