package notifier

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/clambin/nest-alarm/internal/decision"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTPublisher is the part of mqtt.Client used by MQTTNotifier.
type MQTTPublisher interface {
	Publish(topic string, qos byte, retained bool, payload any) mqtt.Token
}

// MQTTNotifier publishes each decision as a JSON message on Topic.
type MQTTNotifier struct {
	Client  MQTTPublisher
	Topic   string
	Timeout time.Duration
	Logger  *slog.Logger
}

var _ Notifier = &MQTTNotifier{}

type mqttMessage struct {
	Thermostat string    `json:"thermostat"`
	Decision   string    `json:"decision"`
	Target     float64   `json:"target,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func (m *MQTTNotifier) Notify(thermostat string, d decision.Decision) {
	msg := mqttMessage{
		Thermostat: thermostat,
		Decision:   d.Kind.String(),
		Timestamp:  time.Now(),
	}
	if d.IsChange() {
		msg.Target = d.Value
	} else {
		msg.Reason = d.Reason.Label()
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		m.Logger.Error("failed to encode mqtt message", "err", err)
		return
	}

	timeout := m.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	token := m.Client.Publish(m.Topic, 1, false, payload)
	if !token.WaitTimeout(timeout) {
		m.Logger.Error("timeout publishing mqtt message", "topic", m.Topic)
		return
	}
	if err = token.Error(); err != nil {
		m.Logger.Error("failed to publish mqtt message", "topic", m.Topic, "err", err)
	}
}
