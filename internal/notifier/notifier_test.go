package notifier_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/clambin/nest-alarm/internal/decision"
	"github.com/clambin/nest-alarm/internal/notifier"
	"github.com/clambin/nest-alarm/internal/notifier/mocks"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifiers_Notify(t *testing.T) {
	var testCases = []struct {
		name     string
		decision decision.Decision
		color    string
		title    string
		text     string
		log      string
	}{
		{
			name:     "set target",
			decision: decision.Decision{Kind: decision.SetTarget, Value: 66},
			color:    "good",
			title:    "Upstairs: set target",
			text:     "setting target temperature to 66ºF",
			log:      `level=INFO msg="Upstairs: set target" reason="setting target temperature to 66ºF"` + "\n",
		},
		{
			name:     "no action",
			decision: decision.Decision{Kind: decision.NoOp, Reason: decision.HVACOn},
			color:    "warning",
			title:    "Upstairs: no action",
			text:     "hvac is currently on",
			log:      `level=INFO msg="Upstairs: no action" reason="hvac is currently on"` + "\n",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			s := mocks.NewSlackSender(t)
			l := notifier.Notifiers{
				&notifier.SLogNotifier{Logger: slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{ReplaceAttr: dropTime}))},
				&notifier.SlackNotifier{Slack: s, Channel: "alarm"},
			}

			s.EXPECT().Send("alarm", mock.AnythingOfType("[]slack.Attachment")).RunAndReturn(func(_ string, attachments []slack.Attachment) error {
				require.Len(t, attachments, 1)
				assert.Equal(t, tt.color, attachments[0].Color)
				assert.Equal(t, tt.title, attachments[0].Title)
				assert.Equal(t, tt.text, attachments[0].Text)
				return nil
			}).Once()

			l.Notify("Upstairs", tt.decision)
			assert.Equal(t, tt.log, out.String())
		})
	}
}

func TestSlackNotifier_Failure(t *testing.T) {
	s := mocks.NewSlackSender(t)
	s.EXPECT().Send("", mock.Anything).Return(errors.New("fail")).Once()
	n := notifier.SlackNotifier{Slack: s, Logger: slog.New(slog.DiscardHandler)}
	n.Notify("Upstairs", decision.Decision{Kind: decision.SetTarget, Value: 66})
}

func TestMQTTNotifier_Notify(t *testing.T) {
	c := fakeMQTTClient{}
	n := notifier.MQTTNotifier{Client: &c, Topic: "nest/alarm", Logger: slog.New(slog.DiscardHandler)}

	n.Notify("Upstairs", decision.Decision{Kind: decision.SetTarget, Value: 66})
	n.Notify("Upstairs", decision.Decision{Kind: decision.NoOp, Reason: decision.StructureAway})

	require.Len(t, c.messages, 2)
	assert.Equal(t, "nest/alarm", c.topic)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(c.messages[0], &msg))
	assert.Equal(t, "Upstairs", msg["thermostat"])
	assert.Equal(t, "set target", msg["decision"])
	assert.Equal(t, 66.0, msg["target"])
	assert.NotContains(t, msg, "reason")

	msg = nil
	require.NoError(t, json.Unmarshal(c.messages[1], &msg))
	assert.Equal(t, "no action", msg["decision"])
	assert.Equal(t, "structure_away", msg["reason"])
	assert.NotContains(t, msg, "target")
}

func TestMQTTNotifier_Failure(t *testing.T) {
	c := fakeMQTTClient{err: errors.New("not connected")}
	var out bytes.Buffer
	n := notifier.MQTTNotifier{Client: &c, Topic: "nest/alarm", Logger: slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{ReplaceAttr: dropTime}))}

	n.Notify("Upstairs", decision.Decision{Kind: decision.SetTarget, Value: 66})
	assert.Equal(t, `level=ERROR msg="failed to publish mqtt message" topic=nest/alarm err="not connected"`+"\n", out.String())
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

type fakeMQTTClient struct {
	lock     sync.Mutex
	topic    string
	messages [][]byte
	err      error
}

func (f *fakeMQTTClient) Publish(topic string, _ byte, _ bool, payload any) mqtt.Token {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.topic = topic
	f.messages = append(f.messages, payload.([]byte))
	return fakeToken{err: f.err}
}

var _ mqtt.Token = fakeToken{}

type fakeToken struct {
	err error
}

func (f fakeToken) Wait() bool { return true }
func (f fakeToken) WaitTimeout(_ time.Duration) bool { return true }
func (f fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (f fakeToken) Error() error { return f.err }
