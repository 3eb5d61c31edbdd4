// Package app builds the alarm's components from its configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/clambin/go-common/slackbot"
	"github.com/clambin/nest-alarm/internal/alarm"
	"github.com/clambin/nest-alarm/internal/bot"
	"github.com/clambin/nest-alarm/internal/collector"
	"github.com/clambin/nest-alarm/internal/controller"
	"github.com/clambin/nest-alarm/internal/health"
	"github.com/clambin/nest-alarm/internal/nest"
	"github.com/clambin/nest-alarm/internal/notifier"
	"github.com/clambin/nest-alarm/internal/poller"
	"github.com/clambin/nest-alarm/internal/sensor"
	"github.com/clambin/nest-alarm/internal/server"
	"github.com/clambin/nest-alarm/internal/store"
	"github.com/clambin/nest-alarm/internal/tadotools"
	"github.com/clambin/nest-alarm/internal/thermostat"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// A Task is a long-running component.
type Task interface {
	Run(ctx context.Context) error
}

// App runs all tasks until the context is canceled, or one of the tasks fails.
type App struct {
	tasks []Task
}

func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, task := range a.tasks {
		g.Go(func() error { return task.Run(ctx) })
	}
	return g.Wait()
}

// Components holds the components shared by all commands.
type Components struct {
	Store      *store.Store
	Client     thermostat.Client
	Sensor     sensor.Sensor
	Controller *controller.Controller
}

// NewComponents opens the store and creates the thermostat client, the sensor and the controller.
func NewComponents(cfg *viper.Viper, n controller.Notifier, registry prometheus.Registerer, logger *slog.Logger) (Components, error) {
	var c Components
	var err error
	if c.Store, err = store.Open(cfg.GetString("store.path")); err != nil {
		return c, err
	}
	if err = c.Store.Set(store.KeySensorPath, cfg.GetString("sensor.path")); err != nil {
		return c, err
	}
	if c.Client, err = NewThermostatClient(cfg, c.Store, registry); err != nil {
		return c, err
	}
	c.Sensor = sensor.Sensor{Paths: c.Store, Key: store.KeySensorPath, Logger: logger.With("component", "sensor")}
	c.Controller = controller.New(
		c.Sensor,
		c.Client,
		n,
		cfg.GetString("thermostat.name"),
		cfg.GetBool("controller.dryRun"),
		logger.With("component", "controller"),
	)
	if registry != nil {
		registry.MustRegister(c.Controller)
	}
	return c, nil
}

// NewThermostatClient returns the thermostat.Client for the configured provider.
func NewThermostatClient(cfg *viper.Viper, tokens nest.TokenSource, registry prometheus.Registerer) (thermostat.Client, error) {
	switch provider := cfg.GetString("thermostat.provider"); provider {
	case "nest":
		metrics := nest.NewRequestMetrics("nest", "api")
		if registry != nil {
			registry.MustRegister(metrics)
		}
		return nest.New(cfg.GetString("nest.url"), tokens, nest.InstrumentedRoundTripper(nil, metrics)), nil
	case "tado":
		metrics := tadotools.NewRequestMetrics("tado", "api")
		if registry != nil {
			registry.MustRegister(metrics)
		}
		api, err := tadotools.GetInstrumentedTadoClient(
			cfg.GetString("tado.username"),
			cfg.GetString("tado.password"),
			cfg.GetString("tado.clientSecret"),
			metrics,
		)
		if err != nil {
			return nil, err
		}
		return tadotools.New(api), nil
	default:
		return nil, fmt.Errorf("invalid thermostat provider: %q", provider)
	}
}

// New creates the App with all components required by the configuration. Metrics are registered with registry
// and the Prometheus exporter serves the metrics of gatherer.
func New(cfg *viper.Viper, version string, registry prometheus.Registerer, gatherer prometheus.Gatherer, logger *slog.Logger) (*App, error) {
	var tasks []Task
	var notifiers notifier.Notifiers
	notifiers = append(notifiers, &notifier.SLogNotifier{Logger: logger.With("component", "notifier")})

	// Slack
	var b *slackbot.SlackBot
	if token := cfg.GetString("slack.token"); token != "" {
		b = slackbot.New(
			token,
			slackbot.WithName("nestAlarm "+version),
			slackbot.WithLogger(logger.With(slog.String("component", "slackbot"))),
		)
		tasks = append(tasks, b)
		if channel := cfg.GetString("slack.channel"); channel != "" {
			notifiers = append(notifiers, &notifier.SlackNotifier{Slack: b, Channel: channel, Logger: logger.With("component", "notifier")})
		}
	}

	// MQTT
	if broker := cfg.GetString("mqtt.broker"); broker != "" {
		client := mqtt.NewClient(mqtt.NewClientOptions().
			AddBroker(broker).
			SetClientID(cfg.GetString("mqtt.clientID")).
			SetAutoReconnect(true).
			SetConnectRetry(true),
		)
		tasks = append(tasks, &mqttConnection{client: client, logger: logger.With("component", "mqtt")})
		notifiers = append(notifiers, &notifier.MQTTNotifier{Client: client, Topic: cfg.GetString("mqtt.topic"), Logger: logger.With("component", "mqtt")})
	}

	c, err := NewComponents(cfg, notifiers, registry, logger)
	if err != nil {
		return nil, err
	}

	// Poller
	p := poller.New(c.Client, c.Sensor, cfg.GetDuration("poller.interval"), logger.With("component", "poller"))
	tasks = append(tasks, p)

	// Collector
	coll := &collector.Collector{Poller: p, Logger: logger.With("component", "collector")}
	if registry != nil {
		registry.MustRegister(coll)
	}
	tasks = append(tasks, coll)

	// Prometheus Server
	tasks = append(tasks, server.HTTPServer{Addr: cfg.GetString("exporter.addr"), Handler: exporterHandler(gatherer), Logger: logger.With("component", "exporter")})

	// Health Endpoint
	h := health.New(p, logger.With("component", "health"))
	tasks = append(tasks, h)

	// Alarm
	a := alarm.NewScheduler(c.Controller, cfg.GetDuration("alarm.leadTime"), logger.With("component", "alarm"))
	tasks = append(tasks, a)
	if schedule := cfg.GetString("controller.schedule"); schedule != "" {
		tasks = append(tasks, &alarm.Cron{Checker: c.Controller, Schedule: schedule, Logger: logger.With("component", "cron")})
	}

	// HTTP Server
	s := server.Server{
		Alarm:     a,
		Tokens:    c.Store,
		Refresher: p,
		Health:    h,
		StaticDir: cfg.GetString("server.static"),
		Logger:    logger.With("component", "server"),
	}
	if clientID := cfg.GetString("nest.clientID"); clientID != "" && cfg.GetString("thermostat.provider") == "nest" {
		s.OAuth = nest.OAuthConfig(clientID, cfg.GetString("nest.clientSecret"), cfg.GetString("nest.redirectURL"))
	}
	tasks = append(tasks, server.HTTPServer{Addr: cfg.GetString("server.addr"), Handler: s.Handler(), Logger: logger.With("component", "server")})

	// Bot
	if b != nil {
		tasks = append(tasks, bot.New(c.Controller, a, b, p, logger.With(slog.String("component", "nestbot"))))
	}

	return &App{tasks: tasks}, nil
}

func exporterHandler(gatherer prometheus.Gatherer) http.Handler {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return m
}

// mqttConnection connects to the MQTT broker and disconnects when the context is canceled.
type mqttConnection struct {
	client mqtt.Client
	logger *slog.Logger
}

func (m *mqttConnection) Run(ctx context.Context) error {
	m.logger.Debug("started")
	defer m.logger.Debug("stopped")

	// with ConnectRetry set, Connect keeps retrying in the background until the broker is available.
	token := m.client.Connect()
	select {
	case <-ctx.Done():
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("mqtt: %w", err)
		}
		<-ctx.Done()
	}
	m.client.Disconnect(uint(time.Second.Milliseconds()))
	return nil
}
