package poller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/clambin/nest-alarm/internal/nest"
	"github.com/clambin/nest-alarm/internal/thermostat"
	"github.com/clambin/nest-alarm/pkg/pubsub"
)

type Poller interface {
	Subscribe() <-chan Update
	Unsubscribe(ch <-chan Update)
	Refresh()
}

type SnapshotGetter interface {
	GetSnapshot(ctx context.Context) (thermostat.Snapshot, error)
}

type SensorReader interface {
	Read() float64
}

var _ Poller = &ThermostatPoller{}

// ThermostatPoller periodically reads the thermostat snapshot and the local sensor and publishes the result to its subscribers.
type ThermostatPoller struct {
	Client SnapshotGetter
	Sensor SensorReader
	*pubsub.Publisher[Update]
	interval time.Duration
	logger   *slog.Logger
	refresh  chan struct{}
}

func New(client SnapshotGetter, sensor SensorReader, interval time.Duration, logger *slog.Logger) *ThermostatPoller {
	return &ThermostatPoller{
		Client:    client,
		Sensor:    sensor,
		Publisher: pubsub.New[Update](logger.With(slog.String("component", "publisher"))),
		interval:  interval,
		logger:    logger,
		refresh:   make(chan struct{}, 1),
	}
}

func (p *ThermostatPoller) Run(ctx context.Context) error {
	p.logger.Debug("started", slog.Duration("interval", p.interval))
	defer p.logger.Debug("stopped")

	timer := time.NewTicker(p.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		case <-p.refresh:
		}

		if err := p.poll(ctx); err != nil {
			if errors.Is(err, nest.ErrNoToken) {
				p.logger.Warn("token not set. please log in")
				continue
			}
			p.logger.Error("failed to get thermostat data", slog.Any("err", err))
		}
	}
}

// Refresh requests an immediate poll. It does not block: if a refresh is already pending, the request is dropped.
func (p *ThermostatPoller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

func (p *ThermostatPoller) poll(ctx context.Context) error {
	start := time.Now()
	snapshot, err := p.Client.GetSnapshot(ctx)
	if err != nil {
		return err
	}
	update := Update{
		Snapshot:             snapshot,
		MeasuredTemperatureF: p.Sensor.Read(),
		Timestamp:            start,
	}
	p.Publisher.Publish(update)
	p.logger.Debug("poll completed", slog.Duration("duration", time.Since(start)), slog.Any("update", update))
	return nil
}
