// Package events publishes pickup lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/config"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

var eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pickup_agent",
	Subsystem: "kafka_producer",
	Name:      "events_published_total",
	Help:      "Lifecycle events handed to Kafka by result.",
}, []string{"result"})

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	logger *slog.Logger
	writer messageWriter
	source string
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("service", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
			RequiredAcks: kafka.RequireOne,
		},
		source: cfg.GroupID,
	}
}

// Publish writes e keyed by pickup id, so events of one pickup stay ordered.
func (p *Publisher) Publish(ctx context.Context, e entities.PickupEvent) error {
	data, err := json.Marshal(EventToMessage(e, p.source))
	if err != nil {
		eventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(e.PickupID), Value: data}); err != nil {
		eventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to write event: %w", err)
	}

	eventsPublished.WithLabelValues("ok").Inc()
	p.logger.DebugContext(ctx, "event published", slog.String("pickup_id", e.PickupID), slog.String("to", e.To.String()))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when Kafka is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, entities.PickupEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
