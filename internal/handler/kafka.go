package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/config"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/events"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type PickupRefresher interface {
	RefreshPickup(id string)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaHandler turns lifecycle events from other agents into immediate polls.
type kafkaHandler struct {
	dlq       messageWriter
	reader    messageReader
	logger    *slog.Logger
	validate  *validator.Validate
	refresher PickupRefresher
	source    string
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, refresher PickupRefresher) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate:  validator.New(),
		refresher: refresher,
		source:    cfg.GroupID,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleEvent(m); err != nil {
			h.logger.Warn("malformed event", slog.Any("error", err), slog.Int64("offset", m.Offset))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleEvent(m kafka.Message) error {
	var msg events.Message
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid event data: %w", err)
	}
	e := events.MessageToEvent(msg)
	if !e.To.Valid() {
		return fmt.Errorf("invalid event data: unknown status %q", msg.To)
	}

	// our own writes are already in the cache
	if msg.Source != "" && msg.Source == h.source {
		eventsSkipped.Inc()
		return nil
	}

	h.refresher.RefreshPickup(e.PickupID)
	eventsProcessed.Inc()
	h.logger.Debug("event received", slog.String("pickup_id", e.PickupID), slog.String("to", e.To.String()))
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}

