package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &Publisher{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		writer: w,
		source: "agent-1",
	}

	at := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	e := entities.PickupEvent{
		ID:       "5f0c6c36-4b7e-4d0e-9a57-0b2f4e8d6c11",
		PickupID: "1717000000001",
		From:     entities.StatusAccepted,
		To:       entities.StatusInProcess,
		Actor:    entities.RolePartner,
		At:       at,
	}
	require.NoError(t, p.Publish(context.Background(), e))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "1717000000001", string(w.msgs[0].Key))

	var m Message
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &m))
	assert.Equal(t, "In-Process", m.To)
	assert.Equal(t, "agent-1", m.Source)
	assert.Equal(t, e, MessageToEvent(m))

	w.err = errors.New("leader not available")
	assert.ErrorContains(t, p.Publish(context.Background(), e), "leader not available")
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.Publish(context.Background(), entities.PickupEvent{}))
	assert.NoError(t, p.Close())
}
