package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	mocks "github.com/DWARA-KESH/EpiCircleDemo/internal/handler/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type fakeReader struct {
	msgs      []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		return kafka.Message{}, context.Canceled
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeDLQ struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeDLQ) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeDLQ) Close() error { return nil }

const validEvent = `{"id":"5f0c6c36-4b7e-4d0e-9a57-0b2f4e8d6c11","pickupId":"1717000000001","from":"Pending","to":"Accepted","actor":"partner","at":"2025-06-01T10:30:00Z","source":"agent-2"}`

func TestKafkaHandler_Consume(t *testing.T) {
	testCases := []struct {
		name          string
		value         string
		dlqErr        error
		mockBehavior  func(r *mocks.MockPickupRefresher)
		wantDLQ       int
		wantCommitted int
	}{
		{
			name:  "event from another agent triggers refresh",
			value: validEvent,
			mockBehavior: func(r *mocks.MockPickupRefresher) {
				r.EXPECT().RefreshPickup("1717000000001").Return().Once()
			},
			wantCommitted: 1,
		},
		{
			name:          "own event is skipped",
			value:         `{"id":"5f0c6c36-4b7e-4d0e-9a57-0b2f4e8d6c11","pickupId":"1","to":"Accepted","actor":"partner","at":"2025-06-01T10:30:00Z","source":"agent-1"}`,
			mockBehavior:  func(*mocks.MockPickupRefresher) {},
			wantCommitted: 1,
		},
		{
			name:          "broken json goes to dlq",
			value:         `{"id":`,
			mockBehavior:  func(*mocks.MockPickupRefresher) {},
			wantDLQ:       1,
			wantCommitted: 1,
		},
		{
			name:          "unknown status goes to dlq",
			value:         `{"id":"5f0c6c36-4b7e-4d0e-9a57-0b2f4e8d6c11","pickupId":"1","to":"Cancelled","actor":"partner","at":"2025-06-01T10:30:00Z"}`,
			mockBehavior:  func(*mocks.MockPickupRefresher) {},
			wantDLQ:       1,
			wantCommitted: 1,
		},
		{
			name:          "missing pickup id goes to dlq",
			value:         `{"id":"5f0c6c36-4b7e-4d0e-9a57-0b2f4e8d6c11","to":"Accepted","actor":"partner","at":"2025-06-01T10:30:00Z"}`,
			mockBehavior:  func(*mocks.MockPickupRefresher) {},
			wantDLQ:       1,
			wantCommitted: 1,
		},
		{
			name:         "dlq failure leaves the message uncommitted",
			value:        `not json`,
			dlqErr:       errors.New("broker down"),
			mockBehavior: func(*mocks.MockPickupRefresher) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			refresher := mocks.NewMockPickupRefresher(t)
			tc.mockBehavior(refresher)

			reader := &fakeReader{msgs: []kafka.Message{{Topic: "pickup-events", Offset: 42, Value: []byte(tc.value)}}}
			dlq := &fakeDLQ{err: tc.dlqErr}

			h := &kafkaHandler{
				dlq:       dlq,
				reader:    reader,
				logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
				validate:  validator.New(),
				refresher: refresher,
				source:    "agent-1",
			}
			h.Consume(context.Background())

			assert.Len(t, dlq.msgs, tc.wantDLQ)
			assert.Len(t, reader.committed, tc.wantCommitted)
			for _, m := range dlq.msgs {
				assert.Equal(t, "pickup-events-dlq", m.Topic)
			}
		})
	}
}
