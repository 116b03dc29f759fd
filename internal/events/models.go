package events

import (
	"time"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
)

// Message is the wire form of a lifecycle event. Consumers treat it as a hint
// to poll, never as state.
type Message struct {
	ID       string    `json:"id" validate:"required,uuid"`
	PickupID string    `json:"pickupId" validate:"required"`
	From     string    `json:"from,omitempty"`
	To       string    `json:"to" validate:"required"`
	Actor    string    `json:"actor" validate:"required,oneof=customer partner"`
	At       time.Time `json:"at" validate:"required"`
	Source   string    `json:"source,omitempty"`
}

func EventToMessage(e entities.PickupEvent, source string) Message {
	return Message{
		ID:       e.ID,
		PickupID: e.PickupID,
		From:     e.From.String(),
		To:       e.To.String(),
		Actor:    string(e.Actor),
		At:       e.At.UTC(),
		Source:   source,
	}
}

func MessageToEvent(m Message) entities.PickupEvent {
	return entities.PickupEvent{
		ID:       m.ID,
		PickupID: m.PickupID,
		From:     entities.Status(m.From),
		To:       entities.Status(m.To),
		Actor:    entities.Role(m.Actor),
		At:       m.At,
	}
}
