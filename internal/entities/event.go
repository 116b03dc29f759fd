package entities

import "time"

// PickupEvent records one successful lifecycle write made by an agent.
type PickupEvent struct {
	ID       string
	PickupID string
	From     Status
	To       Status
	Actor    Role
	At       time.Time
}
