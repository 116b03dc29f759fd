package entities

import (
	"bytes"
	"encoding/gob"
)

type Status string

const (
	StatusPending            Status = "Pending"
	StatusAccepted           Status = "Accepted"
	StatusInProcess          Status = "In-Process"
	StatusPendingForApproval Status = "Pending for Approval"
	StatusCompleted          Status = "Completed"
)

// statusOrder is the only direction a pickup may move in.
var statusOrder = []Status{
	StatusPending,
	StatusAccepted,
	StatusInProcess,
	StatusPendingForApproval,
	StatusCompleted,
}

func (s Status) Valid() bool {
	return s.Rank() >= 0
}

// Rank returns the position of s in the lifecycle, or -1 for an unknown status.
func (s Status) Rank() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Status) String() string {
	return string(s)
}

type Item struct {
	Name  string
	Qty   int
	Price float64
}

func (i Item) Amount() float64 {
	return float64(i.Qty) * i.Price
}

type Pickup struct {
	ID          string
	Phone       string
	Date        string
	DisplayDate string
	TimeSlot    string
	Address     string
	MapLink     string
	Status      Status

	// пусто до Accepted
	PickupCode string

	// заполняются вместе при отправке на согласование
	Items       []Item
	TotalAmount *float64
}

// PickupPatch is the partial body of a merge update. Nil fields are left untouched.
type PickupPatch struct {
	Status      Status
	PickupCode  *string
	Items       []Item
	TotalAmount *float64
}

// Apply merges the patch into a copy of p.
func (p Pickup) Apply(patch PickupPatch) Pickup {
	if patch.Status != "" {
		p.Status = patch.Status
	}
	if patch.PickupCode != nil {
		p.PickupCode = *patch.PickupCode
	}
	if patch.Items != nil {
		p.Items = append([]Item(nil), patch.Items...)
	}
	if patch.TotalAmount != nil {
		total := *patch.TotalAmount
		p.TotalAmount = &total
	}
	return p
}

func (p *Pickup) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Pickup) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(p)
}

// Pickups is a list snapshot as stored in the cache.
type Pickups []Pickup

func (ps Pickups) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(ps); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (ps *Pickups) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(ps)
}

func Float(v float64) *float64 {
	return &v
}

func String(v string) *string {
	return &v
}

func init() {
	gob.Register(Pickup{})
	gob.Register(Item{})
}

// PickupDetail is what a partner sees for one pickup: the cached record plus the
// working item list that has not been submitted yet.
type PickupDetail struct {
	Pickup
	WorkingItems []Item
	WorkingTotal float64
	Watched      bool
}
