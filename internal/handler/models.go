package handler

import (
	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/lifecycle"
)

type CreatePickupRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot string `json:"timeSlot" validate:"required"`
	Address  string `json:"address" validate:"required"`
	MapLink  string `json:"mapLink,omitempty" validate:"omitempty,url"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

type ItemRequest struct {
	Name  string  `json:"name" validate:"required"`
	Qty   int     `json:"qty" validate:"required,gt=0"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

type Item struct {
	Name   string  `json:"name"`
	Qty    int     `json:"qty"`
	Price  float64 `json:"price"`
	Amount float64 `json:"amount"`
}

// Pickup is the local API view of a pickup. The code and the frozen items are
// only filled in where the caller's role may see them.
type Pickup struct {
	ID          string   `json:"id"`
	Phone       string   `json:"phone"`
	Date        string   `json:"date"`
	DisplayDate string   `json:"displayDate"`
	TimeSlot    string   `json:"timeSlot"`
	Address     string   `json:"address"`
	MapLink     string   `json:"mapLink,omitempty"`
	Status      string   `json:"status"`
	PickupCode  string   `json:"pickupCode,omitempty"`
	Items       []Item   `json:"items,omitempty"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`
}

type PickupDetail struct {
	Pickup
	WorkingItems []Item  `json:"workingItems"`
	WorkingTotal float64 `json:"workingTotal"`
	Watched      bool    `json:"watched"`
}

func CreateRequestToLifecycle(r CreatePickupRequest) lifecycle.CreateRequest {
	return lifecycle.CreateRequest{
		Date:     r.Date,
		TimeSlot: r.TimeSlot,
		Address:  r.Address,
		MapLink:  r.MapLink,
	}
}

func ItemRequestToEntity(r ItemRequest) entities.Item {
	return entities.Item{Name: r.Name, Qty: r.Qty, Price: r.Price}
}

func ItemEntityToJSON(i entities.Item) Item {
	return Item{Name: i.Name, Qty: i.Qty, Price: i.Price, Amount: i.Amount()}
}

func itemsEntityToJSON(items []entities.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, i := range items {
		out = append(out, ItemEntityToJSON(i))
	}
	return out
}

func pickupEntityToJSON(p entities.Pickup) Pickup {
	return Pickup{
		ID:          p.ID,
		Phone:       p.Phone,
		Date:        p.Date,
		DisplayDate: p.DisplayDate,
		TimeSlot:    p.TimeSlot,
		Address:     p.Address,
		MapLink:     p.MapLink,
		Status:      p.Status.String(),
	}
}

// CustomerPickupToJSON shows the code only while the customer has to read it
// out to the partner, and the items once they were submitted.
func CustomerPickupToJSON(p entities.Pickup) Pickup {
	out := pickupEntityToJSON(p)
	if p.Status == entities.StatusAccepted {
		out.PickupCode = p.PickupCode
	}
	if p.Status.Rank() >= entities.StatusPendingForApproval.Rank() {
		out.Items = itemsEntityToJSON(p.Items)
		out.TotalAmount = p.TotalAmount
	}
	return out
}

// PartnerPickupToJSON never carries the code: the partner has to get it from the customer.
func PartnerPickupToJSON(p entities.Pickup) Pickup {
	out := pickupEntityToJSON(p)
	if len(p.Items) > 0 {
		out.Items = itemsEntityToJSON(p.Items)
	}
	out.TotalAmount = p.TotalAmount
	return out
}

func PartnerDetailToJSON(d entities.PickupDetail) PickupDetail {
	return PickupDetail{
		Pickup:       PartnerPickupToJSON(d.Pickup),
		WorkingItems: itemsEntityToJSON(d.WorkingItems),
		WorkingTotal: d.WorkingTotal,
		Watched:      d.Watched,
	}
}

func CustomerPickupsToJSON(ps []entities.Pickup) []Pickup {
	out := make([]Pickup, 0, len(ps))
	for _, p := range ps {
		out = append(out, CustomerPickupToJSON(p))
	}
	return out
}

func PartnerPickupsToJSON(ps []entities.Pickup) []Pickup {
	out := make([]Pickup, 0, len(ps))
	for _, p := range ps {
		out = append(out, PartnerPickupToJSON(p))
	}
	return out
}
