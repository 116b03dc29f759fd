package pickupapi

import (
	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
)

// Pickup is the record exchanged with the /pickups collaborator.
type Pickup struct {
	ID          string   `json:"id" validate:"required"`
	Phone       string   `json:"phone" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	DisplayDate string   `json:"displayDate,omitempty"`
	TimeSlot    string   `json:"timeSlot" validate:"required"`
	Address     string   `json:"address" validate:"required"`
	MapLink     string   `json:"mapLink"`
	PickupCode  string   `json:"pickupCode,omitempty" validate:"omitempty,len=6,number"`
	Status      string   `json:"status" validate:"required,oneof=Pending Accepted In-Process 'Pending for Approval' Completed"`
	Items       []Item   `json:"items,omitempty" validate:"omitempty,dive"`
	TotalAmount *float64 `json:"totalAmount,omitempty" validate:"omitempty,gte=0"`
}

type Item struct {
	Name  string  `json:"name" validate:"required"`
	Qty   int     `json:"qty" validate:"gt=0"`
	Price float64 `json:"price" validate:"gt=0"`
}

// Patch is the partial body of PATCH /pickups/{id}.
type Patch struct {
	Status      string   `json:"status,omitempty"`
	PickupCode  *string  `json:"pickupCode,omitempty"`
	Items       []Item   `json:"items,omitempty"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`
}

func ItemEntityToJSON(i entities.Item) Item {
	return Item{
		Name:  i.Name,
		Qty:   i.Qty,
		Price: i.Price,
	}
}

func ItemJSONToEntity(i Item) entities.Item {
	return entities.Item{
		Name:  i.Name,
		Qty:   i.Qty,
		Price: i.Price,
	}
}

func itemsEntityToJSON(items []entities.Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, ItemEntityToJSON(it))
	}
	return out
}

func itemsJSONToEntity(items []Item) []entities.Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.Item, 0, len(items))
	for _, it := range items {
		out = append(out, ItemJSONToEntity(it))
	}
	return out
}

func PickupEntityToJSON(p entities.Pickup) Pickup {
	return Pickup{
		ID:          p.ID,
		Phone:       p.Phone,
		Date:        p.Date,
		DisplayDate: p.DisplayDate,
		TimeSlot:    p.TimeSlot,
		Address:     p.Address,
		MapLink:     p.MapLink,
		PickupCode:  p.PickupCode,
		Status:      string(p.Status),
		Items:       itemsEntityToJSON(p.Items),
		TotalAmount: p.TotalAmount,
	}
}

func PickupJSONToEntity(p Pickup) entities.Pickup {
	return entities.Pickup{
		ID:          p.ID,
		Phone:       p.Phone,
		Date:        p.Date,
		DisplayDate: p.DisplayDate,
		TimeSlot:    p.TimeSlot,
		Address:     p.Address,
		MapLink:     p.MapLink,
		PickupCode:  p.PickupCode,
		Status:      entities.Status(p.Status),
		Items:       itemsJSONToEntity(p.Items),
		TotalAmount: p.TotalAmount,
	}
}

func PatchEntityToJSON(p entities.PickupPatch) Patch {
	return Patch{
		Status:      string(p.Status),
		PickupCode:  p.PickupCode,
		Items:       itemsEntityToJSON(p.Items),
		TotalAmount: p.TotalAmount,
	}
}

func PatchJSONToEntity(p Patch) entities.PickupPatch {
	return entities.PickupPatch{
		Status:      entities.Status(p.Status),
		PickupCode:  p.PickupCode,
		Items:       itemsJSONToEntity(p.Items),
		TotalAmount: p.TotalAmount,
	}
}
