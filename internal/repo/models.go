package repo

import (
	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
)

type DraftItem struct {
	PickupID string  `db:"pickup_id"`
	Position int     `db:"position"`
	Name     string  `db:"name"`
	Qty      int     `db:"qty"`
	Price    float64 `db:"price"`
}

func DraftItemToEntity(d DraftItem) entities.Item {
	return entities.Item{
		Name:  d.Name,
		Qty:   d.Qty,
		Price: d.Price,
	}
}
