package lifecycle

import "github.com/DWARA-KESH/EpiCircleDemo/internal/entities"

// WorkingList is the partner's not yet submitted item list.
type WorkingList struct {
	items []entities.Item
}

func NewWorkingList(items []entities.Item) *WorkingList {
	return &WorkingList{items: append([]entities.Item(nil), items...)}
}

func (w *WorkingList) Add(it entities.Item) error {
	if err := ValidateItem(it); err != nil {
		return err
	}
	w.items = append(w.items, it)
	return nil
}

func (w *WorkingList) Remove(index int) error {
	if index < 0 || index >= len(w.items) {
		return entities.ErrItemIndex
	}
	w.items = append(w.items[:index], w.items[index+1:]...)
	return nil
}

func (w *WorkingList) Items() []entities.Item {
	return append([]entities.Item(nil), w.items...)
}

func (w *WorkingList) Len() int {
	return len(w.items)
}

func (w *WorkingList) Total() float64 {
	return Total(w.items)
}

// RequireEditable reports whether the working list of p may be changed.
func RequireEditable(actor entities.Actor, p entities.Pickup) error {
	if err := requireRole(actor, entities.RolePartner, "edit items of"); err != nil {
		return err
	}
	return requireStatus(p, entities.StatusInProcess, "edit items of")
}
