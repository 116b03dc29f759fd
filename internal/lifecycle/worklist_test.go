package lifecycle_test

import (
	"testing"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingList(t *testing.T) {
	testCases := []struct {
		name      string
		item      entities.Item
		wantField string
	}{
		{name: "valid", item: entities.Item{Name: "Shirt", Qty: 2, Price: 150}},
		{name: "fractional price", item: entities.Item{Name: "Socks", Qty: 3, Price: 12.5}},
		{name: "missing name", item: entities.Item{Name: " ", Qty: 1, Price: 1}, wantField: "name"},
		{name: "zero qty", item: entities.Item{Name: "Shirt", Qty: 0, Price: 1}, wantField: "qty"},
		{name: "negative price", item: entities.Item{Name: "Shirt", Qty: 1, Price: -1}, wantField: "price"},
		{name: "zero price", item: entities.Item{Name: "Shirt", Qty: 1}, wantField: "price"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wl := lifecycle.NewWorkingList(nil)
			err := wl.Add(tc.item)
			if tc.wantField != "" {
				var ve *entities.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tc.wantField, ve.Field)
				assert.Zero(t, wl.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []entities.Item{tc.item}, wl.Items())
		})
	}
}

func TestWorkingList_Remove(t *testing.T) {
	wl := lifecycle.NewWorkingList([]entities.Item{
		{Name: "Shirt", Qty: 2, Price: 150},
		{Name: "Pants", Qty: 1, Price: 300},
		{Name: "Cap", Qty: 1, Price: 50},
	})
	assert.Equal(t, 650.0, wl.Total())

	require.NoError(t, wl.Remove(1))
	assert.Equal(t, []string{"Shirt", "Cap"}, names(wl.Items()))
	assert.Equal(t, 350.0, wl.Total())

	assert.ErrorIs(t, wl.Remove(2), entities.ErrItemIndex)
	assert.ErrorIs(t, wl.Remove(-1), entities.ErrItemIndex)
	assert.Equal(t, 2, wl.Len())
}

func TestRequireEditable(t *testing.T) {
	assert.NoError(t, lifecycle.RequireEditable(partner, entities.Pickup{Status: entities.StatusInProcess}))
	assert.ErrorIs(t, lifecycle.RequireEditable(partner, entities.Pickup{Status: entities.StatusAccepted}), entities.ErrInvalidTransition)
	assert.ErrorIs(t, lifecycle.RequireEditable(customer, entities.Pickup{Status: entities.StatusInProcess}), entities.ErrForbidden)
}

func names(items []entities.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}
