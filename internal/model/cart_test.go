package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func available(id, name string, price float64) MenuItem {
	return MenuItem{ID: id, Name: name, Price: price, Available: true}
}

func TestCart_Add(t *testing.T) {
	cart := NewCart()

	require.NoError(t, cart.Add(available("1", "Samosa", 8.99)))
	require.NoError(t, cart.Add(available("1", "Samosa", 8.99)))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Samosa", lines[0].Name)
	assert.InDelta(t, 8.99, lines[0].Price, 0.0001)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCart_Add_UnavailableItemLeavesCartUnchanged(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(available("1", "Samosa", 8.99)))

	err := cart.Add(MenuItem{ID: "8", Name: "Tandoori Chicken", Price: 24.99, Available: false})
	assert.Equal(t, ErrItemUnavailable, err)

	require.Len(t, cart.Lines(), 1)
	assert.InDelta(t, 8.99, cart.Total(), 0.0001)
}

func TestCart_Add_SnapshotsPriceAtAddTime(t *testing.T) {
	cart := NewCart()
	item := available("1", "Samosa", 8.99)
	require.NoError(t, cart.Add(item))

	// A later catalogue price change must not alter the cart line.
	item.Price = 12.99
	assert.InDelta(t, 8.99, cart.Lines()[0].Price, 0.0001)
}

func TestCart_SetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantErr   error
		wantLines int
		wantQty   int
	}{
		{name: "positive sets quantity", quantity: 4, wantLines: 1, wantQty: 4},
		{name: "one keeps the line", quantity: 1, wantLines: 1, wantQty: 1},
		{name: "zero removes the line", quantity: 0, wantLines: 0},
		{name: "negative is rejected", quantity: -1, wantErr: ErrInvalidQuantity, wantLines: 1, wantQty: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			require.NoError(t, cart.Add(available("1", "Samosa", 8.99)))
			require.NoError(t, cart.Add(available("1", "Samosa", 8.99)))

			err := cart.SetQuantity("1", tt.quantity)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				require.NoError(t, err)
			}

			require.Len(t, cart.Lines(), tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, cart.Lines()[0].Quantity)
			}
		})
	}
}

func TestCart_SetQuantityZeroEqualsRemove(t *testing.T) {
	viaZero := NewCart()
	require.NoError(t, viaZero.Add(available("1", "Samosa", 8.99)))
	require.NoError(t, viaZero.SetQuantity("1", 0))

	viaRemove := NewCart()
	require.NoError(t, viaRemove.Add(available("1", "Samosa", 8.99)))
	viaRemove.Remove("1")

	assert.Equal(t, viaRemove.Lines(), viaZero.Lines())
	assert.Equal(t, 0, viaZero.Len())
	assert.Equal(t, 0, viaRemove.Len())
}

func TestCart_SetQuantity_MissingLineIsNoOp(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.SetQuantity("missing", 3))
	assert.Equal(t, 0, cart.Len())
}

func TestCart_TotalRoundTrip(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(available("1", "Samosa", 8.99)))
	require.NoError(t, cart.Add(available("9", "Naan", 4.99)))
	require.NoError(t, cart.Add(available("9", "Naan", 4.99)))
	assert.InDelta(t, 8.99+2*4.99, cart.Total(), 0.0001)
	assert.Equal(t, 3, cart.ItemCount())

	cart.Remove("1")
	cart.Remove("9")
	assert.InDelta(t, 0, cart.Total(), 0.0001)
	assert.Equal(t, 0, cart.ItemCount())
	assert.Empty(t, cart.Lines())
}

func TestCart_LinesKeepInsertionOrder(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(available("9", "Naan", 4.99)))
	require.NoError(t, cart.Add(available("1", "Samosa", 8.99)))
	require.NoError(t, cart.Add(available("12", "Gulab Jamun", 7.99)))
	cart.Remove("1")
	require.NoError(t, cart.Add(available("1", "Samosa", 8.99)))

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "9", lines[0].FoodID)
	assert.Equal(t, "12", lines[1].FoodID)
	assert.Equal(t, "1", lines[2].FoodID)
}

func TestCart_Snapshot(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(available("1", "Samosa", 8.99)))

	snapshot := cart.Snapshot()
	assert.Equal(t, 1, snapshot.ItemCount)
	assert.InDelta(t, 8.99, snapshot.Total, 0.0001)
	require.Len(t, snapshot.Lines, 1)

	// Snapshot is detached from the live cart.
	cart.Clear()
	assert.Len(t, snapshot.Lines, 1)
}
