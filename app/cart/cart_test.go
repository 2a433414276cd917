package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bamimore2000/borokini/app/cart"
)

func ring(size string) cart.Item {
	return cart.Item{
		ProductID:    "prod-ring",
		Name:         "Eternal Band Ring",
		Price:        decimal.RequireFromString("680000.00"),
		SelectedSize: size,
	}
}

func TestAddItemMergesSameProductAndSize(t *testing.T) {
	c := cart.New(nil, "")

	c.AddItem(ring("7"), 1)
	c.AddItem(ring("7"), 2)
	c.AddItem(ring("7"), 0) // qty below 1 means "add one"

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestAddItemKeepsSizesAsSeparateLines(t *testing.T) {
	c := cart.New(nil, "")

	c.AddItem(ring("6"), 1)
	c.AddItem(ring("7"), 1)
	c.AddItem(ring(""), 1) // no size selected is its own line too

	assert.Len(t, c.Items(), 3)
	assert.Equal(t, 3, c.Count())
}

func TestDecreaseToZeroRemovesLine(t *testing.T) {
	c := cart.New(nil, "")
	c.AddItem(ring("7"), 2)

	c.DecreaseQuantity("prod-ring", "7")
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.DecreaseQuantity("prod-ring", "7")
	assert.Empty(t, c.Items())

	// Further decreases on an absent line are a no-op, never negative.
	c.DecreaseQuantity("prod-ring", "7")
	assert.Empty(t, c.Items())
}

func TestRemoveThenAddYieldsFreshLine(t *testing.T) {
	c := cart.New(nil, "")
	c.AddItem(ring("7"), 5)

	c.RemoveItem("prod-ring", "7")
	assert.Empty(t, c.Items())

	c.AddItem(ring("7"), 3)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 3, c.Items()[0].Quantity, "removal must fully clear prior state, not zero it")
}

func TestRemoveItemOnlyMatchesSize(t *testing.T) {
	c := cart.New(nil, "")
	c.AddItem(ring("6"), 1)
	c.AddItem(ring("7"), 1)

	c.RemoveItem("prod-ring", "6")

	require.Len(t, c.Items(), 1)
	assert.Equal(t, "7", c.Items()[0].SelectedSize)
}

func TestUpdateQuantity(t *testing.T) {
	c := cart.New(nil, "")
	c.AddItem(ring("7"), 2)

	c.UpdateQuantity("prod-ring", 9, "7")
	assert.Equal(t, 9, c.Items()[0].Quantity)

	c.UpdateQuantity("prod-ring", -4, "7") // clamped to 0 → removed
	assert.Empty(t, c.Items())
}

func TestOpenCloseLeaveItemsAlone(t *testing.T) {
	c := cart.New(nil, "")
	c.AddItem(ring("7"), 2)

	c.Open()
	assert.True(t, c.IsOpen())
	c.Close()
	assert.False(t, c.IsOpen())

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

func TestSubtotal(t *testing.T) {
	c := cart.New(nil, "")
	c.AddItem(cart.Item{ProductID: "a", Price: decimal.RequireFromString("100.00")}, 2)
	c.AddItem(cart.Item{ProductID: "b", Price: decimal.RequireFromString("50.00")}, 1)

	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("250.00")),
		"subtotal was %s", c.Subtotal())
}

func TestClearCart(t *testing.T) {
	c := cart.New(nil, "")
	c.AddItem(ring("6"), 1)
	c.AddItem(ring("7"), 4)

	c.Clear()
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.Count())
}

func TestWriteThroughPersistence(t *testing.T) {
	store := cart.NewMemoryStore()

	c := cart.New(store, "sess-1")
	c.AddItem(ring("7"), 2)
	c.Open()

	// A second cart on the same key sees every mutation.
	c2 := cart.New(store, "sess-1")
	require.Len(t, c2.Items(), 1)
	assert.Equal(t, 2, c2.Items()[0].Quantity)
	assert.True(t, c2.IsOpen())

	// A different key is a different persistence scope.
	c3 := cart.New(store, "sess-2")
	assert.Empty(t, c3.Items())
}

func TestPersistedStateDoesNotAliasLiveItems(t *testing.T) {
	store := cart.NewMemoryStore()

	c := cart.New(store, "sess-1")
	c.AddItem(ring("7"), 1)

	snapshot, ok := store.Load("sess-1")
	require.True(t, ok)

	c.IncreaseQuantity("prod-ring", "7")

	assert.Equal(t, 1, snapshot.Items[0].Quantity, "earlier snapshot must stay intact")
}
