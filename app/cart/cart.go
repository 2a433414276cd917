// Package cart implements the shopper's cart: a small, single-threaded
// collection of size-aware line items plus a drawer open/closed flag.
//
// A Cart is owned by one HTTP session and never shared between goroutines;
// every mutation writes through to its Store so the cart survives reloads.
// Two tabs sharing a session cookie share one cart, a fresh browser starts
// empty.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/Bamimore2000/borokini/pkg/logger"
)

// Item is one line of the cart. Two lines are the same line exactly when
// both the product ID and the selected size match; the same product in a
// different size is a separate line.
type Item struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image,omitempty"`
	Quantity     int             `json:"quantity"`
	Category     string          `json:"category,omitempty"`
	Stock        int             `json:"stock,omitempty"` // advisory ceiling, display only
	Slug         string          `json:"slug,omitempty"`
	SelectedSize string          `json:"selected_size,omitempty"`
}

// State is the serialisable snapshot a Store persists.
type State struct {
	Items  []Item `json:"items"`
	IsOpen bool   `json:"is_open"`
}

// Cart holds the live state for one session.
type Cart struct {
	state State
	store Store
	key   string
}

// New returns a cart bound to store under key, hydrated from any previously
// persisted state. A nil store gives a purely in-memory cart.
func New(store Store, key string) *Cart {
	c := &Cart{store: store, key: key}
	if store != nil {
		if st, ok := store.Load(key); ok {
			c.state = st
		}
	}
	return c
}

// Items returns the current line items. Callers must not mutate the slice.
func (c *Cart) Items() []Item { return c.state.Items }

// IsOpen reports the drawer visibility flag.
func (c *Cart) IsOpen() bool { return c.state.IsOpen }

// State returns a snapshot of the cart.
func (c *Cart) State() State { return c.state }

// Subtotal sums price × quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.state.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Count sums the quantities over all lines.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.state.Items {
		n += it.Quantity
	}
	return n
}

// AddItem merges item into the cart. An existing (product, size) line gets
// its quantity bumped by qty; otherwise a new line is appended. qty values
// below 1 mean "add one". The stock ceiling is not enforced here.
func (c *Cart) AddItem(item Item, qty int) {
	if qty < 1 {
		qty = 1
	}

	for i := range c.state.Items {
		if c.sameLine(i, item.ProductID, item.SelectedSize) {
			c.state.Items[i].Quantity += qty
			c.persist()
			return
		}
	}

	item.Quantity = qty
	c.state.Items = append(c.state.Items, item)
	c.persist()
}

// RemoveItem drops every line matching (productID, size). Absent lines are
// a no-op.
func (c *Cart) RemoveItem(productID, size string) {
	kept := c.state.Items[:0]
	for _, it := range c.state.Items {
		if !(it.ProductID == productID && it.SelectedSize == size) {
			kept = append(kept, it)
		}
	}
	c.state.Items = kept
	c.persist()
}

// IncreaseQuantity bumps the matching line by one. No-op when absent.
func (c *Cart) IncreaseQuantity(productID, size string) {
	for i := range c.state.Items {
		if c.sameLine(i, productID, size) {
			c.state.Items[i].Quantity++
			c.persist()
			return
		}
	}
}

// DecreaseQuantity lowers the matching line by one; hitting zero removes
// the line, so quantities are never persisted at zero or below.
func (c *Cart) DecreaseQuantity(productID, size string) {
	for i := range c.state.Items {
		if c.sameLine(i, productID, size) {
			c.state.Items[i].Quantity--
			if c.state.Items[i].Quantity <= 0 {
				c.state.Items = append(c.state.Items[:i], c.state.Items[i+1:]...)
			}
			c.persist()
			return
		}
	}
}

// UpdateQuantity sets the matching line to an absolute quantity, clamped at
// zero; zero removes the line.
func (c *Cart) UpdateQuantity(productID string, qty int, size string) {
	if qty < 0 {
		qty = 0
	}

	for i := range c.state.Items {
		if c.sameLine(i, productID, size) {
			if qty == 0 {
				c.state.Items = append(c.state.Items[:i], c.state.Items[i+1:]...)
			} else {
				c.state.Items[i].Quantity = qty
			}
			c.persist()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.state.Items = nil
	c.persist()
}

// Open marks the cart drawer visible. Line items are untouched.
func (c *Cart) Open() {
	c.state.IsOpen = true
	c.persist()
}

// Close marks the cart drawer hidden. Line items are untouched.
func (c *Cart) Close() {
	c.state.IsOpen = false
	c.persist()
}

func (c *Cart) sameLine(i int, productID, size string) bool {
	return c.state.Items[i].ProductID == productID && c.state.Items[i].SelectedSize == size
}

// persist writes through to the store. Failures are fire-and-forget: the
// in-memory cart stays authoritative for the rest of the request.
func (c *Cart) persist() {
	if c.store == nil {
		return
	}
	if err := c.store.Save(c.key, c.state); err != nil {
		logger.Debug("cart: persist failed", "key", c.key, "error", err)
	}
}
