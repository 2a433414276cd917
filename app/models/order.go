package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the closed set of order states. Transitions are not
// restricted; any status may follow any other.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

// Valid reports whether s is a member of the closed status set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

// Order is the mutable status record for a placed order. UserID is nullable
// to support guest checkout (GuestEmail carries the contact then).
type Order struct {
	ID              string          `gorm:"primaryKey;size:36"                         json:"id"`
	UserID          *string         `gorm:"size:255;index"                             json:"user_id,omitempty"`
	GuestEmail      *string         `gorm:"size:255"                                   json:"guest_email,omitempty"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"                json:"total_amount"`
	Status          OrderStatus     `gorm:"size:50;not null;default:pending"           json:"status"`
	StripePaymentID *string         `gorm:"size:255"                                   json:"stripe_payment_id,omitempty"`
	TrackingNumber  *string         `gorm:"size:255"                                   json:"tracking_number,omitempty"`
	Carrier         *string         `gorm:"size:100"                                   json:"carrier,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = OrderPending
	}
	return nil
}

// OrderItem is an immutable priced line of an order. PriceAtPurchase is
// snapshotted from the product at creation time, so later price edits never
// rewrite history. The product reference carries no cascade: a deleted
// product leaves the item dangling, rendered as "Deleted Product".
type OrderItem struct {
	ID              string          `gorm:"primaryKey;size:36"          json:"id"`
	OrderID         string          `gorm:"size:36;not null;index"      json:"order_id"`
	ProductID       string          `gorm:"size:36;not null;index"      json:"product_id"`
	Quantity        int             `gorm:"not null"                    json:"quantity"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_purchase"`
	SelectedSize    *string         `gorm:"size:20"                     json:"selected_size,omitempty"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
