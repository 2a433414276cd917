package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is one catalogue piece. Prices are fixed-point decimals backed by
// a numeric column so money never drifts through float rounding. Images and
// the per-size stock map are stored as JSON columns.
type Product struct {
	ID             string           `gorm:"primaryKey;size:36"                     json:"id"`
	Slug           string           `gorm:"uniqueIndex;size:255;not null"          json:"slug"`
	SKU            *string          `gorm:"uniqueIndex;size:100"                   json:"sku,omitempty"`
	Name           string           `gorm:"size:255;not null;index"                json:"name"`
	Description    string           `gorm:"type:text;not null"                     json:"description"`
	Price          decimal.Decimal  `gorm:"type:decimal(10,2);not null"            json:"price"`
	CompareAtPrice *decimal.Decimal `gorm:"type:decimal(10,2)"                     json:"compare_at_price,omitempty"`
	Images         []string         `gorm:"serializer:json;not null"               json:"images"`
	Category       string           `gorm:"size:100;not null;index"                json:"category"`
	CollectionID   *string          `gorm:"size:36;index"                          json:"collection_id,omitempty"`
	Material       string           `gorm:"size:100"                               json:"material"`
	Stock          int              `gorm:"not null;default:0"                     json:"stock"`
	SizeStock      map[string]int   `gorm:"serializer:json"                        json:"size_stock,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// SizeStockTotal sums the per-size stock map. The denormalised Stock column
// is what the storefront displays; the two are not forced to agree.
func (p *Product) SizeStockTotal() int {
	total := 0
	for _, n := range p.SizeStock {
		total += n
	}
	return total
}
