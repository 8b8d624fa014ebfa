package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the last-seen catalog snapshot for one item. A later fetch of
// the same ID may carry a different price or availability; consumers must not
// assume two snapshots with equal IDs are equal.
type Product struct {
	ID            uuid.UUID        `json:"id"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	SubcategoryID *uuid.UUID       `json:"subcategory_id,omitempty"`
	StoreID       uuid.UUID        `json:"store_id"`
	Name          string           `json:"name"`
	Description   *string          `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	Weight        *decimal.Decimal `json:"weight,omitempty"`
	IsAvailable   bool             `json:"is_available"`
}

// UnitWeight treats a missing weight as zero.
func (p Product) UnitWeight() decimal.Decimal {
	if p.Weight == nil {
		return decimal.Zero
	}
	return *p.Weight
}
