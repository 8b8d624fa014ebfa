//go:build unit

package builder

import (
	"laman-client/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID            uuid.UUID
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	StoreID       uuid.UUID
	Name          string
	Price         decimal.Decimal
	Weight        *decimal.Decimal
	IsAvailable   bool
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          uuid.New(),
		StoreID:     uuid.New(),
		Name:        "Test Product",
		Price:       decimal.NewFromInt(100),
		IsAvailable: true,
	}
}

func (b *ProductBuilder) WithID(id uuid.UUID) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithStoreID(id uuid.UUID) *ProductBuilder {
	b.StoreID = id
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPrice(price float64) *ProductBuilder {
	b.Price = decimal.NewFromFloat(price)
	return b
}

func (b *ProductBuilder) WithWeight(weight float64) *ProductBuilder {
	w := decimal.NewFromFloat(weight)
	b.Weight = &w
	return b
}

func (b *ProductBuilder) Build() catalog.Product {
	return catalog.Product{
		ID:            b.ID,
		CategoryID:    b.CategoryID,
		SubcategoryID: b.SubcategoryID,
		StoreID:       b.StoreID,
		Name:          b.Name,
		Price:         b.Price,
		Weight:        b.Weight,
		IsAvailable:   b.IsAvailable,
	}
}
