package usecase

import (
	"context"

	"laman-client/internal/domain/catalog"
	"laman-client/internal/domain/order"
	"laman-client/internal/domain/store"

	"github.com/google/uuid"
)

// Gateway ports consumed by the engines. The remote implementation reports
// failures as errs.ErrNetwork, *errs.ServerError, or errs.ErrDecode; the
// engines treat all three the same way: record, surface, leave state as is.

type ProductQuery struct {
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	Search        string
}

type StoreQuery struct {
	CategoryType *store.CategoryType
	Search       string
}

type StoreProductQuery struct {
	SubcategoryID *uuid.UUID
	Search        string
	AvailableOnly bool
}

type CatalogGateway interface {
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	ListProducts(ctx context.Context, q ProductQuery) ([]catalog.Product, error)
	ListSubcategories(ctx context.Context, categoryID uuid.UUID) ([]catalog.Subcategory, error)
}

type StoreGateway interface {
	ListStores(ctx context.Context, q StoreQuery) ([]store.Store, error)
	GetStore(ctx context.Context, id uuid.UUID) (*store.Store, error)
	ListStoreProducts(ctx context.Context, storeID uuid.UUID, q StoreProductQuery) ([]catalog.Product, error)
	ListStoreSubcategories(ctx context.Context, storeID uuid.UUID) ([]catalog.Subcategory, error)
}

type OrderGateway interface {
	CreateOrder(ctx context.Context, req order.CreateRequest) (*order.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status order.Status) error
}
