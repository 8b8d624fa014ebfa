package usecase

import (
	"sync"

	"laman-client/internal/domain/cart"
	"laman-client/internal/domain/catalog"
	"laman-client/internal/pkg/watch"
	"laman-client/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartEngine owns the cart lines and the active-store derivation. All derived
// figures are recomputed from current state on every read; nothing is cached.
type CartEngine struct {
	mu       sync.Mutex
	cart     *cart.Cart
	index    *shared.ProductIndex
	notifier *watch.Notifier
}

func NewCartEngine(index *shared.ProductIndex) *CartEngine {
	return &CartEngine{
		cart:     cart.New(),
		index:    index,
		notifier: watch.NewNotifier(),
	}
}

// SetQuantity upserts the line for product and merges the snapshot into the
// shared index. When the cart is non-empty and product belongs to another
// store the call returns errs.ErrStoreConflict with the cart unchanged; the
// workflow layer decides whether to prompt for a cart clear and retry.
func (e *CartEngine) SetQuantity(product catalog.Product, quantity int) error {
	e.mu.Lock()
	err := e.cart.SetQuantity(product.ID, product.StoreID, quantity)
	e.mu.Unlock()
	if err != nil {
		return err
	}
	e.index.Merge([]catalog.Product{product})
	e.notifier.Notify()
	return nil
}

// RemoveProduct is unconditional; removal can never violate the store rule.
func (e *CartEngine) RemoveProduct(product catalog.Product) {
	e.mu.Lock()
	e.cart.Remove(product.ID)
	e.mu.Unlock()
	e.notifier.Notify()
}

func (e *CartEngine) ClearCart() {
	e.mu.Lock()
	e.cart.Clear()
	e.mu.Unlock()
	e.notifier.Notify()
}

func (e *CartEngine) Quantity(productID uuid.UUID) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.Quantity(productID)
}

func (e *CartEngine) ActiveStore() *uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.ActiveStore()
}

// Items joins the cart lines with the product index. Lines whose snapshot has
// not been merged yet resolve to a placeholder so they stay visible and
// removable; their price contributes zero until a real snapshot lands.
func (e *CartEngine) Items() []cart.ResolvedItem {
	e.mu.Lock()
	lines := e.cart.Lines()
	storeIDs := make(map[uuid.UUID]uuid.UUID, len(lines))
	for id := range lines {
		if sid, ok := e.cart.StoreID(id); ok {
			storeIDs[id] = sid
		}
	}
	e.mu.Unlock()

	items := make([]cart.ResolvedItem, 0, len(lines))
	for id, qty := range lines {
		if qty <= 0 {
			continue
		}
		product, ok := e.index.Lookup(id)
		if !ok {
			product = catalog.Product{
				ID:          id,
				StoreID:     storeIDs[id],
				Name:        e.index.DisplayName(id),
				Price:       decimal.Zero,
				IsAvailable: true,
			}
		}
		items = append(items, cart.ResolvedItem{Product: product, Quantity: qty})
	}
	return items
}

func (e *CartEngine) Totals() cart.Totals {
	return cart.CalculateTotals(e.Items())
}

func (e *CartEngine) Subscribe() (<-chan struct{}, func()) {
	return e.notifier.Subscribe()
}

func (e *CartEngine) Version() uint64 {
	return e.notifier.Version()
}
