package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"laman-client/internal/domain/catalog"
	"laman-client/internal/domain/store"
	"laman-client/internal/pkg/clock"
	"laman-client/internal/pkg/config"
	"laman-client/internal/pkg/watch"
	"laman-client/internal/usecase/shared"

	"github.com/google/uuid"
)

type StorefrontSnapshot struct {
	Store                 *store.Store
	Products              []catalog.Product
	Subcategories         []catalog.Subcategory
	SelectedSubcategoryID *uuid.UUID
	SearchText            string
	Loading               bool
	LastError             error
}

// StorefrontEngine browses a single store's shelf: its subcategories, its
// available products, and a debounced in-store search. Product fetches merge
// into the shared index so lines added from a store page resolve in the cart.
type StorefrontEngine struct {
	storeID  uuid.UUID
	gateway  StoreGateway
	index    *shared.ProductIndex
	clock    clock.Clock
	debounce time.Duration
	log      *slog.Logger
	notifier *watch.Notifier

	mu                    sync.Mutex
	storeInfo             *store.Store
	products              []catalog.Product
	subcategories         []catalog.Subcategory
	selectedSubcategoryID *uuid.UUID
	searchText            string
	loading               bool
	lastErr               error
	queryGen              uint64
	searchTimer           clock.Timer
}

// StorefrontFactory builds one engine per visited store.
type StorefrontFactory func(storeID uuid.UUID) *StorefrontEngine

func NewStorefrontFactory(
	gateway StoreGateway,
	index *shared.ProductIndex,
	clk clock.Clock,
	cfg config.Config,
	log *slog.Logger,
) StorefrontFactory {
	return func(storeID uuid.UUID) *StorefrontEngine {
		return &StorefrontEngine{
			storeID:  storeID,
			gateway:  gateway,
			index:    index,
			clock:    clk,
			debounce: cfg.Search.Debounce,
			log:      log,
			notifier: watch.NewNotifier(),
		}
	}
}

// Load fetches the store card, its subcategories and its products. A failed
// subcategory fetch degrades to an empty list and never blocks the products.
func (e *StorefrontEngine) Load(ctx context.Context) {
	if info, err := e.gateway.GetStore(ctx, e.storeID); err == nil {
		e.mu.Lock()
		e.storeInfo = info
		e.mu.Unlock()
		e.notifier.Notify()
	} else {
		e.log.Warn("store load failed", slog.String("error", err.Error()))
	}

	subcategories, err := e.gateway.ListStoreSubcategories(ctx, e.storeID)
	e.mu.Lock()
	if err != nil {
		e.subcategories = nil
		e.lastErr = err
	} else {
		e.subcategories = subcategories
	}
	e.mu.Unlock()
	e.notifier.Notify()

	e.fetchProducts(ctx, e.invalidatePending())
}

func (e *StorefrontEngine) SelectSubcategory(ctx context.Context, id *uuid.UUID) {
	e.mu.Lock()
	e.selectedSubcategoryID = id
	e.mu.Unlock()
	e.notifier.Notify()
	e.fetchProducts(ctx, e.invalidatePending())
}

func (e *StorefrontEngine) SearchTextChanged(text string) {
	e.mu.Lock()
	e.searchText = text
	e.queryGen++
	gen := e.queryGen
	if e.searchTimer != nil {
		e.searchTimer.Stop()
	}
	e.searchTimer = e.clock.AfterFunc(e.debounce, func() {
		e.fetchProducts(context.Background(), gen)
	})
	e.mu.Unlock()
	e.notifier.Notify()
}

func (e *StorefrontEngine) Snapshot() StorefrontSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return StorefrontSnapshot{
		Store:                 e.storeInfo,
		Products:              append([]catalog.Product(nil), e.products...),
		Subcategories:         append([]catalog.Subcategory(nil), e.subcategories...),
		SelectedSubcategoryID: e.selectedSubcategoryID,
		SearchText:            e.searchText,
		Loading:               e.loading,
		LastError:             e.lastErr,
	}
}

func (e *StorefrontEngine) DismissError() {
	e.mu.Lock()
	e.lastErr = nil
	e.mu.Unlock()
	e.notifier.Notify()
}

func (e *StorefrontEngine) Subscribe() (<-chan struct{}, func()) {
	return e.notifier.Subscribe()
}

func (e *StorefrontEngine) Version() uint64 {
	return e.notifier.Version()
}

func (e *StorefrontEngine) invalidatePending() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queryGen++
	if e.searchTimer != nil {
		e.searchTimer.Stop()
		e.searchTimer = nil
	}
	return e.queryGen
}

func (e *StorefrontEngine) fetchProducts(ctx context.Context, gen uint64) {
	e.mu.Lock()
	if gen != e.queryGen {
		e.mu.Unlock()
		return
	}
	e.loading = true
	q := StoreProductQuery{
		SubcategoryID: e.selectedSubcategoryID,
		Search:        strings.TrimSpace(e.searchText),
		AvailableOnly: true,
	}
	e.mu.Unlock()
	e.notifier.Notify()

	products, err := e.gateway.ListStoreProducts(ctx, e.storeID, q)
	if err == nil {
		e.index.Merge(products)
	}

	e.mu.Lock()
	if gen != e.queryGen {
		e.mu.Unlock()
		return
	}
	e.loading = false
	if err != nil {
		e.lastErr = err
	} else {
		e.lastErr = nil
		e.products = products
	}
	e.mu.Unlock()
	if err != nil {
		e.log.Warn("store product query failed", slog.String("error", err.Error()))
	}
	e.notifier.Notify()
}
