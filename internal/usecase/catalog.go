package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"laman-client/internal/domain/catalog"
	"laman-client/internal/pkg/clock"
	"laman-client/internal/pkg/config"
	"laman-client/internal/pkg/watch"
	"laman-client/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CatalogSnapshot is the published state of the catalog screen. Slices are
// copies; callers may keep them across engine mutations.
type CatalogSnapshot struct {
	Categories            []catalog.Category
	Subcategories         []catalog.Subcategory
	Products              []catalog.Product
	SelectedCategoryID    *uuid.UUID
	SelectedSubcategoryID *uuid.UUID
	SearchText            string
	Loading               bool
	LastError             error
}

// CatalogEngine drives category/subcategory filtering and debounced product
// search. Search is global: whenever the effective search text is non-empty,
// category and subcategory filters are dropped from the query.
//
// Every trigger (keystroke, selection) advances a generation counter that
// doubles as the cancellation token: a pending debounce timer and an in-flight
// fetch both re-check it before publishing, so stale results never land.
type CatalogEngine struct {
	gateway  CatalogGateway
	index    *shared.ProductIndex
	clock    clock.Clock
	debounce time.Duration
	log      *slog.Logger
	notifier *watch.Notifier

	mu                    sync.Mutex
	categories            []catalog.Category
	subcategories         []catalog.Subcategory
	products              []catalog.Product
	selectedCategoryID    *uuid.UUID
	selectedSubcategoryID *uuid.UUID
	searchText            string
	loading               bool
	lastErr               error
	queryGen              uint64
	searchTimer           clock.Timer
}

func NewCatalogEngine(
	gateway CatalogGateway,
	index *shared.ProductIndex,
	clk clock.Clock,
	cfg config.Config,
	log *slog.Logger,
) *CatalogEngine {
	return &CatalogEngine{
		gateway:  gateway,
		index:    index,
		clock:    clk,
		debounce: cfg.Search.Debounce,
		log:      log,
		notifier: watch.NewNotifier(),
	}
}

// LoadInitial fetches categories and the unfiltered available-product list
// concurrently. The loading flag clears only after both fetches finish; a
// failed fetch leaves the corresponding prior list intact.
func (e *CatalogEngine) LoadInitial(ctx context.Context) {
	e.setLoading(true)

	var g errgroup.Group
	g.Go(func() error {
		categories, err := e.gateway.ListCategories(ctx)
		if err != nil {
			return err
		}
		e.mu.Lock()
		e.categories = categories
		e.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		products, err := e.gateway.ListProducts(ctx, ProductQuery{})
		if err != nil {
			return err
		}
		e.index.Merge(products)
		e.mu.Lock()
		e.products = products
		e.mu.Unlock()
		return nil
	})
	err := g.Wait()

	e.mu.Lock()
	e.loading = false
	e.lastErr = err
	e.mu.Unlock()
	if err != nil {
		e.log.Warn("catalog initial load failed", slog.String("error", err.Error()))
	}
	e.notifier.Notify()
}

// SelectCategory clears the subcategory selection, reloads the subcategory
// list for the new category and re-runs the filtered query. A failed
// subcategory fetch degrades to an empty list; the selection itself stays
// applied.
func (e *CatalogEngine) SelectCategory(ctx context.Context, id *uuid.UUID) {
	e.mu.Lock()
	e.selectedCategoryID = id
	e.selectedSubcategoryID = nil
	e.subcategories = nil
	e.mu.Unlock()
	gen := e.invalidatePending()
	e.notifier.Notify()

	if id != nil {
		subcategories, err := e.gateway.ListSubcategories(ctx, *id)
		e.mu.Lock()
		if gen != e.queryGen {
			// A newer selection owns the subcategory list now.
			e.mu.Unlock()
			return
		}
		if err != nil {
			e.subcategories = nil
			e.lastErr = err
		} else {
			e.subcategories = subcategories
		}
		e.mu.Unlock()
		if err != nil {
			e.log.Warn("subcategory load failed", slog.String("error", err.Error()))
		}
		e.notifier.Notify()
	}

	e.applyFilters(ctx, gen, e.effectiveSearch())
}

func (e *CatalogEngine) SelectSubcategory(ctx context.Context, id *uuid.UUID) {
	e.mu.Lock()
	e.selectedSubcategoryID = id
	e.mu.Unlock()
	e.notifier.Notify()

	e.applyFilters(ctx, e.invalidatePending(), e.effectiveSearch())
}

// SearchTextChanged publishes the text immediately and schedules the filtered
// query after the quiet period. A newer keystroke cancels the pending one, so
// at most the trailing call of a burst reaches the gateway.
func (e *CatalogEngine) SearchTextChanged(text string) {
	e.mu.Lock()
	e.searchText = text
	e.queryGen++
	gen := e.queryGen
	if e.searchTimer != nil {
		e.searchTimer.Stop()
	}
	query := strings.TrimSpace(text)
	e.searchTimer = e.clock.AfterFunc(e.debounce, func() {
		e.applyFilters(context.Background(), gen, query)
	})
	e.mu.Unlock()
	e.notifier.Notify()
}

func (e *CatalogEngine) Snapshot() CatalogSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return CatalogSnapshot{
		Categories:            append([]catalog.Category(nil), e.categories...),
		Subcategories:         append([]catalog.Subcategory(nil), e.subcategories...),
		Products:              append([]catalog.Product(nil), e.products...),
		SelectedCategoryID:    e.selectedCategoryID,
		SelectedSubcategoryID: e.selectedSubcategoryID,
		SearchText:            e.searchText,
		Loading:               e.loading,
		LastError:             e.lastErr,
	}
}

func (e *CatalogEngine) DismissError() {
	e.mu.Lock()
	e.lastErr = nil
	e.mu.Unlock()
	e.notifier.Notify()
}

func (e *CatalogEngine) Subscribe() (<-chan struct{}, func()) {
	return e.notifier.Subscribe()
}

func (e *CatalogEngine) Version() uint64 {
	return e.notifier.Version()
}

// invalidatePending bumps the generation and stops any scheduled search so a
// discrete selection always outranks an older keystroke.
func (e *CatalogEngine) invalidatePending() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queryGen++
	if e.searchTimer != nil {
		e.searchTimer.Stop()
		e.searchTimer = nil
	}
	return e.queryGen
}

func (e *CatalogEngine) effectiveSearch() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return strings.TrimSpace(e.searchText)
}

func (e *CatalogEngine) applyFilters(ctx context.Context, gen uint64, search string) {
	e.mu.Lock()
	if gen != e.queryGen {
		e.mu.Unlock()
		return
	}
	e.loading = true
	var q ProductQuery
	if search == "" {
		q.CategoryID = e.selectedCategoryID
		q.SubcategoryID = e.selectedSubcategoryID
	} else {
		q.Search = search
	}
	e.mu.Unlock()
	e.notifier.Notify()

	products, err := e.gateway.ListProducts(ctx, q)
	if err == nil {
		e.index.Merge(products)
	}

	e.mu.Lock()
	if gen != e.queryGen {
		// A newer query owns the published state now.
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
		e.log.Warn("product query failed", slog.String("error", err.Error()))
	}
	e.notifier.Notify()
}

func (e *CatalogEngine) setLoading(v bool) {
	e.mu.Lock()
	e.loading = v
	e.mu.Unlock()
	e.notifier.Notify()
}
