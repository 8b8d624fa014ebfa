package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"laman-client/internal/domain/store"
	"laman-client/internal/pkg/clock"
	"laman-client/internal/pkg/config"
	"laman-client/internal/pkg/watch"
)

type StoreSnapshot struct {
	Stores           []store.Store
	SelectedCategory *store.CategoryType
	SearchText       string
	Loading          bool
	LastError        error
}

// StoreEngine filters the store directory: one closed-set category tag plus
// debounced free-text search. Category selection is a discrete action and
// refetches immediately; only typing is debounced.
type StoreEngine struct {
	gateway  StoreGateway
	clock    clock.Clock
	debounce time.Duration
	log      *slog.Logger
	notifier *watch.Notifier

	mu               sync.Mutex
	stores           []store.Store
	selectedCategory *store.CategoryType
	searchText       string
	loading          bool
	lastErr          error
	queryGen         uint64
	searchTimer      clock.Timer
}

func NewStoreEngine(gateway StoreGateway, clk clock.Clock, cfg config.Config, log *slog.Logger) *StoreEngine {
	return &StoreEngine{
		gateway:  gateway,
		clock:    clk,
		debounce: cfg.Search.Debounce,
		log:      log,
		notifier: watch.NewNotifier(),
	}
}

func (e *StoreEngine) LoadStores(ctx context.Context) {
	e.mu.Lock()
	e.queryGen++
	gen := e.queryGen
	if e.searchTimer != nil {
		e.searchTimer.Stop()
		e.searchTimer = nil
	}
	e.mu.Unlock()
	e.fetch(ctx, gen)
}

func (e *StoreEngine) SelectCategory(ctx context.Context, category *store.CategoryType) {
	e.mu.Lock()
	e.selectedCategory = category
	e.queryGen++
	gen := e.queryGen
	if e.searchTimer != nil {
		e.searchTimer.Stop()
		e.searchTimer = nil
	}
	e.mu.Unlock()
	e.notifier.Notify()
	e.fetch(ctx, gen)
}

func (e *StoreEngine) SearchTextChanged(text string) {
	e.mu.Lock()
	e.searchText = text
	e.queryGen++
	gen := e.queryGen
	if e.searchTimer != nil {
		e.searchTimer.Stop()
	}
	e.searchTimer = e.clock.AfterFunc(e.debounce, func() {
		e.fetch(context.Background(), gen)
	})
	e.mu.Unlock()
	e.notifier.Notify()
}

func (e *StoreEngine) Snapshot() StoreSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return StoreSnapshot{
		Stores:           append([]store.Store(nil), e.stores...),
		SelectedCategory: e.selectedCategory,
		SearchText:       e.searchText,
		Loading:          e.loading,
		LastError:        e.lastErr,
	}
}

func (e *StoreEngine) DismissError() {
	e.mu.Lock()
	e.lastErr = nil
	e.mu.Unlock()
	e.notifier.Notify()
}

func (e *StoreEngine) Subscribe() (<-chan struct{}, func()) {
	return e.notifier.Subscribe()
}

func (e *StoreEngine) Version() uint64 {
	return e.notifier.Version()
}

func (e *StoreEngine) fetch(ctx context.Context, gen uint64) {
	e.mu.Lock()
	if gen != e.queryGen {
		e.mu.Unlock()
		return
	}
	e.loading = true
	q := StoreQuery{
		CategoryType: e.selectedCategory,
		Search:       strings.TrimSpace(e.searchText),
	}
	e.mu.Unlock()
	e.notifier.Notify()

	stores, err := e.gateway.ListStores(ctx, q)

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
		e.stores = stores
	}
	e.mu.Unlock()
	if err != nil {
		e.log.Warn("store query failed", slog.String("error", err.Error()))
	}
	e.notifier.Notify()
}
