package shared

import (
	"fmt"
	"sync"

	"laman-client/internal/domain/catalog"

	"github.com/google/uuid"
)

// ProductIndex caches the most recently seen snapshot per product ID so cart
// lines and historical order lines can always be rendered. Merges are
// last-write-wins with no version check; completions may land in any order.
//
// The index is injected into every consumer at construction, never shared as
// a package singleton.
type ProductIndex struct {
	mu       sync.RWMutex
	products map[uuid.UUID]catalog.Product
}

func NewProductIndex() *ProductIndex {
	return &ProductIndex{products: make(map[uuid.UUID]catalog.Product)}
}

func (idx *ProductIndex) Merge(products []catalog.Product) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, p := range products {
		idx.products[p.ID] = p
	}
}

func (idx *ProductIndex) Lookup(id uuid.UUID) (catalog.Product, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	p, ok := idx.products[id]
	return p, ok
}

// DisplayName falls back to a deterministic short-ID label so delisted
// products still render in order history.
func (idx *ProductIndex) DisplayName(id uuid.UUID) string {
	if p, ok := idx.Lookup(id); ok {
		return p.Name
	}
	return fmt.Sprintf("Product %.8s", id.String())
}
