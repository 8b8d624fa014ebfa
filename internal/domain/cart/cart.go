package cart

import (
	"laman-client/internal/pkg/errs"

	"github.com/google/uuid"
)

// Cart holds the line quantities and enforces the single-store rule: a
// non-empty cart references products from exactly one store. A SetQuantity
// that would introduce a second store is rejected with ErrStoreConflict and
// leaves the cart untouched; resolving the conflict (clear and retry) is the
// caller's policy decision.
type Cart struct {
	lines map[uuid.UUID]line
}

type line struct {
	quantity int
	storeID  uuid.UUID
}

func New() *Cart {
	return &Cart{lines: make(map[uuid.UUID]line)}
}

// SetQuantity upserts the line for productID, or removes it when quantity is
// zero or negative. Removal never conflicts.
func (c *Cart) SetQuantity(productID, storeID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		delete(c.lines, productID)
		return nil
	}
	if active := c.ActiveStore(); active != nil && *active != storeID {
		return errs.ErrStoreConflict
	}
	c.lines[productID] = line{quantity: quantity, storeID: storeID}
	return nil
}

func (c *Cart) Remove(productID uuid.UUID) {
	delete(c.lines, productID)
}

func (c *Cart) Clear() {
	c.lines = make(map[uuid.UUID]line)
}

func (c *Cart) Quantity(productID uuid.UUID) int {
	return c.lines[productID].quantity
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ActiveStore returns the one store all lines belong to, or nil for an empty
// cart. The SetQuantity guard keeps multi-store states unreachable.
func (c *Cart) ActiveStore() *uuid.UUID {
	var active *uuid.UUID
	for _, l := range c.lines {
		if active == nil {
			id := l.storeID
			active = &id
		} else if *active != l.storeID {
			return nil
		}
	}
	return active
}

// Lines returns a copy of the quantity map, no ordering guaranteed.
func (c *Cart) Lines() map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(c.lines))
	for id, l := range c.lines {
		out[id] = l.quantity
	}
	return out
}

// StoreID reports the store recorded for a line, for resolving lines whose
// product snapshot has not been merged yet.
func (c *Cart) StoreID(productID uuid.UUID) (uuid.UUID, bool) {
	l, ok := c.lines[productID]
	return l.storeID, ok
}
