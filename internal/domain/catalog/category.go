package catalog

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Subcategory belongs to exactly one category.
type Subcategory struct {
	ID         uuid.UUID  `json:"id"`
	CategoryID uuid.UUID  `json:"category_id"`
	Name       string     `json:"name"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}
