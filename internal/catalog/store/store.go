// Package store provides an interface for catalog storage operations.
package store

import (
	"context"

	"github.com/google/uuid"
)

// Specs is the specification bundle shown on the product detail screen.
// Storage and Colors are non-empty, ordered lists.
type Specs struct {
	Storage []string `json:"storage"`
	Colors  []string `json:"colors"`
	Display string   `json:"display"`
	Camera  string   `json:"camera"`
}

// Product is an immutable catalog entry. Price is in minor currency units.
type Product struct {
	ID            uuid.UUID
	Name          string
	Category      string
	Price         int64
	Description   string
	ImageURL      string
	Specs         Specs
	StockQuantity int32
	Rating        float32
	ReviewCount   int32
}

// ProductStore is an interface for catalog storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll returns the complete catalog in display order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)
}
