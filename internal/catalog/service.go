// Package catalog provides the implementation of catalog-related business logic.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/iwholesale/storefront/internal/catalog/store"
)

// CatalogService defines the methods for browsing the product catalog.
// It abstracts the underlying business logic and data access.
type CatalogService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns store.ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error)

	// Search returns the catalog filtered by a case-insensitive substring
	// match on product name. An empty query returns the full catalog.
	Search(ctx context.Context, query string) ([]ProductDto, error)
}

// Service implements CatalogService and provides methods to browse products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of CatalogService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// SpecsDto mirrors the product specification bundle for display.
type SpecsDto struct {
	Storage []string `json:"storage"`
	Colors  []string `json:"colors"`
	Display string   `json:"display"`
	Camera  string   `json:"camera"`
}

// ProductDto represents the data transfer object for a catalog product.
// Price is in minor currency units.
type ProductDto struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"        validate:"required,max=100"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"       validate:"required,min=0"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Specs       SpecsDto  `json:"specs"`
	Stock       int32     `json:"stock"       validate:"min=0"`
	Rating      float32   `json:"rating"      validate:"min=0,max=5"`
	ReviewCount int32     `json:"review_count"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns store.ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}

	return toDto(product), nil
}

// Search retrieves the catalog and filters it by the query.
// Returns an empty slice when no product name matches.
func (s *Service) Search(ctx context.Context, query string) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))

	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}

	return FilterByQuery(productDTOs, query), nil
}

// FilterByQuery filters products by a case-insensitive substring match on
// name. An empty query returns the input unchanged; no match returns an
// empty, non-nil slice.
func FilterByQuery(products []ProductDto, query string) []ProductDto {
	if query == "" {
		return products
	}
	needle := strings.ToLower(query)
	filtered := make([]ProductDto, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Specs: SpecsDto{
			Storage: product.Specs.Storage,
			Colors:  product.Specs.Colors,
			Display: product.Specs.Display,
			Camera:  product.Specs.Camera,
		},
		Stock:       product.StockQuantity,
		Rating:      product.Rating,
		ReviewCount: product.ReviewCount,
	}
}
