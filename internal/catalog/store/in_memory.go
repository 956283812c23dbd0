package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// inMemory implements ProductStore over a fixed product list. It backs the
// demo deployment, where the catalog source returns a static wholesale
// lineup.
type inMemory struct {
	mu       sync.RWMutex
	order    []uuid.UUID
	products map[uuid.UUID]Product
}

// NewInMemoryStore creates a ProductStore seeded with the given products,
// preserving their order for display.
func NewInMemoryStore(products []Product) ProductStore {
	s := &inMemory{
		order:    make([]uuid.UUID, 0, len(products)),
		products: make(map[uuid.UUID]Product, len(products)),
	}
	for _, p := range products {
		s.order = append(s.order, p.ID)
		s.products[p.ID] = p
	}
	return s
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id uuid.UUID) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// FindAll retrieves all products in seed order.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.products[id])
	}
	return list, nil
}

// SeedProducts is the wholesale iPhone lineup served by the demo catalog.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          uuid.MustParse("7b8a1f60-0001-4c7e-9a3d-1a2b3c4d5e01"),
			Name:        "iPhone 15 Pro Max",
			Category:    "Pro",
			Price:       119900,
			Description: "The ultimate iPhone with titanium design, A17 Pro chip and a 5x telephoto camera.",
			ImageURL:    "https://images.iwholesale.example/iphone-15-pro-max.jpg",
			Specs: Specs{
				Storage: []string{"256GB", "512GB", "1TB"},
				Colors:  []string{"Natural Titanium", "Blue Titanium", "White Titanium", "Black Titanium"},
				Display: "6.7-inch Super Retina XDR display with ProMotion",
				Camera:  "48MP Main | Ultra Wide | 5x Telephoto",
			},
			StockQuantity: 5000,
			Rating:        4.9,
			ReviewCount:   1284,
		},
		{
			ID:          uuid.MustParse("7b8a1f60-0002-4c7e-9a3d-1a2b3c4d5e02"),
			Name:        "iPhone 15 Pro",
			Category:    "Pro",
			Price:       99900,
			Description: "Titanium. A17 Pro chip. Action button. The most pro iPhone in a compact size.",
			ImageURL:    "https://images.iwholesale.example/iphone-15-pro.jpg",
			Specs: Specs{
				Storage: []string{"128GB", "256GB", "512GB", "1TB"},
				Colors:  []string{"Natural Titanium", "Blue Titanium", "White Titanium", "Black Titanium"},
				Display: "6.1-inch Super Retina XDR display with ProMotion",
				Camera:  "48MP Main | Ultra Wide | 3x Telephoto",
			},
			StockQuantity: 8000,
			Rating:        4.8,
			ReviewCount:   2341,
		},
		{
			ID:          uuid.MustParse("7b8a1f60-0003-4c7e-9a3d-1a2b3c4d5e03"),
			Name:        "iPhone 15 Plus",
			Category:    "Standard",
			Price:       89900,
			Description: "A big, beautiful display, all-day battery and the 48MP Main camera.",
			ImageURL:    "https://images.iwholesale.example/iphone-15-plus.jpg",
			Specs: Specs{
				Storage: []string{"128GB", "256GB", "512GB"},
				Colors:  []string{"Blue", "Pink", "Yellow", "Green", "Black"},
				Display: "6.7-inch Super Retina XDR display",
				Camera:  "48MP Main | Ultra Wide",
			},
			StockQuantity: 12000,
			Rating:        4.7,
			ReviewCount:   876,
		},
		{
			ID:          uuid.MustParse("7b8a1f60-0004-4c7e-9a3d-1a2b3c4d5e04"),
			Name:        "iPhone 15",
			Category:    "Standard",
			Price:       79900,
			Description: "Dynamic Island, 48MP Main camera and USB-C, in five gorgeous colors.",
			ImageURL:    "https://images.iwholesale.example/iphone-15.jpg",
			Specs: Specs{
				Storage: []string{"128GB", "256GB", "512GB"},
				Colors:  []string{"Blue", "Pink", "Yellow", "Green", "Black"},
				Display: "6.1-inch Super Retina XDR display",
				Camera:  "48MP Main | Ultra Wide",
			},
			StockQuantity: 15000,
			Rating:        4.7,
			ReviewCount:   1954,
		},
		{
			ID:          uuid.MustParse("7b8a1f60-0005-4c7e-9a3d-1a2b3c4d5e05"),
			Name:        "iPhone 14",
			Category:    "Standard",
			Price:       69900,
			Description: "A proven workhorse with a great dual-camera system and all-day battery life.",
			ImageURL:    "https://images.iwholesale.example/iphone-14.jpg",
			Specs: Specs{
				Storage: []string{"128GB", "256GB", "512GB"},
				Colors:  []string{"Blue", "Purple", "Midnight", "Starlight", "Red"},
				Display: "6.1-inch Super Retina XDR display",
				Camera:  "12MP Main | Ultra Wide",
			},
			StockQuantity: 20000,
			Rating:        4.6,
			ReviewCount:   3102,
		},
		{
			ID:          uuid.MustParse("7b8a1f60-0006-4c7e-9a3d-1a2b3c4d5e06"),
			Name:        "iPhone SE",
			Category:    "Budget",
			Price:       42900,
			Description: "Serious power at an entry price point, with Touch ID and the A15 Bionic chip.",
			ImageURL:    "https://images.iwholesale.example/iphone-se.jpg",
			Specs: Specs{
				Storage: []string{"64GB", "128GB", "256GB"},
				Colors:  []string{"Midnight", "Starlight", "Red"},
				Display: "4.7-inch Retina HD display",
				Camera:  "12MP Main",
			},
			StockQuantity: 25000,
			Rating:        4.4,
			ReviewCount:   1567,
		},
	}
}
