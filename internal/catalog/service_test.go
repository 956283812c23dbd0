package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/iwholesale/storefront/internal/catalog/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductStore is a mock implementation of the ProductStore interface
type mockProductStore struct {
	products []store.Product
	product  *store.Product
	error    error
}

func (m *mockProductStore) FindByID(_ context.Context, _ uuid.UUID) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductStore) FindAll(_ context.Context) ([]store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

func seededService() *Service {
	return NewService(&mockProductStore{products: store.SeedProducts()})
}

func Test_Search_EmptyQueryReturnsFullCatalogInOrder(t *testing.T) {
	service := seededService()

	products, err := service.Search(context.Background(), "")

	require.NoError(t, err)
	seed := store.SeedProducts()
	require.Len(t, products, len(seed))
	for i := range seed {
		assert.Equal(t, seed[i].Name, products[i].Name)
	}
}

func Test_Search_CaseInsensitiveSubstring(t *testing.T) {
	service := seededService()

	products, err := service.Search(context.Background(), "pro")

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "iPhone 15 Pro Max", products[0].Name)
	assert.Equal(t, "iPhone 15 Pro", products[1].Name)
}

func Test_Search_NoMatchReturnsEmptyResult(t *testing.T) {
	service := seededService()

	products, err := service.Search(context.Background(), "galaxy")

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func Test_Search_StoreError(t *testing.T) {
	service := NewService(&mockProductStore{error: errors.New("store unavailable")})

	_, err := service.Search(context.Background(), "")

	assert.Error(t, err)
}

func Test_FindByID(t *testing.T) {
	seed := store.SeedProducts()[1]
	service := NewService(&mockProductStore{product: &seed})

	product, err := service.FindByID(context.Background(), seed.ID)

	require.NoError(t, err)
	assert.Equal(t, seed.ID, product.ID)
	assert.Equal(t, seed.Name, product.Name)
	assert.Equal(t, seed.Price, product.Price)
	assert.Equal(t, seed.Specs.Storage, product.Specs.Storage)
}

func Test_FindByID_NotFound(t *testing.T) {
	service := NewService(&mockProductStore{error: store.ErrProductNotFound})

	_, err := service.FindByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func Test_FilterByQuery(t *testing.T) {
	products := []ProductDto{
		{Name: "iPhone 15 Pro"},
		{Name: "iPhone SE"},
	}

	testCases := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "empty query keeps order", query: "", expected: []string{"iPhone 15 Pro", "iPhone SE"}},
		{name: "uppercase query", query: "SE", expected: []string{"iPhone SE"}},
		{name: "mid-word match", query: "hone 15", expected: []string{"iPhone 15 Pro"}},
		{name: "no match", query: "pixel", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterByQuery(products, tc.query)
			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}
