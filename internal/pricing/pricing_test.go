package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_TieredUnitPrice(t *testing.T) {
	testCases := []struct {
		name      string
		basePrice int64
		quantity  int32
		expected  int64
	}{
		{name: "below first breakpoint", basePrice: 100, quantity: 49, expected: 100},
		{name: "at first breakpoint", basePrice: 100, quantity: 50, expected: 90},
		{name: "between breakpoints", basePrice: 100, quantity: 99, expected: 90},
		{name: "at second breakpoint", basePrice: 100, quantity: 100, expected: 85},
		{name: "above second breakpoint", basePrice: 100, quantity: 500, expected: 85},
		{name: "minimum order quantity", basePrice: 100, quantity: 10, expected: 100},
		{name: "fractional cents truncate", basePrice: 99, quantity: 100, expected: 84},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TieredUnitPrice(tc.basePrice, tc.quantity))
		})
	}
}

func Test_ClampQuantity(t *testing.T) {
	assert.Equal(t, MinOrderQuantity, ClampQuantity(0))
	assert.Equal(t, MinOrderQuantity, ClampQuantity(9))
	assert.Equal(t, MinOrderQuantity, ClampQuantity(10))
	assert.Equal(t, int32(11), ClampQuantity(11))
}

func Test_OrderTotals(t *testing.T) {
	b := OrderTotals(100_000)

	assert.Equal(t, int64(100_000), b.Subtotal)
	assert.Equal(t, ShippingFee, b.Shipping)
	assert.Equal(t, int64(8_000), b.Tax)
	assert.Equal(t, int64(113_000), b.GrandTotal)
}

// The checkout preview and the confirmation screen must show the same number
// for the same cart.
func Test_OrderTotals_Deterministic(t *testing.T) {
	assert.Equal(t, OrderTotals(123_45), OrderTotals(123_45))
}
