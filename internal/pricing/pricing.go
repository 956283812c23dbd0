// Package pricing implements the wholesale price tiers and the order cost
// breakdown. All amounts are integer minor currency units (cents).
package pricing

const (
	// MinOrderQuantity is the smallest orderable quantity per product.
	// Callers clamp smaller quantities up to it before pricing.
	MinOrderQuantity int32 = 10

	tier10Quantity int32 = 50
	tier15Quantity int32 = 100

	// ShippingFee is the flat wholesale shipping rate per order.
	ShippingFee int64 = 5000
	// TaxRatePercent is applied to the order subtotal.
	TaxRatePercent int64 = 8
)

// TieredUnitPrice returns the effective per-unit price for the given base
// price and ordered quantity. The tiers form a step function: 10% off at 50
// units, 15% off at 100 units.
func TieredUnitPrice(basePrice int64, quantity int32) int64 {
	switch {
	case quantity >= tier15Quantity:
		return basePrice * 85 / 100
	case quantity >= tier10Quantity:
		return basePrice * 90 / 100
	default:
		return basePrice
	}
}

// ClampQuantity raises quantities below the wholesale minimum to
// MinOrderQuantity.
func ClampQuantity(quantity int32) int32 {
	if quantity < MinOrderQuantity {
		return MinOrderQuantity
	}
	return quantity
}

// Breakdown is the cost summary shown on the checkout preview and repeated
// verbatim on the order confirmation.
type Breakdown struct {
	Subtotal   int64 `json:"subtotal"`
	Shipping   int64 `json:"shipping"`
	Tax        int64 `json:"tax"`
	GrandTotal int64 `json:"grand_total"`
}

// OrderTotals derives the cost breakdown from a cart subtotal. Checkout
// preview and confirmation both call this, so the two screens always agree.
func OrderTotals(subtotal int64) Breakdown {
	tax := subtotal * TaxRatePercent / 100
	return Breakdown{
		Subtotal:   subtotal,
		Shipping:   ShippingFee,
		Tax:        tax,
		GrandTotal: subtotal + ShippingFee + tax,
	}
}
