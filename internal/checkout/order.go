package checkout

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iwholesale/storefront/internal/cart"
	"github.com/iwholesale/storefront/internal/pricing"
)

// DeliveryEstimateDays is added to the placement time for the estimated
// delivery date shown on the confirmation screen.
const DeliveryEstimateDays = 7

// ConfirmedOrder is an immutable snapshot taken at the moment of purchase.
// It is decoupled from the live cart, which is cleared right after the
// snapshot is taken.
type ConfirmedOrder struct {
	Number           string            `json:"number"`
	PlacedAt         time.Time         `json:"placed_at"`
	DeliveryEstimate time.Time         `json:"delivery_estimate"`
	Items            []cart.LineItem   `json:"items"`
	Totals           pricing.Breakdown `json:"totals"`
}

// newOrderNumber returns a short uppercase alphanumeric order reference.
func newOrderNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:8])
}

// buildOrder assembles a ConfirmedOrder from a cart snapshot at the given
// placement time.
func buildOrder(snapshot cart.Snapshot, placedAt time.Time) *ConfirmedOrder {
	return &ConfirmedOrder{
		Number:           newOrderNumber(),
		PlacedAt:         placedAt,
		DeliveryEstimate: placedAt.AddDate(0, 0, DeliveryEstimateDays),
		Items:            snapshot.Items,
		Totals:           pricing.OrderTotals(snapshot.Subtotal),
	}
}
