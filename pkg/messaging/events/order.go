// Package events defines the concrete events the storefront emits.
package events

import (
	"encoding/json"
	"time"

	"github.com/iwholesale/storefront/pkg/messaging"
)

// OrderPlacedEvent is published once per completed checkout. Amounts are in
// minor currency units.
type OrderPlacedEvent struct {
	OrderNumber string    `json:"order_number"`
	SessionID   string    `json:"session_id"`
	Subtotal    int64     `json:"subtotal"`
	GrandTotal  int64     `json:"grand_total"`
	PlacedAt    time.Time `json:"placed_at"`
}

func (o OrderPlacedEvent) Subject() string {
	return messaging.OrdersPlacedSubject
}

func (o OrderPlacedEvent) Payload() ([]byte, error) {
	return json.Marshal(o)
}
