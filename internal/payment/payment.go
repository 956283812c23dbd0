// Package payment defines the payment processor port invoked with the order
// grand total at checkout.
package payment

import (
	"context"
	"errors"
)

// ErrPaymentDeclined is returned when the processor refuses the charge.
var ErrPaymentDeclined = errors.New("payment declined")

// Processor charges the given amount in minor currency units. A nil error
// means the charge succeeded.
type Processor interface {
	Charge(ctx context.Context, amount int64) error
}
