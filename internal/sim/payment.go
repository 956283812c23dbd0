package sim

import (
	"context"
	"time"

	"github.com/iwholesale/storefront/internal/payment"
)

var _ payment.Processor = (*Payment)(nil)

// Payment simulates a payment processor that approves every charge after a
// fixed delay. DeclineAll flips it into a rejecting processor for testing
// the failure path end to end.
type Payment struct {
	Delay      time.Duration
	DeclineAll bool
}

func NewPayment(delay time.Duration) *Payment {
	return &Payment{Delay: delay}
}

func (p *Payment) Charge(ctx context.Context, _ int64) error {
	if err := wait(ctx, p.Delay); err != nil {
		return err
	}
	if p.DeclineAll {
		return payment.ErrPaymentDeclined
	}
	return nil
}
