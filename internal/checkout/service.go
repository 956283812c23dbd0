// Package checkout derives order totals from cart snapshots and turns a
// successful charge into an immutable confirmed order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/iwholesale/storefront/internal/cart"
	"github.com/iwholesale/storefront/internal/payment"
	"github.com/iwholesale/storefront/internal/pricing"
	"github.com/iwholesale/storefront/pkg/messaging"
	"github.com/iwholesale/storefront/pkg/messaging/events"
)

// ErrCartEmpty is returned when placement is attempted with no line items.
var ErrCartEmpty = errors.New("cart is empty")

// CheckoutService defines the business logic contract for checkout.
type CheckoutService interface {
	// Quote returns the totals breakdown for a cart snapshot without
	// placing an order.
	Quote(snapshot cart.Snapshot) pricing.Breakdown

	// PlaceOrder charges the grand total and, on success, returns the
	// confirmed order snapshot. Returns payment.ErrPaymentDeclined when the
	// processor refuses the charge and ErrCartEmpty for an empty snapshot.
	PlaceOrder(ctx context.Context, sessionID string, snapshot cart.Snapshot) (*ConfirmedOrder, error)
}

// Service implements CheckoutService on top of the payment processor port
// and the event publisher.
type Service struct {
	payment       payment.Processor
	publisher     messaging.Publisher
	logger        *slog.Logger
	now           func() time.Time
	ordersCounter metric.Int64Counter
}

var _ CheckoutService = (*Service)(nil)

func NewService(processor payment.Processor, publisher messaging.Publisher, logger *slog.Logger) *Service {
	meter := otel.Meter("storefront")
	counter, err := meter.Int64Counter("orders_placed",
		metric.WithDescription("Number of successfully placed orders"))
	if err != nil {
		logger.Warn("failed to create orders counter", "error", err)
	}
	return &Service{
		payment:       processor,
		publisher:     publisher,
		logger:        logger,
		now:           time.Now,
		ordersCounter: counter,
	}
}

func (s *Service) Quote(snapshot cart.Snapshot) pricing.Breakdown {
	return pricing.OrderTotals(snapshot.Subtotal)
}

func (s *Service) PlaceOrder(ctx context.Context, sessionID string, snapshot cart.Snapshot) (*ConfirmedOrder, error) {
	if len(snapshot.Items) == 0 {
		return nil, ErrCartEmpty
	}

	totals := pricing.OrderTotals(snapshot.Subtotal)
	if err := s.payment.Charge(ctx, totals.GrandTotal); err != nil {
		return nil, fmt.Errorf("charge failed: %w", err)
	}

	order := buildOrder(snapshot, s.now())
	s.logger.InfoContext(ctx, "order placed",
		"order_number", order.Number,
		"grand_total", order.Totals.GrandTotal,
		"items", len(order.Items),
	)

	event := events.OrderPlacedEvent{
		OrderNumber: order.Number,
		SessionID:   sessionID,
		Subtotal:    order.Totals.Subtotal,
		GrandTotal:  order.Totals.GrandTotal,
		PlacedAt:    order.PlacedAt,
	}
	// publishing is best effort; the order already exists
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order placed event",
			"order_number", order.Number, "error", err)
	}

	if s.ordersCounter != nil {
		s.ordersCounter.Add(ctx, 1)
	}
	return order, nil
}
