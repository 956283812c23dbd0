package rest

import (
	"errors"
	"net/http"

	"github.com/iwholesale/storefront/internal/cart"
	"github.com/iwholesale/storefront/internal/checkout"
	"github.com/iwholesale/storefront/internal/payment"
	"github.com/iwholesale/storefront/internal/pricing"
	"github.com/iwholesale/storefront/internal/view"
	"github.com/iwholesale/storefront/pkg/web"
)

type quoteResponse struct {
	Items  []cart.LineItem   `json:"items"`
	Totals pricing.Breakdown `json:"totals"`
}

// getQuote previews the totals for the current cart without placing an
// order. The figures are identical to what a placed order will carry.
func (h *Handler) getQuote(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	sess.Lock()
	snapshot := sess.Cart.Snapshot()
	sess.Unlock()

	web.RespondJSON(w, h.logger, http.StatusOK, quoteResponse{
		Items:  snapshot.Items,
		Totals: h.checkout.Quote(snapshot),
	})
}

// placeOrder charges the grand total and, on success, clears the cart and
// moves the view to the confirmation screen. Payment failure surfaces
// inline; the view stays on checkout for a retry.
func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.View.Screen() != view.ScreenCheckout {
		web.RespondError(w, h.logger, http.StatusConflict, "Not on the checkout screen")
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), sess.ID, sess.Cart.Snapshot())
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrCartEmpty):
			web.RespondError(w, h.logger, http.StatusConflict, "Cart is empty")
		case errors.Is(err, payment.ErrPaymentDeclined):
			web.RespondError(w, h.logger, http.StatusPaymentRequired, "Payment was declined")
		default:
			h.logger.ErrorContext(r.Context(), "Failed to place order", "error", err)
			web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to place order")
		}
		return
	}

	sess.Cart.Clear()
	sess.View.PlaceOrder(order)
	web.RespondJSON(w, h.logger, http.StatusCreated, order)
}
