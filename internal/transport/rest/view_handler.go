package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/iwholesale/storefront/internal/catalog"
	"github.com/iwholesale/storefront/internal/catalog/store"
	"github.com/iwholesale/storefront/internal/checkout"
	"github.com/iwholesale/storefront/internal/session"
	"github.com/iwholesale/storefront/internal/view"
	"github.com/iwholesale/storefront/pkg/web"
)

type viewResponse struct {
	Screen        view.Screen              `json:"screen"`
	Authenticated bool                     `json:"authenticated"`
	SearchQuery   string                   `json:"search_query"`
	Selected      *catalog.ProductDto      `json:"selected,omitempty"`
	Order         *checkout.ConfirmedOrder `json:"order,omitempty"`
}

// newViewResponse snapshots the machine. Caller must hold the session lock.
func newViewResponse(m *view.Machine) viewResponse {
	return viewResponse{
		Screen:        m.Screen(),
		Authenticated: m.Authenticated(),
		SearchQuery:   m.SearchQuery(),
		Selected:      m.Selected(),
		Order:         m.Order(),
	}
}

// getView returns the active screen and its payload.
func (h *Handler) getView(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	sess.Lock()
	response := newViewResponse(sess.View)
	sess.Unlock()
	web.RespondJSON(w, h.logger, http.StatusOK, response)
}

// transition applies fn to the session's view machine under the session lock
// and responds with the new view state, or 409 when the machine refuses.
func (h *Handler) transition(w http.ResponseWriter, sess *session.Session, refusal string, fn func(m *view.Machine) bool) {
	sess.Lock()
	applied := fn(sess.View)
	response := newViewResponse(sess.View)
	sess.Unlock()

	if !applied {
		web.RespondError(w, h.logger, http.StatusConflict, refusal)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, response)
}

type searchRequest struct {
	Query string `json:"query"`
}

// setSearch records the listing filter text.
func (h *Handler) setSearch(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess.Lock()
	sess.View.SetSearchQuery(req.Query)
	response := newViewResponse(sess.View)
	sess.Unlock()
	web.RespondJSON(w, h.logger, http.StatusOK, response)
}

type selectProductRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// selectProduct opens the detail screen for a product. Only valid from the
// listing screen.
func (h *Handler) selectProduct(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req selectProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductID == uuid.Nil {
		web.RespondError(w, h.logger, http.StatusBadRequest, "product_id is required")
		return
	}

	product, err := h.catalog.FindByID(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			web.RespondError(w, h.logger, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "Failed to fetch product", "id", req.ProductID, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	h.transition(w, sess, "Products can only be opened from the listing screen", func(m *view.Machine) bool {
		return m.SelectProduct(product)
	})
}

// goBack returns to the listing from the detail, checkout or auth screen.
func (h *Handler) goBack(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.transition(w, sess, "Nothing to go back to", (*view.Machine).Back)
}

// requestCheckout opens the checkout screen. Refused when the cart is empty.
func (h *Handler) requestCheckout(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.transition(w, sess, "Checkout requires a non-empty cart on the listing or detail screen", func(m *view.Machine) bool {
		return m.RequestCheckout(sess.Cart.Count() == 0)
	})
}

// continueShopping dismisses the confirmation screen.
func (h *Handler) continueShopping(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.transition(w, sess, "No confirmation to dismiss", (*view.Machine).ContinueShopping)
}

// goToAuth opens the sign-in screen. Idempotent; repeating it on the auth
// screen succeeds without changing state.
func (h *Handler) goToAuth(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.transition(w, sess, "Cannot open the sign-in screen", (*view.Machine).GoToAuth)
}
