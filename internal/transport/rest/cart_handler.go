package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/iwholesale/storefront/internal/cart"
	"github.com/iwholesale/storefront/internal/catalog/store"
	"github.com/iwholesale/storefront/pkg/web"
)

type addItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int32     `json:"quantity"   validate:"required,min=1,max=1000000"`
}

type updateItemRequest struct {
	// Quantity below 1 removes the line item. Non-integer input fails JSON
	// decoding and is rejected with 400.
	Quantity int32 `json:"quantity" validate:"max=1000000"`
}

type cartResponse struct {
	Items    []cart.LineItem `json:"items"`
	Count    int32           `json:"count"`
	Subtotal int64           `json:"subtotal"`
}

func newCartResponse(c *cart.Cart) cartResponse {
	return cartResponse{
		Items:    c.Items(),
		Count:    c.Count(),
		Subtotal: c.Subtotal(),
	}
}

// getCart returns the session's cart with derived count and subtotal.
func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	sess.Lock()
	response := newCartResponse(sess.Cart)
	sess.Unlock()
	web.RespondJSON(w, h.logger, http.StatusOK, response)
}

// addCartItem adds a product to the cart, aggregating quantity when a line
// item for the product already exists.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.respondValidationError(w, validationErrors)
			return
		}
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request")
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

	sess.Lock()
	sess.Cart.Add(cart.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		ImageURL:  product.ImageURL,
		UnitPrice: product.Price,
		Quantity:  req.Quantity,
	})
	response := newCartResponse(sess.Cart)
	sess.Unlock()
	web.RespondJSON(w, h.logger, http.StatusCreated, response)
}

// updateCartItem sets a line item's quantity to the exact value given. A
// quantity below 1 removes the line item.
func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.respondValidationError(w, validationErrors)
			return
		}
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request")
		return
	}

	sess.Lock()
	sess.Cart.SetQuantity(id, req.Quantity)
	response := newCartResponse(sess.Cart)
	sess.Unlock()
	web.RespondJSON(w, h.logger, http.StatusOK, response)
}

// removeCartItem deletes a line item. Removing an absent product succeeds.
func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	sess.Lock()
	sess.Cart.Remove(id)
	response := newCartResponse(sess.Cart)
	sess.Unlock()
	web.RespondJSON(w, h.logger, http.StatusOK, response)
}
