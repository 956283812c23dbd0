package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/iwholesale/storefront/internal/catalog/store"
	"github.com/iwholesale/storefront/internal/pricing"
	"github.com/iwholesale/storefront/pkg/web"
)

// listProducts returns the catalog, filtered by the optional query parameter.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list products", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to list products")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, products)
}

// getProduct returns a single product by ID.
func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	product, err := h.catalog.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			web.RespondError(w, h.logger, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "Failed to fetch product", "id", id, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, product)
}

type priceResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int32     `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
	LineTotal int64     `json:"line_total"`
}

// getProductPrice returns the tiered unit price for a quantity. Quantities
// below the wholesale minimum are clamped up before pricing; the clamped
// quantity is echoed back.
func (h *Handler) getProductPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	quantity := pricing.MinOrderQuantity
	if raw := r.URL.Query().Get("quantity"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 1 {
			web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid quantity: "+raw)
			return
		}
		quantity = pricing.ClampQuantity(int32(parsed))
	}

	product, err := h.catalog.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			web.RespondError(w, h.logger, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "Failed to fetch product", "id", id, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	unitPrice := pricing.TieredUnitPrice(product.Price, quantity)
	web.RespondJSON(w, h.logger, http.StatusOK, priceResponse{
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice * int64(quantity),
	})
}
