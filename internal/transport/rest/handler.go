// Package rest exposes the storefront over HTTP: catalog browsing, cart
// mutations, view navigation, checkout and the assistant stream.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/iwholesale/storefront/internal/auth"
	"github.com/iwholesale/storefront/internal/catalog"
	"github.com/iwholesale/storefront/internal/checkout"
	"github.com/iwholesale/storefront/internal/session"
	"github.com/iwholesale/storefront/pkg/web"
)

// Handler handles HTTP requests for the storefront API.
type Handler struct {
	catalog  catalog.CatalogService
	checkout checkout.CheckoutService
	auth     auth.Authenticator
	sessions *session.Manager
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new Handler with the given services.
func NewHandler(
	catalogSvc catalog.CatalogService,
	checkoutSvc checkout.CheckoutService,
	authenticator auth.Authenticator,
	sessions *session.Manager,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		catalog:  catalogSvc,
		checkout: checkoutSvc,
		auth:     authenticator,
		sessions: sessions,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes maps API endpoints to handler methods.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(web.SessionMiddleware)

		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/products/{id}/price", h.getProductPrice)

		r.Get("/cart", h.getCart)
		r.Post("/cart/items", h.addCartItem)
		r.Put("/cart/items/{id}", h.updateCartItem)
		r.Delete("/cart/items/{id}", h.removeCartItem)

		r.Get("/view", h.getView)
		r.Post("/view/search", h.setSearch)
		r.Post("/view/select-product", h.selectProduct)
		r.Post("/view/back", h.goBack)
		r.Post("/view/checkout", h.requestCheckout)
		r.Post("/view/continue-shopping", h.continueShopping)
		r.Post("/view/auth", h.goToAuth)

		r.Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)

		r.Get("/checkout/quote", h.getQuote)
		r.Post("/checkout/orders", h.placeOrder)

		r.Get("/assistant/messages", h.getTranscript)
		r.Post("/assistant/messages", h.submitPrompt)
	})
}

// session resolves the request's session, responding 401 when the header is
// missing. The returned session is not locked.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sessionID, ok := web.GetSessionID(w, r, h.logger)
	if !ok {
		return nil, false
	}
	return h.sessions.GetOrCreate(sessionID), true
}

// respondValidationError maps validator failures to a field error map.
func (h *Handler) respondValidationError(w http.ResponseWriter, err validator.ValidationErrors) {
	errorMessages := make(map[string]string)
	for _, fieldError := range err {
		errorMessages[fieldError.Field()] = "failed validation on rule: " + fieldError.Tag()
	}
	web.RespondJSON(w, h.logger, http.StatusBadRequest, map[string]any{"errors": errorMessages})
}
