package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/iwholesale/storefront/internal/auth"
	"github.com/iwholesale/storefront/internal/view"
	"github.com/iwholesale/storefront/pkg/web"
)

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// login verifies the credentials with the authentication provider. On
// failure the reason is surfaced inline and the view stays on the auth
// screen; on success the view returns to the listing, authenticated.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req loginRequest
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
	defer sess.Unlock()

	if sess.View.Screen() != view.ScreenAuth {
		web.RespondError(w, h.logger, http.StatusConflict, "Not on the sign-in screen")
		return
	}

	if err := h.auth.Authenticate(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			web.RespondError(w, h.logger, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "Authentication provider error", "error", err)
		web.RespondError(w, h.logger, http.StatusServiceUnavailable, "Authentication provider unavailable")
		return
	}

	sess.View.LoginSucceeded()
	web.RespondJSON(w, h.logger, http.StatusOK, newViewResponse(sess.View))
}

// logout clears the authentication flag without navigating.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	sess.Lock()
	sess.View.SignOut()
	response := newViewResponse(sess.View)
	sess.Unlock()
	web.RespondJSON(w, h.logger, http.StatusOK, response)
}
