package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/iwholesale/storefront/internal/assistant"
	"github.com/iwholesale/storefront/pkg/web"
)

type promptRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// getTranscript returns the session's chat transcript in order.
func (h *Handler) getTranscript(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, map[string]any{
		"messages": sess.Assistant.Transcript(),
	})
}

// submitPrompt streams the assistant's reply as server-sent events, one
// `data:` event per fragment, finished by `event: done` or `event: error`.
// Returns 409 while an earlier reply is still streaming.
func (h *Handler) submitPrompt(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req promptRequest
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

	flusher, ok := w.(http.Flusher)
	if !ok {
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	// SSE headers are written lazily so an in-flight rejection can still go
	// out as a regular JSON response.
	streaming := false
	startStream := func() {
		if streaming {
			return
		}
		streaming = true
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
	}

	err := sess.Assistant.Submit(r.Context(), req.Prompt, func(fragment string) error {
		startStream()
		payload, marshalErr := json.Marshal(fragment)
		if marshalErr != nil {
			return marshalErr
		}
		if _, writeErr := fmt.Fprintf(w, "data: %s\n\n", payload); writeErr != nil {
			return writeErr
		}
		flusher.Flush()
		return nil
	})

	if err != nil {
		if errors.Is(err, assistant.ErrReplyInFlight) && !streaming {
			web.RespondError(w, h.logger, http.StatusConflict, "A reply is already in flight")
			return
		}
		h.logger.ErrorContext(r.Context(), "Assistant stream failed", "error", err)
		startStream()
		fmt.Fprintf(w, "event: error\ndata: %q\n\n", "Sorry, I encountered an error. Please try again.")
		flusher.Flush()
		return
	}

	startStream()
	fmt.Fprint(w, "event: done\ndata: {}\n\n")
	flusher.Flush()
}
