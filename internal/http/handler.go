package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/gateway"
	"github.com/davidbz/aria/internal/observability"
	"github.com/davidbz/aria/internal/soundcloud"
)

// Handler handles HTTP requests.
type Handler struct {
	studio     *gateway.Service
	vertex     *gateway.Service
	soundcloud *soundcloud.Client
}

// NewHandler creates a new HTTP handler (DI constructor). The SoundCloud
// client may be nil when the integration is not configured; its routes then
// answer 503.
func NewHandler(studio, vertex *gateway.Service, sc *soundcloud.Client) *Handler {
	return &Handler{
		studio:     studio,
		vertex:     vertex,
		soundcloud: sc,
	}
}

// statusResponse flattens a surface status into the response envelope.
type statusResponse struct {
	domain.Status
	Success bool `json:"success"`
}

// writeJSON serializes payload with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

// writeError maps the error to transport semantics and writes the error
// envelope.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, code := classifyError(err)

	observability.FromContext(ctx).Error("request failed",
		observability.String("code", code),
		observability.Error(err),
	)

	writeJSON(w, status, map[string]any{
		"error": err.Error(),
		"code":  code,
	})
}

// classifyError maps the error taxonomy to an HTTP status and a
// machine-readable code.
func classifyError(err error) (int, string) {
	var (
		validation *domain.ValidationError
		media      *domain.UnsupportedMediaError
		notInit    *domain.NotInitializedError
		generation *domain.GenerationFailure
		auth       *soundcloud.AuthError
	)

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, "validation_error"
	case errors.As(err, &media):
		return http.StatusUnsupportedMediaType, "unsupported_media"
	case errors.As(err, &notInit):
		return http.StatusServiceUnavailable, "not_initialized"
	case errors.As(err, &generation):
		return http.StatusBadGateway, "generation_failed"
	case errors.As(err, &auth):
		return http.StatusUnauthorized, "unauthorized"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// decodeJSON parses the request body into dst, answering 400 on bad input.
func (h *Handler) decodeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(ctx, w, &domain.ValidationError{
			Field:  "body",
			Reason: fmt.Sprintf("invalid JSON: %v", err),
		})
		return false
	}
	return true
}

// requireMethod rejects requests with the wrong HTTP method.
func (h *Handler) requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{
			"error": "method not allowed",
			"code":  "method_not_allowed",
		})
		return false
	}
	return true
}

// orDefault substitutes fallback for an empty value.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
