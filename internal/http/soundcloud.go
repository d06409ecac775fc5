package http

import (
	"net/http"
	"strings"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/observability"
	"github.com/davidbz/aria/internal/soundcloud"
)

// surfaceSoundCloud tags requests served by the SoundCloud proxy.
const surfaceSoundCloud = "soundcloud"

type soundcloudTokenRequest struct {
	Code string `json:"code"`
}

// tokenResponse flattens the exchanged token into the response envelope.
type tokenResponse struct {
	soundcloud.Token
	Success bool `json:"success"`
}

// soundcloudReady answers the proxy routes with 503 when the integration is
// not configured.
func (h *Handler) soundcloudReady(w http.ResponseWriter) bool {
	if h.soundcloud == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"error": "soundcloud integration is not configured",
			"code":  "not_configured",
		})
		return false
	}
	return true
}

// accessToken extracts the SoundCloud token from the query string or the
// Authorization header, accepting both Bearer and OAuth schemes.
func accessToken(r *http.Request) string {
	if token := r.URL.Query().Get("access_token"); token != "" {
		return token
	}

	authorization := r.Header.Get("Authorization")
	switch {
	case strings.HasPrefix(authorization, "Bearer "):
		return strings.TrimPrefix(authorization, "Bearer ")
	case strings.HasPrefix(authorization, "OAuth "):
		return strings.TrimPrefix(authorization, "OAuth ")
	default:
		return authorization
	}
}

// HandleSoundCloudAuthURL serves GET /api/soundcloud/auth/url.
func (h *Handler) HandleSoundCloudAuthURL(w http.ResponseWriter, r *http.Request) {
	if !h.requireMethod(w, r, http.MethodGet) {
		return
	}
	if !h.soundcloudReady(w) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"auth_url":     h.soundcloud.AuthorizeURL(),
		"client_id":    h.soundcloud.ClientID(),
		"redirect_uri": h.soundcloud.RedirectURI(),
		"success":      true,
	})
}

// HandleSoundCloudToken serves POST /api/soundcloud/auth/token.
func (h *Handler) HandleSoundCloudToken(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceSoundCloud)

	if !h.requireMethod(w, r, http.MethodPost) {
		return
	}
	if !h.soundcloudReady(w) {
		return
	}

	var req soundcloudTokenRequest
	if !h.decodeJSON(ctx, w, r, &req) {
		return
	}

	if req.Code == "" {
		h.writeError(ctx, w, &domain.ValidationError{Field: "code", Reason: "must not be empty"})
		return
	}

	token, err := h.soundcloud.ExchangeCode(ctx, req.Code)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: *token, Success: true})
}

// HandleSoundCloudTracks serves GET /api/soundcloud/tracks.
func (h *Handler) HandleSoundCloudTracks(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceSoundCloud)

	if !h.requireMethod(w, r, http.MethodGet) {
		return
	}
	if !h.soundcloudReady(w) {
		return
	}

	tracks, err := h.soundcloud.UserTracks(ctx, accessToken(r))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tracks":      tracks,
		"total_count": len(tracks),
		"success":     true,
	})
}
