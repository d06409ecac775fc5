package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/observability"
)

// surfaceVertex tags requests served by the Vertex AI surface.
const surfaceVertex = "vertex-ai"

// maxAudioUploadBytes caps in-memory buffering of multipart uploads (32 MiB).
const maxAudioUploadBytes = 32 << 20

type generateContentRequest struct {
	Prompt          string   `json:"prompt"`
	Temperature     *float64 `json:"temperature"`
	TopP            *float64 `json:"top_p"`
	MaxOutputTokens *int     `json:"max_output_tokens"`
}

type musicRecommendationRequest struct {
	UserPreferences  map[string]any   `json:"user_preferences"`
	ListeningHistory []map[string]any `json:"listening_history"`
}

// HandleGenerateContent serves POST /api/vertex-ai/generate-content.
func (h *Handler) HandleGenerateContent(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceVertex)

	if !h.requireMethod(w, r, http.MethodPost) {
		return
	}

	var req generateContentRequest
	if !h.decodeJSON(ctx, w, r, &req) {
		return
	}

	content, err := h.vertex.GenerateText(ctx, domain.GenerationRequest{
		Prompt:          req.Prompt,
		Temperature:     req.Temperature,
		TopP:            req.TopP,
		MaxOutputTokens: req.MaxOutputTokens,
	}, domain.ModelChoiceStreaming)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"content": content,
		"success": true,
		"message": "content generated successfully",
	})
}

// HandleAnalyzeMusic serves POST /api/vertex-ai/analyze-music. The audio
// arrives as a multipart upload under the audio_file field.
func (h *Handler) HandleAnalyzeMusic(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceVertex)

	if !h.requireMethod(w, r, http.MethodPost) {
		return
	}

	if err := r.ParseMultipartForm(maxAudioUploadBytes); err != nil {
		h.writeError(ctx, w, &domain.ValidationError{
			Field:  "audio_file",
			Reason: fmt.Sprintf("invalid multipart form: %v", err),
		})
		return
	}

	file, header, err := r.FormFile("audio_file")
	if err != nil {
		h.writeError(ctx, w, &domain.ValidationError{
			Field:  "audio_file",
			Reason: "missing audio_file upload",
		})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		h.writeError(ctx, w, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	contentType := header.Header.Get("Content-Type")

	analysis, err := h.vertex.AnalyzeAudio(ctx, audio, contentType)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"analysis":     analysis,
		"filename":     header.Filename,
		"content_type": contentType,
		"success":      true,
	})
}

// HandleMusicRecommendations serves POST /api/vertex-ai/music-recommendations.
func (h *Handler) HandleMusicRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceVertex)

	if !h.requireMethod(w, r, http.MethodPost) {
		return
	}

	var req musicRecommendationRequest
	if !h.decodeJSON(ctx, w, r, &req) {
		return
	}

	recommendations, err := h.vertex.RecommendMusic(ctx, req.UserPreferences, req.ListeningHistory)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"recommendations": recommendations,
		"success":         true,
	})
}

// HandleVertexStatus serves GET /api/vertex-ai/status. A failed probe is
// reported in the body, never as a 5xx.
func (h *Handler) HandleVertexStatus(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceVertex)

	if !h.requireMethod(w, r, http.MethodGet) {
		return
	}

	response, err := h.vertex.TestConnection(ctx)
	if err != nil {
		observability.FromContext(ctx).Warn("status probe failed", observability.Error(err))
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "error",
			"error":   err.Error(),
			"success": false,
		})
		return
	}

	status := h.vertex.GetStatus(ctx)
	model := ""
	if len(status.AvailableModels) > 0 {
		model = status.AvailableModels[0]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "connected",
		"model":         model,
		"test_response": response,
		"success":       true,
	})
}
