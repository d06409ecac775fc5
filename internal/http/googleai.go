package http

import (
	"fmt"
	"net/http"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/gateway"
	"github.com/davidbz/aria/internal/observability"
)

// surfaceStudio tags requests served by the Gemini Developer API surface.
const surfaceStudio = "google-ai"

// Fixed values for the radio intro route.
const (
	defaultRadioProgram = "SW Music Radio"
	radioIntroLanguage  = "Spanish"

	radioIntroTemperature = 0.8
	radioIntroMaxTokens   = 256
)

type generateTextRequest struct {
	Prompt          string   `json:"prompt"`
	Model           string   `json:"model"`
	Temperature     *float64 `json:"temperature"`
	TopP            *float64 `json:"top_p"`
	TopK            *int     `json:"top_k"`
	MaxOutputTokens *int     `json:"max_output_tokens"`
}

type musicIntroRequest struct {
	Style    string `json:"style"`
	Genre    string `json:"genre"`
	Language string `json:"language"`
	Duration string `json:"duration"`
}

type playlistDescriptionRequest struct {
	PlaylistName string   `json:"playlist_name"`
	Songs        []string `json:"songs"`
	Theme        string   `json:"theme"`
}

type analyzePreferencesRequest struct {
	UserData map[string]any `json:"user_data"`
}

type radioIntroRequest struct {
	Genre       string `json:"genre"`
	ProgramName string `json:"program_name"`
}

// resolveModelChoice maps wire model names, including the historical aliases,
// onto a model choice. Unknown names pass through so the gateway can reject
// them with a field-level validation error.
func resolveModelChoice(model string) domain.ModelChoice {
	switch model {
	case "", "legacy", "text-bison":
		return domain.ModelChoiceLegacy
	case "streaming", "gemini-pro":
		return domain.ModelChoiceStreaming
	default:
		return domain.ModelChoice(model)
	}
}

// HandleGenerateText serves POST /api/google-ai/generate-text.
func (h *Handler) HandleGenerateText(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceStudio)

	if !h.requireMethod(w, r, http.MethodPost) {
		return
	}

	var req generateTextRequest
	if !h.decodeJSON(ctx, w, r, &req) {
		return
	}

	choice := resolveModelChoice(req.Model)
	ctx = observability.WithModel(ctx, string(choice))

	content, err := h.studio.GenerateText(ctx, domain.GenerationRequest{
		Prompt:          req.Prompt,
		Temperature:     req.Temperature,
		TopP:            req.TopP,
		TopK:            req.TopK,
		MaxOutputTokens: req.MaxOutputTokens,
	}, choice)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"content":    content,
		"model_used": string(choice),
		"success":    true,
	})
}

// HandleGenerateMusicIntro serves POST /api/google-ai/generate-music-intro.
func (h *Handler) HandleGenerateMusicIntro(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceStudio)

	if !h.requireMethod(w, r, http.MethodPost) {
		return
	}

	var req musicIntroRequest
	if !h.decodeJSON(ctx, w, r, &req) {
		return
	}

	style := orDefault(req.Style, gateway.DefaultIntroStyle)
	genre := orDefault(req.Genre, gateway.DefaultIntroGenre)
	language := orDefault(req.Language, gateway.DefaultIntroLanguage)
	duration := orDefault(req.Duration, gateway.DefaultIntroDuration)

	intro, err := h.studio.GenerateMusicIntro(ctx, style, genre, language, duration)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"intro":    intro,
		"style":    style,
		"genre":    genre,
		"language": language,
		"success":  true,
	})
}

// HandleGeneratePlaylistDescription serves
// POST /api/google-ai/generate-playlist-description.
func (h *Handler) HandleGeneratePlaylistDescription(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceStudio)

	if !h.requireMethod(w, r, http.MethodPost) {
		return
	}

	var req playlistDescriptionRequest
	if !h.decodeJSON(ctx, w, r, &req) {
		return
	}

	description, err := h.studio.GeneratePlaylistDescription(ctx, req.PlaylistName, req.Songs, req.Theme)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"description":   description,
		"playlist_name": req.PlaylistName,
		"songs_count":   len(req.Songs),
		"success":       true,
	})
}

// HandleAnalyzeMusicPreferences serves
// POST /api/google-ai/analyze-music-preferences.
func (h *Handler) HandleAnalyzeMusicPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceStudio)

	if !h.requireMethod(w, r, http.MethodPost) {
		return
	}

	var req analyzePreferencesRequest
	if !h.decodeJSON(ctx, w, r, &req) {
		return
	}

	analysis, err := h.studio.AnalyzeMusicPreferences(ctx, req.UserData)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"analysis": analysis,
		"success":  true,
	})
}

// HandleServiceStatus serves GET /api/google-ai/service-status. The surface
// state is reported as data, never as a 5xx.
func (h *Handler) HandleServiceStatus(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceStudio)

	if !h.requireMethod(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Status:  h.studio.GetStatus(ctx),
		Success: true,
	})
}

// HandleTestConnection serves GET /api/google-ai/test-connection.
func (h *Handler) HandleTestConnection(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceStudio)

	if !h.requireMethod(w, r, http.MethodGet) {
		return
	}

	response, err := h.studio.TestConnection(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "connected",
		"test_response": response,
		"success":       true,
	})
}

// radioIntroPrompt is the fixed prompt behind the radio intro route.
func radioIntroPrompt(programName, genre string) string {
	return fmt.Sprintf(`Write a radio intro in %s for a program called %q that specializes in %s music.

The intro should:
- Be energetic and professional
- Last roughly 30 seconds when read aloud
- Include the program name
- Mention the musical genre
- End with a phrase that invites the audience to keep listening

Do not use asterisks or sound effect annotations.`, radioIntroLanguage, programName, genre)
}

// HandleRadioIntro serves POST /api/google-ai/radio-intro.
func (h *Handler) HandleRadioIntro(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithSurface(r.Context(), surfaceStudio)

	if !h.requireMethod(w, r, http.MethodPost) {
		return
	}

	var req radioIntroRequest
	if !h.decodeJSON(ctx, w, r, &req) {
		return
	}

	genre := orDefault(req.Genre, gateway.DefaultIntroGenre)
	programName := orDefault(req.ProgramName, defaultRadioProgram)

	temperature := radioIntroTemperature
	maxOutputTokens := radioIntroMaxTokens

	intro, err := h.studio.GenerateText(ctx, domain.GenerationRequest{
		Prompt:          radioIntroPrompt(programName, genre),
		Temperature:     &temperature,
		MaxOutputTokens: &maxOutputTokens,
	}, domain.ModelChoiceLegacy)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"intro":        intro,
		"program_name": programName,
		"genre":        genre,
		"language":     radioIntroLanguage,
		"success":      true,
	})
}
