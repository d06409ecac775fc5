package gateway

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/fallback"
	"github.com/davidbz/aria/internal/observability"
)

// Defaults for the music intro parameters a caller leaves empty.
const (
	DefaultIntroStyle    = "radio"
	DefaultIntroGenre    = "pop"
	DefaultIntroLanguage = "Spanish"
	DefaultIntroDuration = "30 seconds"
)

// maxPlaylistSongs caps how many songs a playlist prompt quotes.
const maxPlaylistSongs = 10

// defaultPlaylistTheme is used when the caller gives no theme or mood.
const defaultPlaylistTheme = "varied"

// GenerateMusicIntro produces a radio-style program introduction on the
// legacy client, falling back to the streaming one when it fails.
func (s *Service) GenerateMusicIntro(ctx context.Context, style, genre, language, duration string) (string, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return "", err
	}

	if style == "" {
		style = DefaultIntroStyle
	}
	if genre == "" {
		genre = DefaultIntroGenre
	}
	if language == "" {
		language = DefaultIntroLanguage
	}
	if duration == "" {
		duration = DefaultIntroDuration
	}

	config, err := s.builder.Build(domain.GenerationRequest{Prompt: musicIntroPrompt(style, genre, language, duration)}, musicIntroDefaults())
	if err != nil {
		return "", err
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	result, err := fallback.Execute(callCtx, s.generateAttempt(s.state.legacy, config), s.generateAttempt(s.state.streaming, config))
	if err != nil {
		return "", err
	}

	return result.Text, nil
}

// GeneratePlaylistDescription writes a short description for a playlist.
// At most ten songs are quoted in the prompt.
func (s *Service) GeneratePlaylistDescription(ctx context.Context, name string, songs []string, theme string) (string, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return "", err
	}

	if name == "" {
		return "", &domain.ValidationError{Field: "playlist_name", Reason: "must not be empty"}
	}

	if len(songs) > maxPlaylistSongs {
		songs = songs[:maxPlaylistSongs]
	}
	if theme == "" {
		theme = defaultPlaylistTheme
	}

	config, err := s.builder.Build(domain.GenerationRequest{Prompt: playlistPrompt(name, theme, songs)}, playlistDefaults())
	if err != nil {
		return "", err
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	result, err := s.state.legacy.Generate(callCtx, config)
	if err != nil {
		return "", err
	}

	return result.Text, nil
}

// AnalyzeMusicPreferences summarizes a user's listening profile.
func (s *Service) AnalyzeMusicPreferences(ctx context.Context, userData map[string]any) (string, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return "", err
	}

	if len(userData) == 0 {
		return "", &domain.ValidationError{Field: "user_data", Reason: "must not be empty"}
	}

	encoded, err := json.MarshalIndent(userData, "", "  ")
	if err != nil {
		return "", &domain.ValidationError{Field: "user_data", Reason: "must be JSON-encodable"}
	}

	config, err := s.builder.Build(domain.GenerationRequest{Prompt: preferencesPrompt(string(encoded))}, preferencesDefaults())
	if err != nil {
		return "", err
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	result, err := s.state.streaming.Generate(callCtx, config)
	if err != nil {
		return "", err
	}

	return result.Text, nil
}

// AnalyzeAudio describes an audio sample: genre, tempo, instruments and
// overall character. Only audio payloads are accepted, and the payload is
// never logged.
func (s *Service) AnalyzeAudio(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return "", err
	}

	if !strings.HasPrefix(mimeType, "audio/") {
		return "", &domain.UnsupportedMediaError{MIMEType: mimeType}
	}
	if len(audio) == 0 {
		return "", &domain.ValidationError{Field: "audio_file", Reason: "must not be empty"}
	}

	logger := observability.FromContext(ctx)
	logger.Info("analyzing audio sample",
		observability.String("mime_type", mimeType),
		observability.Int("audio_bytes", len(audio)),
	)

	config, err := s.builder.Build(domain.GenerationRequest{Prompt: audioAnalysisPrompt}, audioAnalysisDefaults())
	if err != nil {
		return "", err
	}
	config.Media = &domain.MediaPart{MIMEType: mimeType, Data: audio}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	result, err := s.state.streaming.Generate(callCtx, config)
	if err != nil {
		return "", err
	}

	return result.Text, nil
}

// RecommendMusic suggests songs and genres from preferences and listening
// history.
func (s *Service) RecommendMusic(ctx context.Context, preferences map[string]any, history []map[string]any) (string, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return "", err
	}

	if len(preferences) == 0 {
		return "", &domain.ValidationError{Field: "preferences", Reason: "must not be empty"}
	}

	encodedPreferences, err := json.MarshalIndent(preferences, "", "  ")
	if err != nil {
		return "", &domain.ValidationError{Field: "preferences", Reason: "must be JSON-encodable"}
	}

	encodedHistory := []byte("none")
	if len(history) > 0 {
		encodedHistory, err = json.MarshalIndent(history, "", "  ")
		if err != nil {
			return "", &domain.ValidationError{Field: "history", Reason: "must be JSON-encodable"}
		}
	}

	config, err := s.builder.Build(domain.GenerationRequest{Prompt: recommendationPrompt(string(encodedPreferences), string(encodedHistory))}, recommendationDefaults())
	if err != nil {
		return "", err
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	result, err := s.state.streaming.Generate(callCtx, config)
	if err != nil {
		return "", err
	}

	return result.Text, nil
}
