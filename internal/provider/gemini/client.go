// Package gemini provides provider clients backed by the Google Gen AI SDK.
// The same clients serve both product surfaces: an API key selects the
// Gemini Developer API backend while ambient credentials select Vertex AI.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/davidbz/aria/internal/domain"
)

// Config describes how to reach the backend and which models to target.
type Config struct {
	APIKey         string
	Region         string
	LegacyModel    string
	StreamingModel string
}

// NewClient builds an SDK client for the resolved authentication method.
func NewClient(ctx context.Context, cfg Config, outcome domain.AuthOutcome) (*genai.Client, error) {
	switch outcome.Method {
	case domain.AuthMethodAPIKey:
		if cfg.APIKey == "" {
			return nil, errors.New("API key authentication selected but no key configured")
		}
		return genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
	case domain.AuthMethodAmbient:
		if outcome.ProjectID == "" {
			return nil, errors.New("ambient authentication selected but no project resolved")
		}
		return genai.NewClient(ctx, &genai.ClientConfig{
			Project:  outcome.ProjectID,
			Location: cfg.Region,
			Backend:  genai.BackendVertexAI,
		})
	default:
		return nil, fmt.Errorf("no SDK client for auth method %q", outcome.Method)
	}
}

// NewFactory returns a provider factory that builds the legacy text client
// and the streaming chat client over one shared SDK client.
func NewFactory(cfg Config) domain.ProviderFactory {
	return func(ctx context.Context, outcome domain.AuthOutcome) (domain.ProviderClient, domain.ProviderClient, error) {
		client, err := NewClient(ctx, cfg, outcome)
		if err != nil {
			return nil, nil, fmt.Errorf("building SDK client: %w", err)
		}

		legacy, err := NewLegacyTextClient(client, cfg.LegacyModel)
		if err != nil {
			return nil, nil, err
		}

		streaming, err := NewStreamingChatClient(client, cfg.StreamingModel)
		if err != nil {
			return nil, nil, err
		}

		return legacy, streaming, nil
	}
}
