package gemini

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/observability"
)

// LegacyTextClient serves single-shot text generation. It issues one
// blocking request per call and never streams from the backend.
type LegacyTextClient struct {
	client *genai.Client
	model  string
}

// NewLegacyTextClient creates a single-shot client for the given model.
func NewLegacyTextClient(client *genai.Client, model string) (*LegacyTextClient, error) {
	if client == nil {
		return nil, errors.New("SDK client is required")
	}
	if model == "" {
		return nil, errors.New("model identifier is required")
	}

	return &LegacyTextClient{client: client, model: model}, nil
}

// Generate sends one request and returns the complete generated text.
func (c *LegacyTextClient) Generate(ctx context.Context, config *domain.GenerationConfig) (*domain.GenerationResult, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling generate content", observability.String("model", c.model))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, toContents(config), toGenerateContentConfig(config))
	if err != nil {
		logger.Error("generate content failed", observability.Error(err))
		return nil, &domain.GenerationFailure{Model: c.model, Cause: err}
	}

	text := responseText(resp)
	if text == "" {
		return nil, &domain.GenerationFailure{Model: c.model, Cause: errors.New("backend returned no text")}
	}

	return &domain.GenerationResult{Text: text, Model: c.model}, nil
}

// GenerateStream degrades to a single-fragment stream carrying the full
// response, so callers can treat both client kinds uniformly.
func (c *LegacyTextClient) GenerateStream(ctx context.Context, config *domain.GenerationConfig) (<-chan domain.StreamFragment, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	fragments := make(chan domain.StreamFragment, 1)

	go func() {
		defer close(fragments)

		result, err := c.Generate(ctx, config)
		if err != nil {
			sendFragment(ctx, fragments, domain.StreamFragment{Err: err})
			return
		}

		sendFragment(ctx, fragments, domain.StreamFragment{Text: result.Text})
	}()

	return fragments, nil
}

// Model returns the backend model identifier this client targets.
func (c *LegacyTextClient) Model() string {
	return c.model
}
