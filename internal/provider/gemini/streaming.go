package gemini

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/observability"
	"github.com/davidbz/aria/internal/stream"
)

// StreamingChatClient serves incremental generation. Fragments are emitted
// as the backend produces them; empty chunks are skipped rather than
// forwarded, and only stream exhaustion closes the channel.
type StreamingChatClient struct {
	client *genai.Client
	model  string
}

// NewStreamingChatClient creates a streaming client for the given model.
func NewStreamingChatClient(client *genai.Client, model string) (*StreamingChatClient, error) {
	if client == nil {
		return nil, errors.New("SDK client is required")
	}
	if model == "" {
		return nil, errors.New("model identifier is required")
	}

	return &StreamingChatClient{client: client, model: model}, nil
}

// Generate drains the stream and returns the aggregated text.
func (c *StreamingChatClient) Generate(ctx context.Context, config *domain.GenerationConfig) (*domain.GenerationResult, error) {
	fragments, err := c.GenerateStream(ctx, config)
	if err != nil {
		return nil, err
	}

	text, err := stream.Aggregate(ctx, fragments)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, &domain.GenerationFailure{Model: c.model, Cause: errors.New("backend returned no text")}
	}

	return &domain.GenerationResult{Text: text, Model: c.model}, nil
}

// GenerateStream sends one request and forwards backend chunks as fragments.
func (c *StreamingChatClient) GenerateStream(ctx context.Context, config *domain.GenerationConfig) (<-chan domain.StreamFragment, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling streaming generate content", observability.String("model", c.model))

	fragments := make(chan domain.StreamFragment)

	go func() {
		defer close(fragments)
		defer logger.Debug("stream completed", observability.String("model", c.model))

		for resp, err := range c.client.Models.GenerateContentStream(ctx, c.model, toContents(config), toGenerateContentConfig(config)) {
			if err != nil {
				logger.Error("streaming generate content failed", observability.Error(err))
				sendFragment(ctx, fragments, domain.StreamFragment{Err: &domain.GenerationFailure{Model: c.model, Cause: err}})
				return
			}

			text := responseText(resp)
			if text == "" {
				continue
			}

			if !sendFragment(ctx, fragments, domain.StreamFragment{Text: text}) {
				return
			}
		}
	}()

	return fragments, nil
}

// Model returns the backend model identifier this client targets.
func (c *StreamingChatClient) Model() string {
	return c.model
}
