// Package echo provides a testing client that echoes the prompt back.
// It implements the domain.ProviderClient interface without external API
// calls, providing deterministic responses for testing and development.
package echo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/observability"
)

const (
	modelName  = "echo-1"
	chunkDelay = 10 * time.Millisecond
)

// Client implements domain.ProviderClient by echoing prompts.
type Client struct {
	model string
}

// NewClient creates an echo client. No configuration is required as the
// client operates entirely in-memory.
func NewClient() *Client {
	return &Client{model: modelName}
}

// Generate returns the prompt as the generated text.
func (c *Client) Generate(ctx context.Context, config *domain.GenerationConfig) (*domain.GenerationResult, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("echoing prompt")

	return &domain.GenerationResult{Text: config.Prompt, Model: c.model}, nil
}

// GenerateStream returns the prompt word by word with a small delay.
func (c *Client) GenerateStream(ctx context.Context, config *domain.GenerationConfig) (<-chan domain.StreamFragment, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("streaming echoed prompt")

	fragments := make(chan domain.StreamFragment)

	go func() {
		defer close(fragments)

		words := strings.Fields(config.Prompt)
		for i, word := range words {
			text := word
			if i < len(words)-1 {
				text += " "
			}

			select {
			case <-ctx.Done():
				return
			case fragments <- domain.StreamFragment{Text: text}:
				time.Sleep(chunkDelay)
			}
		}
	}()

	return fragments, nil
}

// Model returns the echo model identifier.
func (c *Client) Model() string {
	return c.model
}
