package stream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/provider/echo"
	"github.com/davidbz/aria/internal/stream"
)

func fragmentChannel(fragments ...domain.StreamFragment) <-chan domain.StreamFragment {
	ch := make(chan domain.StreamFragment, len(fragments))
	for _, fragment := range fragments {
		ch <- fragment
	}
	close(ch)
	return ch
}

func TestAggregate(t *testing.T) {
	t.Run("should concatenate fragments in arrival order", func(t *testing.T) {
		fragments := fragmentChannel(
			domain.StreamFragment{Text: "He"},
			domain.StreamFragment{Text: "llo"},
			domain.StreamFragment{Text: ""},
			domain.StreamFragment{Text: " world"},
		)

		text, err := stream.Aggregate(context.Background(), fragments)
		require.NoError(t, err)
		require.Equal(t, "Hello world", text)
	})

	t.Run("should return empty text for an empty stream", func(t *testing.T) {
		text, err := stream.Aggregate(context.Background(), fragmentChannel())
		require.NoError(t, err)
		require.Empty(t, text)
	})

	t.Run("should propagate a mid-stream error and discard partial text", func(t *testing.T) {
		cause := errors.New("connection reset")
		fragments := fragmentChannel(
			domain.StreamFragment{Text: "Par"},
			domain.StreamFragment{Err: cause},
		)

		text, err := stream.Aggregate(context.Background(), fragments)
		require.ErrorIs(t, err, cause)
		require.Empty(t, text)
	})

	t.Run("should preserve order across many fragments", func(t *testing.T) {
		parts := []domain.StreamFragment{
			{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}, {Text: "e"},
		}

		text, err := stream.Aggregate(context.Background(), fragmentChannel(parts...))
		require.NoError(t, err)
		require.Equal(t, "abcde", text)
	})

	t.Run("should reassemble a live stream from the echo client", func(t *testing.T) {
		client := echo.NewClient()

		fragments, err := client.GenerateStream(context.Background(), &domain.GenerationConfig{
			Prompt: "upbeat synthwave with heavy bass",
		})
		require.NoError(t, err)

		text, err := stream.Aggregate(context.Background(), fragments)
		require.NoError(t, err)
		require.Equal(t, "upbeat synthwave with heavy bass", text)
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		blocked := make(chan domain.StreamFragment)

		done := make(chan struct{})
		var text string
		var err error
		go func() {
			defer close(done)
			text, err = stream.Aggregate(ctx, blocked)
		}()

		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("aggregation did not stop on cancellation")
		}
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, text)
	})
}
