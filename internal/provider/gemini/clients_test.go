package gemini

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewLegacyTextClient(t *testing.T) {
	t.Run("should require an SDK client", func(t *testing.T) {
		client, err := NewLegacyTextClient(nil, "gemini-2.0-flash-lite")
		require.Error(t, err)
		require.Nil(t, client)
	})

	t.Run("should require a model identifier", func(t *testing.T) {
		client, err := NewLegacyTextClient(&genai.Client{}, "")
		require.Error(t, err)
		require.Nil(t, client)
	})

	t.Run("should expose the target model", func(t *testing.T) {
		client, err := NewLegacyTextClient(&genai.Client{}, "gemini-2.0-flash-lite")
		require.NoError(t, err)
		require.Equal(t, "gemini-2.0-flash-lite", client.Model())
	})
}

func TestNewStreamingChatClient(t *testing.T) {
	t.Run("should require an SDK client", func(t *testing.T) {
		client, err := NewStreamingChatClient(nil, "gemini-2.5-flash")
		require.Error(t, err)
		require.Nil(t, client)
	})

	t.Run("should require a model identifier", func(t *testing.T) {
		client, err := NewStreamingChatClient(&genai.Client{}, "")
		require.Error(t, err)
		require.Nil(t, client)
	})

	t.Run("should expose the target model", func(t *testing.T) {
		client, err := NewStreamingChatClient(&genai.Client{}, "gemini-2.5-flash")
		require.NoError(t, err)
		require.Equal(t, "gemini-2.5-flash", client.Model())
	})
}
