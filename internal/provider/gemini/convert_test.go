package gemini

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/davidbz/aria/internal/domain"
)

func testConfig() *domain.GenerationConfig {
	return &domain.GenerationConfig{
		Prompt:          "hello",
		Temperature:     0.7,
		TopP:            0.8,
		TopK:            40,
		MaxOutputTokens: 1024,
		SafetySettings: []domain.SafetySetting{
			{Category: domain.HarmCategoryHateSpeech, Threshold: domain.ThresholdOff},
			{Category: domain.HarmCategoryHarassment, Threshold: domain.ThresholdOff},
		},
	}
}

func TestToContents(t *testing.T) {
	t.Run("should wrap the prompt as a user text part", func(t *testing.T) {
		contents := toContents(testConfig())

		require.Len(t, contents, 1)
		require.Equal(t, "user", contents[0].Role)
		require.Len(t, contents[0].Parts, 1)
		require.Equal(t, "hello", contents[0].Parts[0].Text)
	})

	t.Run("should append an inline media part when present", func(t *testing.T) {
		config := testConfig()
		config.Media = &domain.MediaPart{MIMEType: "audio/wav", Data: []byte{0x52, 0x49, 0x46, 0x46}}

		contents := toContents(config)

		require.Len(t, contents[0].Parts, 2)
		blob := contents[0].Parts[1].InlineData
		require.NotNil(t, blob)
		require.Equal(t, "audio/wav", blob.MIMEType)
		require.Equal(t, config.Media.Data, blob.Data)
	})
}

func TestToGenerateContentConfig(t *testing.T) {
	t.Run("should map sampling parameters", func(t *testing.T) {
		out := toGenerateContentConfig(testConfig())

		require.NotNil(t, out.Temperature)
		require.InDelta(t, 0.7, float64(*out.Temperature), 1e-6)
		require.NotNil(t, out.TopP)
		require.InDelta(t, 0.8, float64(*out.TopP), 1e-6)
		require.NotNil(t, out.TopK)
		require.InDelta(t, 40, float64(*out.TopK), 1e-6)
		require.Equal(t, int32(1024), out.MaxOutputTokens)
	})

	t.Run("should omit top-k when unset", func(t *testing.T) {
		config := testConfig()
		config.TopK = 0

		out := toGenerateContentConfig(config)
		require.Nil(t, out.TopK)
	})

	t.Run("should disable the thinking budget", func(t *testing.T) {
		out := toGenerateContentConfig(testConfig())

		require.NotNil(t, out.ThinkingConfig)
		require.NotNil(t, out.ThinkingConfig.ThinkingBudget)
		require.Zero(t, *out.ThinkingConfig.ThinkingBudget)
	})

	t.Run("should carry the safety settings through", func(t *testing.T) {
		out := toGenerateContentConfig(testConfig())

		require.Len(t, out.SafetySettings, 2)
		require.Equal(t, genai.HarmCategory(domain.HarmCategoryHateSpeech), out.SafetySettings[0].Category)
		require.Equal(t, genai.HarmBlockThreshold(domain.ThresholdOff), out.SafetySettings[0].Threshold)
	})
}

func TestResponseText(t *testing.T) {
	t.Run("should flatten text parts of the first candidate", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "He"}, {Text: "llo"}}}},
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "ignored"}}}},
			},
		}

		require.Equal(t, "Hello", responseText(resp))
	})

	t.Run("should return empty text for missing candidates", func(t *testing.T) {
		require.Empty(t, responseText(nil))
		require.Empty(t, responseText(&genai.GenerateContentResponse{}))
		require.Empty(t, responseText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}))
	})
}
