package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/davidbz/aria/internal/domain"
)

// toContents builds the SDK content list: the prompt text plus an optional
// inline media part.
func toContents(config *domain.GenerationConfig) []*genai.Content {
	parts := []*genai.Part{{Text: config.Prompt}}

	if config.Media != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: config.Media.MIMEType,
				Data:     config.Media.Data,
			},
		})
	}

	return []*genai.Content{{Role: "user", Parts: parts}}
}

// toGenerateContentConfig converts the domain configuration to its SDK shape.
// A zero TopK is not sent to the backend.
func toGenerateContentConfig(config *domain.GenerationConfig) *genai.GenerateContentConfig {
	out := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(config.Temperature)),
		TopP:            genai.Ptr(float32(config.TopP)),
		MaxOutputTokens: int32(config.MaxOutputTokens),
		SafetySettings:  toSafetySettings(config.SafetySettings),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(config.ThinkingBudget),
		},
	}

	if config.TopK > 0 {
		out.TopK = genai.Ptr(float32(config.TopK))
	}

	return out
}

func toSafetySettings(settings []domain.SafetySetting) []*genai.SafetySetting {
	out := make([]*genai.SafetySetting, 0, len(settings))
	for _, setting := range settings {
		out = append(out, &genai.SafetySetting{
			Category:  genai.HarmCategory(setting.Category),
			Threshold: genai.HarmBlockThreshold(setting.Threshold),
		})
	}
	return out
}

// responseText flattens the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var builder strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil && part.Text != "" {
			builder.WriteString(part.Text)
		}
	}

	return builder.String()
}

// sendFragment delivers a fragment unless the caller has gone away.
func sendFragment(ctx context.Context, out chan<- domain.StreamFragment, fragment domain.StreamFragment) bool {
	select {
	case out <- fragment:
		return true
	case <-ctx.Done():
		return false
	}
}
