// Package genconfig builds backend-ready generation configurations from
// caller-supplied parameters and per-operation defaults.
package genconfig

import (
	"fmt"

	"github.com/davidbz/aria/internal/domain"
)

// Parameter bounds accepted by the Google generative backends.
const (
	minTemperature  = 0.0
	maxTemperature  = 2.0
	minTopP         = 0.0
	maxTopP         = 1.0
	minTopK         = 1
	minOutputTokens = 1
)

// disabledThinkingBudget keeps extended reasoning off on every call.
const disabledThinkingBudget int32 = 0

// Blocking thresholds the backends accept.
//
//nolint:gochecknoglobals // lookup table
var validThresholds = map[string]struct{}{
	"OFF":                    {},
	"BLOCK_NONE":             {},
	"BLOCK_ONLY_HIGH":        {},
	"BLOCK_MEDIUM_AND_ABOVE": {},
	"BLOCK_LOW_AND_ABOVE":    {},
}

// Builder merges request parameters with per-operation defaults and attaches
// the safety policy. It performs no I/O and keeps no mutable state.
type Builder struct {
	safety []domain.SafetySetting
}

// NewBuilder validates the safety policy and returns a builder that applies
// it to every configuration it produces. An empty policy falls back to
// DefaultSafetyPolicy.
func NewBuilder(safety []domain.SafetySetting) (*Builder, error) {
	if len(safety) == 0 {
		safety = DefaultSafetyPolicy()
	}

	for _, setting := range safety {
		if _, ok := validThresholds[setting.Threshold]; !ok {
			return nil, fmt.Errorf("unknown safety threshold %q for category %s", setting.Threshold, setting.Category)
		}
	}

	return &Builder{safety: safety}, nil
}

// DefaultSafetyPolicy returns the permissive policy used when none is
// configured: every harm category with blocking disabled.
func DefaultSafetyPolicy() []domain.SafetySetting {
	return []domain.SafetySetting{
		{Category: domain.HarmCategoryHateSpeech, Threshold: domain.ThresholdOff},
		{Category: domain.HarmCategoryDangerousContent, Threshold: domain.ThresholdOff},
		{Category: domain.HarmCategorySexuallyExplicit, Threshold: domain.ThresholdOff},
		{Category: domain.HarmCategoryHarassment, Threshold: domain.ThresholdOff},
	}
}

// Build merges the request with the operation defaults and validates the
// result. Omitted parameters take their default; explicit values are honored
// wherever the range allows them, including zero.
func (b *Builder) Build(req domain.GenerationRequest, defaults domain.GenerationDefaults) (*domain.GenerationConfig, error) {
	temperature := defaults.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	if temperature < minTemperature || temperature > maxTemperature {
		return nil, &domain.ValidationError{
			Field:  "temperature",
			Reason: fmt.Sprintf("must be within [%v, %v], got %v", minTemperature, maxTemperature, temperature),
		}
	}

	topP := defaults.TopP
	if req.TopP != nil {
		topP = *req.TopP
	}
	if topP < minTopP || topP > maxTopP {
		return nil, &domain.ValidationError{
			Field:  "top_p",
			Reason: fmt.Sprintf("must be within [%v, %v], got %v", minTopP, maxTopP, topP),
		}
	}

	topK := defaults.TopK
	if req.TopK != nil {
		topK = *req.TopK
		if topK < minTopK {
			return nil, &domain.ValidationError{
				Field:  "top_k",
				Reason: fmt.Sprintf("must be at least %d, got %d", minTopK, topK),
			}
		}
	}

	maxTokens := defaults.MaxOutputTokens
	if req.MaxOutputTokens != nil {
		maxTokens = *req.MaxOutputTokens
	}
	if maxTokens < minOutputTokens {
		return nil, &domain.ValidationError{
			Field:  "max_output_tokens",
			Reason: fmt.Sprintf("must be at least %d, got %d", minOutputTokens, maxTokens),
		}
	}

	return &domain.GenerationConfig{
		Prompt:          req.Prompt,
		Temperature:     temperature,
		TopP:            topP,
		TopK:            topK,
		MaxOutputTokens: maxTokens,
		SafetySettings:  b.safety,
		ThinkingBudget:  disabledThinkingBudget,
	}, nil
}
