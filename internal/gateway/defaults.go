package gateway

import "github.com/davidbz/aria/internal/domain"

// StudioTextDefaults returns the text generation defaults of the Gemini
// Developer API surface.
func StudioTextDefaults() TextDefaults {
	return TextDefaults{
		Legacy:    domain.GenerationDefaults{Temperature: 0.7, TopP: 0.8, TopK: 40, MaxOutputTokens: 1024},
		Streaming: domain.GenerationDefaults{Temperature: 0.9, TopP: 1.0, TopK: 32, MaxOutputTokens: 2048},
	}
}

// VertexTextDefaults returns the text generation defaults of the Vertex AI
// surface. Top-k is left to the backend.
func VertexTextDefaults() TextDefaults {
	defaults := domain.GenerationDefaults{Temperature: 1.0, TopP: 0.95, MaxOutputTokens: 65535}
	return TextDefaults{Legacy: defaults, Streaming: defaults}
}

// Fixed defaults of the specialized operations. Callers cannot override
// these; the operations choose them.

func musicIntroDefaults() domain.GenerationDefaults {
	return domain.GenerationDefaults{Temperature: 0.8, TopP: 0.8, TopK: 40, MaxOutputTokens: 512}
}

func playlistDefaults() domain.GenerationDefaults {
	return domain.GenerationDefaults{Temperature: 0.7, TopP: 0.8, TopK: 40, MaxOutputTokens: 256}
}

func preferencesDefaults() domain.GenerationDefaults {
	return domain.GenerationDefaults{Temperature: 0.6, TopP: 1.0, TopK: 32, MaxOutputTokens: 1024}
}

func audioAnalysisDefaults() domain.GenerationDefaults {
	return domain.GenerationDefaults{Temperature: 0.3, TopP: 0.95, MaxOutputTokens: 65535}
}

func recommendationDefaults() domain.GenerationDefaults {
	return domain.GenerationDefaults{Temperature: 0.7, TopP: 0.95, MaxOutputTokens: 2048}
}

func connectionTestDefaults() domain.GenerationDefaults {
	return domain.GenerationDefaults{Temperature: 0.5, TopP: 0.8, TopK: 40, MaxOutputTokens: 100}
}
