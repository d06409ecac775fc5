package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/soundcloud"
)

// Config represents the gateway configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	GoogleAI   GoogleAIConfig
	VertexAI   VertexAIConfig
	Safety     SafetyConfig
	SoundCloud soundcloud.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// GoogleAIConfig configures the Gemini Developer API surface.
type GoogleAIConfig struct {
	APIKey          string `env:"GOOGLE_API_KEY"`
	ProjectID       string `env:"GOOGLE_CLOUD_PROJECT"`
	Region          string `env:"GOOGLE_CLOUD_LOCATION"      envDefault:"us-central1"`
	LegacyModel     string `env:"GOOGLE_AI_LEGACY_MODEL"     envDefault:"gemini-2.0-flash-lite"`
	StreamingModel  string `env:"GOOGLE_AI_STREAMING_MODEL"  envDefault:"gemini-2.5-flash"`
	GenerateTimeout int    `env:"GOOGLE_AI_GENERATE_TIMEOUT" envDefault:"60"`
}

// VertexAIConfig configures the Vertex AI surface.
type VertexAIConfig struct {
	APIKey          string `env:"GOOGLE_API_KEY"`
	ProjectID       string `env:"GOOGLE_CLOUD_PROJECT"`
	Region          string `env:"GOOGLE_CLOUD_LOCATION"      envDefault:"us-central1"`
	Model           string `env:"VERTEX_AI_MODEL"            envDefault:"gemini-2.5-flash"`
	GenerateTimeout int    `env:"VERTEX_AI_GENERATE_TIMEOUT" envDefault:"120"`
}

// SafetyConfig sets the blocking threshold per harm category.
type SafetyConfig struct {
	HateSpeech       string `env:"SAFETY_HATE_SPEECH_THRESHOLD"       envDefault:"OFF"`
	DangerousContent string `env:"SAFETY_DANGEROUS_CONTENT_THRESHOLD" envDefault:"OFF"`
	SexuallyExplicit string `env:"SAFETY_SEXUALLY_EXPLICIT_THRESHOLD" envDefault:"OFF"`
	Harassment       string `env:"SAFETY_HARASSMENT_THRESHOLD"        envDefault:"OFF"`
}

// Settings expands the thresholds into the policy applied to every
// generation call.
func (c SafetyConfig) Settings() []domain.SafetySetting {
	return []domain.SafetySetting{
		{Category: domain.HarmCategoryHateSpeech, Threshold: c.HateSpeech},
		{Category: domain.HarmCategoryDangerousContent, Threshold: c.DangerousContent},
		{Category: domain.HarmCategorySexuallyExplicit, Threshold: c.SexuallyExplicit},
		{Category: domain.HarmCategoryHarassment, Threshold: c.Harassment},
	}
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*GoogleAIConfig
	*VertexAIConfig
	*SafetyConfig
	*soundcloud.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.GoogleAI,
		&cfg.VertexAI,
		&cfg.Safety,
		&cfg.SoundCloud,
	}
}
