// Package gateway exposes the generation operations of one product surface.
// The same Service type serves both configured surfaces of the application:
// the Gemini Developer API surface and the Vertex AI surface.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/fallback"
	"github.com/davidbz/aria/internal/genconfig"
	"github.com/davidbz/aria/internal/observability"
)

// Config describes one gateway surface.
type Config struct {
	Surface         string
	Region          string
	LegacyModel     string
	StreamingModel  string
	TextDefaults    TextDefaults
	GenerateTimeout time.Duration
}

// TextDefaults holds the per-surface defaults for plain text generation.
// The other operations carry their own fixed defaults.
type TextDefaults struct {
	Legacy    domain.GenerationDefaults
	Streaming domain.GenerationDefaults
}

// Service is one product surface of the generation gateway. Initialization
// is lazy: the first operation resolves credentials and builds the provider
// clients, and that outcome, success or failure, sticks for the lifetime of
// the service.
type Service struct {
	cfg      Config
	resolver domain.CredentialSource
	factory  domain.ProviderFactory
	builder  *genconfig.Builder

	initOnce sync.Once
	state    serviceState
}

// serviceState is written exactly once, inside initOnce.
type serviceState struct {
	ready      bool
	authMethod domain.AuthMethod
	projectID  string
	reason     string
	legacy     domain.ProviderClient
	streaming  domain.ProviderClient
}

// NewService creates a gateway surface (DI constructor).
func NewService(cfg Config, resolver domain.CredentialSource, factory domain.ProviderFactory, builder *genconfig.Builder) (*Service, error) {
	if cfg.Surface == "" {
		return nil, errors.New("surface name is required")
	}
	if resolver == nil {
		return nil, errors.New("credential source is required")
	}
	if factory == nil {
		return nil, errors.New("provider factory is required")
	}
	if builder == nil {
		return nil, errors.New("config builder is required")
	}

	return &Service{cfg: cfg, resolver: resolver, factory: factory, builder: builder}, nil
}

// ensureInitialized runs the one-time initialization and reports whether the
// surface is usable.
func (s *Service) ensureInitialized(ctx context.Context) error {
	// The outcome is permanent, so it must not depend on the first
	// caller's deadline.
	s.initOnce.Do(func() { s.initialize(context.WithoutCancel(ctx)) })

	if !s.state.ready {
		return &domain.NotInitializedError{Surface: s.cfg.Surface, Reason: s.state.reason}
	}

	return nil
}

func (s *Service) initialize(ctx context.Context) {
	logger := observability.FromContext(ctx)

	outcome, err := s.resolver.Resolve(ctx)
	if err != nil {
		s.state = serviceState{
			authMethod: domain.AuthMethodNone,
			reason:     fmt.Sprintf("credential resolution failed: %v", err),
		}
		logger.Error("gateway initialization failed",
			observability.String("surface", s.cfg.Surface),
			observability.Error(err),
		)
		return
	}

	if outcome.Method == domain.AuthMethodNone {
		s.state = serviceState{
			authMethod: domain.AuthMethodNone,
			reason:     "no API key or ambient credentials available",
		}
		logger.Warn("gateway has no credentials, operations are unavailable",
			observability.String("surface", s.cfg.Surface),
		)
		return
	}

	legacy, streaming, err := s.factory(ctx, outcome)
	if err != nil {
		s.state = serviceState{
			authMethod: outcome.Method,
			projectID:  outcome.ProjectID,
			reason:     fmt.Sprintf("provider clients could not be built: %v", err),
		}
		logger.Error("gateway initialization failed",
			observability.String("surface", s.cfg.Surface),
			observability.Error(err),
		)
		return
	}

	s.state = serviceState{
		ready:      true,
		authMethod: outcome.Method,
		projectID:  outcome.ProjectID,
		legacy:     legacy,
		streaming:  streaming,
	}
	logger.Info("gateway initialized",
		observability.String("surface", s.cfg.Surface),
		observability.String("auth_method", string(outcome.Method)),
		observability.String("legacy_model", legacy.Model()),
		observability.String("streaming_model", streaming.Model()),
	)
}

// GenerateText produces text from a free-form prompt on the chosen client.
func (s *Service) GenerateText(ctx context.Context, req domain.GenerationRequest, choice domain.ModelChoice) (string, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return "", err
	}

	if req.Prompt == "" {
		return "", &domain.ValidationError{Field: "prompt", Reason: "must not be empty"}
	}

	client, defaults, err := s.route(choice)
	if err != nil {
		return "", err
	}

	config, err := s.builder.Build(req, defaults)
	if err != nil {
		return "", err
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	result, err := client.Generate(callCtx, config)
	if err != nil {
		return "", err
	}

	return result.Text, nil
}

// TestConnection exercises the full generation path with a tiny prompt,
// falling back to the streaming client when the legacy one fails.
func (s *Service) TestConnection(ctx context.Context) (string, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return "", err
	}

	config, err := s.builder.Build(domain.GenerationRequest{Prompt: connectionTestPrompt}, connectionTestDefaults())
	if err != nil {
		return "", err
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	result, err := fallback.Execute(callCtx, s.generateAttempt(s.state.legacy, config), s.generateAttempt(s.state.streaming, config))
	if err != nil {
		return "", err
	}

	return result.Text, nil
}

// GetStatus reports the surface state. It never fails: a surface that could
// not initialize is described rather than turned into an error.
func (s *Service) GetStatus(ctx context.Context) domain.Status {
	s.initOnce.Do(func() { s.initialize(context.WithoutCancel(ctx)) })

	projectID := s.state.projectID
	if projectID == "" {
		projectID = "not configured"
	}

	authMethod := s.state.authMethod
	if authMethod == "" {
		authMethod = domain.AuthMethodNone
	}

	models := []string{s.cfg.LegacyModel}
	if s.cfg.StreamingModel != s.cfg.LegacyModel {
		models = append(models, s.cfg.StreamingModel)
	}

	return domain.Status{
		Initialized:     s.state.ready,
		ProjectID:       projectID,
		Region:          s.cfg.Region,
		AuthMethod:      authMethod,
		AvailableModels: models,
		Reason:          s.state.reason,
	}
}

// route picks the provider client and text defaults for a model choice.
func (s *Service) route(choice domain.ModelChoice) (domain.ProviderClient, domain.GenerationDefaults, error) {
	switch choice {
	case domain.ModelChoiceLegacy, "":
		return s.state.legacy, s.cfg.TextDefaults.Legacy, nil
	case domain.ModelChoiceStreaming:
		return s.state.streaming, s.cfg.TextDefaults.Streaming, nil
	default:
		return nil, domain.GenerationDefaults{}, &domain.ValidationError{
			Field:  "model",
			Reason: fmt.Sprintf("unknown model choice %q", string(choice)),
		}
	}
}

// generateAttempt adapts one provider client call to a fallback attempt.
func (s *Service) generateAttempt(client domain.ProviderClient, config *domain.GenerationConfig) fallback.Attempt {
	return func(ctx context.Context) (*domain.GenerationResult, error) {
		return client.Generate(ctx, config)
	}
}

// callContext bounds a single backend call with the configured timeout.
func (s *Service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.GenerateTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.GenerateTimeout)
}
