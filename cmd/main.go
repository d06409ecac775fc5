package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/aria/internal/config"
	"github.com/davidbz/aria/internal/credentials"
	"github.com/davidbz/aria/internal/gateway"
	"github.com/davidbz/aria/internal/genconfig"
	"github.com/davidbz/aria/internal/http"
	"github.com/davidbz/aria/internal/http/middleware"
	"github.com/davidbz/aria/internal/observability"
	"github.com/davidbz/aria/internal/provider/gemini"
	"github.com/davidbz/aria/internal/soundcloud"
)

// shutdownTimeout bounds how long in-flight requests may run after a signal.
const shutdownTimeout = 10 * time.Second

// studioServices exposes the Gemini Developer API surface under its name.
type studioServices struct {
	dig.Out

	Service *gateway.Service `name:"studio"`
}

// vertexServices exposes the Vertex AI surface under its name.
type vertexServices struct {
	dig.Out

	Service *gateway.Service `name:"vertex"`
}

// handlerDeps collects the handler's named and optional dependencies.
type handlerDeps struct {
	dig.In

	Studio     *gateway.Service   `name:"studio"`
	Vertex     *gateway.Service   `name:"vertex"`
	SoundCloud *soundcloud.Client `optional:"true"`
}

func main() {
	container := buildContainer()

	if err := container.Invoke(run); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run starts the server and blocks until it fails or a shutdown signal
// arrives.
func run(server *http.Server, logger *zap.Logger) error {
	errs := make(chan error, 1)
	go func() {
		errs <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		return err
	case sig := <-stop:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(ctx)
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	cfg := config.Load()
	if err := container.Provide(func() *config.Config { return cfg }); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Generation config builder, shared by both surfaces
	if err := container.Provide(func(safetyCfg *config.SafetyConfig) (*genconfig.Builder, error) {
		return genconfig.NewBuilder(safetyCfg.Settings())
	}); err != nil {
		log.Fatalf("Failed to provide generation config builder: %v", err)
	}

	// Gemini Developer API surface
	if err := container.Provide(func(googleCfg *config.GoogleAIConfig, builder *genconfig.Builder) (studioServices, error) {
		svc, err := gateway.NewService(
			studioGatewayConfig(googleCfg),
			credentials.NewResolver(credentials.Config{APIKey: googleCfg.APIKey, ProjectID: googleCfg.ProjectID}),
			gemini.NewFactory(gemini.Config{
				APIKey:         googleCfg.APIKey,
				Region:         googleCfg.Region,
				LegacyModel:    googleCfg.LegacyModel,
				StreamingModel: googleCfg.StreamingModel,
			}),
			builder,
		)
		if err != nil {
			return studioServices{}, err
		}
		return studioServices{Service: svc}, nil
	}); err != nil {
		log.Fatalf("Failed to provide studio gateway: %v", err)
	}

	// Vertex AI surface
	if err := container.Provide(func(vertexCfg *config.VertexAIConfig, builder *genconfig.Builder) (vertexServices, error) {
		svc, err := gateway.NewService(
			vertexGatewayConfig(vertexCfg),
			credentials.NewResolver(credentials.Config{APIKey: vertexCfg.APIKey, ProjectID: vertexCfg.ProjectID}),
			gemini.NewFactory(gemini.Config{
				APIKey:         vertexCfg.APIKey,
				Region:         vertexCfg.Region,
				LegacyModel:    vertexCfg.Model,
				StreamingModel: vertexCfg.Model,
			}),
			builder,
		)
		if err != nil {
			return vertexServices{}, err
		}
		return vertexServices{Service: svc}, nil
	}); err != nil {
		log.Fatalf("Failed to provide vertex gateway: %v", err)
	}

	// SoundCloud proxy, registered only when configured; the handler treats
	// a missing client as "integration disabled"
	if cfg.SoundCloud.ClientID != "" {
		if err := container.Provide(func(scCfg *soundcloud.Config) (*soundcloud.Client, error) {
			return soundcloud.NewClient(*scCfg)
		}); err != nil {
			log.Fatalf("Failed to provide SoundCloud client: %v", err)
		}
	}

	// HTTP Layer
	if err := container.Provide(func(deps handlerDeps) *http.Handler {
		return http.NewHandler(deps.Studio, deps.Vertex, deps.SoundCloud)
	}); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// studioGatewayConfig maps the environment section to the studio surface.
func studioGatewayConfig(cfg *config.GoogleAIConfig) gateway.Config {
	return gateway.Config{
		Surface:         "google-ai",
		Region:          cfg.Region,
		LegacyModel:     cfg.LegacyModel,
		StreamingModel:  cfg.StreamingModel,
		TextDefaults:    gateway.StudioTextDefaults(),
		GenerateTimeout: time.Duration(cfg.GenerateTimeout) * time.Second,
	}
}

// vertexGatewayConfig maps the environment section to the vertex surface,
// which serves both routes with the same model.
func vertexGatewayConfig(cfg *config.VertexAIConfig) gateway.Config {
	return gateway.Config{
		Surface:         "vertex-ai",
		Region:          cfg.Region,
		LegacyModel:     cfg.Model,
		StreamingModel:  cfg.Model,
		TextDefaults:    gateway.VertexTextDefaults(),
		GenerateTimeout: time.Duration(cfg.GenerateTimeout) * time.Second,
	}
}
