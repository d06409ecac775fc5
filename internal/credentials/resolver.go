// Package credentials discovers which authentication method a gateway
// surface can use.
package credentials

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/observability"
)

// cloudPlatformScope is the OAuth scope requested during ambient discovery.
const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// discoverFunc locates ambient application default credentials.
type discoverFunc func(ctx context.Context, scopes ...string) (*google.Credentials, error)

// Config holds the explicit credential material a deployment may provide.
type Config struct {
	APIKey    string
	ProjectID string
}

// Resolver reports which authentication method is available. It never makes
// a network round-trip to validate a credential; it only checks presence.
type Resolver struct {
	apiKey    string
	projectID string
	discover  discoverFunc
}

// NewResolver builds a resolver backed by the platform's default credential
// discovery chain.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{
		apiKey:    cfg.APIKey,
		projectID: cfg.ProjectID,
		discover:  google.FindDefaultCredentials,
	}
}

// Resolve prefers an explicit API key, then ambient credentials scoped to a
// configured project. Finding nothing is a normal outcome reported as
// AuthMethodNone; only discovery faults such as a malformed credential file
// are returned as errors.
func (r *Resolver) Resolve(ctx context.Context) (domain.AuthOutcome, error) {
	logger := observability.FromContext(ctx)

	if r.apiKey != "" {
		logger.Debug("using configured API key")
		return domain.AuthOutcome{Method: domain.AuthMethodAPIKey, ProjectID: r.projectID}, nil
	}

	if r.projectID == "" {
		logger.Debug("no API key and no project configured")
		return domain.AuthOutcome{Method: domain.AuthMethodNone}, nil
	}

	if _, err := r.discover(ctx, cloudPlatformScope); err != nil {
		if credentialsNotFound(err) {
			logger.Debug("no ambient credentials present")
			return domain.AuthOutcome{Method: domain.AuthMethodNone}, nil
		}
		return domain.AuthOutcome{Method: domain.AuthMethodNone}, fmt.Errorf("ambient credential discovery failed: %w", err)
	}

	logger.Debug("ambient credentials located", observability.String("project_id", r.projectID))
	return domain.AuthOutcome{Method: domain.AuthMethodAmbient, ProjectID: r.projectID}, nil
}

// credentialsNotFound tells the missing-credentials case apart from real
// discovery faults. The oauth2 package exports no sentinel for it.
func credentialsNotFound(err error) bool {
	return strings.Contains(err.Error(), "could not find default credentials")
}
