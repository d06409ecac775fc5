package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2/google"

	"github.com/davidbz/aria/internal/domain"
)

func TestResolver_Resolve(t *testing.T) {
	t.Run("should prefer a configured API key without discovery", func(t *testing.T) {
		resolver := NewResolver(Config{APIKey: "test-key", ProjectID: "my-project"})
		discoverCalls := 0
		resolver.discover = func(_ context.Context, _ ...string) (*google.Credentials, error) {
			discoverCalls++
			return &google.Credentials{}, nil
		}

		outcome, err := resolver.Resolve(context.Background())
		require.NoError(t, err)
		require.Equal(t, domain.AuthMethodAPIKey, outcome.Method)
		require.Equal(t, "my-project", outcome.ProjectID)
		require.Zero(t, discoverCalls)
	})

	t.Run("should report ambient credentials for a configured project", func(t *testing.T) {
		resolver := NewResolver(Config{ProjectID: "my-project"})
		resolver.discover = func(_ context.Context, _ ...string) (*google.Credentials, error) {
			return &google.Credentials{ProjectID: "my-project"}, nil
		}

		outcome, err := resolver.Resolve(context.Background())
		require.NoError(t, err)
		require.Equal(t, domain.AuthMethodAmbient, outcome.Method)
		require.Equal(t, "my-project", outcome.ProjectID)
	})

	t.Run("should report none when nothing is configured", func(t *testing.T) {
		resolver := NewResolver(Config{})
		resolver.discover = func(_ context.Context, _ ...string) (*google.Credentials, error) {
			t.Fatal("discovery must not run without a configured project")
			return nil, nil
		}

		outcome, err := resolver.Resolve(context.Background())
		require.NoError(t, err)
		require.Equal(t, domain.AuthMethodNone, outcome.Method)
		require.Empty(t, outcome.ProjectID)
	})

	t.Run("should treat missing ambient credentials as a normal outcome", func(t *testing.T) {
		resolver := NewResolver(Config{ProjectID: "my-project"})
		resolver.discover = func(_ context.Context, _ ...string) (*google.Credentials, error) {
			return nil, errors.New("google: could not find default credentials. See docs for more information")
		}

		outcome, err := resolver.Resolve(context.Background())
		require.NoError(t, err)
		require.Equal(t, domain.AuthMethodNone, outcome.Method)
	})

	t.Run("should surface discovery faults", func(t *testing.T) {
		cause := errors.New("invalid character in credentials file")
		resolver := NewResolver(Config{ProjectID: "my-project"})
		resolver.discover = func(_ context.Context, _ ...string) (*google.Credentials, error) {
			return nil, cause
		}

		outcome, err := resolver.Resolve(context.Background())
		require.ErrorIs(t, err, cause)
		require.Equal(t, domain.AuthMethodNone, outcome.Method)
	})
}
