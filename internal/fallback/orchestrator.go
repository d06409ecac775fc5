// Package fallback retries a generation on a secondary provider when the
// primary one fails.
package fallback

import (
	"context"
	"errors"

	"github.com/davidbz/aria/internal/domain"
	"github.com/davidbz/aria/internal/observability"
)

// Attempt produces a generation result from one provider.
type Attempt func(ctx context.Context) (*domain.GenerationResult, error)

// Execute runs the primary attempt and, only when it fails with a generation
// failure, the secondary one. Attempts are strictly sequential. Validation
// and initialization errors surface immediately without touching the
// secondary. When both attempts fail, the secondary's error is returned.
func Execute(ctx context.Context, primary, secondary Attempt) (*domain.GenerationResult, error) {
	result, err := primary(ctx)
	if err == nil {
		return result, nil
	}

	var failure *domain.GenerationFailure
	if !errors.As(err, &failure) {
		return nil, err
	}

	logger := observability.FromContext(ctx)
	logger.Warn("primary provider failed, attempting fallback",
		observability.String("failed_model", failure.Model),
		observability.Error(err),
	)

	result, err = secondary(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("fallback provider answered",
		observability.String("model", result.Model),
	)

	return result, nil
}
