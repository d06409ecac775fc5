// Package stream collects incremental generation output into complete text.
package stream

import (
	"context"
	"strings"

	"github.com/davidbz/aria/internal/domain"
)

// Aggregate drains the fragment channel and concatenates text in arrival
// order. Empty fragments do not end the stream; only channel close does.
// A fragment error aborts aggregation and discards the text collected so
// far, so callers never mistake a truncated answer for a complete one.
func Aggregate(ctx context.Context, fragments <-chan domain.StreamFragment) (string, error) {
	var builder strings.Builder

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case fragment, ok := <-fragments:
			if !ok {
				return builder.String(), nil
			}
			if fragment.Err != nil {
				return "", fragment.Err
			}
			builder.WriteString(fragment.Text)
		}
	}
}
