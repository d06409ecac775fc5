package domain

import "context"

// ProviderClient issues generation calls against one backend model.
type ProviderClient interface {
	// Generate sends a request and returns the complete generated text.
	Generate(ctx context.Context, config *GenerationConfig) (*GenerationResult, error)

	// GenerateStream sends a request and returns the output incrementally.
	// The returned channel is closed when the stream is exhausted.
	GenerateStream(ctx context.Context, config *GenerationConfig) (<-chan StreamFragment, error)

	// Model returns the backend model identifier this client targets.
	Model() string
}

// CredentialSource discovers whether usable cloud credentials exist.
type CredentialSource interface {
	// Resolve reports the available authentication method without making a
	// network round-trip to validate the credential. Finding no credentials
	// is reported through the outcome, not as an error.
	Resolve(ctx context.Context) (AuthOutcome, error)
}

// ProviderFactory builds the two provider clients for a resolved credential
// outcome: the single-shot legacy text client and the incremental chat client.
type ProviderFactory func(ctx context.Context, outcome AuthOutcome) (legacy ProviderClient, streaming ProviderClient, err error)
