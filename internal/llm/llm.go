package llm

import (
	"context"
	"errors"
)

// Client abstracts generative-text providers. Implementations send one prompt
// and return the model's raw text; any provider failure (network, auth, quota,
// empty response) surfaces as a plain error with no retry.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Params carries generation parameters passed through to the provider
// unmodified.
type Params struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

// DefaultParams mirrors the generation settings the service was tuned with.
func DefaultParams() Params {
	return Params{
		Temperature:     0.7,
		TopP:            1,
		TopK:            1,
		MaxOutputTokens: 4096,
	}
}

// ErrNotConfigured is returned by provider constructors when the credential
// or model name is missing, so no request can ever be attempted unconfigured.
var ErrNotConfigured = errors.New("llm client not configured")
