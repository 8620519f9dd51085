// Package llm abstracts the upstream text-generation provider.
package llm

import (
	"context"
	"errors"
)

// Client abstracts text-generation providers.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned when no provider credentials are set.
var ErrNotConfigured = errors.New("text generation is not configured")

// PlaceholderClient is used when no provider is wired; every call fails
// with ErrNotConfigured so the HTTP layer can surface a clear error.
type PlaceholderClient struct{}

func (PlaceholderClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
