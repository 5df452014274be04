package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client abstracts chat-completion providers.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ErrNotConfigured is returned when no API credential is configured.
var ErrNotConfigured = errors.New("OpenRouter API key not configured; set OPENROUTER_API_KEY (get a free key at https://openrouter.ai/)")

// UpstreamError reports a non-success or malformed response from the provider.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("AI service error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("AI service error: %s", e.Message)
}

// PlaceholderClient is wired when no credential is configured. It fails every
// completion with ErrNotConfigured without touching the network.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, system, user string) (string, error) {
	_ = ctx
	_ = system
	_ = user
	return "", ErrNotConfigured
}
