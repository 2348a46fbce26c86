package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider is a text-generation backend. Implementations must be safe for
// concurrent use.
type Provider interface {
	Name() string
	SendPrompt(ctx context.Context, system, user string) (string, error)
}

var (
	ErrMissingCredentials = errors.New("provider credentials are not configured")
	ErrRateLimited        = errors.New("provider rate limit or quota exceeded")
	ErrModelLoading       = errors.New("model is still loading")
	ErrModelNotFound      = errors.New("model not found")
	ErrEmptyResponse      = errors.New("empty response from model")
	ErrNoProviders        = errors.New("no llm provider could be initialized")
	ErrUnknownProvider    = errors.New("unknown llm provider")
)

// InitError reports why a provider factory could not build its provider.
type InitError struct {
	Provider string
	Err      error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s provider: %v", e.Provider, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether a failed call is worth repeating after a pause.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrModelLoading)
}

func looksRateLimited(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "insufficient_quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource_exhausted")
}

func joinPrompt(system, user string) string {
	if system == "" {
		return user
	}
	return system + "\n\n" + user
}
