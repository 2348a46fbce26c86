package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
)

// Factory builds one provider from settings. New returns an error when the
// provider cannot be used, e.g. missing credentials or an unreachable server.
type Factory struct {
	Name string
	New  func(ctx context.Context, s *config.Settings) (Provider, error)
}

var registry = map[string]Factory{
	"openai": {Name: "openai", New: func(_ context.Context, s *config.Settings) (Provider, error) {
		return NewOpenAIProvider(s.OpenAI)
	}},
	"gemini": {Name: "gemini", New: func(ctx context.Context, s *config.Settings) (Provider, error) {
		return NewGeminiProvider(ctx, s.Gemini)
	}},
	"ollama": {Name: "ollama", New: func(ctx context.Context, s *config.Settings) (Provider, error) {
		return NewOllamaProvider(ctx, s.Ollama, nil)
	}},
	"huggingface": {Name: "huggingface", New: func(_ context.Context, s *config.Settings) (Provider, error) {
		return NewHuggingFaceProvider(s.HuggingFace, nil)
	}},
	"mock": {Name: "mock", New: func(context.Context, *config.Settings) (Provider, error) {
		return NewMockProvider(), nil
	}},
}

// FactoriesFor returns the factories named in s.Providers, in order. The mock
// factory is appended when s.AllowMock is set and it is not listed already.
func FactoriesFor(s *config.Settings) ([]Factory, error) {
	factories := make([]Factory, 0, len(s.Providers)+1)
	seen := make(map[string]bool)
	for _, name := range s.Providers {
		f, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		factories = append(factories, f)
	}
	if s.AllowMock && !seen["mock"] {
		factories = append(factories, registry["mock"])
	}
	return factories, nil
}

// Select returns the first provider whose factory succeeds.
func Select(ctx context.Context, s *config.Settings, factories []Factory) (Provider, error) {
	log := config.WithContext(ctx)

	var errs []error
	for _, f := range factories {
		p, err := f.New(ctx, s)
		if err != nil {
			initErr := &InitError{Provider: f.Name, Err: err}
			log.WithError(err).Warnf("Provider %s unavailable", f.Name)
			errs = append(errs, initErr)
			continue
		}
		log.Infof("Using %s provider", p.Name())
		return p, nil
	}

	return nil, errors.Join(append([]error{ErrNoProviders}, errs...)...)
}
