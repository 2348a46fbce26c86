package container

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/tutor-lambda/internal/aiquiz"
	"github.com/saulo-duarte/tutor-lambda/internal/config"
	"github.com/saulo-duarte/tutor-lambda/internal/llm"
	"github.com/saulo-duarte/tutor-lambda/internal/quizparser"
	"github.com/saulo-duarte/tutor-lambda/internal/tutor"
)

type Container struct {
	Settings        *config.Settings
	Provider        llm.Provider
	AIQuizContainer *aiquiz.AIQuizContainer
	TutorContainer  *tutor.TutorContainer
}

// New loads settings and selects the LLM provider once, then builds every
// feature on top of them.
func New(ctx context.Context) (*Container, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	config.InitLogger(settings.LogLevel)

	factories, err := llm.FactoriesFor(settings)
	if err != nil {
		return nil, err
	}
	provider, err := llm.Select(ctx, settings, factories)
	if err != nil {
		return nil, err
	}

	return NewWithProvider(settings, provider), nil
}

// NewWithProvider wires the features around an already selected provider.
func NewWithProvider(settings *config.Settings, provider llm.Provider) *Container {
	provider = llm.WithRetry(provider, llm.RetryPolicy{
		MaxAttempts: settings.MaxRetries,
		BaseDelay:   settings.RetryBaseDelay,
		Timeout:     settings.Timeout,
	})
	parser := quizparser.NewParser(settings.QuizStrictness)

	return &Container{
		Settings:        settings,
		Provider:        provider,
		AIQuizContainer: aiquiz.NewAIQuizContainer(provider, parser),
		TutorContainer:  tutor.NewTutorContainer(provider),
	}
}
