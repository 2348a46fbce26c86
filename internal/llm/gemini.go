package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, s config.GeminiSettings) (Provider, error) {
	if s.APIKey == "" {
		return nil, ErrMissingCredentials
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: s.Model}, nil
}

func (p *geminiProvider) Name() string {
	return "gemini"
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)
	temperature := float32(0.7)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(joinPrompt(system, user)),
		&genai.GenerateContentConfig{Temperature: &temperature},
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		if looksRateLimited(err.Error()) || strings.Contains(err.Error(), "429") {
			return "", fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	raw := strings.TrimSpace(result.Text())
	log.Debugf("[LLM] Raw Gemini response:\n%s", raw)
	if raw == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}
