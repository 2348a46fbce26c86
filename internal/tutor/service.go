package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
	"github.com/saulo-duarte/tutor-lambda/internal/llm"
)

type Service interface {
	Explain(ctx context.Context, req ExplainRequest) (*ExplainResponse, error)
}

type service struct {
	provider llm.Provider
}

func NewService(provider llm.Provider) Service {
	return &service{provider: provider}
}

func (s *service) Explain(ctx context.Context, req ExplainRequest) (*ExplainResponse, error) {
	log := config.WithContext(ctx)

	style := ParseStyle(req.Style)
	system, user := BuildPrompt(style, strings.TrimSpace(req.Query))

	text, err := s.provider.SendPrompt(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("explain with %s: %w", s.provider.Name(), err)
	}
	log.Infof("Explanation generated in %s style by %s", style, s.provider.Name())

	return &ExplainResponse{
		Response: text,
		Style:    style,
		Provider: s.provider.Name(),
	}, nil
}
