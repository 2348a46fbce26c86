package aiquiz

import (
	"github.com/saulo-duarte/tutor-lambda/internal/llm"
	"github.com/saulo-duarte/tutor-lambda/internal/quizparser"
)

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer(provider llm.Provider, parser *quizparser.Parser) *AIQuizContainer {
	service := NewService(provider, parser)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Service: service,
		Handler: handler,
	}
}
