package aiquiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
	"github.com/saulo-duarte/tutor-lambda/internal/llm"
	"github.com/saulo-duarte/tutor-lambda/internal/quizparser"
)

type Service interface {
	GenerateQuiz(ctx context.Context, req QuizRequest) (*QuizResponse, error)
}

type service struct {
	provider llm.Provider
	parser   *quizparser.Parser
}

func NewService(provider llm.Provider, parser *quizparser.Parser) Service {
	return &service{provider: provider, parser: parser}
}

func (s *service) GenerateQuiz(ctx context.Context, req QuizRequest) (*QuizResponse, error) {
	log := config.WithContext(ctx)

	system, user := BuildQuizPrompt(req)

	raw, err := s.provider.SendPrompt(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("generate quiz with %s: %w", s.provider.Name(), err)
	}

	questions := s.parser.Parse(raw)
	if len(questions) != req.NumQuestions {
		log.Warnf("Requested %d questions, parsed %d", req.NumQuestions, len(questions))
	}
	log.Infof("Quiz about %q generated with %d questions by %s", req.Topic, len(questions), s.provider.Name())

	return &QuizResponse{
		ID:         uuid.New(),
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Provider:   s.provider.Name(),
		Questions:  questions,
	}, nil
}
