package aiquiz

import (
	"strings"

	"github.com/google/uuid"

	"github.com/saulo-duarte/tutor-lambda/internal/quizparser"
)

var difficulties = []string{"Beginner", "Intermediate", "Advanced"}

type QuizRequest struct {
	Topic        string `json:"topic" validate:"required" example:"Operating systems"`
	Difficulty   string `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced" example:"Intermediate"`
	NumQuestions int    `json:"num_questions" validate:"min=1,max=10" example:"5"`
}

// Normalize trims the topic and maps the difficulty onto its canonical
// spelling, so "beginner" and " BEGINNER " are both accepted.
func (r *QuizRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	r.Difficulty = strings.TrimSpace(r.Difficulty)
	for _, d := range difficulties {
		if strings.EqualFold(r.Difficulty, d) {
			r.Difficulty = d
			return
		}
	}
}

type QuizResponse struct {
	ID         uuid.UUID                 `json:"id"`
	Topic      string                    `json:"topic"`
	Difficulty string                    `json:"difficulty"`
	Provider   string                    `json:"provider"`
	Questions  []quizparser.QuizQuestion `json:"questions"`
}
