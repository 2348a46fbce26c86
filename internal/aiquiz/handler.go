package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
	"github.com/saulo-duarte/tutor-lambda/internal/llm"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuiz godoc
// @Summary      Generate a multiple-choice quiz
// @Description  Asks the configured language model for a quiz and parses its answer into questions.
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request  body      QuizRequest  true  "Quiz parameters"
// @Success      200      {object}  QuizResponse
// @Failure      400      {object}  map[string]string
// @Failure      429      {object}  map[string]string
// @Failure      502      {object}  map[string]string
// @Failure      504      {object}  map[string]string
// @Router       /generate_quiz [post]
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid quiz request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Normalize()
	if err := config.Validate(req); err != nil {
		log.WithError(err).Warn("Quiz request failed validation")
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	quiz, err := h.service.GenerateQuiz(r.Context(), req)
	if err != nil {
		log.WithError(err).Errorf("Failed to generate quiz: %v", err)
		config.Error(w, llm.HTTPStatus(err), "failed to generate quiz")
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}
