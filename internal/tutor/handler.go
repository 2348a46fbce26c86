package tutor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
	"github.com/saulo-duarte/tutor-lambda/internal/llm"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Explain godoc
// @Summary      Explain a topic
// @Description  Returns a free-form explanation in the requested style (in_depth, visual or hands_on).
// @Tags         tutor
// @Accept       json
// @Produce      json
// @Param        request  body      ExplainRequest  true  "Question and style"
// @Success      200      {object}  ExplainResponse
// @Failure      400      {object}  map[string]string
// @Failure      429      {object}  map[string]string
// @Failure      502      {object}  map[string]string
// @Failure      504      {object}  map[string]string
// @Router       /generate_response [post]
func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid explain request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if err := config.Validate(req); err != nil {
		log.WithError(err).Warn("Explain request failed validation")
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Explain(r.Context(), req)
	if err != nil {
		log.WithError(err).Errorf("Failed to generate explanation: %v", err)
		config.Error(w, llm.HTTPStatus(err), "failed to generate response")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
