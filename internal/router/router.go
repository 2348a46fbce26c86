package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/tutor-lambda/internal/aiquiz"
	"github.com/saulo-duarte/tutor-lambda/internal/config"
	"github.com/saulo-duarte/tutor-lambda/internal/middlewares"
	"github.com/saulo-duarte/tutor-lambda/internal/tutor"
)

type RouterConfig struct {
	AIQuizHandler  *aiquiz.Handler
	TutorHandler   *tutor.Handler
	ProviderName   string
	AllowedOrigins []string
}

type healthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	health := healthHandler(cfg.ProviderName)
	r.Get("/", health)
	r.Get("/health", health)

	r.Post("/generate_quiz", cfg.AIQuizHandler.GenerateQuiz)
	r.Post("/generate_response", cfg.TutorHandler.Explain)

	r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
	r.Mount("/tutor", tutor.Routes(cfg.TutorHandler))

	return r
}

// healthHandler godoc
// @Summary  Liveness check
// @Tags     health
// @Produce  json
// @Success  200  {object}  healthResponse
// @Router   /health [get]
func healthHandler(provider string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, healthResponse{Status: "ok", Provider: provider})
	}
}
