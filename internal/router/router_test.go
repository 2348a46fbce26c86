package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/tutor-lambda/internal/aiquiz"
	"github.com/saulo-duarte/tutor-lambda/internal/llm"
	"github.com/saulo-duarte/tutor-lambda/internal/quizparser"
	"github.com/saulo-duarte/tutor-lambda/internal/router"
	"github.com/saulo-duarte/tutor-lambda/internal/tutor"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	provider := llm.NewMockProvider()
	return router.New(router.RouterConfig{
		AIQuizHandler:  aiquiz.NewAIQuizContainer(provider, quizparser.NewParser(quizparser.Lenient)).Handler,
		TutorHandler:   tutor.NewTutorContainer(provider).Handler,
		ProviderName:   provider.Name(),
		AllowedOrigins: []string{"*"},
	})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body)).WithContext(context.Background())
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter(t *testing.T) {
	h := newRouter(t)

	t.Run("Health", func(t *testing.T) {
		for _, path := range []string{"/", "/health"} {
			rec := do(t, h, http.MethodGet, path, "")

			require.Equal(t, http.StatusOK, rec.Code, path)
			assert.JSONEq(t, `{"status":"ok","provider":"mock"}`, rec.Body.String())
		}
	})

	t.Run("GenerateQuizPaths", func(t *testing.T) {
		body := `{"topic":"Operating systems","difficulty":"Beginner","num_questions":3}`
		for _, path := range []string{"/generate_quiz", "/ai-quiz/"} {
			rec := do(t, h, http.MethodPost, path, body)

			require.Equal(t, http.StatusOK, rec.Code, path)
			var resp aiquiz.QuizResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Questions, 3)
			assert.Equal(t, "mock", resp.Provider)
		}
	})

	t.Run("GenerateResponsePaths", func(t *testing.T) {
		for _, path := range []string{"/generate_response", "/tutor/explain"} {
			rec := do(t, h, http.MethodPost, path, `{"query":"What is a mutex?","style":"hands_on"}`)

			require.Equal(t, http.StatusOK, rec.Code, path)
			var resp tutor.ExplainResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tutor.StyleHandsOn, resp.Style)
			assert.NotEmpty(t, resp.Response)
		}
	})

	t.Run("InvalidQuizRequest", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/generate_quiz", `{"topic":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/generate_quiz", "")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
