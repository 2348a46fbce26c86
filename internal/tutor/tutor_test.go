package tutor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/tutor-lambda/internal/llm"
	"github.com/saulo-duarte/tutor-lambda/internal/tutor"
)

type fakeProvider struct {
	text string
	err  error
	user string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) SendPrompt(_ context.Context, _, user string) (string, error) {
	f.user = user
	return f.text, f.err
}

func TestParseStyle(t *testing.T) {
	cases := map[string]tutor.Style{
		"":          tutor.StyleInDepth,
		"in_depth":  tutor.StyleInDepth,
		"visual":    tutor.StyleVisual,
		" HANDS_ON": tutor.StyleHandsOn,
		"poetic":    tutor.StyleInDepth,
	}
	for in, want := range cases {
		assert.Equal(t, want, tutor.ParseStyle(in), "input %q", in)
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Run("EachStyleHasItsOwnTemplate", func(t *testing.T) {
		_, inDepth := tutor.BuildPrompt(tutor.StyleInDepth, "recursion")
		_, visual := tutor.BuildPrompt(tutor.StyleVisual, "recursion")
		_, handsOn := tutor.BuildPrompt(tutor.StyleHandsOn, "recursion")

		assert.Contains(t, inDepth, "in-depth explanation")
		assert.Contains(t, visual, "visual learning experience")
		assert.Contains(t, handsOn, "hands-on learning experience")
		for _, p := range []string{inDepth, visual, handsOn} {
			assert.Contains(t, p, "recursion")
		}
	})

	t.Run("UnknownStyleFallsBackToInDepth", func(t *testing.T) {
		_, got := tutor.BuildPrompt(tutor.Style("other"), "queues")
		_, want := tutor.BuildPrompt(tutor.StyleInDepth, "queues")

		assert.Equal(t, want, got)
	})
}

func serve(t *testing.T, provider llm.Provider, body string) *httptest.ResponseRecorder {
	t.Helper()
	c := tutor.NewTutorContainer(provider)
	req := httptest.NewRequest(http.MethodPost, "/explain", strings.NewReader(body))
	rec := httptest.NewRecorder()
	tutor.Routes(c.Handler).ServeHTTP(rec, req)
	return rec
}

func TestExplainHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		provider := &fakeProvider{text: "A closure captures variables."}

		rec := serve(t, provider, `{"query":"What is a closure?","style":"visual"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp tutor.ExplainResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "A closure captures variables.", resp.Response)
		assert.Equal(t, tutor.StyleVisual, resp.Style)
		assert.Equal(t, "fake", resp.Provider)
		assert.Contains(t, provider.user, "What is a closure?")
	})

	t.Run("MissingStyleDefaultsToInDepth", func(t *testing.T) {
		rec := serve(t, &fakeProvider{text: "ok"}, `{"query":"Explain DNS"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"style":"in_depth"`)
	})

	t.Run("BlankQuery", func(t *testing.T) {
		provider := &fakeProvider{text: "ok"}

		rec := serve(t, provider, `{"query":"  ","style":"visual"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "query is required")
		assert.Empty(t, provider.user)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		rec := serve(t, &fakeProvider{}, `not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ProviderFailureIsNotDisguisedAsText", func(t *testing.T) {
		rec := serve(t, &fakeProvider{err: llm.ErrModelLoading}, `{"query":"Explain DNS"}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.NotContains(t, rec.Body.String(), `"response"`)
		assert.JSONEq(t, `{"error":"failed to generate response"}`, rec.Body.String())
	})
}
