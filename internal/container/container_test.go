package container_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/tutor-lambda/internal/container"
	"github.com/saulo-duarte/tutor-lambda/internal/llm"
	"github.com/saulo-duarte/tutor-lambda/internal/tutor"
)

func TestNew(t *testing.T) {
	t.Run("FallsBackToMock", func(t *testing.T) {
		t.Setenv("LLM_PROVIDERS", "openai,huggingface")
		t.Setenv("LLM_ALLOW_MOCK", "true")
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("HUGGINGFACEHUB_API_TOKEN", "")
		t.Setenv("QUIZ_STRICTNESS", "strict")

		c, err := container.New(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "mock", c.Provider.Name())

		resp, err := c.TutorContainer.Service.Explain(context.Background(), tutor.ExplainRequest{Query: "What is DNS?"})
		require.NoError(t, err)
		assert.Equal(t, "mock", resp.Provider)
	})

	t.Run("NoUsableProvider", func(t *testing.T) {
		t.Setenv("LLM_PROVIDERS", "openai")
		t.Setenv("LLM_ALLOW_MOCK", "false")
		t.Setenv("OPENAI_API_KEY", "")

		_, err := container.New(context.Background())

		assert.ErrorIs(t, err, llm.ErrNoProviders)
		assert.ErrorIs(t, err, llm.ErrMissingCredentials)
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		t.Setenv("LLM_PROVIDERS", "watson")

		_, err := container.New(context.Background())

		assert.ErrorIs(t, err, llm.ErrUnknownProvider)
	})
}
