package llm_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/tutor-lambda/internal/llm"
)

type scriptedProvider struct {
	calls   atomic.Int32
	results []error
	text    string
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) SendPrompt(ctx context.Context, _, _ string) (string, error) {
	n := int(p.calls.Add(1)) - 1
	if n < len(p.results) && p.results[n] != nil {
		return "", p.results[n]
	}
	return p.text, nil
}

type slowProvider struct{}

func (slowProvider) Name() string { return "slow" }

func (slowProvider) SendPrompt(ctx context.Context, _, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestWithRetry(t *testing.T) {
	policy := llm.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}

	t.Run("RetriesRateLimitUntilSuccess", func(t *testing.T) {
		inner := &scriptedProvider{
			results: []error{fmt.Errorf("%w: slow down", llm.ErrRateLimited), llm.ErrModelLoading},
			text:    "ok",
		}

		text, err := llm.WithRetry(inner, policy).SendPrompt(context.Background(), "", "hi")

		require.NoError(t, err)
		assert.Equal(t, "ok", text)
		assert.Equal(t, int32(3), inner.calls.Load())
	})

	t.Run("DoesNotRetryPermanentErrors", func(t *testing.T) {
		inner := &scriptedProvider{results: []error{llm.ErrModelNotFound}}

		_, err := llm.WithRetry(inner, policy).SendPrompt(context.Background(), "", "hi")

		assert.ErrorIs(t, err, llm.ErrModelNotFound)
		assert.Equal(t, int32(1), inner.calls.Load())
	})

	t.Run("GivesUpAfterMaxAttempts", func(t *testing.T) {
		inner := &scriptedProvider{results: []error{llm.ErrRateLimited, llm.ErrRateLimited, llm.ErrRateLimited, nil}}

		_, err := llm.WithRetry(inner, policy).SendPrompt(context.Background(), "", "hi")

		assert.ErrorIs(t, err, llm.ErrRateLimited)
		assert.Equal(t, int32(3), inner.calls.Load())
	})

	t.Run("AttemptTimeout", func(t *testing.T) {
		p := llm.WithRetry(slowProvider{}, llm.RetryPolicy{MaxAttempts: 2, Timeout: 10 * time.Millisecond})

		_, err := p.SendPrompt(context.Background(), "", "hi")

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("CancelledDuringBackoff", func(t *testing.T) {
		inner := &scriptedProvider{results: []error{llm.ErrRateLimited, nil}, text: "late"}
		p := llm.WithRetry(inner, llm.RetryPolicy{MaxAttempts: 2, BaseDelay: time.Minute})
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := p.SendPrompt(ctx, "", "hi")

		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Equal(t, int32(1), inner.calls.Load())
	})

	t.Run("BackoffDoublesBetweenAttempts", func(t *testing.T) {
		inner := &scriptedProvider{results: []error{llm.ErrRateLimited, llm.ErrRateLimited}, text: "ok"}
		p := llm.WithRetry(inner, llm.RetryPolicy{MaxAttempts: 3, BaseDelay: 20 * time.Millisecond})

		start := time.Now()
		text, err := p.SendPrompt(context.Background(), "", "hi")

		require.NoError(t, err)
		assert.Equal(t, "ok", text)
		assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
	})

	t.Run("KeepsInnerName", func(t *testing.T) {
		assert.Equal(t, "scripted", llm.WithRetry(&scriptedProvider{}, policy).Name())
	})
}
