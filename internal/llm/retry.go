package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
)

type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	// Timeout bounds each attempt, not the whole call. Zero disables it.
	Timeout time.Duration
}

type retryProvider struct {
	next   Provider
	policy RetryPolicy
}

// WithRetry wraps p so that every call gets a per-attempt timeout and
// retryable failures are repeated with exponential backoff.
func WithRetry(p Provider, policy RetryPolicy) Provider {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &retryProvider{next: p, policy: policy}
}

func (r *retryProvider) Name() string {
	return r.next.Name()
}

func (r *retryProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	attempt := 0
	operation := func() (string, error) {
		attempt++
		text, err := r.attempt(ctx, system, user)
		if err != nil && !IsRetryable(err) {
			return "", backoff.Permanent(err)
		}
		return text, err
	}

	notify := func(err error, delay time.Duration) {
		log.WithError(err).Warnf("Retrying %s in %s (attempt %d/%d)", r.next.Name(), delay, attempt+1, r.policy.MaxAttempts)
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(r.backOff()),
		backoff.WithMaxTries(uint(r.policy.MaxAttempts)),
		backoff.WithNotify(notify),
	)
}

// backOff doubles the wait after every failed attempt, without jitter.
func (r *retryProvider) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.policy.BaseDelay
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxInterval = r.policy.BaseDelay << uint(r.policy.MaxAttempts)
	return b
}

func (r *retryProvider) attempt(ctx context.Context, system, user string) (string, error) {
	if r.policy.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.policy.Timeout)
		defer cancel()
	}
	return r.next.SendPrompt(ctx, system, user)
}
