package llm

import (
	"context"
	"math/rand/v2"
	"time"

	"log/slog"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// Retry policy defaults: up to 3 attempts with exponential backoff and
// full jitter.
const (
	defaultMaxAttempts = 3
	defaultBaseBackoff = 500 * time.Millisecond
)

// RetryingClient wraps a Client with a transient-retry policy. Fatal
// errors and context cancellation pass through immediately. Tokens
// consumed by failed attempts are folded into the final response (or
// into the final error when all attempts fail).
type RetryingClient struct {
	inner       Client
	maxAttempts int
	baseBackoff time.Duration
}

// NewRetrying wraps inner with the default retry policy.
func NewRetrying(inner Client) *RetryingClient {
	return &RetryingClient{
		inner:       inner,
		maxAttempts: defaultMaxAttempts,
		baseBackoff: defaultBaseBackoff,
	}
}

// Complete calls the inner client, retrying transient failures.
func (c *RetryingClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	var wasted models.TokenUsage

	for attempt := 1; ; attempt++ {
		resp, err := c.inner.Complete(ctx, req)
		if err == nil {
			resp.Tokens.Add(wasted)
			return resp, nil
		}

		wasted.Add(ConsumedTokens(err))

		if !IsTransient(err) || attempt >= c.maxAttempts {
			if llmErr, ok := err.(*Error); ok {
				llmErr.Tokens = wasted
			}
			return nil, err
		}

		backoff := c.backoff(attempt)
		slog.Warn("Transient LLM failure, retrying",
			"caller", req.Caller,
			"attempt", attempt,
			"backoff", backoff,
			"error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// Close closes the inner client.
func (c *RetryingClient) Close() error {
	return c.inner.Close()
}

// backoff returns base*2^(attempt-1) with full jitter.
func (c *RetryingClient) backoff(attempt int) time.Duration {
	max := c.baseBackoff << (attempt - 1)
	return time.Duration(rand.Int64N(int64(max))) + max/2
}
