package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetrying(inner Client) *RetryingClient {
	c := NewRetrying(inner)
	c.baseBackoff = time.Millisecond
	return c
}

func TestRetrying_SucceedsAfterTransient(t *testing.T) {
	stub := NewScriptedClient()
	stub.Script("reviewer", ResponseSequence(
		func(*Request) (*Response, error) {
			return nil, &Error{Code: "UNAVAILABLE", Message: "overloaded", Retryable: true,
				Tokens: models.TokenUsage{Total: 7}}
		},
		StaticResponse("ok", 100),
	))

	client := fastRetrying(stub)
	resp, err := client.Complete(context.Background(), &Request{Caller: "reviewer"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	// Tokens from the failed attempt are still tallied.
	assert.Equal(t, 107, resp.Tokens.Total)
	assert.Equal(t, 2, stub.Calls("reviewer"))
}

func TestRetrying_FatalPassesThrough(t *testing.T) {
	stub := NewScriptedClient()
	stub.Script("reviewer", func(*Request) (*Response, error) {
		return nil, &Error{Code: "PERMISSION_DENIED", Message: "bad key", Retryable: false}
	})

	client := fastRetrying(stub)
	_, err := client.Complete(context.Background(), &Request{Caller: "reviewer"})
	require.Error(t, err)
	assert.False(t, IsTransient(err))
	assert.Equal(t, 1, stub.Calls("reviewer"))
}

func TestRetrying_ExhaustsAttempts(t *testing.T) {
	stub := NewScriptedClient()
	stub.Script("reviewer", func(*Request) (*Response, error) {
		return nil, &Error{Code: "UNAVAILABLE", Message: "down", Retryable: true,
			Tokens: models.TokenUsage{Total: 3}}
	})

	client := fastRetrying(stub)
	_, err := client.Complete(context.Background(), &Request{Caller: "reviewer"})
	require.Error(t, err)
	assert.True(t, IsTransient(err))
	assert.Equal(t, defaultMaxAttempts, stub.Calls("reviewer"))
	// All three failed attempts are accounted.
	assert.Equal(t, 9, ConsumedTokens(err).Total)
}

func TestRetrying_ContextCancelled(t *testing.T) {
	stub := NewScriptedClient()
	stub.Script("reviewer", func(*Request) (*Response, error) {
		return nil, &Error{Message: "down", Retryable: true}
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := fastRetrying(stub)
	_, err := client.Complete(ctx, &Request{Caller: "reviewer"})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(&Error{Retryable: true}))
	assert.False(t, IsTransient(&Error{Retryable: false}))
	assert.False(t, IsTransient(errors.New("plain")))
}
