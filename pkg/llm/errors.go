package llm

import (
	"errors"
	"fmt"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// Error is a classified LLM failure. Retryable errors (rate limits,
// transport hiccups, provider overload) may be retried; non-retryable
// errors (auth, quota, content filter) abort the current iteration.
type Error struct {
	Code      string
	Message   string
	Retryable bool

	// Tokens consumed by the failed attempt, when the provider
	// reported any. Failed-attempt tokens are still tallied into the
	// session.
	Tokens models.TokenUsage
}

func (e *Error) Error() string {
	kind := "fatal"
	if e.Retryable {
		kind = "transient"
	}
	if e.Code != "" {
		return fmt.Sprintf("llm %s error (%s): %s", kind, e.Code, e.Message)
	}
	return fmt.Sprintf("llm %s error: %s", kind, e.Message)
}

// IsTransient reports whether err is a retryable LLM failure.
func IsTransient(err error) bool {
	var llmErr *Error
	return errors.As(err, &llmErr) && llmErr.Retryable
}

// ConsumedTokens extracts the token usage recorded on a failed call,
// if any.
func ConsumedTokens(err error) models.TokenUsage {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Tokens
	}
	return models.TokenUsage{}
}
