// Package llm defines the client capability the core uses to talk to
// large language models and its gRPC implementation backed by the
// model-provider sidecar.
package llm

import (
	"context"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// Caller identity keys used for sidecar-side logging and token
// accounting. Participant reviewers use their role-spec name.
const (
	CallerModerator   = "moderator"
	CallerMetaPlanner = "meta_planner"
)

// Request is a single prompt/response exchange.
type Request struct {
	SessionID    string
	Caller       string
	Model        string
	Temperature  float32
	SystemPrompt string
	UserPrompt   string

	// Prior carries earlier turns of the same exchange (used by the
	// reviewer salvage retry, which replays the model's malformed
	// answer before asking for a reformat).
	Prior []Turn

	// JSONMode asks the provider for a JSON-constrained response where
	// supported.
	JSONMode bool
}

// Turn is one prior message of an exchange.
type Turn struct {
	Role    string // "user" or "assistant"
	Content string
}

// Response is the model's reply plus token accounting.
type Response struct {
	Content string
	Tokens  models.TokenUsage
}

// Client issues prompt/response exchanges against an LLM. Safe for
// concurrent use; retry policy for transient failures is the client's
// concern (see NewRetrying).
type Client interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Close() error
}
