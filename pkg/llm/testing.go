package llm

import (
	"context"
	"sync"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// ScriptFunc produces the stubbed response for one Complete call.
type ScriptFunc func(req *Request) (*Response, error)

// ScriptedClient is a test double driven by per-caller scripts. Each
// caller (participant name, "moderator", "meta_planner") has its own
// call counter, so scenarios can script "malformed on first call,
// valid on second" per reviewer while reviewers run in parallel.
type ScriptedClient struct {
	mu      sync.Mutex
	scripts map[string]ScriptFunc
	Default ScriptFunc
	calls   map[string]int
	log     []*Request
}

// NewScriptedClient creates an empty scripted client. Callers without
// a script fall back to Default; with no Default the call fails.
func NewScriptedClient() *ScriptedClient {
	return &ScriptedClient{
		scripts: make(map[string]ScriptFunc),
		calls:   make(map[string]int),
	}
}

// Script installs fn for the given caller.
func (c *ScriptedClient) Script(caller string, fn ScriptFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scripts[caller] = fn
}

// Calls returns how many times the given caller has been invoked.
func (c *ScriptedClient) Calls(caller string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[caller]
}

// Requests returns a copy of all requests seen, in arrival order.
func (c *ScriptedClient) Requests() []*Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Request, len(c.log))
	copy(out, c.log)
	return out
}

// Complete dispatches to the caller's script.
func (c *ScriptedClient) Complete(_ context.Context, req *Request) (*Response, error) {
	c.mu.Lock()
	c.calls[req.Caller]++
	c.log = append(c.log, req)
	fn := c.scripts[req.Caller]
	if fn == nil {
		fn = c.Default
	}
	c.mu.Unlock()

	if fn == nil {
		return nil, &Error{Message: "no script for caller " + req.Caller, Retryable: false}
	}
	return fn(req)
}

// Close is a no-op.
func (c *ScriptedClient) Close() error { return nil }

// StaticResponse returns a script that always answers with content and
// a fixed token count.
func StaticResponse(content string, totalTokens int) ScriptFunc {
	return func(*Request) (*Response, error) {
		return &Response{
			Content: content,
			Tokens:  models.TokenUsage{Prompt: totalTokens / 2, Completion: totalTokens - totalTokens/2, Total: totalTokens},
		}, nil
	}
}

// ResponseSequence returns a script that answers with each response in
// turn, repeating the last one once exhausted.
func ResponseSequence(responses ...ScriptFunc) ScriptFunc {
	var mu sync.Mutex
	i := 0
	return func(req *Request) (*Response, error) {
		mu.Lock()
		fn := responses[i]
		if i < len(responses)-1 {
			i++
		}
		mu.Unlock()
		return fn(req)
	}
}
