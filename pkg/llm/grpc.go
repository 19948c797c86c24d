package llm

import (
	"context"
	"fmt"

	"github.com/roundtable-ai/roundtable/pkg/models"
	llmv1 "github.com/roundtable-ai/roundtable/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// GRPCClient implements Client by calling the model-provider sidecar.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient creates a client for the sidecar at addr.
// grpc.NewClient dials lazily; the connection is established on the
// first RPC.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Complete performs a single prompt/response exchange.
func (c *GRPCClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]*llmv1.Message, 0, len(req.Prior)+2)
	if req.SystemPrompt != "" {
		messages = append(messages, &llmv1.Message{Role: "system", Content: req.SystemPrompt})
	}
	for _, turn := range req.Prior {
		messages = append(messages, &llmv1.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, &llmv1.Message{Role: "user", Content: req.UserPrompt})

	resp, err := c.client.Complete(ctx, &llmv1.CompleteRequest{
		SessionId:   req.SessionID,
		Caller:      req.Caller,
		Model:       req.Model,
		Temperature: req.Temperature,
		Messages:    messages,
		JsonMode:    req.JSONMode,
	})
	if err != nil {
		return nil, classifyGRPCError(err)
	}

	return &Response{
		Content: resp.GetContent(),
		Tokens: models.TokenUsage{
			Prompt:     int(resp.GetUsage().GetPromptTokens()),
			Completion: int(resp.GetUsage().GetCompletionTokens()),
			Total:      int(resp.GetUsage().GetTotalTokens()),
		},
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// classifyGRPCError maps gRPC status codes onto the transient/fatal
// split. Unavailable, overload and deadline failures are worth a
// retry; auth, quota and validation failures are not.
func classifyGRPCError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return &Error{Message: err.Error(), Retryable: false}
	}

	retryable := false
	switch st.Code() {
	case codes.Unavailable, codes.ResourceExhausted, codes.DeadlineExceeded, codes.Aborted:
		retryable = true
	}

	return &Error{
		Code:      st.Code().String(),
		Message:   st.Message(),
		Retryable: retryable,
	}
}
