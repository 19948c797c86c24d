package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

// Moderator synthesizes the reviews for a document version into the
// next version's text.
type Moderator struct {
	focus  string
	goal   string
	client llm.Client
	model  string
}

// NewModerator creates a moderator with the planner's focus directive.
// The moderator always uses the session's primary model.
func NewModerator(focus, goal string, client llm.Client, model string) *Moderator {
	return &Moderator{focus: focus, goal: goal, client: client, model: model}
}

// Refine returns the next document content. The store assigns the new
// version number; the moderator only produces text.
func (m *Moderator) Refine(ctx context.Context, sessionID string, doc *models.DocumentVersion, reviews []*models.Review) (string, models.TokenUsage, error) {
	userPrompt, err := buildModeratorPrompt(doc, reviews, m.goal)
	if err != nil {
		return "", models.TokenUsage{}, err
	}

	resp, err := m.client.Complete(ctx, &llm.Request{
		SessionID:    sessionID,
		Caller:       llm.CallerModerator,
		Model:        m.model,
		Temperature:  0.3,
		SystemPrompt: moderatorSystemPrompt(m.focus),
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return "", models.TokenUsage{}, err
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", resp.Tokens, fmt.Errorf("moderator returned empty document")
	}
	return content, resp.Tokens, nil
}
