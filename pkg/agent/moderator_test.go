package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

func testReviews() []*models.Review {
	return []*models.Review{
		{
			ReviewerName: "Security Engineer",
			Issues: []models.Issue{
				{Category: "Security", Description: "No auth story", Severity: models.SeverityHigh, ReviewerName: "Security Engineer"},
			},
			OverallAssessment: "Blocked on auth",
			Timestamp:         time.Now().UTC(),
		},
	}
}

func TestModeratorRefine(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Script(llm.CallerModerator, llm.StaticResponse("# Payments Service v2\n\nNow with auth.", 120))

	m := NewModerator("Fix all High issues first.", "make it shippable", client, "gpt-test")
	content, tokens, err := m.Refine(context.Background(), "sess-1", testDoc(), testReviews())

	require.NoError(t, err)
	assert.Contains(t, content, "Now with auth")
	assert.Equal(t, 120, tokens.Total)

	req := client.Requests()[0]
	assert.Equal(t, llm.CallerModerator, req.Caller)
	assert.False(t, req.JSONMode)
	// The fixed resolution policy and the planner's focus both appear.
	assert.Contains(t, req.SystemPrompt, "MUST resolve every High severity issue")
	assert.Contains(t, req.SystemPrompt, "Fix all High issues first.")
	// Reviews reach the moderator as structured JSON with attribution.
	assert.Contains(t, req.UserPrompt, `"Security Engineer"`)
	assert.Contains(t, req.UserPrompt, "No auth story")
	assert.Contains(t, req.UserPrompt, "Session goal: make it shippable")
}

func TestModeratorRejectsEmptyDocument(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Script(llm.CallerModerator, llm.StaticResponse("   \n  ", 5))

	m := NewModerator("", "", client, "gpt-test")
	content, tokens, err := m.Refine(context.Background(), "sess-1", testDoc(), testReviews())

	require.Error(t, err)
	assert.Empty(t, content)
	// Tokens from the failed refinement are still reported.
	assert.Equal(t, 5, tokens.Total)
}

func TestModeratorPropagatesLLMError(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Script(llm.CallerModerator, func(*llm.Request) (*llm.Response, error) {
		return nil, &llm.Error{Code: "overloaded", Message: "try later", Retryable: true}
	})

	m := NewModerator("", "", client, "gpt-test")
	_, _, err := m.Refine(context.Background(), "sess-1", testDoc(), testReviews())

	require.Error(t, err)
	assert.True(t, llm.IsTransient(err))
}
