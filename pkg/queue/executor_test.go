package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/store"
)

const cleanReviewJSON = `{"issues": [], "overall_assessment": "Looks solid."}`

const highReviewJSON = `{
	"issues": [
		{"category": "scope", "description": "success metrics are missing", "severity": "High", "suggested_fix": "add measurable KPIs"}
	],
	"overall_assessment": "Needs another pass."
}`

// prdPanel is the preset panel used by most tests; scripting is keyed
// by these caller names.
var prdPanel = []string{"Senior Product Manager", "Principal Engineer", "AI Risk Analyst"}

type execEnv struct {
	store     *store.MemoryStore
	client    *llm.ScriptedClient
	executor  *RoundtableExecutor
	publisher *events.Publisher
}

func newExecEnv(t *testing.T) *execEnv {
	t.Helper()
	st := store.NewMemoryStore()
	bus := events.NewBus()
	t.Cleanup(bus.Close)
	client := llm.NewScriptedClient()
	publisher := events.NewPublisher(st, bus)
	llmCfg := config.DefaultLLMConfig()
	return &execEnv{
		store:     st,
		client:    client,
		executor:  NewRoundtableExecutor(st, publisher, client, llmCfg),
		publisher: publisher,
	}
}

// seedClaimedSession persists a session in Planning with its initial
// document, the state a freshly claimed session arrives in.
func (env *execEnv) seedClaimedSession(t *testing.T, maxIterations int) *models.Session {
	t.Helper()
	ctx := context.Background()
	session := &models.Session{
		ID:           "sess-exec",
		Title:        "Payments PRD",
		Goal:         "make the PRD reviewable",
		DocumentType: "prd",
		Config: models.SessionConfig{
			MaxIterations:      maxIterations,
			DeltaThreshold:     0.05,
			StopOnNoHighIssues: true,
			NumParticipants:    3,
			Preset:             models.PresetPRD,
			Model:              "gpt-test",
		},
		Status:    models.StatusPlanning,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, env.store.CreateSession(ctx, session))
	require.NoError(t, env.store.SaveVersion(ctx, session.ID, &models.DocumentVersion{
		Version:      1,
		Title:        session.Title,
		DocumentType: session.DocumentType,
		Content:      "## Overview\nAccept card payments for the store.",
		CreatedAt:    time.Now().UTC(),
		LengthChars:  47,
	}))
	return session
}

func (env *execEnv) scriptPanel(fn llm.ScriptFunc) {
	for _, name := range prdPanel {
		env.client.Script(name, fn)
	}
}

func persistedEventTypes(t *testing.T, st *store.MemoryStore, sessionID string) []string {
	t.Helper()
	evs, err := st.GetCatchupEvents(context.Background(), events.SessionChannel(sessionID), 0, 100)
	require.NoError(t, err)
	types := make([]string, len(evs))
	for i, ev := range evs {
		types[i] = fmt.Sprintf("%v", ev.Payload["type"])
	}
	return types
}

func TestExecuteStopsWhenNoHighIssues(t *testing.T) {
	env := newExecEnv(t)
	session := env.seedClaimedSession(t, 5)
	env.scriptPanel(llm.StaticResponse(cleanReviewJSON, 10))

	result := env.executor.Execute(context.Background(), session)
	require.NotNil(t, result)
	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.Equal(t, models.StoppedByNoHighIssues, result.StoppedBy)
	assert.Equal(t, 1, result.FinalVersion)

	ctx := context.Background()

	// Preset panel, no meta-planner call.
	assert.Equal(t, 0, env.client.Calls(llm.CallerMetaPlanner))
	assert.Equal(t, 0, env.client.Calls(llm.CallerModerator))

	reviews, err := env.store.ListReviews(ctx, session.ID, 1)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	for _, r := range reviews {
		assert.Equal(t, 1, r.DocumentVersion)
		assert.Equal(t, "gpt-test", r.Model)
	}

	iterations, err := env.store.ListIterations(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, iterations, 1)
	assert.True(t, iterations[0].Convergence.Decision)
	assert.Equal(t, models.StoppedByNoHighIssues, iterations[0].Convergence.StoppedBy)
	assert.Equal(t, 0, iterations[0].OutputVersion)

	// Each panel member is accounted once.
	reloaded, err := env.store.GetSession(ctx, session.ID)
	require.NoError(t, err)
	for _, name := range prdPanel {
		assert.Equal(t, 10, reloaded.Tokens[name].Total, "tokens for %s", name)
	}
}

func TestExecuteEventOrder(t *testing.T) {
	env := newExecEnv(t)
	session := env.seedClaimedSession(t, 5)
	env.scriptPanel(llm.StaticResponse(cleanReviewJSON, 10))

	result := env.executor.Execute(context.Background(), session)
	require.Equal(t, models.StatusCompleted, result.Status)

	types := persistedEventTypes(t, env.store, session.ID)

	indexOf := func(eventType string) int {
		for i, typ := range types {
			if typ == eventType {
				return i
			}
		}
		t.Fatalf("event %s not found in %v", eventType, types)
		return -1
	}

	assert.Less(t, indexOf(events.EventTypeRoundtableGenerating), indexOf(events.EventTypeRoundtableGenerated))
	assert.Less(t, indexOf(events.EventTypeRoundtableGenerated), indexOf(events.EventTypeIterationStart))
	assert.Less(t, indexOf(events.EventTypeIterationStart), indexOf(events.EventTypeCriticReviewStart))
	assert.Less(t, indexOf(events.EventTypeCriticReviewStart), indexOf(events.EventTypeCriticReviewComplete))
	assert.Less(t, indexOf(events.EventTypeCriticReviewComplete), indexOf(events.EventTypeConvergenceCheck))
	assert.Less(t, indexOf(events.EventTypeConvergenceCheck), indexOf(events.EventTypeRefinementComplete))
}

func TestExecuteIteratesUntilConverged(t *testing.T) {
	env := newExecEnv(t)
	session := env.seedClaimedSession(t, 5)

	// First pass raises a High issue, second pass is clean.
	env.scriptPanel(llm.ResponseSequence(
		llm.StaticResponse(highReviewJSON, 10),
		llm.StaticResponse(cleanReviewJSON, 10),
	))
	env.client.Script(llm.CallerModerator, llm.StaticResponse(
		"## Overview\nAccept card payments for the store.\n\n## Success Metrics\nConversion over 2% within one quarter.", 40))

	result := env.executor.Execute(context.Background(), session)
	require.NotNil(t, result)
	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.Equal(t, models.StoppedByNoHighIssues, result.StoppedBy)
	assert.Equal(t, 2, result.FinalVersion)

	ctx := context.Background()
	iterations, err := env.store.ListIterations(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, iterations, 2)

	first, second := iterations[0], iterations[1]
	assert.Equal(t, 1, first.InputVersion)
	assert.Equal(t, 2, first.OutputVersion)
	assert.False(t, first.Convergence.Decision)
	assert.Equal(t, 1, first.Convergence.Counts.High)
	// Iteration 1 has no prior rewrite to diff against.
	assert.Equal(t, 0.0, first.Convergence.Delta)

	assert.Equal(t, 2, second.InputVersion)
	assert.Equal(t, 0, second.OutputVersion)
	assert.True(t, second.Convergence.Decision)
	assert.Equal(t, 0, second.Convergence.Counts.High)
	assert.Greater(t, second.Convergence.Delta, 0.0)

	// The moderator's output became version 2.
	v2, err := env.store.GetVersion(ctx, session.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, v2.ProducedFromVersion)
	assert.Contains(t, v2.Content, "Success Metrics")

	// Token accounting: two review passes per participant plus one
	// moderation.
	reloaded, err := env.store.GetSession(ctx, session.ID)
	require.NoError(t, err)
	for _, name := range prdPanel {
		assert.Equal(t, 20, reloaded.Tokens[name].Total, "tokens for %s", name)
	}
	assert.Equal(t, 40, reloaded.Tokens[models.TokenKeyModerator].Total)
}

func TestExecuteReviewerFailureFailsSession(t *testing.T) {
	env := newExecEnv(t)
	session := env.seedClaimedSession(t, 5)
	env.scriptPanel(llm.StaticResponse(cleanReviewJSON, 10))
	env.client.Script("Principal Engineer", func(*llm.Request) (*llm.Response, error) {
		return nil, &llm.Error{Code: "quota_exceeded", Message: "quota exceeded", Retryable: false}
	})

	result := env.executor.Execute(context.Background(), session)
	require.NotNil(t, result)
	assert.Equal(t, models.StatusFailed, result.Status)
	assert.Equal(t, models.StoppedByError, result.StoppedBy)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "quota exceeded")

	// Nothing from the broken iteration is persisted.
	ctx := context.Background()
	reviews, err := env.store.ListReviews(ctx, session.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	iterations, err := env.store.ListIterations(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, iterations)

	// Tokens spent by the reviewers that finished are still accounted.
	reloaded, err := env.store.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, reloaded.Tokens["Senior Product Manager"].Total)
	assert.Equal(t, 10, reloaded.Tokens["AI Risk Analyst"].Total)
	assert.Zero(t, reloaded.Tokens["Principal Engineer"].Total)
}

func TestExecuteModeratorFailurePersistsReviews(t *testing.T) {
	env := newExecEnv(t)
	session := env.seedClaimedSession(t, 5)
	env.scriptPanel(llm.StaticResponse(highReviewJSON, 10))
	env.client.Script(llm.CallerModerator, func(*llm.Request) (*llm.Response, error) {
		return nil, &llm.Error{Code: "content_filter", Message: "content filtered", Retryable: false}
	})

	result := env.executor.Execute(context.Background(), session)
	require.NotNil(t, result)
	assert.Equal(t, models.StatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "moderation failed")

	// Reviews and the iteration record survive; no output version.
	ctx := context.Background()
	reviews, err := env.store.ListReviews(ctx, session.ID, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 3)
	iterations, err := env.store.ListIterations(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, iterations, 1)
	assert.Equal(t, 0, iterations[0].OutputVersion)

	versions, err := env.store.ListVersions(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, versions, 1)
}

func TestExecuteCancelledContext(t *testing.T) {
	env := newExecEnv(t)
	session := env.seedClaimedSession(t, 5)
	env.scriptPanel(llm.StaticResponse(cleanReviewJSON, 10))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := env.executor.Execute(ctx, session)
	require.NotNil(t, result)
	assert.Equal(t, models.StatusCancelled, result.Status)
}

func TestExecuteContinuationResumesFromFinalVersion(t *testing.T) {
	env := newExecEnv(t)
	ctx := context.Background()

	// Simulate a prior run that hit a 2-iteration cap: v1 reviewed and
	// rewritten to v2, then v2 reviewed and stopped at the cap.
	session := env.seedClaimedSession(t, 2)
	session.Participants = []models.RoleSpec{
		{Name: "Senior Product Manager", Role: "Senior Product Manager", SystemPrompt: "review the document"},
		{Name: "Principal Engineer", Role: "Principal Engineer", SystemPrompt: "review the document"},
		{Name: "AI Risk Analyst", Role: "AI Risk Analyst", SystemPrompt: "review the document"},
	}
	session.ModeratorFocus = "resolve the open High issues"
	now := time.Now().UTC()

	highReview := func(iter, version int) []*models.Review {
		reviews := make([]*models.Review, 0, len(prdPanel))
		for _, name := range prdPanel {
			reviews = append(reviews, &models.Review{
				ReviewerName: name,
				Issues: []models.Issue{{
					Category: "scope", Description: "metrics missing",
					Severity: models.SeverityHigh, ReviewerName: name,
				}},
				Iteration:       iter,
				DocumentVersion: version,
				Timestamp:       now,
			})
		}
		return reviews
	}

	require.NoError(t, env.store.CommitIteration(ctx, session.ID, store.IterationCommit{
		Reviews: highReview(1, 1),
		Record: models.IterationRecord{
			IterationIndex: 1, InputVersion: 1, OutputVersion: 2,
			Convergence: models.ConvergenceCheck{
				Counts: models.SeverityCounts{High: 3}, Delta: 0,
			},
			StartedAt: now, EndedAt: now,
		},
		NewVersion: &models.DocumentVersion{
			Version: 2, Title: session.Title, DocumentType: session.DocumentType,
			Content: "## Overview\nRewritten once.", CreatedAt: now,
			ProducedFromVersion: 1, LengthChars: 28,
		},
		CurrentIteration: 1,
	}))
	require.NoError(t, env.store.CommitIteration(ctx, session.ID, store.IterationCommit{
		Reviews: highReview(2, 2),
		Record: models.IterationRecord{
			IterationIndex: 2, InputVersion: 2,
			Convergence: models.ConvergenceCheck{
				Counts:    models.SeverityCounts{High: 3},
				Delta:     0.8,
				Decision:  true,
				Reason:    "max iterations reached (2); 3 high severity issues remain",
				StoppedBy: models.StoppedByMaxIterations,
			},
			StartedAt: now, EndedAt: now,
		},
		CurrentIteration: 2,
	}))

	// Continuation state: budget extended, re-claimed into Planning.
	session.Config.MaxIterations = 4
	session.ContinuedFromIteration = 2
	session.CurrentIteration = 2
	session.Status = models.StatusPlanning
	require.NoError(t, env.store.UpdateSession(ctx, session))

	env.scriptPanel(llm.StaticResponse(cleanReviewJSON, 10))

	result := env.executor.Execute(ctx, session)
	require.NotNil(t, result)
	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.Equal(t, models.StoppedByNoHighIssues, result.StoppedBy)
	assert.Equal(t, 2, result.FinalVersion)

	// The stored panel is reused, no planner call.
	assert.Equal(t, 0, env.client.Calls(llm.CallerMetaPlanner))

	iterations, err := env.store.ListIterations(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, iterations, 3)
	// The first continued iteration reviews the old final version.
	assert.Equal(t, 3, iterations[2].IterationIndex)
	assert.Equal(t, 2, iterations[2].InputVersion)
}

func TestExecuteSavesConvergenceReport(t *testing.T) {
	env := newExecEnv(t)
	session := env.seedClaimedSession(t, 5)
	env.scriptPanel(llm.StaticResponse(cleanReviewJSON, 10))

	result := env.executor.Execute(context.Background(), session)
	require.Equal(t, models.StatusCompleted, result.Status)

	report, err := env.store.GetReport(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, report.SessionID)
	assert.Equal(t, 1, report.InitialVersion)
	assert.Equal(t, 1, report.FinalVersion)
	assert.Equal(t, 1, report.IterationsCount)
	assert.True(t, report.Converged)
	assert.Equal(t, models.StoppedByNoHighIssues, report.StoppedBy)
	assert.Equal(t, "levenshtein_ratio", report.DeltaMetric)
	require.Len(t, report.History, 1)
	assert.Equal(t, 30, report.TotalTokens().Total)
}

func TestExecuteEventPayloadFields(t *testing.T) {
	env := newExecEnv(t)
	session := env.seedClaimedSession(t, 5)
	env.scriptPanel(llm.ResponseSequence(
		llm.StaticResponse(highReviewJSON, 10),
		llm.StaticResponse(cleanReviewJSON, 10),
	))
	env.client.Script(llm.CallerModerator, llm.StaticResponse(
		"## Overview\nAccept card payments.\n\n## Success Metrics\nConversion over 2%.", 40))

	result := env.executor.Execute(context.Background(), session)
	require.Equal(t, models.StatusCompleted, result.Status)

	evs, err := env.store.GetCatchupEvents(context.Background(),
		events.SessionChannel(session.ID), 0, 100)
	require.NoError(t, err)

	byType := make(map[string][]map[string]interface{})
	for _, ev := range evs {
		typ := fmt.Sprintf("%v", ev.Payload["type"])
		byType[typ] = append(byType[typ], ev.Payload)
	}

	// Critic completions carry the reviewer's token usage.
	require.NotEmpty(t, byType[events.EventTypeCriticReviewComplete])
	critic := byType[events.EventTypeCriticReviewComplete][0]
	tokens, ok := critic["tokens"].(map[string]interface{})
	require.True(t, ok, "critic_review_complete missing tokens: %v", critic)
	assert.Equal(t, float64(10), tokens["total"])

	// The first convergence check reports a zero delta, not a sentinel.
	require.NotEmpty(t, byType[events.EventTypeConvergenceCheck])
	assert.Equal(t, float64(0), byType[events.EventTypeConvergenceCheck][0]["delta"])

	// Moderator completion carries its own token usage.
	require.NotEmpty(t, byType[events.EventTypeModeratorComplete])
	modTokens, ok := byType[events.EventTypeModeratorComplete][0]["tokens"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(40), modTokens["total"])

	// The terminal event reports convergence and the final counts.
	require.Len(t, byType[events.EventTypeRefinementComplete], 1)
	final := byType[events.EventTypeRefinementComplete][0]
	assert.Equal(t, true, final["converged"])
	counts, ok := final["final_issue_counts"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), counts["high"])
}

func TestExecuteForceMaxIterationsRunsFullBudget(t *testing.T) {
	env := newExecEnv(t)
	session := env.seedClaimedSession(t, 3)
	session.Config.ForceMaxIterations = true
	require.NoError(t, env.store.UpdateSession(context.Background(), session))

	env.scriptPanel(llm.StaticResponse(cleanReviewJSON, 10))
	env.client.Script(llm.CallerModerator, llm.ResponseSequence(
		llm.StaticResponse("## Overview\nRewrite one, considerably longer than before.", 30),
		llm.StaticResponse("## Overview\nRewrite two, different again from the prior text.", 30),
	))

	result := env.executor.Execute(context.Background(), session)
	require.NotNil(t, result)
	assert.Equal(t, models.StatusCompleted, result.Status)
	// At the cap the ordinary rules apply again; with no High issues
	// left the no-high rule is the one that fires.
	assert.Equal(t, models.StoppedByNoHighIssues, result.StoppedBy)
	assert.Equal(t, 3, result.FinalVersion)

	iterations, err := env.store.ListIterations(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Len(t, iterations, 3)
	assert.Equal(t, 2, env.client.Calls(llm.CallerModerator))
}
