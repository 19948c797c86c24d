package roundtable

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/services"
)

const cleanReviewJSON = `{"issues": [], "overall_assessment": "fine"}`

const highReviewJSON = `{
	"issues": [
		{"category": "scope", "description": "success metrics are missing", "severity": "High"}
	],
	"overall_assessment": "Needs another pass."
}`

const mediumReviewJSON = `{
	"issues": [
		{"category": "style", "description": "tighten the intro", "severity": "Medium"}
	],
	"overall_assessment": "Close, minor polish left."
}`

// The prd preset trimmed to two participants keeps its first two
// roles; scenario scripting is keyed by these names.
var panelOfTwo = []string{"Senior Product Manager", "Principal Engineer"}

func baseConfig(client *llm.ScriptedClient) Config {
	return Config{
		Title:           "Empty",
		Content:         "trivial doc",
		Preset:          models.PresetPRD,
		NumParticipants: 2,
		MaxIterations:   3,
		Model:           "stub-model",
		Client:          client,
	}
}

func scriptPanel(client *llm.ScriptedClient, fn llm.ScriptFunc) {
	for _, name := range panelOfTwo {
		client.Script(name, fn)
	}
}

func countEvents(evs []events.CatchupEvent) map[string]int {
	counts := make(map[string]int)
	for _, ev := range evs {
		counts[fmt.Sprintf("%v", ev.Payload["type"])]++
	}
	return counts
}

func TestRunImmediateConvergence(t *testing.T) {
	client := llm.NewScriptedClient()
	scriptPanel(client, llm.StaticResponse(cleanReviewJSON, 10))

	rt, err := New(baseConfig(client))
	require.NoError(t, err)
	defer rt.Close()

	ctx := context.Background()
	session, err := rt.Start(ctx, baseConfig(client).startRequest())
	require.NoError(t, err)
	result, err := rt.Execute(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, result.Session.Status)
	assert.Equal(t, models.StoppedByNoHighIssues, result.Session.StoppedBy)
	assert.Equal(t, 1, result.Session.FinalVersion)

	require.NotNil(t, result.Report)
	assert.True(t, result.Report.Converged)
	assert.Equal(t, 1, result.Report.IterationsCount)
	assert.Equal(t, models.SeverityCounts{}, result.Report.FinalIssueCounts)

	require.NotNil(t, result.FinalDocument)
	assert.Equal(t, "trivial doc", result.FinalDocument.Content)

	evs, err := rt.EventLog(ctx, session.ID)
	require.NoError(t, err)
	counts := countEvents(evs)
	assert.Equal(t, 1, counts[events.EventTypeIterationStart])
	assert.Equal(t, 2, counts[events.EventTypeCriticReviewStart])
	assert.Equal(t, 2, counts[events.EventTypeCriticReviewComplete])
	assert.Equal(t, 1, counts[events.EventTypeConvergenceCheck])
	assert.Zero(t, counts[events.EventTypeModeratorStart])
	assert.Zero(t, counts[events.EventTypeModeratorComplete])
	assert.Equal(t, 1, counts[events.EventTypeRefinementComplete])
}

func TestRunMaxIterationsHit(t *testing.T) {
	// The cap iteration stops after its convergence check, so the
	// moderator rewrites once (v1 to v2) and iteration 2 reviews v2
	// before hitting the budget.
	client := llm.NewScriptedClient()
	scriptPanel(client, llm.StaticResponse(highReviewJSON, 10))
	client.Script(llm.CallerModerator, llm.StaticResponse("trivial doc\n(revised)", 20))

	cfg := baseConfig(client)
	cfg.MaxIterations = 2
	result, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, result.Session.Status)
	assert.Equal(t, models.StoppedByMaxIterations, result.Session.StoppedBy)
	assert.Equal(t, 2, result.Session.FinalVersion)

	require.NotNil(t, result.Report)
	assert.False(t, result.Report.Converged)
	assert.Equal(t, 2, result.Report.IterationsCount)
	assert.Equal(t, 2, result.Report.FinalIssueCounts.High)

	require.Len(t, result.Report.History, 2)
	last := result.Report.History[1]
	assert.Equal(t, 2, last.Convergence.Counts.High)
	assert.Equal(t, 1, client.Calls(llm.CallerModerator))
}

func TestRunStabilityStop(t *testing.T) {
	// With the no-high rule disabled and a moderator that rewrites the
	// document to identical text, iteration 2 measures delta 0 and
	// stops for stability.
	client := llm.NewScriptedClient()
	scriptPanel(client, llm.StaticResponse(mediumReviewJSON, 10))
	client.Script(llm.CallerModerator, llm.StaticResponse("trivial doc", 20))

	noHigh := false
	cfg := baseConfig(client)
	cfg.MaxIterations = 5
	cfg.DeltaThreshold = 0.05
	cfg.StopOnNoHighIssues = &noHigh

	result, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, result.Session.Status)
	assert.Equal(t, models.StoppedByDeltaThreshold, result.Session.StoppedBy)
	assert.Equal(t, 2, result.Session.FinalVersion)
	require.NotNil(t, result.Report)
	assert.Equal(t, 2, result.Report.IterationsCount)

	require.Len(t, result.Report.History, 2)
	assert.Equal(t, 0.0, result.Report.History[1].Convergence.Delta)
}

func TestContinueAfterMaxIterations(t *testing.T) {
	client := llm.NewScriptedClient()
	scriptPanel(client, llm.StaticResponse(highReviewJSON, 10))
	client.Script(llm.CallerModerator, llm.StaticResponse("trivial doc\n(revised)", 20))

	rt, err := New(baseConfig(client))
	require.NoError(t, err)
	defer rt.Close()

	ctx := context.Background()
	req := baseConfig(client).startRequest()
	req.MaxIterations = 2
	session, err := rt.Start(ctx, req)
	require.NoError(t, err)
	first, err := rt.Execute(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, models.StoppedByMaxIterations, first.Session.StoppedBy)
	require.Equal(t, 2, first.Session.FinalVersion)

	// The panel is satisfied on the extra budget.
	scriptPanel(client, llm.StaticResponse(cleanReviewJSON, 10))

	result, err := rt.Continue(ctx, session.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, result.Session.Status)
	assert.Equal(t, models.StoppedByNoHighIssues, result.Session.StoppedBy)
	assert.Equal(t, 4, result.Session.Config.MaxIterations)
	assert.Equal(t, 2, result.Session.FinalVersion)

	require.NotNil(t, result.Report)
	assert.True(t, result.Report.Converged)
	assert.Equal(t, 2, result.Report.ContinuedFromIteration)

	// The first continued iteration consumes the prior final version.
	require.Len(t, result.Report.History, 3)
	resumed := result.Report.History[2]
	assert.Equal(t, 3, resumed.IterationIndex)
	assert.Equal(t, first.Session.FinalVersion, resumed.InputVersion)
}

func TestRunSalvagesMalformedReview(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Script(panelOfTwo[0], llm.ResponseSequence(
		llm.StaticResponse("Sure! Here are my thoughts, in prose.", 5),
		llm.StaticResponse(cleanReviewJSON, 5),
	))
	client.Script(panelOfTwo[1], llm.StaticResponse(cleanReviewJSON, 10))

	rt, err := New(baseConfig(client))
	require.NoError(t, err)
	defer rt.Close()

	ctx := context.Background()
	session, err := rt.Start(ctx, baseConfig(client).startRequest())
	require.NoError(t, err)

	// Log events are transient, so capture them live.
	sub := rt.Events(session.ID)
	defer sub.Cancel()

	result, err := rt.Execute(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, result.Session.Status)

	reviews, err := rt.Reviews(ctx, session.ID, 1)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	for _, r := range reviews {
		assert.Empty(t, r.Issues)
	}

	var sawSalvageWarning bool
	for {
		var raw []byte
		select {
		case raw = <-sub.C:
		default:
		}
		if raw == nil {
			break
		}
		var payload map[string]any
		require.NoError(t, json.Unmarshal(raw, &payload))
		if payload["type"] == events.EventTypeLog && payload["level"] == events.LogLevelWarning {
			assert.Contains(t, payload["message"], "salvaged")
			sawSalvageWarning = true
		}
	}
	assert.True(t, sawSalvageWarning, "expected a warning log for the salvaged review")
}

func TestRunReviewerFatalFailsSession(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Script(panelOfTwo[0], llm.StaticResponse(cleanReviewJSON, 10))
	client.Script(panelOfTwo[1], func(*llm.Request) (*llm.Response, error) {
		return nil, &llm.Error{Code: "quota_exceeded", Message: "monthly quota exhausted", Retryable: false}
	})

	rt, err := New(baseConfig(client))
	require.NoError(t, err)
	defer rt.Close()

	ctx := context.Background()
	session, err := rt.Start(ctx, baseConfig(client).startRequest())
	require.NoError(t, err)
	result, err := rt.Execute(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusFailed, result.Session.Status)
	assert.Equal(t, models.StoppedByError, result.Session.StoppedBy)
	assert.Nil(t, result.Report)

	// The iteration is atomic: no second version and no reviews exist.
	_, err = rt.Version(ctx, session.ID, 2)
	assert.ErrorIs(t, err, services.ErrNotFound)
	reviews, err := rt.Reviews(ctx, session.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	_, err = rt.Report(ctx, session.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRunRefinementInvariants(t *testing.T) {
	// A three-iteration run covering the cross-cutting bookkeeping:
	// dense version numbers, ordered iteration indexes, delta bounds,
	// review completeness and token accounting.
	client := llm.NewScriptedClient()
	// Each panelist needs its own sequence; a ResponseSequence carries
	// its own position.
	for _, name := range panelOfTwo {
		client.Script(name, llm.ResponseSequence(
			llm.StaticResponse(highReviewJSON, 10),
			llm.StaticResponse(highReviewJSON, 10),
			llm.StaticResponse(cleanReviewJSON, 10),
		))
	}
	client.Script(llm.CallerModerator, llm.ResponseSequence(
		llm.StaticResponse("trivial doc, expanded with metrics", 20),
		llm.StaticResponse("trivial doc, expanded with metrics and scope", 20),
	))

	rt, err := New(baseConfig(client))
	require.NoError(t, err)
	defer rt.Close()

	ctx := context.Background()
	session, err := rt.Start(ctx, baseConfig(client).startRequest())
	require.NoError(t, err)
	result, err := rt.Execute(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusCompleted, result.Session.Status)
	require.NotNil(t, result.Report)

	// Version numbers are dense from 1 to final_version.
	final := result.Session.FinalVersion
	require.Equal(t, 3, final)
	for v := 1; v <= final; v++ {
		_, err := rt.Version(ctx, session.ID, v)
		assert.NoError(t, err, "version %d", v)
	}
	_, err = rt.Version(ctx, session.ID, final+1)
	assert.ErrorIs(t, err, services.ErrNotFound)

	history := result.Report.History
	require.Len(t, history, 3)
	for i, record := range history {
		assert.Equal(t, i+1, record.IterationIndex)
		assert.Equal(t, i+1, record.InputVersion)

		// Delta is 0 before any rewrite exists, in [0,1] after.
		if record.IterationIndex == 1 {
			assert.Equal(t, 0.0, record.Convergence.Delta)
		} else {
			assert.GreaterOrEqual(t, record.Convergence.Delta, 0.0)
			assert.LessOrEqual(t, record.Convergence.Delta, 1.0)
		}

		// One review per participant, matched by name.
		reviews, err := rt.Reviews(ctx, session.ID, record.InputVersion)
		require.NoError(t, err)
		require.Len(t, reviews, len(panelOfTwo))
		seen := make(map[string]bool)
		for _, r := range reviews {
			seen[r.ReviewerName] = true
		}
		for _, name := range panelOfTwo {
			assert.True(t, seen[name], "missing review from %s in iteration %d", name, record.IterationIndex)
		}
	}

	// Total tokens equal reviewer spend plus moderator spend.
	total := 0
	for _, usage := range result.Session.Tokens {
		total += usage.Total
	}
	wantReviewer := 3 * len(panelOfTwo) * 10
	wantModerator := 2 * 20
	assert.Equal(t, wantReviewer+wantModerator, total)

	// Persisted event order per iteration: start, reviews, check.
	evs, err := rt.EventLog(ctx, session.ID)
	require.NoError(t, err)
	var types []string
	for _, ev := range evs {
		types = append(types, fmt.Sprintf("%v", ev.Payload["type"]))
	}
	indexOf := func(typ string) int {
		for i, v := range types {
			if v == typ {
				return i
			}
		}
		return -1
	}
	assert.Less(t, indexOf(events.EventTypeRoundtableGenerating), indexOf(events.EventTypeRoundtableGenerated))
	assert.Less(t, indexOf(events.EventTypeRoundtableGenerated), indexOf(events.EventTypeIterationStart))
	assert.Less(t, indexOf(events.EventTypeIterationStart), indexOf(events.EventTypeCriticReviewStart))
	assert.Less(t, indexOf(events.EventTypeCriticReviewStart), indexOf(events.EventTypeConvergenceCheck))
	assert.Less(t, indexOf(events.EventTypeConvergenceCheck), indexOf(events.EventTypeModeratorStart))
	assert.Equal(t, events.EventTypeRefinementComplete, types[len(types)-2],
		"refinement_complete precedes only the terminal status event")
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{Model: "stub-model"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Client")

	_, err = New(Config{Client: llm.NewScriptedClient()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Model")
}

func TestExecuteRequiresPendingSession(t *testing.T) {
	client := llm.NewScriptedClient()
	scriptPanel(client, llm.StaticResponse(cleanReviewJSON, 10))

	rt, err := New(baseConfig(client))
	require.NoError(t, err)
	defer rt.Close()

	ctx := context.Background()
	session, err := rt.Start(ctx, baseConfig(client).startRequest())
	require.NoError(t, err)
	_, err = rt.Execute(ctx, session.ID)
	require.NoError(t, err)

	// A terminal session cannot be executed again.
	_, err = rt.Execute(ctx, session.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected pending")

	_, err = rt.Execute(ctx, "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load session")
}
