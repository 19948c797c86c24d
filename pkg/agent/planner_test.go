package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

const validPlanJSON = `{
  "participants": [
    {"name": "API Designer", "role": "reviews API surface", "expertise": "REST, gRPC", "perspective": "API ergonomics", "system_prompt": "You are an API designer. Respond with \"issues\" JSON."},
    {"name": "Docs Lead", "role": "reviews documentation", "expertise": "technical writing", "perspective": "reader clarity"}
  ],
  "moderator_focus": "Fix the API first.",
  "convergence_criteria_hint": "Done when the API is coherent."
}`

func plannerConfig(n int) models.SessionConfig {
	return models.SessionConfig{NumParticipants: n, Model: "gpt-test", ModelStrategy: models.ModelStrategyUniform}
}

func TestPlannerUsesPresetWithoutLLMCall(t *testing.T) {
	client := llm.NewScriptedClient()

	p := NewPlanner(client, "gpt-test", nil)
	cfg := plannerConfig(3)
	cfg.Preset = models.PresetPRD

	res, err := p.Plan(context.Background(), "sess-1", "ship it", "prd", "content", cfg)

	require.NoError(t, err)
	assert.Equal(t, 0, client.Calls(llm.CallerMetaPlanner))
	require.Len(t, res.Participants, 3)
	assert.Equal(t, "Senior Product Manager", res.Participants[0].Name)
	assert.Empty(t, res.Warning)
	assert.NotEmpty(t, res.ModeratorFocus)
	for _, spec := range res.Participants {
		assert.Contains(t, spec.SystemPrompt, `"issues"`)
		assert.Equal(t, "gpt-test", spec.ModelID)
	}
}

func TestPlannerResizesPresetPanel(t *testing.T) {
	p := NewPlanner(llm.NewScriptedClient(), "gpt-test", nil)

	cfg := plannerConfig(2)
	cfg.Preset = models.PresetArchitecture
	res, err := p.Plan(context.Background(), "s", "g", "architecture", "c", cfg)
	require.NoError(t, err)
	assert.Len(t, res.Participants, 2)

	cfg = plannerConfig(5)
	cfg.Preset = models.PresetPRD
	res, err = p.Plan(context.Background(), "s", "g", "prd", "c", cfg)
	require.NoError(t, err)
	require.Len(t, res.Participants, 5)
	assert.Equal(t, "Generalist Reviewer A", res.Participants[3].Name)
	assert.Equal(t, "Generalist Reviewer B", res.Participants[4].Name)
}

func TestPlannerLLMPath(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Script(llm.CallerMetaPlanner, llm.StaticResponse(validPlanJSON, 80))

	p := NewPlanner(client, "gpt-test", nil)
	res, err := p.Plan(context.Background(), "sess-1", "ship it", "design doc", "the content", plannerConfig(2))

	require.NoError(t, err)
	require.Len(t, res.Participants, 2)
	assert.Equal(t, "API Designer", res.Participants[0].Name)
	assert.Equal(t, "Fix the API first.", res.ModeratorFocus)
	assert.Equal(t, "Done when the API is coherent.", res.ConvergenceCriteriaHint)
	assert.Empty(t, res.Warning)
	assert.Equal(t, 80, res.Tokens.Total)

	// Docs Lead had no system_prompt; one is synthesized with the
	// response schema included.
	assert.Contains(t, res.Participants[1].SystemPrompt, `"issues"`)

	req := client.Requests()[0]
	assert.True(t, req.JSONMode)
	assert.Contains(t, req.UserPrompt, "exactly 2 reviewers")
	assert.Contains(t, req.UserPrompt, "the content")
}

func TestPlannerTruncatesLongExcerpt(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Script(llm.CallerMetaPlanner, llm.StaticResponse(validPlanJSON, 10))

	p := NewPlanner(client, "gpt-test", nil)
	long := strings.Repeat("x", plannerExcerptLimit*2)
	_, err := p.Plan(context.Background(), "s", "g", "doc", long, plannerConfig(2))

	require.NoError(t, err)
	assert.Less(t, len(client.Requests()[0].UserPrompt), plannerExcerptLimit+1000)
}

func TestPlannerFallsBackOnMalformedPlan(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Script(llm.CallerMetaPlanner, llm.StaticResponse("not json at all", 15))

	p := NewPlanner(client, "gpt-test", nil)
	res, err := p.Plan(context.Background(), "sess-1", "g", "doc", "c", plannerConfig(3))

	require.NoError(t, err)
	require.Len(t, res.Participants, 3)
	assert.Equal(t, "Domain Expert", res.Participants[0].Name)
	assert.Contains(t, res.Warning, "generic panel")
	// Tokens spent on the failed plan are still accounted for.
	assert.Equal(t, 15, res.Tokens.Total)
}

func TestPlannerFallsBackOnLLMError(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Script(llm.CallerMetaPlanner, func(*llm.Request) (*llm.Response, error) {
		return nil, &llm.Error{Message: "provider down", Retryable: true, Tokens: models.TokenUsage{Total: 7}}
	})

	p := NewPlanner(client, "gpt-test", nil)
	res, err := p.Plan(context.Background(), "sess-1", "g", "doc", "c", plannerConfig(2))

	require.NoError(t, err)
	assert.Contains(t, res.Warning, "provider down")
	assert.Equal(t, 7, res.Tokens.Total)
}

func TestPlannerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := llm.NewScriptedClient()
	client.Script(llm.CallerMetaPlanner, func(*llm.Request) (*llm.Response, error) {
		return nil, ctx.Err()
	})

	p := NewPlanner(client, "gpt-test", nil)
	res, err := p.Plan(ctx, "sess-1", "g", "doc", "c", plannerConfig(2))

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestValidatePlanDeduplicatesNames(t *testing.T) {
	raw := &rawPlan{
		Participants: []rawParticipant{
			{Name: "Reviewer", Role: "r1"},
			{Name: "Reviewer", Role: "r2"},
			{Name: "Reviewer", Role: "r3"},
		},
		ModeratorFocus: "focus",
	}

	specs, err := validatePlan(raw, 3)
	require.NoError(t, err)
	assert.Equal(t, "Reviewer", specs[0].Name)
	assert.Equal(t, "Reviewer A", specs[1].Name)
	assert.Equal(t, "Reviewer B", specs[2].Name)
}

func TestValidatePlanRejectsBadPlans(t *testing.T) {
	tests := []struct {
		name string
		raw  rawPlan
	}{
		{"no participants", rawPlan{ModeratorFocus: "f"}},
		{"no moderator focus", rawPlan{Participants: []rawParticipant{{Name: "A", Role: "r"}}}},
		{"unnamed participant", rawPlan{Participants: []rawParticipant{{Role: "r"}}, ModeratorFocus: "f"}},
		{"roleless participant", rawPlan{Participants: []rawParticipant{{Name: "A"}}, ModeratorFocus: "f"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validatePlan(&tt.raw, 2)
			assert.Error(t, err)
		})
	}
}

func TestPlannerDiverseModelAssignment(t *testing.T) {
	p := NewPlanner(llm.NewScriptedClient(), "gpt-test", []string{"model-a", "model-b"})

	cfg := plannerConfig(4)
	cfg.Preset = models.PresetArchitecture
	cfg.ModelStrategy = models.ModelStrategyDiverse

	res, err := p.Plan(context.Background(), "s", "g", "architecture", "c", cfg)
	require.NoError(t, err)

	got := make([]string, len(res.Participants))
	for i, spec := range res.Participants {
		got[i] = spec.ModelID
	}
	assert.Equal(t, []string{"model-a", "model-b", "model-a", "model-b"}, got)
}

func TestPlannerDiverseWithEmptyPoolFallsBackToUniform(t *testing.T) {
	p := NewPlanner(llm.NewScriptedClient(), "gpt-test", nil)

	cfg := plannerConfig(3)
	cfg.Preset = models.PresetPRD
	cfg.ModelStrategy = models.ModelStrategyDiverse

	res, err := p.Plan(context.Background(), "s", "g", "prd", "c", cfg)
	require.NoError(t, err)
	for _, spec := range res.Participants {
		assert.Equal(t, "gpt-test", spec.ModelID)
	}
}
