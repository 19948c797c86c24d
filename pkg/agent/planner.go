package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

const plannerSystemPrompt = `You are a meta-planner that designs a panel of document reviewers.
Given a document's goal and type, produce a panel of distinct reviewer
personas whose perspectives together cover the document's risks.

Respond with ONLY a JSON object, no prose before or after:
{
  "participants": [
    {
      "name": "<short persona name, e.g. a job title>",
      "role": "<one paragraph: what this reviewer reviews for>",
      "expertise": "<comma-separated areas of expertise>",
      "perspective": "<the single concern this reviewer champions>",
      "system_prompt": "<the full system prompt this reviewer will run with>"
    }
  ],
  "moderator_focus": "<instructions for the editor that rewrites the document>",
  "convergence_criteria_hint": "<one sentence: when is this document done>"
}

Rules:
- Each participant must have a distinct name and a distinct perspective.
- system_prompt must instruct the reviewer to be critical and specific.
- Do not include markdown code fences.`

const plannerExcerptLimit = 2000

// Planner decides the reviewer panel for a session. With a recognized
// preset it uses the built-in template; otherwise it asks the LLM to
// design the panel and falls back to a generic template on failure.
type Planner struct {
	client llm.Client
	model  string
	pool   []string
}

// NewPlanner returns a planner calling model for LLM-designed panels.
// pool is the model pool used for the diverse assignment strategy; it
// may be empty, in which case diverse falls back to uniform.
func NewPlanner(client llm.Client, model string, pool []string) *Planner {
	return &Planner{client: client, model: model, pool: pool}
}

// Plan produces the session's panel. The returned result is always
// usable: planner failures degrade to the fallback template with
// Warning set rather than returning an error. Only context
// cancellation is surfaced as an error.
func (p *Planner) Plan(ctx context.Context, sessionID, goal, documentType, content string, cfg models.SessionConfig) (*models.PlannerResult, error) {
	if tpl, ok := presetTemplates[cfg.Preset]; ok {
		res := resultFromTemplate(tpl, cfg.NumParticipants)
		p.assignModels(res, cfg)
		return res, nil
	}

	res, tokens, err := p.planWithLLM(ctx, sessionID, goal, documentType, content, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		res = resultFromTemplate(fallbackTemplate, cfg.NumParticipants)
		res.Warning = fmt.Sprintf("planner failed, using generic panel: %v", err)
	}
	res.Tokens = tokens
	p.assignModels(res, cfg)
	return res, nil
}

func resultFromTemplate(tpl presetTemplate, n int) *models.PlannerResult {
	return &models.PlannerResult{
		Participants:            resizePanel(tpl.participants, n),
		ModeratorFocus:          tpl.moderatorFocus,
		ConvergenceCriteriaHint: tpl.criteriaHint,
	}
}

type rawParticipant struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Expertise    string `json:"expertise"`
	Perspective  string `json:"perspective"`
	SystemPrompt string `json:"system_prompt"`
}

type rawPlan struct {
	Participants            []rawParticipant `json:"participants"`
	ModeratorFocus          string           `json:"moderator_focus"`
	ConvergenceCriteriaHint string           `json:"convergence_criteria_hint"`
}

func (p *Planner) planWithLLM(ctx context.Context, sessionID, goal, documentType, content string, cfg models.SessionConfig) (*models.PlannerResult, models.TokenUsage, error) {
	var tokens models.TokenUsage

	excerpt := content
	if len(excerpt) > plannerExcerptLimit {
		excerpt = excerpt[:plannerExcerptLimit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Design a panel of exactly %d reviewers.\n\n", cfg.NumParticipants)
	fmt.Fprintf(&b, "Document type: %s\n", documentType)
	fmt.Fprintf(&b, "Refinement goal: %s\n", goal)
	if cfg.ParticipantStyle != "" {
		fmt.Fprintf(&b, "Requested panel style: %s\n", cfg.ParticipantStyle)
	}
	fmt.Fprintf(&b, "\nDocument excerpt:\n%s\n", excerpt)

	resp, err := p.client.Complete(ctx, &llm.Request{
		SessionID:    sessionID,
		Caller:       llm.CallerMetaPlanner,
		Model:        p.model,
		Temperature:  0.4,
		SystemPrompt: plannerSystemPrompt,
		UserPrompt:   b.String(),
		JSONMode:     true,
	})
	if err != nil {
		tokens.Add(llm.ConsumedTokens(err))
		return nil, tokens, err
	}
	tokens.Add(resp.Tokens)

	var raw rawPlan
	if err := json.Unmarshal([]byte(stripCodeFences(resp.Content)), &raw); err != nil {
		return nil, tokens, fmt.Errorf("parsing planner output: %w", err)
	}
	specs, err := validatePlan(&raw, cfg.NumParticipants)
	if err != nil {
		return nil, tokens, err
	}
	return &models.PlannerResult{
		Participants:            specs,
		ModeratorFocus:          raw.ModeratorFocus,
		ConvergenceCriteriaHint: raw.ConvergenceCriteriaHint,
	}, tokens, nil
}

// validatePlan turns a raw LLM plan into usable role specs. Name
// collisions get deterministic suffixes instead of failing the plan,
// and participants missing a system prompt get one built from their
// role description. The panel is resized to exactly n.
func validatePlan(raw *rawPlan, n int) ([]models.RoleSpec, error) {
	if len(raw.Participants) == 0 {
		return nil, fmt.Errorf("planner returned no participants")
	}
	if raw.ModeratorFocus == "" {
		return nil, fmt.Errorf("planner returned no moderator focus")
	}

	seen := make(map[string]int)
	specs := make([]models.RoleSpec, 0, len(raw.Participants))
	for i, rp := range raw.Participants {
		name := strings.TrimSpace(rp.Name)
		if name == "" {
			return nil, fmt.Errorf("participant %d has no name", i)
		}
		if rp.Role == "" {
			return nil, fmt.Errorf("participant %q has no role", name)
		}
		if c := seen[name]; c > 0 {
			name = fmt.Sprintf("%s %c", name, 'A'+c-1)
		}
		seen[strings.TrimSpace(rp.Name)]++

		prompt := rp.SystemPrompt
		if prompt == "" {
			prompt = buildSystemPrompt(name, rp.Role, firstNonEmpty(rp.Expertise, "general analysis"),
				"Prioritize High only for issues that clearly block the document's purpose.")
		} else if !strings.Contains(prompt, `"issues"`) {
			prompt = prompt + "\n\n" + reviewSchemaInstructions
		}
		specs = append(specs, models.RoleSpec{
			Name:         name,
			Role:         rp.Role,
			Expertise:    rp.Expertise,
			Perspective:  rp.Perspective,
			SystemPrompt: prompt,
		})
	}
	return resizePanel(specs, n), nil
}

// assignModels sets each participant's model. Uniform gives everyone
// the planner's base model; diverse distributes the configured pool
// round-robin so reviewers disagree for model reasons as well as
// persona reasons.
func (p *Planner) assignModels(res *models.PlannerResult, cfg models.SessionConfig) {
	base := cfg.Model
	if base == "" {
		base = p.model
	}
	pool := p.pool
	if cfg.ModelStrategy != models.ModelStrategyDiverse || len(pool) == 0 {
		pool = []string{base}
	}
	for i := range res.Participants {
		res.Participants[i].ModelID = pool[i%len(pool)]
	}
}
