package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

// MalformedReviewError is returned when a reviewer's output could not
// be parsed even after one salvage attempt. The raw output is carried
// for persistence and debugging.
type MalformedReviewError struct {
	ReviewerName string
	Raw          string
	Cause        error
}

// rawErrorLimit caps how much raw model output rides along in the
// error string, which ends up in the session's error_message column.
const rawErrorLimit = 2000

func (e *MalformedReviewError) Error() string {
	raw := e.Raw
	if len(raw) > rawErrorLimit {
		raw = raw[:rawErrorLimit] + "...(truncated)"
	}
	return fmt.Sprintf("reviewer %q returned malformed review after salvage: %v; raw output: %s",
		e.ReviewerName, e.Cause, raw)
}

func (e *MalformedReviewError) Unwrap() error { return e.Cause }

// Reviewer is an LLM-backed critic parameterized by a role spec. The
// same code serves every participant; only the spec differs.
type Reviewer struct {
	spec   models.RoleSpec
	client llm.Client
	model  string
}

// NewReviewer creates a reviewer for the given role spec. model is the
// session's primary model; the spec's ModelID override wins when set.
func NewReviewer(spec models.RoleSpec, client llm.Client, model string) *Reviewer {
	if spec.ModelID != "" {
		model = spec.ModelID
	}
	return &Reviewer{spec: spec, client: client, model: model}
}

// Name returns the reviewer's participant name.
func (r *Reviewer) Name() string { return r.spec.Name }

// Model returns the model this reviewer calls.
func (r *Reviewer) Model() string { return r.model }

// Review produces a structured review of the document. A single
// unparseable response gets one salvage round-trip (asking the model to
// reformat its prior answer as valid JSON); a second failure is a
// MalformedReviewError. salvaged reports whether the salvage path was
// taken.
func (r *Reviewer) Review(ctx context.Context, sessionID string, doc *models.DocumentVersion) (review *models.Review, salvaged bool, err error) {
	userPrompt := buildReviewPrompt(doc)

	resp, err := r.client.Complete(ctx, &llm.Request{
		SessionID:    sessionID,
		Caller:       r.spec.Name,
		Model:        r.model,
		Temperature:  0.2,
		SystemPrompt: r.spec.SystemPrompt,
		UserPrompt:   userPrompt,
		JSONMode:     true,
	})
	if err != nil {
		return nil, false, err
	}
	tokens := resp.Tokens

	review, parseErr := r.parseReview(resp.Content)
	if parseErr == nil {
		review.Tokens = tokens
		return review, false, nil
	}

	// One salvage attempt: replay the malformed answer and ask for a
	// strict reformat.
	salvageResp, err := r.client.Complete(ctx, &llm.Request{
		SessionID:    sessionID,
		Caller:       r.spec.Name,
		Model:        r.model,
		Temperature:  0,
		SystemPrompt: r.spec.SystemPrompt,
		Prior: []llm.Turn{
			{Role: "user", Content: userPrompt},
			{Role: "assistant", Content: resp.Content},
		},
		UserPrompt: salvagePrompt,
		JSONMode:   true,
	})
	if err != nil {
		return nil, false, err
	}
	tokens.Add(salvageResp.Tokens)

	review, salvageParseErr := r.parseReview(salvageResp.Content)
	if salvageParseErr != nil {
		return nil, false, &MalformedReviewError{
			ReviewerName: r.spec.Name,
			Raw:          resp.Content + "\n---salvage---\n" + salvageResp.Content,
			Cause:        salvageParseErr,
		}
	}

	review.Tokens = tokens
	return review, true, nil
}

// rawIssue tolerates the field-name drift observed in model output:
// section/issue/fix are accepted as aliases for the canonical names.
type rawIssue struct {
	Category     string `json:"category"`
	Section      string `json:"section"`
	Description  string `json:"description"`
	Issue        string `json:"issue"`
	Severity     string `json:"severity"`
	SuggestedFix string `json:"suggested_fix"`
	Fix          string `json:"fix"`
	Reviewer     string `json:"reviewer"`
}

type rawReview struct {
	Issues            []rawIssue `json:"issues"`
	OverallAssessment string     `json:"overall_assessment"`
}

// parseReview strictly parses the model's JSON into a Review. The
// reviewer identity is always this reviewer's name, regardless of what
// the model claims.
func (r *Reviewer) parseReview(content string) (*models.Review, error) {
	var raw rawReview
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &raw); err != nil {
		return nil, fmt.Errorf("invalid review JSON: %w", err)
	}

	issues := make([]models.Issue, 0, len(raw.Issues))
	for i, ri := range raw.Issues {
		severity := models.SeverityLow
		if ri.Severity != "" {
			parsed, err := models.ParseSeverity(ri.Severity)
			if err != nil {
				return nil, fmt.Errorf("issue %d: %w", i, err)
			}
			severity = parsed
		}

		category := firstNonEmpty(ri.Category, ri.Section, "General")
		description := firstNonEmpty(ri.Description, ri.Issue)
		if description == "" {
			return nil, fmt.Errorf("issue %d: missing description", i)
		}

		issues = append(issues, models.Issue{
			Category:     category,
			Description:  description,
			Severity:     severity,
			SuggestedFix: firstNonEmpty(ri.SuggestedFix, ri.Fix),
			ReviewerName: r.spec.Name,
		})
	}

	return &models.Review{
		ReviewerName:      r.spec.Name,
		Issues:            issues,
		OverallAssessment: raw.OverallAssessment,
		Timestamp:         time.Now().UTC(),
	}, nil
}

// stripCodeFences removes a surrounding markdown code fence, which
// models add despite JSON-mode instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
