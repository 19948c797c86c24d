package events

import (
	"time"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// Timestamp renders t in the wire format used by every payload.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// IssueSummary is a compact issue rendering for the live feed. Full
// issues live in the persisted review; the feed only carries the most
// severe few.
type IssueSummary struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// SessionCreatedPayload is published once, when the session is
// accepted and queued.
type SessionCreatedPayload struct {
	Type         string               `json:"type"` // always EventTypeSessionCreated
	SessionID    string               `json:"session_id"`
	Title        string               `json:"title"`
	DocumentType string               `json:"document_type"`
	Goal         string               `json:"goal"`
	Config       models.SessionConfig `json:"config"` // effective config after clamping and defaults
	Timestamp    string               `json:"timestamp"`
}

// RoundtableGeneratingPayload marks the start of panel planning.
type RoundtableGeneratingPayload struct {
	Type      string `json:"type"` // always EventTypeRoundtableGenerating
	SessionID string `json:"session_id"`
	Preset    string `json:"preset,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ParticipantSummary describes one panel member to the client.
type ParticipantSummary struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Perspective string `json:"perspective,omitempty"`
	Model       string `json:"model,omitempty"`
}

// RoundtableGeneratedPayload announces the planned panel.
type RoundtableGeneratedPayload struct {
	Type           string               `json:"type"` // always EventTypeRoundtableGenerated
	SessionID      string               `json:"session_id"`
	Participants   []ParticipantSummary `json:"participants"`
	ModeratorFocus string               `json:"moderator_focus"`
	Warning        string               `json:"warning,omitempty"` // set when the planner fell back to the generic panel
	Timestamp      string               `json:"timestamp"`
}

// IterationStartPayload marks the start of one review iteration.
type IterationStartPayload struct {
	Type         string `json:"type"` // always EventTypeIterationStart
	SessionID    string `json:"session_id"`
	Iteration    int    `json:"iteration"`     // 1-based
	InputVersion int    `json:"input_version"` // document version under review
	Timestamp    string `json:"timestamp"`
}

// CriticReviewStartPayload marks one reviewer starting its pass.
type CriticReviewStartPayload struct {
	Type      string `json:"type"` // always EventTypeCriticReviewStart
	SessionID string `json:"session_id"`
	Iteration int    `json:"iteration"`
	Reviewer  string `json:"reviewer"`
	Model     string `json:"model,omitempty"`
	Timestamp string `json:"timestamp"`
}

// CriticReviewCompletePayload carries one reviewer's result summary.
// TopIssues holds at most the three most severe issues.
type CriticReviewCompletePayload struct {
	Type              string                `json:"type"` // always EventTypeCriticReviewComplete
	SessionID         string                `json:"session_id"`
	Iteration         int                   `json:"iteration"`
	Reviewer          string                `json:"reviewer"`
	Counts            models.SeverityCounts `json:"counts"`
	TopIssues         []IssueSummary        `json:"top_issues,omitempty"`
	OverallAssessment string                `json:"overall_assessment,omitempty"`
	Salvaged          bool                  `json:"salvaged,omitempty"` // output needed a reformat round-trip
	Tokens            models.TokenUsage     `json:"tokens"`
	Timestamp         string                `json:"timestamp"`
}

// ConvergenceCheckPayload carries the stop decision for an iteration.
type ConvergenceCheckPayload struct {
	Type       string                `json:"type"` // always EventTypeConvergenceCheck
	SessionID  string                `json:"session_id"`
	Iteration  int                   `json:"iteration"`
	Counts     models.SeverityCounts `json:"counts"`
	Delta      float64               `json:"delta"` // 0 before any rewrite exists
	ShouldStop bool                  `json:"should_stop"`
	Reason     string                `json:"reason"`
	StoppedBy  models.StoppedBy      `json:"stopped_by,omitempty"` // set only when stopping
	Timestamp  string                `json:"timestamp"`
}

// ModeratorStartPayload marks the moderator beginning a rewrite.
type ModeratorStartPayload struct {
	Type      string `json:"type"` // always EventTypeModeratorStart
	SessionID string `json:"session_id"`
	Iteration int    `json:"iteration"`
	Timestamp string `json:"timestamp"`
}

// ModeratorCompletePayload announces the new document version.
type ModeratorCompletePayload struct {
	Type          string            `json:"type"` // always EventTypeModeratorComplete
	SessionID     string            `json:"session_id"`
	Iteration     int               `json:"iteration"`
	OutputVersion int               `json:"output_version"`
	LengthChars   int               `json:"length_chars"`
	Tokens        models.TokenUsage `json:"tokens"`
	Timestamp     string            `json:"timestamp"`
}

// RefinementCompletePayload is the terminal event of a successful run.
type RefinementCompletePayload struct {
	Type             string                `json:"type"` // always EventTypeRefinementComplete
	SessionID        string                `json:"session_id"`
	FinalVersion     int                   `json:"final_version"`
	Iterations       int                   `json:"iterations"`
	Converged        bool                  `json:"converged"` // false when the budget ran out with high issues left
	StoppedBy        models.StoppedBy      `json:"stopped_by"`
	Reason           string                `json:"reason"`
	FinalIssueCounts models.SeverityCounts `json:"final_issue_counts"`
	TotalTokens      int                   `json:"total_tokens"`
	Timestamp        string                `json:"timestamp"`
}

// SessionStatusPayload is published on every lifecycle transition.
// Also broadcast transiently to the global sessions channel.
type SessionStatusPayload struct {
	Type      string        `json:"type"` // always EventTypeSessionStatus
	SessionID string        `json:"session_id"`
	Status    models.Status `json:"status"`
	Error     string        `json:"error,omitempty"` // set when Status is failed
	Timestamp string        `json:"timestamp"`
}

// LogPayload is a transient free-form progress line.
type LogPayload struct {
	Type      string `json:"type"` // always EventTypeLog
	SessionID string `json:"session_id"`
	Level     string `json:"level"` // info, warning, error
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// SummarizeIssues extracts the top-n issues from a review, most severe
// first, preserving review order within a severity.
func SummarizeIssues(review *models.Review, n int) []IssueSummary {
	out := make([]IssueSummary, 0, n)
	for _, severity := range []models.Severity{models.SeverityHigh, models.SeverityMedium, models.SeverityLow} {
		for _, issue := range review.Issues {
			if issue.Severity != severity {
				continue
			}
			out = append(out, IssueSummary{
				Category:    issue.Category,
				Description: issue.Description,
				Severity:    string(issue.Severity),
			})
			if len(out) == n {
				return out
			}
		}
	}
	return out
}
