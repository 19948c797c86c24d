package models

import "time"

// TokenUsage tracks LLM token consumption for a single call or an
// aggregate of calls.
type TokenUsage struct {
	Prompt     int `json:"prompt"`
	Completion int `json:"completion"`
	Total      int `json:"total"`
}

// Add accumulates another usage record into this one.
func (t *TokenUsage) Add(other TokenUsage) {
	t.Prompt += other.Prompt
	t.Completion += other.Completion
	t.Total += other.Total
}

// Issue is a single finding raised by a reviewer against a document
// version. Issues are immutable once produced.
type Issue struct {
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Severity     Severity `json:"severity"`
	SuggestedFix string   `json:"suggested_fix,omitempty"`
	ReviewerName string   `json:"reviewer_name"`
}

// Review is one reviewer's structured output for one document version.
// Invariant: every Issue.ReviewerName equals ReviewerName.
type Review struct {
	ReviewerName      string     `json:"reviewer_name"`
	Issues            []Issue    `json:"issues"`
	OverallAssessment string     `json:"overall_assessment"`
	Timestamp         time.Time  `json:"timestamp"`
	Tokens            TokenUsage `json:"tokens"`

	// Persistence context, filled in by the session runtime.
	Iteration       int    `json:"iteration,omitempty"`
	DocumentVersion int    `json:"document_version,omitempty"`
	Model           string `json:"model,omitempty"`
	Salvaged        bool   `json:"salvaged,omitempty"`
}

// Counts returns this review's issue counts by severity.
func (r *Review) Counts() SeverityCounts {
	var counts SeverityCounts
	for _, issue := range r.Issues {
		counts.Add(issue.Severity)
	}
	return counts
}
