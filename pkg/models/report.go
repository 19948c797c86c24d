package models

import "time"

// ConvergenceReport is the session's terminal artifact: what happened,
// why the loop stopped, and the full iteration history (reviews are
// stored separately per version and are not duplicated here).
type ConvergenceReport struct {
	SessionID    string `json:"session_id"`
	Title        string `json:"title"`
	DocumentType string `json:"document_type"`

	InitialVersion  int  `json:"initial_version"`
	FinalVersion    int  `json:"final_version"`
	IterationsCount int  `json:"iterations_count"`
	Converged       bool `json:"converged"`

	ConvergenceReason string    `json:"convergence_reason"`
	StoppedBy         StoppedBy `json:"stopped_by"`

	TotalIssuesIdentified int            `json:"total_issues_identified"`
	FinalIssueCounts      SeverityCounts `json:"final_issue_count"`

	// DeltaMetric names the document-change measure used for the
	// delta_threshold rule so runs are reproducible across
	// implementations.
	DeltaMetric    string  `json:"delta_metric"`
	DeltaThreshold float64 `json:"delta_threshold"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	History      []IterationRecord     `json:"history"`
	Participants []RoleSpec            `json:"participants"`
	Tokens       map[string]TokenUsage `json:"token_usage"`

	// ContinuedFromIteration mirrors the session field: the prior
	// terminal iteration when the session was continued, 0 otherwise.
	ContinuedFromIteration int `json:"continued_from_iteration,omitempty"`
}

// TotalTokens sums token usage across all accounted callers.
func (r *ConvergenceReport) TotalTokens() TokenUsage {
	var total TokenUsage
	for _, usage := range r.Tokens {
		total.Add(usage)
	}
	return total
}
