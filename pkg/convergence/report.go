package convergence

import (
	"time"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// BuildReport assembles the terminal convergence report from a finished
// session and its iteration history. The session must already carry its
// terminal fields (FinalVersion, StoppedBy, ConvergenceReason, EndedAt).
func BuildReport(session *models.Session, iterations []models.IterationRecord) *models.ConvergenceReport {
	var totalIssues int
	var finalCounts models.SeverityCounts
	for _, it := range iterations {
		totalIssues += it.Convergence.Counts.Total()
	}
	if len(iterations) > 0 {
		finalCounts = iterations[len(iterations)-1].Convergence.Counts
	}

	// max_iterations is exhaustion, not convergence; error never
	// produces a report at all.
	converged := session.StoppedBy == models.StoppedByNoHighIssues ||
		session.StoppedBy == models.StoppedByDeltaThreshold ||
		session.StoppedBy == models.StoppedByCustom

	startedAt := session.CreatedAt
	if session.StartedAt != nil {
		startedAt = *session.StartedAt
	}
	var endedAt time.Time
	if session.EndedAt != nil {
		endedAt = *session.EndedAt
	}

	return &models.ConvergenceReport{
		SessionID:              session.ID,
		Title:                  session.Title,
		DocumentType:           session.DocumentType,
		InitialVersion:         1,
		FinalVersion:           session.FinalVersion,
		IterationsCount:        len(iterations),
		Converged:              converged,
		ConvergenceReason:      session.ConvergenceReason,
		StoppedBy:              session.StoppedBy,
		TotalIssuesIdentified:  totalIssues,
		FinalIssueCounts:       finalCounts,
		DeltaMetric:            DeltaMetricName,
		DeltaThreshold:         session.Config.DeltaThreshold,
		StartedAt:              startedAt,
		EndedAt:                endedAt,
		History:                iterations,
		Participants:           session.Participants,
		Tokens:                 session.Tokens,
		ContinuedFromIteration: session.ContinuedFromIteration,
	}
}
