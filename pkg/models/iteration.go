package models

import "time"

// ConvergenceCheck is the recorded outcome of the convergence engine
// for one iteration.
type ConvergenceCheck struct {
	Counts   SeverityCounts `json:"counts_by_severity"`
	Delta    float64        `json:"delta"`
	Decision bool           `json:"decision"` // true = stop
	Reason   string         `json:"reason"`
	// StoppedBy is set only when Decision is true.
	StoppedBy StoppedBy `json:"stopped_by,omitempty"`
}

// IterationRecord is one loop step: the version reviewed, the reviews
// produced for it, the convergence outcome, and the version the
// moderator produced (0 if the loop stopped without moderating).
type IterationRecord struct {
	IterationIndex int              `json:"iteration_index"`
	InputVersion   int              `json:"input_version"`
	Convergence    ConvergenceCheck `json:"convergence_check"`
	OutputVersion  int              `json:"output_version,omitempty"`
	StartedAt      time.Time        `json:"started_at"`
	EndedAt        time.Time        `json:"ended_at"`
}
