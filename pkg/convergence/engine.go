// Package convergence implements the composite stop rule evaluated
// after every refinement iteration. Decide is a pure function: no I/O,
// no clock reads, deterministic in its inputs.
package convergence

import (
	"fmt"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// CustomPredicate is an optional caller-supplied stop rule. It receives
// the iteration history up to and including the just-completed
// iteration and returns true to stop.
type CustomPredicate func(iterations []models.IterationRecord) bool

// Config holds the stop-rule parameters.
type Config struct {
	MaxIterations      int
	DeltaThreshold     float64
	StopOnNoHighIssues bool
	ForceMaxIterations bool
	Custom             CustomPredicate
}

// StopDecision is the outcome of evaluating the stop rules.
type StopDecision struct {
	ShouldStop bool
	Reason     string
	StoppedBy  models.StoppedBy
}

// Decide evaluates the stop rules against the iteration history. The
// last element of iterations must be the just-completed iteration with
// its convergence counts and delta populated. Rules are evaluated in a
// fixed order; the first match wins:
//
//  1. force_max_iterations suppresses every other rule until the cap.
//  2. The custom predicate, when provided.
//  3. No high-severity issues remain (when enabled).
//  4. The iteration budget is exhausted.
//  5. The document is stable (delta strictly below threshold, from
//     iteration 2 onward; iteration 1 has no prior version).
func Decide(cfg Config, iterations []models.IterationRecord) StopDecision {
	if len(iterations) == 0 {
		return StopDecision{ShouldStop: false, Reason: "no iterations completed"}
	}

	last := iterations[len(iterations)-1]
	counts := last.Convergence.Counts

	// Rule 1: forced exhaustion of the budget.
	if cfg.ForceMaxIterations && len(iterations) < cfg.MaxIterations {
		return StopDecision{
			ShouldStop: false,
			Reason: fmt.Sprintf("forcing all %d iterations (%d completed)",
				cfg.MaxIterations, len(iterations)),
		}
	}

	// Rule 2: custom predicate.
	if cfg.Custom != nil && cfg.Custom(iterations) {
		return StopDecision{
			ShouldStop: true,
			Reason:     "custom stop predicate satisfied",
			StoppedBy:  models.StoppedByCustom,
		}
	}

	// Rule 3: no high-severity issues remain.
	if cfg.StopOnNoHighIssues && counts.High == 0 {
		return StopDecision{
			ShouldStop: true,
			Reason:     "no high severity issues remain (0 remaining)",
			StoppedBy:  models.StoppedByNoHighIssues,
		}
	}

	// Rule 4: iteration budget exhausted.
	if len(iterations) >= cfg.MaxIterations {
		reason := fmt.Sprintf("max iterations reached (%d)", cfg.MaxIterations)
		if counts.High > 0 {
			reason = fmt.Sprintf("max iterations reached (%d); %d high severity issues remain",
				cfg.MaxIterations, counts.High)
		}
		return StopDecision{
			ShouldStop: true,
			Reason:     reason,
			StoppedBy:  models.StoppedByMaxIterations,
		}
	}

	// Rule 5: document stability. Iteration 1 has no prior version and
	// is excluded by definition.
	if len(iterations) >= 2 && last.Convergence.Delta < cfg.DeltaThreshold {
		return StopDecision{
			ShouldStop: true,
			Reason: fmt.Sprintf("document stable (delta %.4f < threshold %.4f)",
				last.Convergence.Delta, cfg.DeltaThreshold),
			StoppedBy: models.StoppedByDeltaThreshold,
		}
	}

	return StopDecision{
		ShouldStop: false,
		Reason:     fmt.Sprintf("%d high severity issues remain", counts.High),
	}
}
