package convergence

import (
	"testing"

	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/stretchr/testify/assert"
)

func record(index int, counts models.SeverityCounts, delta float64) models.IterationRecord {
	return models.IterationRecord{
		IterationIndex: index,
		InputVersion:   index,
		Convergence: models.ConvergenceCheck{
			Counts: counts,
			Delta:  delta,
		},
	}
}

func TestDecide_NoIterations(t *testing.T) {
	d := Decide(Config{MaxIterations: 3, StopOnNoHighIssues: true}, nil)
	assert.False(t, d.ShouldStop)
}

func TestDecide_NoHighIssues(t *testing.T) {
	cfg := Config{MaxIterations: 5, DeltaThreshold: 0.05, StopOnNoHighIssues: true}

	iterations := []models.IterationRecord{
		record(1, models.SeverityCounts{Medium: 2, Low: 1}, 0),
	}

	d := Decide(cfg, iterations)
	assert.True(t, d.ShouldStop)
	assert.Equal(t, models.StoppedByNoHighIssues, d.StoppedBy)
	assert.Contains(t, d.Reason, "no high severity issues")
}

func TestDecide_HighIssuesContinue(t *testing.T) {
	cfg := Config{MaxIterations: 5, DeltaThreshold: 0.05, StopOnNoHighIssues: true}

	iterations := []models.IterationRecord{
		record(1, models.SeverityCounts{High: 3}, 0),
	}

	d := Decide(cfg, iterations)
	assert.False(t, d.ShouldStop)
	assert.Contains(t, d.Reason, "3 high severity issues remain")
}

func TestDecide_MaxIterations(t *testing.T) {
	cfg := Config{MaxIterations: 2, DeltaThreshold: 0.05, StopOnNoHighIssues: true}

	iterations := []models.IterationRecord{
		record(1, models.SeverityCounts{High: 2}, 0),
		record(2, models.SeverityCounts{High: 2}, 0.4),
	}

	d := Decide(cfg, iterations)
	assert.True(t, d.ShouldStop)
	assert.Equal(t, models.StoppedByMaxIterations, d.StoppedBy)
	assert.Contains(t, d.Reason, "2 high severity issues remain")
	assert.Contains(t, d.Reason, "max iterations reached (2)")
}

func TestDecide_MaxIterationsNoRemainingHighs(t *testing.T) {
	// stop_on_no_high_issues disabled, so the budget rule fires instead.
	cfg := Config{MaxIterations: 1, DeltaThreshold: 0.05}

	iterations := []models.IterationRecord{
		record(1, models.SeverityCounts{Medium: 1}, 0),
	}

	d := Decide(cfg, iterations)
	assert.True(t, d.ShouldStop)
	assert.Equal(t, models.StoppedByMaxIterations, d.StoppedBy)
	assert.NotContains(t, d.Reason, "high severity issues remain")
}

func TestDecide_DeltaThreshold(t *testing.T) {
	cfg := Config{MaxIterations: 5, DeltaThreshold: 0.05}

	iterations := []models.IterationRecord{
		record(1, models.SeverityCounts{Medium: 1}, 0),
		record(2, models.SeverityCounts{Medium: 1}, 0.01),
	}

	d := Decide(cfg, iterations)
	assert.True(t, d.ShouldStop)
	assert.Equal(t, models.StoppedByDeltaThreshold, d.StoppedBy)
	assert.Contains(t, d.Reason, "document stable")
}

func TestDecide_DeltaThresholdExcludesIterationOne(t *testing.T) {
	// Iteration 1 has delta=0 by definition but must not trigger a
	// stability stop.
	cfg := Config{MaxIterations: 5, DeltaThreshold: 0.05}

	iterations := []models.IterationRecord{
		record(1, models.SeverityCounts{Medium: 1}, 0),
	}

	d := Decide(cfg, iterations)
	assert.False(t, d.ShouldStop)
}

func TestDecide_DeltaEqualToThresholdContinues(t *testing.T) {
	// The comparison is strict: delta == threshold does not stop.
	cfg := Config{MaxIterations: 5, DeltaThreshold: 0.05}

	iterations := []models.IterationRecord{
		record(1, models.SeverityCounts{Medium: 1}, 0),
		record(2, models.SeverityCounts{Medium: 1}, 0.05),
	}

	d := Decide(cfg, iterations)
	assert.False(t, d.ShouldStop)
}

func TestDecide_ForceMaxIterationsOverridesEverything(t *testing.T) {
	cfg := Config{
		MaxIterations:      3,
		DeltaThreshold:     0.05,
		StopOnNoHighIssues: true,
		ForceMaxIterations: true,
		Custom: func([]models.IterationRecord) bool {
			return true
		},
	}

	// Neither zero highs, a stable document, nor a satisfied custom
	// predicate may stop the loop before the cap.
	iterations := []models.IterationRecord{
		record(1, models.SeverityCounts{}, 0),
		record(2, models.SeverityCounts{}, 0.001),
	}

	d := Decide(cfg, iterations)
	assert.False(t, d.ShouldStop)
	assert.Contains(t, d.Reason, "forcing all 3 iterations")

	// At the cap the remaining rules apply again.
	iterations = append(iterations, record(3, models.SeverityCounts{}, 0.001))
	d = Decide(cfg, iterations)
	assert.True(t, d.ShouldStop)
	assert.Equal(t, models.StoppedByCustom, d.StoppedBy)
}

func TestDecide_CustomPredicateWins(t *testing.T) {
	cfg := Config{
		MaxIterations:      5,
		DeltaThreshold:     0.05,
		StopOnNoHighIssues: true,
		Custom: func(iters []models.IterationRecord) bool {
			return len(iters) >= 2
		},
	}

	iterations := []models.IterationRecord{
		record(1, models.SeverityCounts{}, 0),
		record(2, models.SeverityCounts{}, 0.5),
	}

	d := Decide(cfg, iterations)
	assert.True(t, d.ShouldStop)
	assert.Equal(t, models.StoppedByCustom, d.StoppedBy)
}

func TestDecide_RuleOrder(t *testing.T) {
	// no_high_issues outranks max_iterations when both match.
	cfg := Config{MaxIterations: 1, DeltaThreshold: 0.05, StopOnNoHighIssues: true}

	iterations := []models.IterationRecord{
		record(1, models.SeverityCounts{Low: 4}, 0),
	}

	d := Decide(cfg, iterations)
	assert.True(t, d.ShouldStop)
	assert.Equal(t, models.StoppedByNoHighIssues, d.StoppedBy)
}
