package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/convergence"
	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/store"
)

func newTestService(t *testing.T) (*SessionService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	bus := events.NewBus()
	t.Cleanup(bus.Close)
	return NewSessionService(st, events.NewPublisher(st, bus), nil), st
}

func startRequest() models.StartRequest {
	return models.StartRequest{
		Title:   "Payments PRD",
		Content: "## Overview\nAccept card payments.",
		Goal:    "ship a reviewable PRD",
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, startRequest())
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)

	assert.Equal(t, models.StatusPending, session.Status)
	assert.Equal(t, "document", session.DocumentType)
	assert.Equal(t, 5, session.Config.MaxIterations)
	assert.Equal(t, 3, session.Config.NumParticipants)
	assert.Equal(t, 0.05, session.Config.DeltaThreshold)
	assert.True(t, session.Config.StopOnNoHighIssues)

	// The submitted document is persisted as version 1.
	v, err := st.GetVersion(ctx, session.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "## Overview\nAccept card payments.", v.Content)
	assert.Equal(t, 0, v.ProducedFromVersion)
	assert.Equal(t, len(v.Content), v.LengthChars)
}

func TestCreateClampsParticipants(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := startRequest()
	req.NumParticipants = 1
	session, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.MinParticipants, session.Config.NumParticipants)

	req.NumParticipants = 12
	session, err = svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.MaxParticipants, session.Config.NumParticipants)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.StartRequest)
	}{
		{"missing title", func(r *models.StartRequest) { r.Title = "" }},
		{"missing content", func(r *models.StartRequest) { r.Content = "" }},
		{"unknown preset", func(r *models.StartRequest) { r.Preset = "poetry-slam" }},
		{"unknown model strategy", func(r *models.StartRequest) { r.ModelStrategy = "chaotic" }},
		{"max iterations above cap", func(r *models.StartRequest) { r.MaxIterations = 99 }},
		{"negative max iterations", func(r *models.StartRequest) { r.MaxIterations = -1 }},
		{"delta threshold above one", func(r *models.StartRequest) { r.DeltaThreshold = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := startRequest()
			tt.mutate(&req)
			_, err := svc.Create(ctx, req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreatePublishesEvents(t *testing.T) {
	st := store.NewMemoryStore()
	bus := events.NewBus()
	defer bus.Close()
	svc := NewSessionService(st, events.NewPublisher(st, bus), nil)
	ctx := context.Background()

	session, err := svc.Create(ctx, startRequest())
	require.NoError(t, err)

	// session_created and session_status are persisted for catchup.
	persisted, err := st.GetCatchupEvents(ctx, events.SessionChannel(session.ID), 0, 10)
	require.NoError(t, err)
	require.Len(t, persisted, 2)
	assert.Equal(t, events.EventTypeSessionCreated, persisted[0].Payload["type"])
	assert.Equal(t, events.EventTypeSessionStatus, persisted[1].Payload["type"])

	// session_created echoes the effective config.
	cfg, ok := persisted[0].Payload["config"].(map[string]interface{})
	require.True(t, ok, "session_created missing config: %v", persisted[0].Payload)
	assert.Equal(t, float64(5), cfg["max_iterations"])
	assert.Equal(t, float64(3), cfg["num_participants"])
}

func TestStatusSnapshot(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, startRequest())
	require.NoError(t, err)

	session.Status = models.StatusRunning
	session.CurrentIteration = 2
	require.NoError(t, st.UpdateSession(ctx, session))

	status, err := svc.Status(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, status.Status)
	assert.Equal(t, 2, status.CurrentIteration)
	assert.Equal(t, 5, status.MaxIterations)

	_, err = svc.Status(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

// completedSession persists a session in Completed with one iteration
// whose convergence outcome is configurable.
func completedSession(t *testing.T, svc *SessionService, st *store.MemoryStore, stoppedBy models.StoppedBy, highLeft int) *models.Session {
	t.Helper()
	ctx := context.Background()

	req := startRequest()
	req.MaxIterations = 1
	session, err := svc.Create(ctx, req)
	require.NoError(t, err)

	now := time.Now().UTC()
	review := &models.Review{
		ReviewerName:    "Domain Expert",
		Iteration:       1,
		DocumentVersion: 1,
		Timestamp:       now,
	}
	for i := 0; i < highLeft; i++ {
		review.Issues = append(review.Issues, models.Issue{
			Category:     "scope",
			Description:  "unbounded scope",
			Severity:     models.SeverityHigh,
			ReviewerName: "Domain Expert",
		})
	}
	commit := store.IterationCommit{
		Reviews: []*models.Review{review},
		Record: models.IterationRecord{
			IterationIndex: 1,
			InputVersion:   1,
			Convergence: models.ConvergenceCheck{
				Counts:    review.Counts(),
				Delta:     0,
				Decision:  true,
				Reason:    "iteration cap reached",
				StoppedBy: stoppedBy,
			},
			StartedAt: now,
			EndedAt:   now,
		},
		CurrentIteration: 1,
	}
	require.NoError(t, st.CommitIteration(ctx, session.ID, commit))

	session.Status = models.StatusCompleted
	session.CurrentIteration = 1
	session.FinalVersion = 1
	session.StoppedBy = stoppedBy
	session.ConvergenceReason = "iteration cap reached"
	session.EndedAt = &now
	require.NoError(t, st.UpdateSession(ctx, session))

	// The executor writes the report when the loop stops.
	iterations, err := st.ListIterations(ctx, session.ID)
	require.NoError(t, err)
	require.NoError(t, st.SaveReport(ctx, session.ID, convergence.BuildReport(session, iterations)))
	return session
}

func TestContinueExtendsBudget(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session := completedSession(t, svc, st, models.StoppedByMaxIterations, 2)

	newMax, err := svc.Continue(ctx, session.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, newMax)

	reloaded, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reloaded.Status)
	assert.Equal(t, 4, reloaded.Config.MaxIterations)
	assert.Equal(t, 1, reloaded.ContinuedFromIteration)
	assert.Empty(t, reloaded.StoppedBy)
	assert.Nil(t, reloaded.EndedAt)
}

func TestContinuePreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("not completed", func(t *testing.T) {
		svc, _ := newTestService(t)
		session, err := svc.Create(ctx, startRequest())
		require.NoError(t, err)
		_, err = svc.Continue(ctx, session.ID, 1)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("stopped for convergence", func(t *testing.T) {
		svc, st := newTestService(t)
		session := completedSession(t, svc, st, models.StoppedByNoHighIssues, 0)
		_, err := svc.Continue(ctx, session.ID, 1)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("no high issues left", func(t *testing.T) {
		svc, st := newTestService(t)
		session := completedSession(t, svc, st, models.StoppedByMaxIterations, 0)
		_, err := svc.Continue(ctx, session.ID, 1)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("zero additional iterations", func(t *testing.T) {
		svc, st := newTestService(t)
		session := completedSession(t, svc, st, models.StoppedByMaxIterations, 1)
		_, err := svc.Continue(ctx, session.ID, 0)
		assert.True(t, IsValidationError(err))
	})

	t.Run("would exceed cap", func(t *testing.T) {
		svc, st := newTestService(t)
		session := completedSession(t, svc, st, models.StoppedByMaxIterations, 1)
		_, err := svc.Continue(ctx, session.ID, 50)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown session", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.Continue(ctx, "nope", 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

type fakeCanceller struct {
	cancelled []string
	live      bool
}

func (f *fakeCanceller) CancelSession(sessionID string) bool {
	f.cancelled = append(f.cancelled, sessionID)
	return f.live
}

func TestCancelWithoutDriverMarksCancelled(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, startRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, session.ID))

	reloaded, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, reloaded.Status)
	require.NotNil(t, reloaded.EndedAt)

	// A second cancel conflicts with the terminal state.
	assert.ErrorIs(t, svc.Cancel(ctx, session.ID), ErrConflict)
}

func TestCancelDelegatesToLiveDriver(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	canceller := &fakeCanceller{live: true}
	svc.SetCanceller(canceller)

	session, err := svc.Create(ctx, startRequest())
	require.NoError(t, err)
	session.Status = models.StatusRunning
	require.NoError(t, st.UpdateSession(ctx, session))

	require.NoError(t, svc.Cancel(ctx, session.ID))
	assert.Equal(t, []string{session.ID}, canceller.cancelled)

	// The driver owns the terminal transition; status is untouched here.
	reloaded, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, reloaded.Status)
}

func TestDeleteRequiresTerminalStatus(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, startRequest())
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Delete(ctx, session.ID), ErrConflict)

	session.Status = models.StatusFailed
	require.NoError(t, st.UpdateSession(ctx, session))
	require.NoError(t, svc.Delete(ctx, session.ID))

	_, err = svc.Get(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetReviewsFiltersByVersion(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session := completedSession(t, svc, st, models.StoppedByMaxIterations, 1)

	all, err := svc.GetReviews(ctx, session.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)

	v1, err := svc.GetReviews(ctx, session.ID, 1)
	require.NoError(t, err)
	assert.Len(t, v1, 1)

	v2, err := svc.GetReviews(ctx, session.ID, 2)
	require.NoError(t, err)
	assert.Empty(t, v2)
}

func TestGetReportRequiresCompletion(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, startRequest())
	require.NoError(t, err)
	_, err = svc.GetReport(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetReportReturnsPersisted(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session := completedSession(t, svc, st, models.StoppedByMaxIterations, 2)

	report, err := svc.GetReport(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, report.SessionID)
	assert.Equal(t, 1, report.InitialVersion)
	assert.Equal(t, 1, report.FinalVersion)
	assert.Equal(t, 1, report.IterationsCount)
	assert.False(t, report.Converged)
	assert.Equal(t, models.StoppedByMaxIterations, report.StoppedBy)
	assert.Equal(t, 2, report.TotalIssuesIdentified)
	assert.Equal(t, 2, report.FinalIssueCounts.High)
	assert.Equal(t, "levenshtein_ratio", report.DeltaMetric)
	require.Len(t, report.History, 1)
}
