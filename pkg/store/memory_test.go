package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

func newTestSession(id string) *models.Session {
	return &models.Session{
		ID:           id,
		Title:        "Test Doc",
		DocumentType: "prd",
		Status:       models.StatusPending,
		Config: models.SessionConfig{
			MaxIterations:      3,
			DeltaThreshold:     0.05,
			StopOnNoHighIssues: true,
			NumParticipants:    3,
		},
		CreatedAt: time.Now().UTC(),
	}
}

func newTestVersion(version int, content string) *models.DocumentVersion {
	return &models.DocumentVersion{
		Version:      version,
		Title:        "Test Doc",
		DocumentType: "prd",
		Content:      content,
		LengthChars:  len(content),
		CreatedAt:    time.Now().UTC(),
	}
}

func TestMemoryStoreSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	sess := newTestSession("sess-1")
	require.NoError(t, s.CreateSession(ctx, sess))
	assert.ErrorIs(t, s.CreateSession(ctx, sess), ErrAlreadyExists)

	got, err := s.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)

	// Mutating the returned copy does not touch stored state.
	got.Status = models.StatusFailed
	again, err := s.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, again.Status)

	got.Status = models.StatusRunning
	require.NoError(t, s.UpdateSession(ctx, got))
	again, err = s.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, again.Status)

	_, err = s.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreVersionSequence(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.CreateSession(ctx, newTestSession("sess-1")))

	// First version must be 1.
	err := s.SaveVersion(ctx, "sess-1", newTestVersion(2, "x"))
	assert.ErrorIs(t, err, ErrVersionConflict)

	require.NoError(t, s.SaveVersion(ctx, "sess-1", newTestVersion(1, "v1")))
	require.NoError(t, s.SaveVersion(ctx, "sess-1", newTestVersion(2, "v2")))

	// Gaps and repeats are both rejected.
	assert.ErrorIs(t, s.SaveVersion(ctx, "sess-1", newTestVersion(2, "dup")), ErrVersionConflict)
	assert.ErrorIs(t, s.SaveVersion(ctx, "sess-1", newTestVersion(4, "gap")), ErrVersionConflict)

	latest, err := s.LatestVersion(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Version)
	assert.Equal(t, "v2", latest.Content)

	v1, err := s.GetVersion(ctx, "sess-1", 1)
	require.NoError(t, err)
	assert.Equal(t, "v1", v1.Content)

	_, err = s.GetVersion(ctx, "sess-1", 3)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := s.ListVersions(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].Version)
	assert.Equal(t, 2, all[1].Version)
}

func TestMemoryStoreCommitIteration(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.CreateSession(ctx, newTestSession("sess-1")))
	require.NoError(t, s.SaveVersion(ctx, "sess-1", newTestVersion(1, "v1")))

	commit := IterationCommit{
		Reviews: []*models.Review{
			{ReviewerName: "PM", Iteration: 1, DocumentVersion: 1},
			{ReviewerName: "Eng", Iteration: 1, DocumentVersion: 1},
		},
		Record: models.IterationRecord{
			IterationIndex: 1,
			InputVersion:   1,
			StartedAt:      time.Now().UTC(),
		},
		NewVersion:       newTestVersion(2, "v2"),
		CurrentIteration: 1,
		Tokens:           map[string]models.TokenUsage{"PM": {Total: 100}},
	}
	require.NoError(t, s.CommitIteration(ctx, "sess-1", commit))

	iters, err := s.ListIterations(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, iters, 1)

	reviews, err := s.ListReviews(ctx, "sess-1", 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	// Ordered by reviewer name within an iteration.
	assert.Equal(t, "Eng", reviews[0].ReviewerName)

	latest, err := s.LatestVersion(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Version)

	sess, err := s.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, sess.CurrentIteration)
	assert.Equal(t, 100, sess.Tokens["PM"].Total)
}

func TestMemoryStoreCommitIterationAtomicity(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.CreateSession(ctx, newTestSession("sess-1")))
	require.NoError(t, s.SaveVersion(ctx, "sess-1", newTestVersion(1, "v1")))

	// Version number is wrong: nothing from the commit may land.
	bad := IterationCommit{
		Reviews:          []*models.Review{{ReviewerName: "PM", Iteration: 1}},
		Record:           models.IterationRecord{IterationIndex: 1, InputVersion: 1},
		NewVersion:       newTestVersion(3, "skip"),
		CurrentIteration: 1,
	}
	require.ErrorIs(t, s.CommitIteration(ctx, "sess-1", bad), ErrVersionConflict)

	iters, err := s.ListIterations(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, iters)
	reviews, err := s.ListReviews(ctx, "sess-1", 0)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	// Out-of-order iteration index is rejected the same way.
	bad.NewVersion = newTestVersion(2, "v2")
	bad.Record.IterationIndex = 2
	require.ErrorIs(t, s.CommitIteration(ctx, "sess-1", bad), ErrVersionConflict)

	// A stop-without-rewrite commit carries no new version.
	stop := IterationCommit{
		Record:           models.IterationRecord{IterationIndex: 1, InputVersion: 1},
		CurrentIteration: 1,
	}
	require.NoError(t, s.CommitIteration(ctx, "sess-1", stop))
	latest, err := s.LatestVersion(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, latest.Version)
}

func TestMemoryStoreListSessions(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Now().UTC()
	for i, id := range []string{"a", "b", "c"} {
		sess := newTestSession(id)
		sess.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.CreateSession(ctx, sess))
	}
	running, _ := s.GetSession(ctx, "b")
	running.Status = models.StatusRunning
	require.NoError(t, s.UpdateSession(ctx, running))

	all, err := s.ListSessions(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, "c", all[0].SessionID)
	assert.Equal(t, "a", all[2].SessionID)

	pending, err := s.ListSessions(ctx, ListFilter{Status: models.StatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	paged, err := s.ListSessions(ctx, ListFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "b", paged[0].SessionID)
}

func TestMemoryStoreDeleteSession(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.CreateSession(ctx, newTestSession("sess-1")))
	require.NoError(t, s.SaveVersion(ctx, "sess-1", newTestVersion(1, "v1")))
	_, err := s.AppendEvent(ctx, "sess-1", events.SessionChannel("sess-1"), []byte(`{"type":"log"}`))
	require.NoError(t, err)

	require.NoError(t, s.DeleteSession(ctx, "sess-1"))
	_, err = s.GetSession(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteSession(ctx, "sess-1"), ErrNotFound)

	evs, err := s.GetCatchupEvents(ctx, events.SessionChannel("sess-1"), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, evs)
}

func TestMemoryStoreReportRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.CreateSession(ctx, newTestSession("sess-1")))

	_, err := s.GetReport(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)

	report := &models.ConvergenceReport{
		SessionID:        "sess-1",
		Title:            "Test Doc",
		FinalVersion:     2,
		IterationsCount:  2,
		Converged:        true,
		StoppedBy:        models.StoppedByNoHighIssues,
		DeltaMetric:      "levenshtein_ratio",
		FinalIssueCounts: models.SeverityCounts{Medium: 1},
		Tokens:           map[string]models.TokenUsage{"moderator": {Total: 40}},
	}
	require.NoError(t, s.SaveReport(ctx, "sess-1", report))

	got, err := s.GetReport(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.FinalVersion)
	assert.True(t, got.Converged)
	assert.Equal(t, 40, got.Tokens["moderator"].Total)

	// The returned copy does not alias stored state.
	got.Tokens["moderator"] = models.TokenUsage{Total: 99}
	again, err := s.GetReport(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 40, again.Tokens["moderator"].Total)

	// A continuation's re-completion replaces the report.
	report.FinalVersion = 3
	require.NoError(t, s.SaveReport(ctx, "sess-1", report))
	replaced, err := s.GetReport(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 3, replaced.FinalVersion)

	assert.ErrorIs(t, s.SaveReport(ctx, "nope", report), ErrNotFound)

	// Deleting the session drops its report.
	require.NoError(t, s.DeleteSession(ctx, "sess-1"))
	_, err = s.GetReport(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreClaimAndHeartbeat(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	first := newTestSession("first")
	require.NoError(t, s.CreateSession(ctx, first))
	require.NoError(t, s.CreateSession(ctx, newTestSession("second")))

	claimed, err := s.ClaimNextPending(ctx, "pod-1")
	require.NoError(t, err)
	assert.Equal(t, "first", claimed.ID)
	assert.Equal(t, models.StatusPlanning, claimed.Status)
	require.NotNil(t, claimed.StartedAt)

	claimed2, err := s.ClaimNextPending(ctx, "pod-2")
	require.NoError(t, err)
	assert.Equal(t, "second", claimed2.ID)

	_, err = s.ClaimNextPending(ctx, "pod-1")
	assert.ErrorIs(t, err, ErrNoPending)

	require.NoError(t, s.Heartbeat(ctx, "first", "pod-1"))
	// A different pod cannot refresh someone else's claim.
	assert.Error(t, s.Heartbeat(ctx, "first", "pod-2"))
}

func TestMemoryStoreRecoverOrphans(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.CreateSession(ctx, newTestSession("stale")))
	require.NoError(t, s.CreateSession(ctx, newTestSession("fresh")))
	require.NoError(t, s.CreateSession(ctx, newTestSession("idle")))

	_, err := s.ClaimNextPending(ctx, "pod-1") // stale
	require.NoError(t, err)
	_, err = s.ClaimNextPending(ctx, "pod-2") // fresh
	require.NoError(t, err)

	// Age out pod-1's heartbeat.
	stale, _ := s.GetSession(ctx, "stale")
	old := time.Now().UTC().Add(-time.Hour)
	stale.LastHeartbeatAt = &old
	require.NoError(t, s.UpdateSession(ctx, stale))

	recovered, err := s.RecoverOrphans(ctx, time.Now().UTC().Add(-10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []string{"stale"}, recovered)

	got, _ := s.GetSession(ctx, "stale")
	assert.Equal(t, models.StatusFailed, got.Status)
	assert.NotEmpty(t, got.ErrorMessage)

	// Pending and freshly heartbeating sessions are untouched.
	got, _ = s.GetSession(ctx, "fresh")
	assert.Equal(t, models.StatusPlanning, got.Status)
	got, _ = s.GetSession(ctx, "idle")
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestMemoryStoreEventCatchup(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	channel := events.SessionChannel("sess-1")

	id1, err := s.AppendEvent(ctx, "sess-1", channel, []byte(`{"type":"session_created"}`))
	require.NoError(t, err)
	id2, err := s.AppendEvent(ctx, "sess-1", channel, []byte(`{"type":"iteration_start"}`))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	all, err := s.GetCatchupEvents(ctx, channel, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "session_created", all[0].Payload["type"])

	after, err := s.GetCatchupEvents(ctx, channel, id1, 10)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "iteration_start", after[0].Payload["type"])

	limited, err := s.GetCatchupEvents(ctx, channel, 0, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	other, err := s.GetCatchupEvents(ctx, events.SessionChannel("other"), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}
