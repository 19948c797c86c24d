package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/store"
)

func seedSession(t *testing.T, st *store.EntStore, status models.Status) *models.Session {
	t.Helper()
	ctx := context.Background()

	session := &models.Session{
		ID:           uuid.New().String(),
		Title:        "Payments PRD",
		DocumentType: "prd",
		Config: models.SessionConfig{
			MaxIterations:      5,
			DeltaThreshold:     0.05,
			StopOnNoHighIssues: true,
			NumParticipants:    3,
		},
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.CreateSession(ctx, session))
	require.NoError(t, st.SaveVersion(ctx, session.ID, &models.DocumentVersion{
		Version:      1,
		Title:        session.Title,
		DocumentType: session.DocumentType,
		Content:      "## Overview\nAccept card payments.",
		CreatedAt:    time.Now().UTC(),
		LengthChars:  33,
	}))
	return session
}

func TestEntStoreSessionRoundTrip(t *testing.T) {
	st := NewTestStore(t)
	ctx := context.Background()

	session := seedSession(t, st, models.StatusPending)

	loaded, err := st.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Title, loaded.Title)
	assert.Equal(t, models.StatusPending, loaded.Status)
	assert.Equal(t, 5, loaded.Config.MaxIterations)

	loaded.Status = models.StatusCancelled
	now := time.Now().UTC()
	loaded.EndedAt = &now
	require.NoError(t, st.UpdateSession(ctx, loaded))

	reloaded, err := st.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, reloaded.Status)
	require.NotNil(t, reloaded.EndedAt)

	_, err = st.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEntStoreVersionSequence(t *testing.T) {
	st := NewTestStore(t)
	ctx := context.Background()

	session := seedSession(t, st, models.StatusPending)

	// A gap in the sequence is rejected.
	err := st.SaveVersion(ctx, session.ID, &models.DocumentVersion{Version: 3, Content: "skip"})
	assert.ErrorIs(t, err, store.ErrVersionConflict)

	require.NoError(t, st.SaveVersion(ctx, session.ID, &models.DocumentVersion{
		Version:             2,
		Content:             "## Overview\nAccept card payments.\n\n## Metrics",
		ProducedFromVersion: 1,
		CreatedAt:           time.Now().UTC(),
	}))

	latest, err := st.LatestVersion(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Version)

	versions, err := st.ListVersions(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 1, versions[0].Version)
	assert.Equal(t, 2, versions[1].Version)
}

func TestEntStoreCommitIteration(t *testing.T) {
	st := NewTestStore(t)
	ctx := context.Background()

	session := seedSession(t, st, models.StatusRunning)
	now := time.Now().UTC()

	review := &models.Review{
		ReviewerName:    "Domain Expert",
		Iteration:       1,
		DocumentVersion: 1,
		Issues: []models.Issue{{
			Category:     "scope",
			Description:  "missing success metrics",
			Severity:     models.SeverityHigh,
			ReviewerName: "Domain Expert",
		}},
		OverallAssessment: "Needs another pass.",
		Timestamp:         now,
	}
	commit := store.IterationCommit{
		Reviews: []*models.Review{review},
		Record: models.IterationRecord{
			IterationIndex: 1,
			InputVersion:   1,
			OutputVersion:  2,
			Convergence: models.ConvergenceCheck{
				Counts:   review.Counts(),
				Delta:    0,
				Decision: false,
				Reason:   "high severity issues remain",
			},
			StartedAt: now,
			EndedAt:   now,
		},
		NewVersion: &models.DocumentVersion{
			Version:             2,
			Content:             "## Overview\nAccept card payments.\n\n## Metrics",
			ProducedFromVersion: 1,
			CreatedAt:           now,
		},
		CurrentIteration: 1,
		Tokens: map[string]models.TokenUsage{
			"Domain Expert": {Prompt: 5, Completion: 5, Total: 10},
		},
	}
	require.NoError(t, st.CommitIteration(ctx, session.ID, commit))

	reviews, err := st.ListReviews(ctx, session.ID, 0)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Domain Expert", reviews[0].ReviewerName)
	require.Len(t, reviews[0].Issues, 1)
	assert.Equal(t, models.SeverityHigh, reviews[0].Issues[0].Severity)

	iterations, err := st.ListIterations(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, iterations, 1)
	assert.Equal(t, 1, iterations[0].IterationIndex)
	assert.Equal(t, 2, iterations[0].OutputVersion)

	loaded, err := st.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.CurrentIteration)
	assert.Equal(t, 10, loaded.Tokens["Domain Expert"].Total)

	// A duplicate iteration index is rejected without partial writes.
	err = st.CommitIteration(ctx, session.ID, commit)
	require.Error(t, err)
	reviews, err = st.ListReviews(ctx, session.ID, 0)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestEntStoreReportRoundTrip(t *testing.T) {
	st := NewTestStore(t)
	ctx := context.Background()

	session := seedSession(t, st, models.StatusCompleted)

	_, err := st.GetReport(ctx, session.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	now := time.Now().UTC()
	report := &models.ConvergenceReport{
		SessionID:         session.ID,
		Title:             session.Title,
		DocumentType:      session.DocumentType,
		InitialVersion:    1,
		FinalVersion:      2,
		IterationsCount:   2,
		Converged:         true,
		ConvergenceReason: "no high severity issues remain (0 remaining)",
		StoppedBy:         models.StoppedByNoHighIssues,
		FinalIssueCounts:  models.SeverityCounts{Medium: 2},
		DeltaMetric:       "levenshtein_ratio",
		DeltaThreshold:    0.05,
		StartedAt:         now,
		EndedAt:           now,
		History: []models.IterationRecord{{
			IterationIndex: 1,
			InputVersion:   1,
			OutputVersion:  2,
			Convergence: models.ConvergenceCheck{
				Counts: models.SeverityCounts{High: 1},
				Delta:  0,
				Reason: "high severity issues remain",
			},
			StartedAt: now,
			EndedAt:   now,
		}},
		Tokens: map[string]models.TokenUsage{"moderator": {Total: 40}},
	}
	require.NoError(t, st.SaveReport(ctx, session.ID, report))

	loaded, err := st.GetReport(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.FinalVersion)
	assert.True(t, loaded.Converged)
	assert.Equal(t, models.StoppedByNoHighIssues, loaded.StoppedBy)
	assert.Equal(t, "levenshtein_ratio", loaded.DeltaMetric)
	require.Len(t, loaded.History, 1)
	assert.Equal(t, 1, loaded.History[0].Convergence.Counts.High)
	assert.Equal(t, 40, loaded.Tokens["moderator"].Total)

	// Re-completion after a continuation replaces the report.
	report.FinalVersion = 3
	require.NoError(t, st.SaveReport(ctx, session.ID, report))
	replaced, err := st.GetReport(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, replaced.FinalVersion)

	assert.ErrorIs(t, st.SaveReport(ctx, "missing", report), store.ErrNotFound)
}

func TestEntStoreClaimAndHeartbeat(t *testing.T) {
	st := NewTestStore(t)
	ctx := context.Background()

	_, err := st.ClaimNextPending(ctx, "pod-a")
	assert.ErrorIs(t, err, store.ErrNoPending)

	first := seedSession(t, st, models.StatusPending)
	time.Sleep(10 * time.Millisecond)
	seedSession(t, st, models.StatusPending)

	claimed, err := st.ClaimNextPending(ctx, "pod-a")
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID, "oldest pending session is claimed first")
	assert.Equal(t, models.StatusPlanning, claimed.Status)
	assert.Equal(t, "pod-a", claimed.PodID)

	require.NoError(t, st.Heartbeat(ctx, claimed.ID, "pod-a"))

	loaded, err := st.GetSession(ctx, claimed.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.LastHeartbeatAt)
}

func TestEntStoreRecoverOrphans(t *testing.T) {
	st := NewTestStore(t)
	ctx := context.Background()

	seedSession(t, st, models.StatusPending)
	claimed, err := st.ClaimNextPending(ctx, "dead-pod")
	require.NoError(t, err)

	// A future cutoff makes the fresh heartbeat look stale.
	recovered, err := st.RecoverOrphans(ctx, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, recovered, 1)
	assert.Equal(t, claimed.ID, recovered[0])

	loaded, err := st.GetSession(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, loaded.Status)
}

func TestEntStoreEventCatchup(t *testing.T) {
	st := NewTestStore(t)
	ctx := context.Background()

	session := seedSession(t, st, models.StatusPending)
	channel := events.SessionChannel(session.ID)

	first, err := st.AppendEvent(ctx, session.ID, channel, []byte(`{"type": "session_created"}`))
	require.NoError(t, err)
	second, err := st.AppendEvent(ctx, session.ID, channel, []byte(`{"type": "session_status"}`))
	require.NoError(t, err)
	assert.Greater(t, second, first)

	evs, err := st.GetCatchupEvents(ctx, channel, 0, 10)
	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.Equal(t, "session_created", evs[0].Payload["type"])

	// Catchup resumes after the last seen ID.
	evs, err = st.GetCatchupEvents(ctx, channel, first, 10)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, "session_status", evs[0].Payload["type"])
}

func TestEntStoreDeleteRemovesTree(t *testing.T) {
	st := NewTestStore(t)
	ctx := context.Background()

	session := seedSession(t, st, models.StatusPending)
	require.NoError(t, st.DeleteSession(ctx, session.ID))

	_, err := st.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.GetVersion(ctx, session.ID, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Deleting again fails cleanly.
	err = st.DeleteSession(ctx, session.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
