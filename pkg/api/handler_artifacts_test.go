package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/convergence"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/store"
)

// completeSession drives the seeded session through one committed
// iteration with a rewrite and marks it completed, so artifact
// endpoints have something to serve.
func completeSession(t *testing.T, st *store.MemoryStore, sessionID string) {
	t.Helper()
	ctx := t.Context()

	now := time.Now().UTC()
	review := &models.Review{
		ReviewerName:    "Domain Expert",
		Iteration:       1,
		DocumentVersion: 1,
		Issues: []models.Issue{{
			Category:     "clarity",
			Description:  "success metrics are missing",
			Severity:     models.SeverityMedium,
			ReviewerName: "Domain Expert",
		}},
		OverallAssessment: "Needs measurable outcomes.",
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
			Content:             "## Overview\nAccept card payments.\n\n## Success Metrics\nConversion rate.",
			ProducedFromVersion: 1,
			CreatedAt:           now,
		},
		CurrentIteration: 1,
	}
	require.NoError(t, st.CommitIteration(ctx, sessionID, commit))

	session, err := st.GetSession(ctx, sessionID)
	require.NoError(t, err)
	session.Status = models.StatusCompleted
	session.CurrentIteration = 1
	session.FinalVersion = 2
	session.StoppedBy = models.StoppedByNoHighIssues
	session.ConvergenceReason = "no high severity issues remain (0 remaining)"
	session.EndedAt = &now
	require.NoError(t, st.UpdateSession(ctx, session))

	iterations, err := st.ListIterations(ctx, sessionID)
	require.NoError(t, err)
	require.NoError(t, st.SaveReport(ctx, sessionID, convergence.BuildReport(session, iterations)))
}

func TestListVersionsHandler(t *testing.T) {
	s, st := newTestServer(t)
	id := startSession(t, s)
	completeSession(t, st, id)

	rec := doRequest(s, http.MethodGet, "/api/v1/sessions/"+id+"/versions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		SessionID string                    `json:"session_id"`
		Versions  []*models.DocumentVersion `json:"versions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.SessionID)
	require.Len(t, resp.Versions, 2)
	assert.Equal(t, 1, resp.Versions[0].Version)
	assert.Equal(t, 2, resp.Versions[1].Version)
}

func TestGetVersionHandler(t *testing.T) {
	s, st := newTestServer(t)
	id := startSession(t, s)
	completeSession(t, st, id)

	rec := doRequest(s, http.MethodGet, "/api/v1/sessions/"+id+"/versions/2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc models.DocumentVersion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, 2, doc.Version)
	assert.Equal(t, 1, doc.ProducedFromVersion)
	assert.Contains(t, doc.Content, "Success Metrics")

	rec = doRequest(s, http.MethodGet, "/api/v1/sessions/"+id+"/versions/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/v1/sessions/"+id+"/versions/zero", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetReviewsHandler(t *testing.T) {
	s, st := newTestServer(t)
	id := startSession(t, s)
	completeSession(t, st, id)

	rec := doRequest(s, http.MethodGet, "/api/v1/sessions/"+id+"/reviews", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Reviews []*models.Review `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, "Domain Expert", resp.Reviews[0].ReviewerName)

	// Filtering by a version with no reviews returns an empty set.
	rec = doRequest(s, http.MethodGet, "/api/v1/sessions/"+id+"/reviews?version=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Reviews)

	rec = doRequest(s, http.MethodGet, "/api/v1/sessions/"+id+"/reviews?version=-3", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetReportHandler(t *testing.T) {
	s, st := newTestServer(t)
	id := startSession(t, s)

	// No report until the session completes.
	rec := doRequest(s, http.MethodGet, "/api/v1/sessions/"+id+"/report", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	completeSession(t, st, id)

	rec = doRequest(s, http.MethodGet, "/api/v1/sessions/"+id+"/report", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report models.ConvergenceReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, id, report.SessionID)
	assert.Equal(t, 2, report.FinalVersion)
	assert.Equal(t, 1, report.IterationsCount)
	assert.True(t, report.Converged)
}
