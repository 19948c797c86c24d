package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/services"
	"github.com/roundtable-ai/roundtable/pkg/store"
)

// newTestServer builds a Server over an in-memory store. Requests are
// dispatched through the echo router so error mapping behaves exactly
// as in production.
func newTestServer(t *testing.T) (*Server, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	bus := events.NewBus()
	t.Cleanup(bus.Close)

	svc := services.NewSessionService(st, events.NewPublisher(st, bus), nil)
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080},
	}
	return NewServer(cfg, svc), st
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func startSession(t *testing.T, s *Server) string {
	t.Helper()

	rec := doRequest(s, http.MethodPost, "/api/v1/sessions",
		`{"title": "Payments PRD", "content": "## Overview\nAccept card payments.", "preset": "prd"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp startSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.SessionID
}

func TestStartSessionHandler(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodPost, "/api/v1/sessions",
		`{"title": "Payments PRD", "content": "## Overview\nAccept card payments.", "preset": "prd"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp startSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, "session:"+resp.SessionID, resp.Channel)
}

func TestStartSessionHandler_Validation(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing title",
			body: `{"content": "text", "preset": "prd"}`,
		},
		{
			name: "missing content",
			body: `{"title": "Doc", "preset": "prd"}`,
		},
		{
			name: "unknown preset",
			body: `{"title": "Doc", "content": "text", "preset": "haiku"}`,
		},
		{
			name: "malformed json",
			body: `{"title": `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(s, http.MethodPost, "/api/v1/sessions", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestListSessionsHandler(t *testing.T) {
	s, _ := newTestServer(t)

	first := startSession(t, s)
	second := startSession(t, s)

	rec := doRequest(s, http.MethodGet, "/api/v1/sessions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Sessions []*models.SessionListEntry `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Sessions, 2)

	ids := []string{resp.Sessions[0].SessionID, resp.Sessions[1].SessionID}
	assert.Contains(t, ids, first)
	assert.Contains(t, ids, second)
}

func TestListSessionsHandler_QueryValidation(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{name: "bogus status", query: "status=bogus"},
		{name: "zero limit", query: "limit=0"},
		{name: "limit over cap", query: "limit=500"},
		{name: "negative offset", query: "offset=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(s, http.MethodGet, "/api/v1/sessions?"+tt.query, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestGetSessionHandler(t *testing.T) {
	s, _ := newTestServer(t)
	id := startSession(t, s)

	rec := doRequest(s, http.MethodGet, "/api/v1/sessions/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var session models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, id, session.ID)
	assert.Equal(t, "Payments PRD", session.Title)

	rec = doRequest(s, http.MethodGet, "/api/v1/sessions/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionStatusHandler(t *testing.T) {
	s, _ := newTestServer(t)
	id := startSession(t, s)

	rec := doRequest(s, http.MethodGet, "/api/v1/sessions/"+id+"/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var status models.SessionStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, models.StatusPending, status.Status)
	assert.Equal(t, 0, status.CurrentIteration)
}

func TestContinueSessionHandler_Conflict(t *testing.T) {
	// A freshly created session is not completed, so continuation is
	// rejected with 409.
	s, _ := newTestServer(t)
	id := startSession(t, s)

	rec := doRequest(s, http.MethodPost, "/api/v1/sessions/"+id+"/continue",
		`{"additional_iterations": 2}`)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestCancelSessionHandler(t *testing.T) {
	s, st := newTestServer(t)
	id := startSession(t, s)

	rec := doRequest(s, http.MethodPost, "/api/v1/sessions/"+id+"/cancel", "")
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	session, err := st.GetSession(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, session.Status)

	// Cancelling a terminal session conflicts.
	rec = doRequest(s, http.MethodPost, "/api/v1/sessions/"+id+"/cancel", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteSessionHandler(t *testing.T) {
	s, _ := newTestServer(t)
	id := startSession(t, s)

	// Active sessions cannot be deleted.
	rec := doRequest(s, http.MethodDelete, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Cancel first, then delete succeeds.
	rec = doRequest(s, http.MethodPost, "/api/v1/sessions/"+id+"/cancel", "")
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = doRequest(s, http.MethodDelete, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
