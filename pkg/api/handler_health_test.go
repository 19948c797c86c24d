package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	// Without an attached database or worker pool the endpoint still
	// reports service health.
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "roundtable", resp["service"])
	assert.NotContains(t, resp, "database")
	assert.NotContains(t, resp, "worker_pool")
}

func TestWSHandlerUnavailableWithoutManager(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/v1/ws", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
