// Package queue provides session queue management and processing
// infrastructure: a worker pool that claims pending refinement
// sessions, the executor that drives the iteration loop, and orphan
// recovery for sessions whose worker died.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSessionsAvailable indicates no pending sessions are in the queue.
	ErrNoSessionsAvailable = errors.New("no sessions available")

	// ErrAtCapacity indicates the global concurrent session limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// SessionExecutor drives a claimed session through planning and the
// refinement loop.
//
// The executor writes intermediate state (versions, reviews, iteration
// records, events) PROGRESSIVELY during execution; the returned result
// carries only the terminal state. The worker handles claiming,
// heartbeat and the terminal status update.
type SessionExecutor interface {
	Execute(ctx context.Context, session *models.Session) *ExecutionResult
}

// ExecutionResult is the terminal outcome of one session run. All
// intermediate artifacts were already committed by the executor.
type ExecutionResult struct {
	Status       models.Status    // completed, failed or cancelled
	StoppedBy    models.StoppedBy // which stop rule fired, or error
	Reason       string           // convergence reason (if completed)
	FinalVersion int              // final document version (if completed)
	Error        error            // error details (if failed)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	StoreReachable   bool           `json:"store_reachable"`
	StoreError       string         `json:"store_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveSessions   int            `json:"active_sessions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentSessionID  string    `json:"current_session_id,omitempty"`
	SessionsProcessed int       `json:"sessions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
