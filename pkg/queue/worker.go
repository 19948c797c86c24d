package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/store"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes sessions.
type Worker struct {
	id        string
	podID     string
	store     store.Store
	config    *config.QueueConfig
	executor  SessionExecutor
	pool      SessionRegistry
	publisher *events.Publisher
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentSessionID  string
	sessionsProcessed int
	lastActivity      time.Time
}

// SessionRegistry is the subset of WorkerPool used by Worker for session registration.
type SessionRegistry interface {
	RegisterSession(sessionID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// NewWorker creates a new queue worker. publisher may be nil
// (streaming disabled).
func NewWorker(id, podID string, st store.Store, cfg *config.QueueConfig, executor SessionExecutor, pool SessionRegistry, publisher *events.Publisher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		store:        st,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		publisher:    publisher,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentSessionID:  w.currentSessionID,
		SessionsProcessed: w.sessionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoSessionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing session", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a session, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Best-effort capacity check; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	active, err := w.store.ListSessions(ctx, store.ListFilter{Status: models.StatusRunning})
	if err != nil {
		return fmt.Errorf("checking active sessions: %w", err)
	}
	if len(active) >= w.config.MaxConcurrentSessions {
		return ErrAtCapacity
	}

	// Claim the oldest pending session; the claim moves it to Planning.
	session, err := w.store.ClaimNextPending(ctx, w.podID)
	if err != nil {
		if errors.Is(err, store.ErrNoPending) {
			return ErrNoSessionsAvailable
		}
		return fmt.Errorf("failed to claim session: %w", err)
	}

	log := slog.With("session_id", session.ID, "worker_id", w.id)
	log.Info("Session claimed")

	w.publishSessionStatus(ctx, session.ID, models.StatusPlanning, "")

	w.setStatus(WorkerStatusWorking, session.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	sessionCtx, cancelSession := context.WithTimeout(ctx, w.config.SessionTimeout)
	defer cancelSession()

	// Register cancel function for API-triggered cancellation.
	w.pool.RegisterSession(session.ID, cancelSession)
	defer w.pool.UnregisterSession(session.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(sessionCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, session.ID)

	result := w.executor.Execute(sessionCtx, session)

	// Nil-guard: synthesize a safe result if the executor returned nil.
	if result == nil {
		switch {
		case errors.Is(sessionCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status:    models.StatusFailed,
				StoppedBy: models.StoppedByError,
				Error:     fmt.Errorf("session timed out after %v", w.config.SessionTimeout),
			}
		case errors.Is(sessionCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: models.StatusCancelled,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status:    models.StatusFailed,
				StoppedBy: models.StoppedByError,
				Error:     fmt.Errorf("executor returned nil result"),
			}
		}
	}

	cancelHeartbeat()

	// Terminal update uses a background context; sessionCtx may be
	// cancelled or expired by now.
	if err := w.updateTerminalStatus(context.Background(), session.ID, result); err != nil {
		log.Error("Failed to update session terminal status", "error", err)
		return err
	}

	var errMsg string
	if result.Error != nil {
		errMsg = result.Error.Error()
	}
	w.publishSessionStatus(context.Background(), session.ID, result.Status, errMsg)

	w.mu.Lock()
	w.sessionsProcessed++
	w.mu.Unlock()

	log.Info("Session processing complete", "status", result.Status)
	return nil
}

// runHeartbeat periodically refreshes the session claim for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.store.Heartbeat(ctx, sessionID, w.podID); err != nil {
				slog.Warn("Heartbeat update failed", "session_id", sessionID, "error", err)
			}
		}
	}
}

// updateTerminalStatus writes the final session status.
func (w *Worker) updateTerminalStatus(ctx context.Context, sessionID string, result *ExecutionResult) error {
	session, err := w.store.GetSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to reload session: %w", err)
	}

	now := time.Now().UTC()
	session.Status = result.Status
	session.EndedAt = &now
	session.StoppedBy = result.StoppedBy
	session.ConvergenceReason = result.Reason
	if result.FinalVersion > 0 {
		session.FinalVersion = result.FinalVersion
	}
	if result.Error != nil {
		session.ErrorMessage = result.Error.Error()
	}

	return w.store.UpdateSession(ctx, session)
}

// publishSessionStatus publishes a session status event to both the
// session-specific and global channels. Non-blocking: errors are logged.
func (w *Worker) publishSessionStatus(ctx context.Context, sessionID string, status models.Status, errMsg string) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishSessionStatus(ctx, events.SessionStatusPayload{
		SessionID: sessionID,
		Status:    status,
		Error:     errMsg,
		Timestamp: events.Timestamp(time.Now().UTC()),
	}); err != nil {
		slog.Warn("Failed to publish session status",
			"session_id", sessionID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSessionID = sessionID
	w.lastActivity = time.Now()
}
