package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/store"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID     string
	store     store.Store
	config    *config.QueueConfig
	executor  SessionExecutor
	publisher *events.Publisher
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Session cancel registry: session_id -> cancel function
	activeSessions map[string]context.CancelFunc
	mu             sync.RWMutex
	started        bool

	// Orphan detection state
	orphans orphanState
}

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// NewWorkerPool creates a new worker pool. publisher may be nil
// (streaming disabled).
func NewWorkerPool(podID string, st store.Store, cfg *config.QueueConfig, executor SessionExecutor, publisher *events.Publisher) *WorkerPool {
	return &WorkerPool{
		podID:          podID,
		store:          st,
		config:         cfg,
		executor:       executor,
		publisher:      publisher,
		workers:        make([]*Worker, 0, cfg.WorkerCount),
		stopCh:         make(chan struct{}),
		activeSessions: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background
// task. It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.store, p.config, p.executor, p, p.publisher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current sessions before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveSessionIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active sessions to complete",
			"count", len(active),
			"session_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterSession stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterSession(sessionID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeSessions[sessionID] = cancel
}

// UnregisterSession removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterSession(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeSessions, sessionID)
}

// CancelSession triggers context cancellation for a session on this pod.
// Returns true if the session was found and cancelled on this pod.
// Implements services.Canceller.
func (p *WorkerPool) CancelSession(sessionID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeSessions[sessionID]; ok {
		cancel()
		return true
	}
	return false
}

// runOrphanDetection periodically fails sessions whose worker stopped
// heartbeating. All pods run this independently; the operation is
// idempotent. The first scan runs immediately so that sessions orphaned
// by a crash before this pod started are recovered without waiting a
// full interval.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	p.recoverOrphans(ctx)

	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.recoverOrphans(ctx)
		}
	}
}

func (p *WorkerPool) recoverOrphans(ctx context.Context) {
	cutoff := time.Now().Add(-p.config.OrphanThreshold)
	recovered, err := p.store.RecoverOrphans(ctx, cutoff)
	if err != nil {
		slog.Error("Orphan detection failed", "pod_id", p.podID, "error", err)
		return
	}

	if len(recovered) > 0 {
		slog.Warn("Recovered orphaned sessions", "count", len(recovered), "session_ids", recovered)
		for _, sessionID := range recovered {
			p.publishStatus(ctx, sessionID, models.StatusFailed, "worker stopped heartbeating, session orphaned")
		}
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += len(recovered)
	p.orphans.mu.Unlock()
}

func (p *WorkerPool) publishStatus(ctx context.Context, sessionID string, status models.Status, errMsg string) {
	if p.publisher == nil {
		return
	}
	err := p.publisher.PublishSessionStatus(ctx, events.SessionStatusPayload{
		SessionID: sessionID,
		Status:    status,
		Error:     errMsg,
		Timestamp: events.Timestamp(time.Now().UTC()),
	})
	if err != nil {
		slog.Warn("Failed to publish session status",
			"session_id", sessionID, "status", status, "error", err)
	}
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	var storeErr error
	pending, err := p.store.ListSessions(ctx, store.ListFilter{Status: models.StatusPending})
	if err != nil {
		storeErr = fmt.Errorf("queue depth query failed: %w", err)
		slog.Error("Failed to query queue depth for health check", "pod_id", p.podID, "error", err)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	p.mu.RLock()
	activeSessions := len(p.activeSessions)
	p.mu.RUnlock()

	storeHealthy := storeErr == nil
	isHealthy := len(p.workers) > 0 && activeSessions <= p.config.MaxConcurrentSessions && storeHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var storeErrStr string
	if storeErr != nil {
		storeErrStr = storeErr.Error()
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		StoreReachable:   storeHealthy,
		StoreError:       storeErrStr,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveSessions:   activeSessions,
		MaxConcurrent:    p.config.MaxConcurrentSessions,
		QueueDepth:       len(pending),
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// getActiveSessionIDs returns IDs of currently processing sessions (for logging).
func (p *WorkerPool) getActiveSessionIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	sessions := make([]string, 0, len(p.activeSessions))
	for id := range p.activeSessions {
		sessions = append(sessions, id)
	}
	return sessions
}
