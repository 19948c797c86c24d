package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/store"
)

// stubExecutor records executed sessions and returns a fixed result.
type stubExecutor struct {
	mu       sync.Mutex
	executed []string
	result   *ExecutionResult
	block    chan struct{} // when set, Execute waits for close or ctx
}

func (s *stubExecutor) Execute(ctx context.Context, session *models.Session) *ExecutionResult {
	s.mu.Lock()
	s.executed = append(s.executed, session.ID)
	s.mu.Unlock()
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return &ExecutionResult{Status: models.StatusCancelled, Error: ctx.Err()}
		}
	}
	return s.result
}

func (s *stubExecutor) executedSessions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.executed))
	copy(out, s.executed)
	return out
}

func fastQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.HeartbeatInterval = 10 * time.Millisecond
	cfg.OrphanDetectionInterval = time.Hour
	return cfg
}

func seedPending(t *testing.T, st *store.MemoryStore, id string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, st.CreateSession(ctx, &models.Session{
		ID:           id,
		Title:        "doc " + id,
		DocumentType: "document",
		Config:       models.SessionConfig{MaxIterations: 3, NumParticipants: 3, StopOnNoHighIssues: true},
		Status:       models.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}))
	require.NoError(t, st.SaveVersion(ctx, id, &models.DocumentVersion{
		Version: 1, Title: "doc " + id, DocumentType: "document",
		Content: "text", CreatedAt: time.Now().UTC(), LengthChars: 4,
	}))
}

func waitUntil(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestWorkerProcessesPendingSession(t *testing.T) {
	st := store.NewMemoryStore()
	bus := events.NewBus()
	defer bus.Close()
	publisher := events.NewPublisher(st, bus)

	executor := &stubExecutor{result: &ExecutionResult{
		Status:       models.StatusCompleted,
		StoppedBy:    models.StoppedByNoHighIssues,
		Reason:       "no high severity issues remain (0 remaining)",
		FinalVersion: 1,
	}}
	pool := NewWorkerPool("pod-test", st, fastQueueConfig(), executor, publisher)

	seedPending(t, st, "sess-1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	waitUntil(t, func() bool {
		session, err := st.GetSession(context.Background(), "sess-1")
		return err == nil && session.Status == models.StatusCompleted
	}, "session never reached completed")

	session, err := st.GetSession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, models.StoppedByNoHighIssues, session.StoppedBy)
	assert.Equal(t, 1, session.FinalVersion)
	require.NotNil(t, session.EndedAt)
	assert.Equal(t, []string{"sess-1"}, executor.executedSessions())
}

func TestWorkerWritesFailedResult(t *testing.T) {
	st := store.NewMemoryStore()
	executor := &stubExecutor{result: &ExecutionResult{
		Status:    models.StatusFailed,
		StoppedBy: models.StoppedByError,
		Error:     assert.AnError,
	}}
	pool := NewWorkerPool("pod-test", st, fastQueueConfig(), executor, nil)

	seedPending(t, st, "sess-fail")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	waitUntil(t, func() bool {
		session, err := st.GetSession(context.Background(), "sess-fail")
		return err == nil && session.Status == models.StatusFailed
	}, "session never reached failed")

	session, err := st.GetSession(context.Background(), "sess-fail")
	require.NoError(t, err)
	assert.Equal(t, assert.AnError.Error(), session.ErrorMessage)
}

func TestWorkerProcessesFIFO(t *testing.T) {
	st := store.NewMemoryStore()
	executor := &stubExecutor{result: &ExecutionResult{
		Status: models.StatusCompleted, StoppedBy: models.StoppedByNoHighIssues, FinalVersion: 1,
	}}
	pool := NewWorkerPool("pod-test", st, fastQueueConfig(), executor, nil)

	seedPending(t, st, "a")
	seedPending(t, st, "b")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	waitUntil(t, func() bool {
		return len(executor.executedSessions()) == 2
	}, "both sessions should be executed")
	assert.Equal(t, []string{"a", "b"}, executor.executedSessions())
}

func TestCancelSessionSignalsLiveDriver(t *testing.T) {
	st := store.NewMemoryStore()
	block := make(chan struct{})
	executor := &stubExecutor{block: block}
	pool := NewWorkerPool("pod-test", st, fastQueueConfig(), executor, nil)

	seedPending(t, st, "sess-cancel")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	waitUntil(t, func() bool {
		return len(executor.executedSessions()) == 1
	}, "session never started")

	require.True(t, pool.CancelSession("sess-cancel"))

	waitUntil(t, func() bool {
		session, err := st.GetSession(context.Background(), "sess-cancel")
		return err == nil && session.Status == models.StatusCancelled
	}, "session never reached cancelled")

	// The registry entry is gone once processing ends.
	assert.False(t, pool.CancelSession("sess-cancel"))
}

func TestPoolHealth(t *testing.T) {
	st := store.NewMemoryStore()
	executor := &stubExecutor{result: &ExecutionResult{Status: models.StatusCompleted}}
	cfg := fastQueueConfig()
	cfg.WorkerCount = 2
	pool := NewWorkerPool("pod-health", st, cfg, executor, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.StoreReachable)
	assert.Equal(t, "pod-health", health.PodID)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 2)
}

func TestOrphanRecoveryFailsStaleSessions(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	seedPending(t, st, "stale")
	session, err := st.ClaimNextPending(ctx, "dead-pod")
	require.NoError(t, err)
	stale := time.Now().Add(-time.Hour)
	session.LastHeartbeatAt = &stale
	require.NoError(t, st.UpdateSession(ctx, session))

	cfg := fastQueueConfig()
	cfg.WorkerCount = 0
	pool := NewWorkerPool("pod-orphan", st, cfg, &stubExecutor{}, nil)
	pool.recoverOrphans(ctx)

	reloaded, err := st.GetSession(ctx, "stale")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, reloaded.Status)
	assert.Contains(t, reloaded.ErrorMessage, "orphaned")

	pool.orphans.mu.Lock()
	defer pool.orphans.mu.Unlock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
}
