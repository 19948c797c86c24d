package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// recordingSink captures persisted events in memory.
type recordingSink struct {
	mu     sync.Mutex
	events []sinkEntry
	err    error
}

type sinkEntry struct {
	sessionID string
	channel   string
	payload   []byte
}

func (s *recordingSink) AppendEvent(_ context.Context, sessionID, channel string, payload []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	s.events = append(s.events, sinkEntry{sessionID, channel, payload})
	return len(s.events), nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestPublisherPersistsAndBroadcasts(t *testing.T) {
	sink := &recordingSink{}
	bus := NewBus()
	defer bus.Close()
	pub := NewPublisher(sink, bus)

	sub := bus.Subscribe(SessionChannel("sess-1"))

	err := pub.PublishIterationStart(context.Background(), IterationStartPayload{
		SessionID:    "sess-1",
		Iteration:    2,
		InputVersion: 2,
		Timestamp:    Timestamp(time.Now()),
	})
	require.NoError(t, err)

	got := decode(t, <-sub.C)
	assert.Equal(t, EventTypeIterationStart, got["type"])
	assert.Equal(t, "sess-1", got["session_id"])
	assert.Equal(t, float64(2), got["iteration"])
	assert.NotEmpty(t, got["timestamp"])

	require.Equal(t, 1, sink.count())
	assert.Equal(t, SessionChannel("sess-1"), sink.events[0].channel)
}

func TestPublisherSetsEnvelopeType(t *testing.T) {
	bus := NewBus()
	defer bus.Close()
	pub := NewPublisher(nil, bus)
	sub := bus.Subscribe(SessionChannel("s"))
	ctx := context.Background()

	// The Type field is stamped by the publisher even when the caller
	// leaves it empty.
	require.NoError(t, pub.PublishCriticReviewComplete(ctx, CriticReviewCompletePayload{SessionID: "s", Reviewer: "PM"}))
	assert.Equal(t, EventTypeCriticReviewComplete, decode(t, <-sub.C)["type"])

	require.NoError(t, pub.PublishConvergenceCheck(ctx, ConvergenceCheckPayload{SessionID: "s"}))
	assert.Equal(t, EventTypeConvergenceCheck, decode(t, <-sub.C)["type"])

	require.NoError(t, pub.PublishRefinementComplete(ctx, RefinementCompletePayload{SessionID: "s"}))
	assert.Equal(t, EventTypeRefinementComplete, decode(t, <-sub.C)["type"])
}

func TestPublisherLogIsTransient(t *testing.T) {
	sink := &recordingSink{}
	bus := NewBus()
	defer bus.Close()
	pub := NewPublisher(sink, bus)
	sub := bus.Subscribe(SessionChannel("sess-1"))

	err := pub.PublishLog(context.Background(), LogPayload{
		SessionID: "sess-1",
		Level:     LogLevelInfo,
		Message:   "planner finished",
	})
	require.NoError(t, err)

	got := decode(t, <-sub.C)
	assert.Equal(t, EventTypeLog, got["type"])
	// Transient: broadcast but never persisted.
	assert.Equal(t, 0, sink.count())
}

func TestPublisherSessionStatusDualChannel(t *testing.T) {
	sink := &recordingSink{}
	bus := NewBus()
	defer bus.Close()
	pub := NewPublisher(sink, bus)

	sessionSub := bus.Subscribe(SessionChannel("sess-1"))
	globalSub := bus.Subscribe(GlobalSessionsChannel)

	err := pub.PublishSessionStatus(context.Background(), SessionStatusPayload{
		SessionID: "sess-1",
		Status:    models.StatusRunning,
	})
	require.NoError(t, err)

	assert.Equal(t, EventTypeSessionStatus, decode(t, <-sessionSub.C)["type"])
	assert.Equal(t, "sess-1", decode(t, <-globalSub.C)["session_id"])
	// Only the session channel copy is persisted.
	assert.Equal(t, 1, sink.count())
}

func TestPublisherBroadcastsDespiteSinkFailure(t *testing.T) {
	sink := &recordingSink{err: errors.New("db down")}
	bus := NewBus()
	defer bus.Close()
	pub := NewPublisher(sink, bus)
	sub := bus.Subscribe(SessionChannel("sess-1"))

	err := pub.PublishModeratorComplete(context.Background(), ModeratorCompletePayload{
		SessionID:     "sess-1",
		Iteration:     1,
		OutputVersion: 2,
	})
	require.NoError(t, err)

	// Live delivery survives persistence failure.
	got := decode(t, <-sub.C)
	assert.Equal(t, EventTypeModeratorComplete, got["type"])
}

func TestSummarizeIssues(t *testing.T) {
	review := &models.Review{
		ReviewerName: "PM",
		Issues: []models.Issue{
			{Category: "A", Description: "low 1", Severity: models.SeverityLow},
			{Category: "B", Description: "high 1", Severity: models.SeverityHigh},
			{Category: "C", Description: "med 1", Severity: models.SeverityMedium},
			{Category: "D", Description: "high 2", Severity: models.SeverityHigh},
			{Category: "E", Description: "med 2", Severity: models.SeverityMedium},
		},
	}

	top := SummarizeIssues(review, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "high 1", top[0].Description)
	assert.Equal(t, "high 2", top[1].Description)
	assert.Equal(t, "med 1", top[2].Description)

	assert.Empty(t, SummarizeIssues(&models.Review{}, 3))
	assert.Len(t, SummarizeIssues(review, 10), 5)
}
