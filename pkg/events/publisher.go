package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// EventSink persists events for later catchup. Implemented by the
// session store.
type EventSink interface {
	// AppendEvent stores a payload on a channel and returns its
	// monotonically increasing event ID within that channel.
	AppendEvent(ctx context.Context, sessionID, channel string, payload []byte) (int, error)
}

// Publisher publishes refinement events. Persistent events are stored
// through the sink and then broadcast on the bus; transient events
// (log lines) are broadcast only.
//
// Each public method accepts a specific typed payload struct from
// payloads.go. The session channel is derived from the payload's
// session ID.
type Publisher struct {
	sink EventSink
	bus  *Bus
}

// NewPublisher creates a publisher. sink may be nil, in which case
// every event is broadcast-only and catchup is unavailable.
func NewPublisher(sink EventSink, bus *Bus) *Publisher {
	return &Publisher{sink: sink, bus: bus}
}

// Bus returns the underlying bus, for wiring the connection manager.
func (p *Publisher) Bus() *Bus { return p.bus }

func (p *Publisher) persistAndPublish(ctx context.Context, sessionID string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", payload, err)
	}
	channel := SessionChannel(sessionID)
	if p.sink != nil {
		if _, err := p.sink.AppendEvent(ctx, sessionID, channel, data); err != nil {
			// Live delivery still proceeds; only catchup loses this event.
			slog.Warn("Failed to persist event", "session_id", sessionID, "error", err)
		}
	}
	p.bus.Publish(channel, data)
	return nil
}

func (p *Publisher) publishOnly(channel string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", payload, err)
	}
	p.bus.Publish(channel, data)
	return nil
}

// PublishSessionCreated persists and broadcasts a session_created event.
func (p *Publisher) PublishSessionCreated(ctx context.Context, payload SessionCreatedPayload) error {
	payload.Type = EventTypeSessionCreated
	return p.persistAndPublish(ctx, payload.SessionID, payload)
}

// PublishRoundtableGenerating persists and broadcasts a
// roundtable_generating event at the start of panel planning.
func (p *Publisher) PublishRoundtableGenerating(ctx context.Context, payload RoundtableGeneratingPayload) error {
	payload.Type = EventTypeRoundtableGenerating
	return p.persistAndPublish(ctx, payload.SessionID, payload)
}

// PublishRoundtableGenerated persists and broadcasts the planned panel.
func (p *Publisher) PublishRoundtableGenerated(ctx context.Context, payload RoundtableGeneratedPayload) error {
	payload.Type = EventTypeRoundtableGenerated
	return p.persistAndPublish(ctx, payload.SessionID, payload)
}

// PublishIterationStart persists and broadcasts an iteration_start event.
func (p *Publisher) PublishIterationStart(ctx context.Context, payload IterationStartPayload) error {
	payload.Type = EventTypeIterationStart
	return p.persistAndPublish(ctx, payload.SessionID, payload)
}

// PublishCriticReviewStart persists and broadcasts a critic_review_start event.
func (p *Publisher) PublishCriticReviewStart(ctx context.Context, payload CriticReviewStartPayload) error {
	payload.Type = EventTypeCriticReviewStart
	return p.persistAndPublish(ctx, payload.SessionID, payload)
}

// PublishCriticReviewComplete persists and broadcasts a reviewer's
// result summary.
func (p *Publisher) PublishCriticReviewComplete(ctx context.Context, payload CriticReviewCompletePayload) error {
	payload.Type = EventTypeCriticReviewComplete
	return p.persistAndPublish(ctx, payload.SessionID, payload)
}

// PublishConvergenceCheck persists and broadcasts the iteration's stop
// decision.
func (p *Publisher) PublishConvergenceCheck(ctx context.Context, payload ConvergenceCheckPayload) error {
	payload.Type = EventTypeConvergenceCheck
	return p.persistAndPublish(ctx, payload.SessionID, payload)
}

// PublishModeratorStart persists and broadcasts a moderator_start event.
func (p *Publisher) PublishModeratorStart(ctx context.Context, payload ModeratorStartPayload) error {
	payload.Type = EventTypeModeratorStart
	return p.persistAndPublish(ctx, payload.SessionID, payload)
}

// PublishModeratorComplete persists and broadcasts the new version
// announcement.
func (p *Publisher) PublishModeratorComplete(ctx context.Context, payload ModeratorCompletePayload) error {
	payload.Type = EventTypeModeratorComplete
	return p.persistAndPublish(ctx, payload.SessionID, payload)
}

// PublishRefinementComplete persists and broadcasts the terminal event
// of a successful run.
func (p *Publisher) PublishRefinementComplete(ctx context.Context, payload RefinementCompletePayload) error {
	payload.Type = EventTypeRefinementComplete
	return p.persistAndPublish(ctx, payload.SessionID, payload)
}

// PublishSessionStatus persists a session_status event to the session
// channel and broadcasts a transient copy to the global sessions
// channel. Both publishes are attempted; the first error wins.
func (p *Publisher) PublishSessionStatus(ctx context.Context, payload SessionStatusPayload) error {
	payload.Type = EventTypeSessionStatus

	var firstErr error
	if err := p.persistAndPublish(ctx, payload.SessionID, payload); err != nil {
		slog.Warn("Failed to publish session status to session channel",
			"session_id", payload.SessionID, "status", payload.Status, "error", err)
		firstErr = err
	}
	if err := p.publishOnly(GlobalSessionsChannel, payload); err != nil {
		slog.Warn("Failed to publish session status to global channel",
			"session_id", payload.SessionID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishLog broadcasts a transient log event (no persistence).
func (p *Publisher) PublishLog(_ context.Context, payload LogPayload) error {
	payload.Type = EventTypeLog
	return p.publishOnly(SessionChannel(payload.SessionID), payload)
}
