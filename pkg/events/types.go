// Package events provides real-time refinement progress delivery. An
// in-process bus fans events out to subscribers; the WebSocket
// connection manager bridges bus channels to connected clients.
//
// Every payload carries the same envelope fields: "type" (the event
// kind), "session_id" and an RFC3339Nano "timestamp". Clients switch
// on "type".
//
// A session's event stream follows this shape:
//
//	session_created
//	roundtable_generating
//	roundtable_generated        {participants}
//	repeated per iteration:
//	  iteration_start           {iteration, input_version}
//	  critic_review_start       {reviewer}          (per reviewer)
//	  critic_review_complete    {reviewer, counts}  (per reviewer)
//	  convergence_check         {decision, reason}
//	  moderator_start                               (only when continuing)
//	  moderator_complete        {output_version}
//	refinement_complete         {final_version, stopped_by}
//
// log events may appear anywhere in the stream.
package events

// Persistent event types (stored in DB, then broadcast).
const (
	EventTypeSessionCreated       = "session_created"
	EventTypeRoundtableGenerating = "roundtable_generating"
	EventTypeRoundtableGenerated  = "roundtable_generated"
	EventTypeIterationStart       = "iteration_start"
	EventTypeCriticReviewStart    = "critic_review_start"
	EventTypeCriticReviewComplete = "critic_review_complete"
	EventTypeConvergenceCheck     = "convergence_check"
	EventTypeModeratorStart       = "moderator_start"
	EventTypeModeratorComplete    = "moderator_complete"
	EventTypeRefinementComplete   = "refinement_complete"

	// Session lifecycle transitions, including failures and
	// cancellation. Also mirrored to the global channel.
	EventTypeSessionStatus = "session_status"
)

// Transient event types (broadcast only, never persisted).
const (
	// Free-form progress lines for activity feeds.
	EventTypeLog = "log"
)

// Log payload levels.
const (
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// GlobalSessionsChannel carries session_status events for every
// session. The session list page subscribes to it.
const GlobalSessionsChannel = "sessions"

// SessionChannel returns the channel name for a session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// ClientMessage is the JSON structure for client to server WebSocket
// messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // e.g. "session:abc-123"
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}
