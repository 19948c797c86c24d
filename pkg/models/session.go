package models

import "time"

// Status is a session's lifecycle state.
type Status string

// Session lifecycle states. Completed, Failed and Cancelled are
// terminal; Continue re-enters Running from Completed.
const (
	StatusPending   Status = "pending"
	StatusPlanning  Status = "planning"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// StoppedBy identifies which stop rule terminated the loop.
type StoppedBy string

// Stop rule identifiers.
const (
	StoppedByNoHighIssues   StoppedBy = "no_high_issues"
	StoppedByMaxIterations  StoppedBy = "max_iterations"
	StoppedByDeltaThreshold StoppedBy = "delta_threshold"
	StoppedByCustom         StoppedBy = "custom"
	StoppedByError          StoppedBy = "error"
)

// ModelStrategy selects how models are assigned to participants.
type ModelStrategy string

// Model assignment strategies.
const (
	ModelStrategyUniform ModelStrategy = "uniform"
	ModelStrategyDiverse ModelStrategy = "diverse"
)

// Preset names a built-in reviewer panel template.
type Preset string

// Built-in presets.
const (
	PresetNone             Preset = ""
	PresetPRD              Preset = "prd"
	PresetCodeReview       Preset = "code-review"
	PresetArchitecture     Preset = "architecture"
	PresetBusinessStrategy Preset = "business-strategy"
)

// ValidPreset reports whether p names a recognized preset ("" is valid
// and means no preset).
func ValidPreset(p Preset) bool {
	switch p {
	case PresetNone, PresetPRD, PresetCodeReview, PresetArchitecture, PresetBusinessStrategy:
		return true
	}
	return false
}

// SessionConfig is the per-session loop configuration.
type SessionConfig struct {
	MaxIterations      int           `json:"max_iterations"`
	DeltaThreshold     float64       `json:"delta_threshold"`
	StopOnNoHighIssues bool          `json:"stop_on_no_high_issues"`
	ForceMaxIterations bool          `json:"force_max_iterations"`
	NumParticipants    int           `json:"num_participants"`
	Preset             Preset        `json:"preset,omitempty"`
	ParticipantStyle   string        `json:"participant_style,omitempty"`
	Model              string        `json:"model,omitempty"`
	ModelStrategy      ModelStrategy `json:"model_strategy,omitempty"`
}

// DefaultDeltaThreshold is the default document-stability threshold.
const DefaultDeltaThreshold = 0.05

// Participant count bounds; NumParticipants is clamped into this range.
const (
	MinParticipants = 2
	MaxParticipants = 6
)

// Session is the runtime entity: identity, configuration, planned
// participants, lifecycle status and aggregate accounting.
type Session struct {
	ID           string        `json:"session_id"`
	Title        string        `json:"title"`
	Goal         string        `json:"goal,omitempty"`
	DocumentType string        `json:"document_type"`
	Config       SessionConfig `json:"config"`

	Participants   []RoleSpec `json:"participants,omitempty"`
	ModeratorFocus string     `json:"moderator_focus,omitempty"`
	PlannerWarning string     `json:"planner_warning,omitempty"`

	Status            Status     `json:"status"`
	CurrentIteration  int        `json:"current_iteration"`
	CreatedAt         time.Time  `json:"created_at"`
	StartedAt         *time.Time `json:"started_at,omitempty"`
	EndedAt           *time.Time `json:"ended_at,omitempty"`
	FinalVersion      int       `json:"final_version,omitempty"`
	ConvergenceReason string    `json:"convergence_reason,omitempty"`
	StoppedBy         StoppedBy `json:"stopped_by,omitempty"`
	ErrorMessage      string    `json:"error_message,omitempty"`

	// ContinuedFromIteration is the prior terminal iteration when this
	// session has been continued; 0 otherwise.
	ContinuedFromIteration int `json:"continued_from_iteration,omitempty"`

	// Tokens aggregates usage by participant name plus the reserved
	// keys "moderator" and "meta_planner".
	Tokens map[string]TokenUsage `json:"token_usage,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`

	// Worker claim bookkeeping, server mode only.
	PodID           string     `json:"-"`
	LastHeartbeatAt *time.Time `json:"-"`
}

// Reserved token-accounting keys.
const (
	TokenKeyModerator   = "moderator"
	TokenKeyMetaPlanner = "meta_planner"
)

// SessionStatus is the poll-safe status snapshot returned by the
// status operation.
type SessionStatus struct {
	SessionID        string    `json:"session_id"`
	Status           Status    `json:"status"`
	CurrentIteration int       `json:"current_iteration"`
	MaxIterations    int       `json:"max_iterations"`
	FinalVersion     int       `json:"final_version,omitempty"`
	StoppedBy        StoppedBy `json:"stopped_by,omitempty"`
}
