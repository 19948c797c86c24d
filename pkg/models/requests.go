package models

import "time"

// StartRequest contains the fields accepted when starting a new
// refinement session.
type StartRequest struct {
	Title              string         `json:"title"`
	Content            string         `json:"content"`
	Goal               string         `json:"goal,omitempty"`
	DocumentType       string         `json:"document_type,omitempty"`
	MaxIterations      int            `json:"max_iterations"`
	NumParticipants    int            `json:"num_participants"`
	DeltaThreshold     float64        `json:"delta_threshold,omitempty"`
	Preset             Preset         `json:"preset,omitempty"`
	ParticipantStyle   string         `json:"participant_style,omitempty"`
	Model              string         `json:"model,omitempty"`
	ModelStrategy      ModelStrategy  `json:"model_strategy,omitempty"`
	StopOnNoHighIssues *bool          `json:"stop_on_no_high_issues,omitempty"`
	ForceMaxIterations bool           `json:"force_max_iterations,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
}

// SessionListEntry is the metadata projection used by list_sessions,
// ordered newest-first.
type SessionListEntry struct {
	SessionID        string    `json:"session_id"`
	Title            string    `json:"title"`
	DocumentType     string    `json:"document_type"`
	Status           Status    `json:"status"`
	CurrentIteration int       `json:"current_iteration"`
	CreatedAt        time.Time `json:"created_at"`
	FinalVersion     int       `json:"final_version,omitempty"`
	StoppedBy        StoppedBy `json:"stopped_by,omitempty"`
}
