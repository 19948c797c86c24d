package models

// RoleSpec is a reviewer's identity and behavior for the life of a
// session: who they are, what they look for, and the full system prompt
// the LLM receives. Immutable once the session is planned.
type RoleSpec struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Expertise    string `json:"expertise"`
	Perspective  string `json:"perspective"`
	SystemPrompt string `json:"system_prompt"`

	// ModelID overrides the session's primary model for this reviewer.
	// Empty means use the primary model.
	ModelID string `json:"model_id,omitempty"`
}

// PlannerResult is the meta-planner's output: the reviewer panel plus
// directives for the moderator and the convergence criteria hint.
type PlannerResult struct {
	Participants            []RoleSpec `json:"participants"`
	ModeratorFocus          string     `json:"moderator_focus"`
	ConvergenceCriteriaHint string     `json:"convergence_criteria_hint"`

	// Warning is set when the planner fell back to the built-in
	// template after an LLM or parse failure. Recorded on the session,
	// never fatal.
	Warning string `json:"warning,omitempty"`

	Tokens TokenUsage `json:"tokens"`
}
