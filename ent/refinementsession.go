// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/roundtable-ai/roundtable/ent/refinementsession"
)

// RefinementSession is the model entity for the RefinementSession schema.
type RefinementSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// What the refinement is trying to achieve
	Goal string `json:"goal,omitempty"`
	// e.g. 'prd', 'design doc', 'business plan'
	DocumentType string `json:"document_type,omitempty"`
	// Status holds the value of the "status" field.
	Status refinementsession.Status `json:"status,omitempty"`
	// Effective session config after clamping and defaults
	Config map[string]interface{} `json:"config,omitempty"`
	// Planned panel, set when planning completes
	Participants []map[string]interface{} `json:"participants,omitempty"`
	// ModeratorFocus holds the value of the "moderator_focus" field.
	ModeratorFocus string `json:"moderator_focus,omitempty"`
	// Set when the planner fell back to the generic panel
	PlannerWarning *string `json:"planner_warning,omitempty"`
	// CurrentIteration holds the value of the "current_iteration" field.
	CurrentIteration int `json:"current_iteration,omitempty"`
	// FinalVersion holds the value of the "final_version" field.
	FinalVersion *int `json:"final_version,omitempty"`
	// StoppedBy holds the value of the "stopped_by" field.
	StoppedBy *string `json:"stopped_by,omitempty"`
	// ConvergenceReason holds the value of the "convergence_reason" field.
	ConvergenceReason *string `json:"convergence_reason,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Set when the session was extended past its original cap
	ContinuedFromIteration *int `json:"continued_from_iteration,omitempty"`
	// Per-caller token usage
	Tokens map[string]interface{} `json:"tokens,omitempty"`
	// SessionMetadata holds the value of the "session_metadata" field.
	SessionMetadata map[string]interface{} `json:"session_metadata,omitempty"`
	// Terminal report, written when the session completes
	ConvergenceReport map[string]interface{} `json:"convergence_report,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the session
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RefinementSessionQuery when eager-loading is set.
	Edges        RefinementSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RefinementSessionEdges holds the relations/edges for other nodes in the graph.
type RefinementSessionEdges struct {
	// Versions holds the value of the versions edge.
	Versions []*DocumentVersion `json:"versions,omitempty"`
	// Reviews holds the value of the reviews edge.
	Reviews []*Review `json:"reviews,omitempty"`
	// Iterations holds the value of the iterations edge.
	Iterations []*IterationRecord `json:"iterations,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e RefinementSessionEdges) VersionsOrErr() ([]*DocumentVersion, error) {
	if e.loadedTypes[0] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// ReviewsOrErr returns the Reviews value or an error if the edge
// was not loaded in eager-loading.
func (e RefinementSessionEdges) ReviewsOrErr() ([]*Review, error) {
	if e.loadedTypes[1] {
		return e.Reviews, nil
	}
	return nil, &NotLoadedError{edge: "reviews"}
}

// IterationsOrErr returns the Iterations value or an error if the edge
// was not loaded in eager-loading.
func (e RefinementSessionEdges) IterationsOrErr() ([]*IterationRecord, error) {
	if e.loadedTypes[2] {
		return e.Iterations, nil
	}
	return nil, &NotLoadedError{edge: "iterations"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e RefinementSessionEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[3] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RefinementSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case refinementsession.FieldConfig, refinementsession.FieldParticipants, refinementsession.FieldTokens, refinementsession.FieldSessionMetadata, refinementsession.FieldConvergenceReport:
			values[i] = new([]byte)
		case refinementsession.FieldCurrentIteration, refinementsession.FieldFinalVersion, refinementsession.FieldContinuedFromIteration:
			values[i] = new(sql.NullInt64)
		case refinementsession.FieldID, refinementsession.FieldTitle, refinementsession.FieldGoal, refinementsession.FieldDocumentType, refinementsession.FieldStatus, refinementsession.FieldModeratorFocus, refinementsession.FieldPlannerWarning, refinementsession.FieldStoppedBy, refinementsession.FieldConvergenceReason, refinementsession.FieldErrorMessage, refinementsession.FieldPodID:
			values[i] = new(sql.NullString)
		case refinementsession.FieldCreatedAt, refinementsession.FieldStartedAt, refinementsession.FieldCompletedAt, refinementsession.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RefinementSession fields.
func (_m *RefinementSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case refinementsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case refinementsession.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case refinementsession.FieldGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal", values[i])
			} else if value.Valid {
				_m.Goal = value.String
			}
		case refinementsession.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case refinementsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = refinementsession.Status(value.String)
			}
		case refinementsession.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case refinementsession.FieldParticipants:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field participants", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Participants); err != nil {
					return fmt.Errorf("unmarshal field participants: %w", err)
				}
			}
		case refinementsession.FieldModeratorFocus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field moderator_focus", values[i])
			} else if value.Valid {
				_m.ModeratorFocus = value.String
			}
		case refinementsession.FieldPlannerWarning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field planner_warning", values[i])
			} else if value.Valid {
				_m.PlannerWarning = new(string)
				*_m.PlannerWarning = value.String
			}
		case refinementsession.FieldCurrentIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_iteration", values[i])
			} else if value.Valid {
				_m.CurrentIteration = int(value.Int64)
			}
		case refinementsession.FieldFinalVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field final_version", values[i])
			} else if value.Valid {
				_m.FinalVersion = new(int)
				*_m.FinalVersion = int(value.Int64)
			}
		case refinementsession.FieldStoppedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stopped_by", values[i])
			} else if value.Valid {
				_m.StoppedBy = new(string)
				*_m.StoppedBy = value.String
			}
		case refinementsession.FieldConvergenceReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field convergence_reason", values[i])
			} else if value.Valid {
				_m.ConvergenceReason = new(string)
				*_m.ConvergenceReason = value.String
			}
		case refinementsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case refinementsession.FieldContinuedFromIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field continued_from_iteration", values[i])
			} else if value.Valid {
				_m.ContinuedFromIteration = new(int)
				*_m.ContinuedFromIteration = int(value.Int64)
			}
		case refinementsession.FieldTokens:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tokens", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tokens); err != nil {
					return fmt.Errorf("unmarshal field tokens: %w", err)
				}
			}
		case refinementsession.FieldSessionMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field session_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SessionMetadata); err != nil {
					return fmt.Errorf("unmarshal field session_metadata: %w", err)
				}
			}
		case refinementsession.FieldConvergenceReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field convergence_report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConvergenceReport); err != nil {
					return fmt.Errorf("unmarshal field convergence_report: %w", err)
				}
			}
		case refinementsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case refinementsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case refinementsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case refinementsession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case refinementsession.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RefinementSession.
// This includes values selected through modifiers, order, etc.
func (_m *RefinementSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVersions queries the "versions" edge of the RefinementSession entity.
func (_m *RefinementSession) QueryVersions() *DocumentVersionQuery {
	return NewRefinementSessionClient(_m.config).QueryVersions(_m)
}

// QueryReviews queries the "reviews" edge of the RefinementSession entity.
func (_m *RefinementSession) QueryReviews() *ReviewQuery {
	return NewRefinementSessionClient(_m.config).QueryReviews(_m)
}

// QueryIterations queries the "iterations" edge of the RefinementSession entity.
func (_m *RefinementSession) QueryIterations() *IterationRecordQuery {
	return NewRefinementSessionClient(_m.config).QueryIterations(_m)
}

// QueryEvents queries the "events" edge of the RefinementSession entity.
func (_m *RefinementSession) QueryEvents() *EventQuery {
	return NewRefinementSessionClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this RefinementSession.
// Note that you need to call RefinementSession.Unwrap() before calling this method if this RefinementSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RefinementSession) Update() *RefinementSessionUpdateOne {
	return NewRefinementSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RefinementSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RefinementSession) Unwrap() *RefinementSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RefinementSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RefinementSession) String() string {
	var builder strings.Builder
	builder.WriteString("RefinementSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("goal=")
	builder.WriteString(_m.Goal)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("participants=")
	builder.WriteString(fmt.Sprintf("%v", _m.Participants))
	builder.WriteString(", ")
	builder.WriteString("moderator_focus=")
	builder.WriteString(_m.ModeratorFocus)
	builder.WriteString(", ")
	if v := _m.PlannerWarning; v != nil {
		builder.WriteString("planner_warning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("current_iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentIteration))
	builder.WriteString(", ")
	if v := _m.FinalVersion; v != nil {
		builder.WriteString("final_version=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StoppedBy; v != nil {
		builder.WriteString("stopped_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ConvergenceReason; v != nil {
		builder.WriteString("convergence_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContinuedFromIteration; v != nil {
		builder.WriteString("continued_from_iteration=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tokens))
	builder.WriteString(", ")
	builder.WriteString("session_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionMetadata))
	builder.WriteString(", ")
	builder.WriteString("convergence_report=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConvergenceReport))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// RefinementSessions is a parsable slice of RefinementSession.
type RefinementSessions []*RefinementSession
