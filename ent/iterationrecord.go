// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/roundtable-ai/roundtable/ent/iterationrecord"
	"github.com/roundtable-ai/roundtable/ent/refinementsession"
)

// IterationRecord is the model entity for the IterationRecord schema.
type IterationRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// 1-based, dense per session
	Iteration int `json:"iteration,omitempty"`
	// InputVersion holds the value of the "input_version" field.
	InputVersion int `json:"input_version,omitempty"`
	// 0 when the iteration produced no rewrite
	OutputVersion int `json:"output_version,omitempty"`
	// HighCount holds the value of the "high_count" field.
	HighCount int `json:"high_count,omitempty"`
	// MediumCount holds the value of the "medium_count" field.
	MediumCount int `json:"medium_count,omitempty"`
	// LowCount holds the value of the "low_count" field.
	LowCount int `json:"low_count,omitempty"`
	// -1 before any prior rewrite exists
	Delta float64 `json:"delta,omitempty"`
	// ShouldStop holds the value of the "should_stop" field.
	ShouldStop bool `json:"should_stop,omitempty"`
	// DecisionReason holds the value of the "decision_reason" field.
	DecisionReason string `json:"decision_reason,omitempty"`
	// StoppedBy holds the value of the "stopped_by" field.
	StoppedBy *string `json:"stopped_by,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt time.Time `json:"ended_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IterationRecordQuery when eager-loading is set.
	Edges        IterationRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IterationRecordEdges holds the relations/edges for other nodes in the graph.
type IterationRecordEdges struct {
	// Session holds the value of the session edge.
	Session *RefinementSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IterationRecordEdges) SessionOrErr() (*RefinementSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: refinementsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IterationRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case iterationrecord.FieldShouldStop:
			values[i] = new(sql.NullBool)
		case iterationrecord.FieldDelta:
			values[i] = new(sql.NullFloat64)
		case iterationrecord.FieldIteration, iterationrecord.FieldInputVersion, iterationrecord.FieldOutputVersion, iterationrecord.FieldHighCount, iterationrecord.FieldMediumCount, iterationrecord.FieldLowCount:
			values[i] = new(sql.NullInt64)
		case iterationrecord.FieldID, iterationrecord.FieldSessionID, iterationrecord.FieldDecisionReason, iterationrecord.FieldStoppedBy:
			values[i] = new(sql.NullString)
		case iterationrecord.FieldStartedAt, iterationrecord.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IterationRecord fields.
func (_m *IterationRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case iterationrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case iterationrecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case iterationrecord.FieldIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration", values[i])
			} else if value.Valid {
				_m.Iteration = int(value.Int64)
			}
		case iterationrecord.FieldInputVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_version", values[i])
			} else if value.Valid {
				_m.InputVersion = int(value.Int64)
			}
		case iterationrecord.FieldOutputVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_version", values[i])
			} else if value.Valid {
				_m.OutputVersion = int(value.Int64)
			}
		case iterationrecord.FieldHighCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field high_count", values[i])
			} else if value.Valid {
				_m.HighCount = int(value.Int64)
			}
		case iterationrecord.FieldMediumCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field medium_count", values[i])
			} else if value.Valid {
				_m.MediumCount = int(value.Int64)
			}
		case iterationrecord.FieldLowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field low_count", values[i])
			} else if value.Valid {
				_m.LowCount = int(value.Int64)
			}
		case iterationrecord.FieldDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field delta", values[i])
			} else if value.Valid {
				_m.Delta = value.Float64
			}
		case iterationrecord.FieldShouldStop:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field should_stop", values[i])
			} else if value.Valid {
				_m.ShouldStop = value.Bool
			}
		case iterationrecord.FieldDecisionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_reason", values[i])
			} else if value.Valid {
				_m.DecisionReason = value.String
			}
		case iterationrecord.FieldStoppedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stopped_by", values[i])
			} else if value.Valid {
				_m.StoppedBy = new(string)
				*_m.StoppedBy = value.String
			}
		case iterationrecord.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case iterationrecord.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IterationRecord.
// This includes values selected through modifiers, order, etc.
func (_m *IterationRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the IterationRecord entity.
func (_m *IterationRecord) QuerySession() *RefinementSessionQuery {
	return NewIterationRecordClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this IterationRecord.
// Note that you need to call IterationRecord.Unwrap() before calling this method if this IterationRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IterationRecord) Update() *IterationRecordUpdateOne {
	return NewIterationRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IterationRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IterationRecord) Unwrap() *IterationRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IterationRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IterationRecord) String() string {
	var builder strings.Builder
	builder.WriteString("IterationRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iteration))
	builder.WriteString(", ")
	builder.WriteString("input_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputVersion))
	builder.WriteString(", ")
	builder.WriteString("output_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputVersion))
	builder.WriteString(", ")
	builder.WriteString("high_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighCount))
	builder.WriteString(", ")
	builder.WriteString("medium_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MediumCount))
	builder.WriteString(", ")
	builder.WriteString("low_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LowCount))
	builder.WriteString(", ")
	builder.WriteString("delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Delta))
	builder.WriteString(", ")
	builder.WriteString("should_stop=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShouldStop))
	builder.WriteString(", ")
	builder.WriteString("decision_reason=")
	builder.WriteString(_m.DecisionReason)
	builder.WriteString(", ")
	if v := _m.StoppedBy; v != nil {
		builder.WriteString("stopped_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ended_at=")
	builder.WriteString(_m.EndedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IterationRecords is a parsable slice of IterationRecord.
type IterationRecords []*IterationRecord
