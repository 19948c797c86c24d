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
	"github.com/roundtable-ai/roundtable/ent/review"
)

// Review is the model entity for the Review schema.
type Review struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// 1-based iteration the review belongs to
	Iteration int `json:"iteration,omitempty"`
	// Version that was reviewed
	DocumentVersion int `json:"document_version,omitempty"`
	// ReviewerName holds the value of the "reviewer_name" field.
	ReviewerName string `json:"reviewer_name,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Structured issue list
	Issues []map[string]interface{} `json:"issues,omitempty"`
	// OverallAssessment holds the value of the "overall_assessment" field.
	OverallAssessment string `json:"overall_assessment,omitempty"`
	// HighCount holds the value of the "high_count" field.
	HighCount int `json:"high_count,omitempty"`
	// MediumCount holds the value of the "medium_count" field.
	MediumCount int `json:"medium_count,omitempty"`
	// LowCount holds the value of the "low_count" field.
	LowCount int `json:"low_count,omitempty"`
	// Output needed a reformat round-trip
	Salvaged bool `json:"salvaged,omitempty"`
	// Tokens holds the value of the "tokens" field.
	Tokens map[string]interface{} `json:"tokens,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReviewQuery when eager-loading is set.
	Edges        ReviewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReviewEdges holds the relations/edges for other nodes in the graph.
type ReviewEdges struct {
	// Session holds the value of the session edge.
	Session *RefinementSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReviewEdges) SessionOrErr() (*RefinementSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: refinementsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Review) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case review.FieldIssues, review.FieldTokens:
			values[i] = new([]byte)
		case review.FieldSalvaged:
			values[i] = new(sql.NullBool)
		case review.FieldIteration, review.FieldDocumentVersion, review.FieldHighCount, review.FieldMediumCount, review.FieldLowCount:
			values[i] = new(sql.NullInt64)
		case review.FieldID, review.FieldSessionID, review.FieldReviewerName, review.FieldModel, review.FieldOverallAssessment:
			values[i] = new(sql.NullString)
		case review.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Review fields.
func (_m *Review) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case review.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case review.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case review.FieldIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration", values[i])
			} else if value.Valid {
				_m.Iteration = int(value.Int64)
			}
		case review.FieldDocumentVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field document_version", values[i])
			} else if value.Valid {
				_m.DocumentVersion = int(value.Int64)
			}
		case review.FieldReviewerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer_name", values[i])
			} else if value.Valid {
				_m.ReviewerName = value.String
			}
		case review.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case review.FieldIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Issues); err != nil {
					return fmt.Errorf("unmarshal field issues: %w", err)
				}
			}
		case review.FieldOverallAssessment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field overall_assessment", values[i])
			} else if value.Valid {
				_m.OverallAssessment = value.String
			}
		case review.FieldHighCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field high_count", values[i])
			} else if value.Valid {
				_m.HighCount = int(value.Int64)
			}
		case review.FieldMediumCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field medium_count", values[i])
			} else if value.Valid {
				_m.MediumCount = int(value.Int64)
			}
		case review.FieldLowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field low_count", values[i])
			} else if value.Valid {
				_m.LowCount = int(value.Int64)
			}
		case review.FieldSalvaged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field salvaged", values[i])
			} else if value.Valid {
				_m.Salvaged = value.Bool
			}
		case review.FieldTokens:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tokens", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tokens); err != nil {
					return fmt.Errorf("unmarshal field tokens: %w", err)
				}
			}
		case review.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Review.
// This includes values selected through modifiers, order, etc.
func (_m *Review) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Review entity.
func (_m *Review) QuerySession() *RefinementSessionQuery {
	return NewReviewClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this Review.
// Note that you need to call Review.Unwrap() before calling this method if this Review
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Review) Update() *ReviewUpdateOne {
	return NewReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Review entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Review) Unwrap() *Review {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Review is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Review) String() string {
	var builder strings.Builder
	builder.WriteString("Review(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iteration))
	builder.WriteString(", ")
	builder.WriteString("document_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentVersion))
	builder.WriteString(", ")
	builder.WriteString("reviewer_name=")
	builder.WriteString(_m.ReviewerName)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.Issues))
	builder.WriteString(", ")
	builder.WriteString("overall_assessment=")
	builder.WriteString(_m.OverallAssessment)
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
	builder.WriteString("salvaged=")
	builder.WriteString(fmt.Sprintf("%v", _m.Salvaged))
	builder.WriteString(", ")
	builder.WriteString("tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tokens))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Reviews is a parsable slice of Review.
type Reviews []*Review
