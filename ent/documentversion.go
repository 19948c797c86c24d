// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/roundtable-ai/roundtable/ent/documentversion"
	"github.com/roundtable-ai/roundtable/ent/refinementsession"
)

// DocumentVersion is the model entity for the DocumentVersion schema.
type DocumentVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// 1-based, dense per session
	Version int `json:"version,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// 0 for the submitted original
	ProducedFromVersion int `json:"produced_from_version,omitempty"`
	// LengthChars holds the value of the "length_chars" field.
	LengthChars int `json:"length_chars,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentVersionQuery when eager-loading is set.
	Edges        DocumentVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentVersionEdges holds the relations/edges for other nodes in the graph.
type DocumentVersionEdges struct {
	// Session holds the value of the session edge.
	Session *RefinementSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentVersionEdges) SessionOrErr() (*RefinementSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: refinementsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentversion.FieldVersion, documentversion.FieldProducedFromVersion, documentversion.FieldLengthChars:
			values[i] = new(sql.NullInt64)
		case documentversion.FieldID, documentversion.FieldSessionID, documentversion.FieldTitle, documentversion.FieldDocumentType, documentversion.FieldContent:
			values[i] = new(sql.NullString)
		case documentversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentVersion fields.
func (_m *DocumentVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case documentversion.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case documentversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case documentversion.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case documentversion.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case documentversion.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case documentversion.FieldProducedFromVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field produced_from_version", values[i])
			} else if value.Valid {
				_m.ProducedFromVersion = int(value.Int64)
			}
		case documentversion.FieldLengthChars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field length_chars", values[i])
			} else if value.Valid {
				_m.LengthChars = int(value.Int64)
			}
		case documentversion.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentVersion.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the DocumentVersion entity.
func (_m *DocumentVersion) QuerySession() *RefinementSessionQuery {
	return NewDocumentVersionClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this DocumentVersion.
// Note that you need to call DocumentVersion.Unwrap() before calling this method if this DocumentVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentVersion) Update() *DocumentVersionUpdateOne {
	return NewDocumentVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentVersion) Unwrap() *DocumentVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentVersion) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("produced_from_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProducedFromVersion))
	builder.WriteString(", ")
	builder.WriteString("length_chars=")
	builder.WriteString(fmt.Sprintf("%v", _m.LengthChars))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentVersions is a parsable slice of DocumentVersion.
type DocumentVersions []*DocumentVersion
