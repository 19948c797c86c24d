// Code generated by ent, DO NOT EDIT.

package documentversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the documentversion type in the database.
	Label = "document_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "version_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldProducedFromVersion holds the string denoting the produced_from_version field in the database.
	FieldProducedFromVersion = "produced_from_version"
	// FieldLengthChars holds the string denoting the length_chars field in the database.
	FieldLengthChars = "length_chars"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// RefinementSessionFieldID holds the string denoting the ID field of the RefinementSession.
	RefinementSessionFieldID = "session_id"
	// Table holds the table name of the documentversion in the database.
	Table = "document_versions"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "document_versions"
	// SessionInverseTable is the table name for the RefinementSession entity.
	// It exists in this package in order to avoid circular dependency with the "refinementsession" package.
	SessionInverseTable = "refinement_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for documentversion fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldVersion,
	FieldTitle,
	FieldDocumentType,
	FieldContent,
	FieldProducedFromVersion,
	FieldLengthChars,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the DocumentVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByProducedFromVersion orders the results by the produced_from_version field.
func ByProducedFromVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProducedFromVersion, opts...).ToFunc()
}

// ByLengthChars orders the results by the length_chars field.
func ByLengthChars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLengthChars, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, RefinementSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
