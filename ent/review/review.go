// Code generated by ent, DO NOT EDIT.

package review

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the review type in the database.
	Label = "review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "review_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldIteration holds the string denoting the iteration field in the database.
	FieldIteration = "iteration"
	// FieldDocumentVersion holds the string denoting the document_version field in the database.
	FieldDocumentVersion = "document_version"
	// FieldReviewerName holds the string denoting the reviewer_name field in the database.
	FieldReviewerName = "reviewer_name"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldIssues holds the string denoting the issues field in the database.
	FieldIssues = "issues"
	// FieldOverallAssessment holds the string denoting the overall_assessment field in the database.
	FieldOverallAssessment = "overall_assessment"
	// FieldHighCount holds the string denoting the high_count field in the database.
	FieldHighCount = "high_count"
	// FieldMediumCount holds the string denoting the medium_count field in the database.
	FieldMediumCount = "medium_count"
	// FieldLowCount holds the string denoting the low_count field in the database.
	FieldLowCount = "low_count"
	// FieldSalvaged holds the string denoting the salvaged field in the database.
	FieldSalvaged = "salvaged"
	// FieldTokens holds the string denoting the tokens field in the database.
	FieldTokens = "tokens"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// RefinementSessionFieldID holds the string denoting the ID field of the RefinementSession.
	RefinementSessionFieldID = "session_id"
	// Table holds the table name of the review in the database.
	Table = "reviews"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "reviews"
	// SessionInverseTable is the table name for the RefinementSession entity.
	// It exists in this package in order to avoid circular dependency with the "refinementsession" package.
	SessionInverseTable = "refinement_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for review fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldIteration,
	FieldDocumentVersion,
	FieldReviewerName,
	FieldModel,
	FieldIssues,
	FieldOverallAssessment,
	FieldHighCount,
	FieldMediumCount,
	FieldLowCount,
	FieldSalvaged,
	FieldTokens,
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
	// DefaultHighCount holds the default value on creation for the "high_count" field.
	DefaultHighCount int
	// DefaultMediumCount holds the default value on creation for the "medium_count" field.
	DefaultMediumCount int
	// DefaultLowCount holds the default value on creation for the "low_count" field.
	DefaultLowCount int
	// DefaultSalvaged holds the default value on creation for the "salvaged" field.
	DefaultSalvaged bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Review queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByIteration orders the results by the iteration field.
func ByIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIteration, opts...).ToFunc()
}

// ByDocumentVersion orders the results by the document_version field.
func ByDocumentVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentVersion, opts...).ToFunc()
}

// ByReviewerName orders the results by the reviewer_name field.
func ByReviewerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewerName, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByOverallAssessment orders the results by the overall_assessment field.
func ByOverallAssessment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallAssessment, opts...).ToFunc()
}

// ByHighCount orders the results by the high_count field.
func ByHighCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighCount, opts...).ToFunc()
}

// ByMediumCount orders the results by the medium_count field.
func ByMediumCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediumCount, opts...).ToFunc()
}

// ByLowCount orders the results by the low_count field.
func ByLowCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowCount, opts...).ToFunc()
}

// BySalvaged orders the results by the salvaged field.
func BySalvaged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSalvaged, opts...).ToFunc()
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
