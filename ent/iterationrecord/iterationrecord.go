// Code generated by ent, DO NOT EDIT.

package iterationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the iterationrecord type in the database.
	Label = "iteration_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "iteration_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldIteration holds the string denoting the iteration field in the database.
	FieldIteration = "iteration"
	// FieldInputVersion holds the string denoting the input_version field in the database.
	FieldInputVersion = "input_version"
	// FieldOutputVersion holds the string denoting the output_version field in the database.
	FieldOutputVersion = "output_version"
	// FieldHighCount holds the string denoting the high_count field in the database.
	FieldHighCount = "high_count"
	// FieldMediumCount holds the string denoting the medium_count field in the database.
	FieldMediumCount = "medium_count"
	// FieldLowCount holds the string denoting the low_count field in the database.
	FieldLowCount = "low_count"
	// FieldDelta holds the string denoting the delta field in the database.
	FieldDelta = "delta"
	// FieldShouldStop holds the string denoting the should_stop field in the database.
	FieldShouldStop = "should_stop"
	// FieldDecisionReason holds the string denoting the decision_reason field in the database.
	FieldDecisionReason = "decision_reason"
	// FieldStoppedBy holds the string denoting the stopped_by field in the database.
	FieldStoppedBy = "stopped_by"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// RefinementSessionFieldID holds the string denoting the ID field of the RefinementSession.
	RefinementSessionFieldID = "session_id"
	// Table holds the table name of the iterationrecord in the database.
	Table = "iteration_records"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "iteration_records"
	// SessionInverseTable is the table name for the RefinementSession entity.
	// It exists in this package in order to avoid circular dependency with the "refinementsession" package.
	SessionInverseTable = "refinement_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for iterationrecord fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldIteration,
	FieldInputVersion,
	FieldOutputVersion,
	FieldHighCount,
	FieldMediumCount,
	FieldLowCount,
	FieldDelta,
	FieldShouldStop,
	FieldDecisionReason,
	FieldStoppedBy,
	FieldStartedAt,
	FieldEndedAt,
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
	// DefaultOutputVersion holds the default value on creation for the "output_version" field.
	DefaultOutputVersion int
	// DefaultHighCount holds the default value on creation for the "high_count" field.
	DefaultHighCount int
	// DefaultMediumCount holds the default value on creation for the "medium_count" field.
	DefaultMediumCount int
	// DefaultLowCount holds the default value on creation for the "low_count" field.
	DefaultLowCount int
	// DefaultDelta holds the default value on creation for the "delta" field.
	DefaultDelta float64
	// DefaultShouldStop holds the default value on creation for the "should_stop" field.
	DefaultShouldStop bool
	// DefaultEndedAt holds the default value on creation for the "ended_at" field.
	DefaultEndedAt func() time.Time
)

// OrderOption defines the ordering options for the IterationRecord queries.
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

// ByInputVersion orders the results by the input_version field.
func ByInputVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputVersion, opts...).ToFunc()
}

// ByOutputVersion orders the results by the output_version field.
func ByOutputVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputVersion, opts...).ToFunc()
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

// ByDelta orders the results by the delta field.
func ByDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelta, opts...).ToFunc()
}

// ByShouldStop orders the results by the should_stop field.
func ByShouldStop(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShouldStop, opts...).ToFunc()
}

// ByDecisionReason orders the results by the decision_reason field.
func ByDecisionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionReason, opts...).ToFunc()
}

// ByStoppedBy orders the results by the stopped_by field.
func ByStoppedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoppedBy, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
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
