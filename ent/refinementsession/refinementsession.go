// Code generated by ent, DO NOT EDIT.

package refinementsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the refinementsession type in the database.
	Label = "refinement_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldGoal holds the string denoting the goal field in the database.
	FieldGoal = "goal"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldParticipants holds the string denoting the participants field in the database.
	FieldParticipants = "participants"
	// FieldModeratorFocus holds the string denoting the moderator_focus field in the database.
	FieldModeratorFocus = "moderator_focus"
	// FieldPlannerWarning holds the string denoting the planner_warning field in the database.
	FieldPlannerWarning = "planner_warning"
	// FieldCurrentIteration holds the string denoting the current_iteration field in the database.
	FieldCurrentIteration = "current_iteration"
	// FieldFinalVersion holds the string denoting the final_version field in the database.
	FieldFinalVersion = "final_version"
	// FieldStoppedBy holds the string denoting the stopped_by field in the database.
	FieldStoppedBy = "stopped_by"
	// FieldConvergenceReason holds the string denoting the convergence_reason field in the database.
	FieldConvergenceReason = "convergence_reason"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldContinuedFromIteration holds the string denoting the continued_from_iteration field in the database.
	FieldContinuedFromIteration = "continued_from_iteration"
	// FieldTokens holds the string denoting the tokens field in the database.
	FieldTokens = "tokens"
	// FieldSessionMetadata holds the string denoting the session_metadata field in the database.
	FieldSessionMetadata = "session_metadata"
	// FieldConvergenceReport holds the string denoting the convergence_report field in the database.
	FieldConvergenceReport = "convergence_report"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// EdgeVersions holds the string denoting the versions edge name in mutations.
	EdgeVersions = "versions"
	// EdgeReviews holds the string denoting the reviews edge name in mutations.
	EdgeReviews = "reviews"
	// EdgeIterations holds the string denoting the iterations edge name in mutations.
	EdgeIterations = "iterations"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// DocumentVersionFieldID holds the string denoting the ID field of the DocumentVersion.
	DocumentVersionFieldID = "version_id"
	// ReviewFieldID holds the string denoting the ID field of the Review.
	ReviewFieldID = "review_id"
	// IterationRecordFieldID holds the string denoting the ID field of the IterationRecord.
	IterationRecordFieldID = "iteration_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "event_id"
	// Table holds the table name of the refinementsession in the database.
	Table = "refinement_sessions"
	// VersionsTable is the table that holds the versions relation/edge.
	VersionsTable = "document_versions"
	// VersionsInverseTable is the table name for the DocumentVersion entity.
	// It exists in this package in order to avoid circular dependency with the "documentversion" package.
	VersionsInverseTable = "document_versions"
	// VersionsColumn is the table column denoting the versions relation/edge.
	VersionsColumn = "session_id"
	// ReviewsTable is the table that holds the reviews relation/edge.
	ReviewsTable = "reviews"
	// ReviewsInverseTable is the table name for the Review entity.
	// It exists in this package in order to avoid circular dependency with the "review" package.
	ReviewsInverseTable = "reviews"
	// ReviewsColumn is the table column denoting the reviews relation/edge.
	ReviewsColumn = "session_id"
	// IterationsTable is the table that holds the iterations relation/edge.
	IterationsTable = "iteration_records"
	// IterationsInverseTable is the table name for the IterationRecord entity.
	// It exists in this package in order to avoid circular dependency with the "iterationrecord" package.
	IterationsInverseTable = "iteration_records"
	// IterationsColumn is the table column denoting the iterations relation/edge.
	IterationsColumn = "session_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "session_id"
)

// Columns holds all SQL columns for refinementsession fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldGoal,
	FieldDocumentType,
	FieldStatus,
	FieldConfig,
	FieldParticipants,
	FieldModeratorFocus,
	FieldPlannerWarning,
	FieldCurrentIteration,
	FieldFinalVersion,
	FieldStoppedBy,
	FieldConvergenceReason,
	FieldErrorMessage,
	FieldContinuedFromIteration,
	FieldTokens,
	FieldSessionMetadata,
	FieldConvergenceReport,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldPodID,
	FieldLastHeartbeatAt,
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
	// DefaultCurrentIteration holds the default value on creation for the "current_iteration" field.
	DefaultCurrentIteration int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusPlanning  Status = "planning"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusPlanning, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("refinementsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RefinementSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByGoal orders the results by the goal field.
func ByGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoal, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByModeratorFocus orders the results by the moderator_focus field.
func ByModeratorFocus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModeratorFocus, opts...).ToFunc()
}

// ByPlannerWarning orders the results by the planner_warning field.
func ByPlannerWarning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlannerWarning, opts...).ToFunc()
}

// ByCurrentIteration orders the results by the current_iteration field.
func ByCurrentIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentIteration, opts...).ToFunc()
}

// ByFinalVersion orders the results by the final_version field.
func ByFinalVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalVersion, opts...).ToFunc()
}

// ByStoppedBy orders the results by the stopped_by field.
func ByStoppedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoppedBy, opts...).ToFunc()
}

// ByConvergenceReason orders the results by the convergence_reason field.
func ByConvergenceReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConvergenceReason, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByContinuedFromIteration orders the results by the continued_from_iteration field.
func ByContinuedFromIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContinuedFromIteration, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByVersionsCount orders the results by versions count.
func ByVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVersionsStep(), opts...)
	}
}

// ByVersions orders the results by versions terms.
func ByVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReviewsCount orders the results by reviews count.
func ByReviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReviewsStep(), opts...)
	}
}

// ByReviews orders the results by reviews terms.
func ByReviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByIterationsCount orders the results by iterations count.
func ByIterationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIterationsStep(), opts...)
	}
}

// ByIterations orders the results by iterations terms.
func ByIterations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIterationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VersionsInverseTable, DocumentVersionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
	)
}
func newReviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReviewsInverseTable, ReviewFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReviewsTable, ReviewsColumn),
	)
}
func newIterationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IterationsInverseTable, IterationRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, IterationsTable, IterationsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
