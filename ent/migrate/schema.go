// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentVersionsColumns holds the columns for the "document_versions" table.
	DocumentVersionsColumns = []*schema.Column{
		{Name: "version_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "produced_from_version", Type: field.TypeInt},
		{Name: "length_chars", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// DocumentVersionsTable holds the schema information for the "document_versions" table.
	DocumentVersionsTable = &schema.Table{
		Name:       "document_versions",
		Columns:    DocumentVersionsColumns,
		PrimaryKey: []*schema.Column{DocumentVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_versions_refinement_sessions_versions",
				Columns:    []*schema.Column{DocumentVersionsColumns[8]},
				RefColumns: []*schema.Column{RefinementSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentversion_session_id_version",
				Unique:  true,
				Columns: []*schema.Column{DocumentVersionsColumns[8], DocumentVersionsColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_refinement_sessions_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{RefinementSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_event_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// IterationRecordsColumns holds the columns for the "iteration_records" table.
	IterationRecordsColumns = []*schema.Column{
		{Name: "iteration_id", Type: field.TypeString, Unique: true},
		{Name: "iteration", Type: field.TypeInt},
		{Name: "input_version", Type: field.TypeInt},
		{Name: "output_version", Type: field.TypeInt, Default: 0},
		{Name: "high_count", Type: field.TypeInt, Default: 0},
		{Name: "medium_count", Type: field.TypeInt, Default: 0},
		{Name: "low_count", Type: field.TypeInt, Default: 0},
		{Name: "delta", Type: field.TypeFloat64, Default: -1},
		{Name: "should_stop", Type: field.TypeBool, Default: false},
		{Name: "decision_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "stopped_by", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// IterationRecordsTable holds the schema information for the "iteration_records" table.
	IterationRecordsTable = &schema.Table{
		Name:       "iteration_records",
		Columns:    IterationRecordsColumns,
		PrimaryKey: []*schema.Column{IterationRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "iteration_records_refinement_sessions_iterations",
				Columns:    []*schema.Column{IterationRecordsColumns[13]},
				RefColumns: []*schema.Column{RefinementSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "iterationrecord_session_id_iteration",
				Unique:  true,
				Columns: []*schema.Column{IterationRecordsColumns[13], IterationRecordsColumns[1]},
			},
		},
	}
	// RefinementSessionsColumns holds the columns for the "refinement_sessions" table.
	RefinementSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "goal", Type: field.TypeString, Size: 2147483647},
		{Name: "document_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "planning", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "config", Type: field.TypeJSON},
		{Name: "participants", Type: field.TypeJSON, Nullable: true},
		{Name: "moderator_focus", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "planner_warning", Type: field.TypeString, Nullable: true},
		{Name: "current_iteration", Type: field.TypeInt, Default: 0},
		{Name: "final_version", Type: field.TypeInt, Nullable: true},
		{Name: "stopped_by", Type: field.TypeString, Nullable: true},
		{Name: "convergence_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "continued_from_iteration", Type: field.TypeInt, Nullable: true},
		{Name: "tokens", Type: field.TypeJSON, Nullable: true},
		{Name: "session_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "convergence_report", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// RefinementSessionsTable holds the schema information for the "refinement_sessions" table.
	RefinementSessionsTable = &schema.Table{
		Name:       "refinement_sessions",
		Columns:    RefinementSessionsColumns,
		PrimaryKey: []*schema.Column{RefinementSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "refinementsession_status",
				Unique:  false,
				Columns: []*schema.Column{RefinementSessionsColumns[4]},
			},
			{
				Name:    "refinementsession_document_type",
				Unique:  false,
				Columns: []*schema.Column{RefinementSessionsColumns[3]},
			},
			{
				Name:    "refinementsession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RefinementSessionsColumns[4], RefinementSessionsColumns[18]},
			},
			{
				Name:    "refinementsession_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{RefinementSessionsColumns[4], RefinementSessionsColumns[22]},
			},
		},
	}
	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "review_id", Type: field.TypeString, Unique: true},
		{Name: "iteration", Type: field.TypeInt},
		{Name: "document_version", Type: field.TypeInt},
		{Name: "reviewer_name", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "issues", Type: field.TypeJSON},
		{Name: "overall_assessment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "high_count", Type: field.TypeInt, Default: 0},
		{Name: "medium_count", Type: field.TypeInt, Default: 0},
		{Name: "low_count", Type: field.TypeInt, Default: 0},
		{Name: "salvaged", Type: field.TypeBool, Default: false},
		{Name: "tokens", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       "reviews",
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reviews_refinement_sessions_reviews",
				Columns:    []*schema.Column{ReviewsColumns[13]},
				RefColumns: []*schema.Column{RefinementSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "review_session_id_iteration",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[13], ReviewsColumns[1]},
			},
			{
				Name:    "review_session_id_document_version",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[13], ReviewsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentVersionsTable,
		EventsTable,
		IterationRecordsTable,
		RefinementSessionsTable,
		ReviewsTable,
	}
)

func init() {
	DocumentVersionsTable.ForeignKeys[0].RefTable = RefinementSessionsTable
	EventsTable.ForeignKeys[0].RefTable = RefinementSessionsTable
	IterationRecordsTable.ForeignKeys[0].RefTable = RefinementSessionsTable
	ReviewsTable.ForeignKeys[0].RefTable = RefinementSessionsTable
}
