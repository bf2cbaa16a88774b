// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GatewayCallEventsColumns holds the columns for the "gateway_call_events" table.
	GatewayCallEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "operation", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "status", Type: field.TypeInt, Default: 0},
		{Name: "error_kind", Type: field.TypeString, Default: ""},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
	}
	// GatewayCallEventsTable holds the schema information for the "gateway_call_events" table.
	GatewayCallEventsTable = &schema.Table{
		Name:       "gateway_call_events",
		Columns:    GatewayCallEventsColumns,
		PrimaryKey: []*schema.Column{GatewayCallEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gatewaycallevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GatewayCallEventsColumns[1]},
			},
			{
				Name:    "gatewaycallevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GatewayCallEventsColumns[2]},
			},
			{
				Name:    "gatewaycallevent_operation",
				Unique:  false,
				Columns: []*schema.Column{GatewayCallEventsColumns[3]},
			},
			{
				Name:    "gatewaycallevent_success",
				Unique:  false,
				Columns: []*schema.Column{GatewayCallEventsColumns[4]},
			},
		},
	}
	// ReadingSnapshotsColumns holds the columns for the "reading_snapshots" table.
	ReadingSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "unread_count", Type: field.TypeInt, Default: 0},
		{Name: "high_priority_count", Type: field.TypeInt, Default: 0},
	}
	// ReadingSnapshotsTable holds the schema information for the "reading_snapshots" table.
	ReadingSnapshotsTable = &schema.Table{
		Name:       "reading_snapshots",
		Columns:    ReadingSnapshotsColumns,
		PrimaryKey: []*schema.Column{ReadingSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "readingsnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReadingSnapshotsColumns[2]},
			},
			{
				Name:    "readingsnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReadingSnapshotsColumns[1]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "review_id", Type: field.TypeString, Default: ""},
		{Name: "action", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "reinforced", Type: field.TypeBool, Default: false},
		{Name: "reviewed_count", Type: field.TypeInt, Default: 0},
		{Name: "reinforced_count", Type: field.TypeInt, Default: 0},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_review_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4]},
			},
			{
				Name:    "reviewevent_action",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString, Default: ""},
		{Name: "strategy", Type: field.TypeString, Default: ""},
		{Name: "resumed", Type: field.TypeBool, Default: false},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SubmissionEventsColumns holds the columns for the "submission_events" table.
	SubmissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "idempotency_key", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "selected_option", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "error_kind", Type: field.TypeString, Default: ""},
	}
	// SubmissionEventsTable holds the schema information for the "submission_events" table.
	SubmissionEventsTable = &schema.Table{
		Name:       "submission_events",
		Columns:    SubmissionEventsColumns,
		PrimaryKey: []*schema.Column{SubmissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submissionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[1]},
			},
			{
				Name:    "submissionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[2]},
			},
			{
				Name:    "submissionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[3]},
			},
			{
				Name:    "submissionevent_idempotency_key",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[5]},
			},
			{
				Name:    "submissionevent_session_id_question_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[3], SubmissionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GatewayCallEventsTable,
		ReadingSnapshotsTable,
		ReviewEventsTable,
		SessionEventsTable,
		SubmissionEventsTable,
	}
)

func init() {
}
