// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "member_id", Type: field.TypeUUID, Nullable: true},
		{Name: "condition", Type: field.TypeEnum, Enums: []string{"inactivity", "payment_overdue", "manual"}},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}},
		{Name: "message", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "resolved", "dismissed"}, Default: "pending"},
		{Name: "open_key", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alert_status",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[7]},
			},
			{
				Name:    "alert_member_id_condition",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[3], AlertsColumns[4]},
			},
		},
	}
	// AttendanceEventsColumns holds the columns for the "attendance_events" table.
	AttendanceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "member_id", Type: field.TypeUUID},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "session_type", Type: field.TypeString},
		{Name: "duration_minutes", Type: field.TypeInt},
	}
	// AttendanceEventsTable holds the schema information for the "attendance_events" table.
	AttendanceEventsTable = &schema.Table{
		Name:       "attendance_events",
		Columns:    AttendanceEventsColumns,
		PrimaryKey: []*schema.Column{AttendanceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attendanceevent_member_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{AttendanceEventsColumns[3], AttendanceEventsColumns[4]},
			},
		},
	}
	// FeedbackRecordsColumns holds the columns for the "feedback_records" table.
	FeedbackRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "member_id", Type: field.TypeUUID},
		{Name: "rating", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "submitted_at", Type: field.TypeTime},
	}
	// FeedbackRecordsTable holds the schema information for the "feedback_records" table.
	FeedbackRecordsTable = &schema.Table{
		Name:       "feedback_records",
		Columns:    FeedbackRecordsColumns,
		PrimaryKey: []*schema.Column{FeedbackRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedbackrecord_member_id_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbackRecordsColumns[3], FeedbackRecordsColumns[6]},
			},
		},
	}
	// MembersColumns holds the columns for the "members" table.
	MembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive"}, Default: "active"},
		{Name: "enrolled_at", Type: field.TypeTime},
	}
	// MembersTable holds the schema information for the "members" table.
	MembersTable = &schema.Table{
		Name:       "members",
		Columns:    MembersColumns,
		PrimaryKey: []*schema.Column{MembersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "member_status",
				Unique:  false,
				Columns: []*schema.Column{MembersColumns[4]},
			},
		},
	}
	// MetricsSnapshotsColumns holds the columns for the "metrics_snapshots" table.
	MetricsSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "evaluated_at", Type: field.TypeTime},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "precision", Type: field.TypeFloat64},
		{Name: "recall", Type: field.TypeFloat64},
		{Name: "f1", Type: field.TypeFloat64},
		{Name: "feature_importance", Type: field.TypeJSON},
		{Name: "total_evaluated", Type: field.TypeInt},
	}
	// MetricsSnapshotsTable holds the schema information for the "metrics_snapshots" table.
	MetricsSnapshotsTable = &schema.Table{
		Name:       "metrics_snapshots",
		Columns:    MetricsSnapshotsColumns,
		PrimaryKey: []*schema.Column{MetricsSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "metricssnapshot_evaluated_at",
				Unique:  false,
				Columns: []*schema.Column{MetricsSnapshotsColumns[3]},
			},
		},
	}
	// PaymentRecordsColumns holds the columns for the "payment_records" table.
	PaymentRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "member_id", Type: field.TypeUUID},
		{Name: "amount_cents", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "paid_date", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "paid", "overdue"}, Default: "pending"},
	}
	// PaymentRecordsTable holds the schema information for the "payment_records" table.
	PaymentRecordsTable = &schema.Table{
		Name:       "payment_records",
		Columns:    PaymentRecordsColumns,
		PrimaryKey: []*schema.Column{PaymentRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "paymentrecord_member_id_due_date",
				Unique:  false,
				Columns: []*schema.Column{PaymentRecordsColumns[3], PaymentRecordsColumns[6]},
			},
			{
				Name:    "paymentrecord_status_due_date",
				Unique:  false,
				Columns: []*schema.Column{PaymentRecordsColumns[8], PaymentRecordsColumns[6]},
			},
		},
	}
	// RetentionActionsColumns holds the columns for the "retention_actions" table.
	RetentionActionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "member_id", Type: field.TypeUUID},
		{Name: "assessment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"message", "discount", "call", "free_class", "other"}},
		{Name: "description", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "cancelled"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt},
		{Name: "created_by", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// RetentionActionsTable holds the schema information for the "retention_actions" table.
	RetentionActionsTable = &schema.Table{
		Name:       "retention_actions",
		Columns:    RetentionActionsColumns,
		PrimaryKey: []*schema.Column{RetentionActionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "retentionaction_member_id_status",
				Unique:  false,
				Columns: []*schema.Column{RetentionActionsColumns[3], RetentionActionsColumns[7]},
			},
		},
	}
	// RiskAssessmentsColumns holds the columns for the "risk_assessments" table.
	RiskAssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "member_id", Type: field.TypeUUID},
		{Name: "predicted_at", Type: field.TypeTime},
		{Name: "churn_probability", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}},
		{Name: "factors", Type: field.TypeJSON},
	}
	// RiskAssessmentsTable holds the schema information for the "risk_assessments" table.
	RiskAssessmentsTable = &schema.Table{
		Name:       "risk_assessments",
		Columns:    RiskAssessmentsColumns,
		PrimaryKey: []*schema.Column{RiskAssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "riskassessment_member_id_predicted_at",
				Unique:  false,
				Columns: []*schema.Column{RiskAssessmentsColumns[3], RiskAssessmentsColumns[4]},
			},
			{
				Name:    "riskassessment_predicted_at",
				Unique:  false,
				Columns: []*schema.Column{RiskAssessmentsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertsTable,
		AttendanceEventsTable,
		FeedbackRecordsTable,
		MembersTable,
		MetricsSnapshotsTable,
		PaymentRecordsTable,
		RetentionActionsTable,
		RiskAssessmentsTable,
	}
)

func init() {
}
