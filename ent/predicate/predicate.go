// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Alert is the predicate function for alert builders.
type Alert func(*sql.Selector)

// AttendanceEvent is the predicate function for attendanceevent builders.
type AttendanceEvent func(*sql.Selector)

// FeedbackRecord is the predicate function for feedbackrecord builders.
type FeedbackRecord func(*sql.Selector)

// Member is the predicate function for member builders.
type Member func(*sql.Selector)

// MetricsSnapshot is the predicate function for metricssnapshot builders.
type MetricsSnapshot func(*sql.Selector)

// PaymentRecord is the predicate function for paymentrecord builders.
type PaymentRecord func(*sql.Selector)

// RetentionAction is the predicate function for retentionaction builders.
type RetentionAction func(*sql.Selector)

// RiskAssessment is the predicate function for riskassessment builders.
type RiskAssessment func(*sql.Selector)
