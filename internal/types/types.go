// Package types provides the shared domain types of the retention engine.
// Enum-like fields are closed string types with explicit parse functions so
// invalid values are rejected at the boundary instead of propagating as
// opaque strings.
package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidationError reports a malformed input value. It names the offending
// field and the constraint violated so callers can surface a precise 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Money represents a monetary amount using integer cents to eliminate
// floating-point errors.
type Money struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"` // ISO 4217, e.g. "USD"
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", float64(m.AmountCents)/100, m.Currency)
}

// ---------------------------------------------------------------------------
// Enums
// ---------------------------------------------------------------------------

// MemberStatus is the lifecycle status of a member.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
)

// ParseMemberStatus validates a member status string.
func ParseMemberStatus(s string) (MemberStatus, error) {
	switch MemberStatus(s) {
	case MemberActive, MemberInactive:
		return MemberStatus(s), nil
	}
	return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown value %q", s)}
}

// RiskTier is a discretized churn-risk bucket.
type RiskTier string

const (
	TierLow    RiskTier = "low"
	TierMedium RiskTier = "medium"
	TierHigh   RiskTier = "high"
)

// tierRank orders tiers low < medium < high.
var tierRank = map[RiskTier]int{TierLow: 0, TierMedium: 1, TierHigh: 2}

// Rank returns the tier's position in the low < medium < high ordering.
func (t RiskTier) Rank() int { return tierRank[t] }

// ParseRiskTier validates a tier string.
func ParseRiskTier(s string) (RiskTier, error) {
	switch RiskTier(s) {
	case TierLow, TierMedium, TierHigh:
		return RiskTier(s), nil
	}
	return "", &ValidationError{Field: "risk_tier", Reason: fmt.Sprintf("unknown value %q", s)}
}

// FactorType categorizes a risk factor.
type FactorType string

const (
	FactorAttendance FactorType = "attendance"
	FactorPayment    FactorType = "payment"
	FactorFeedback   FactorType = "feedback"
	FactorOther      FactorType = "other"
)

// ParseFactorType validates a factor type string.
func ParseFactorType(s string) (FactorType, error) {
	switch FactorType(s) {
	case FactorAttendance, FactorPayment, FactorFeedback, FactorOther:
		return FactorType(s), nil
	}
	return "", &ValidationError{Field: "factor_type", Reason: fmt.Sprintf("unknown value %q", s)}
}

// Impact is the weight a factor carries in an assessment.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// ParseImpact validates an impact string.
func ParseImpact(s string) (Impact, error) {
	switch Impact(s) {
	case ImpactLow, ImpactMedium, ImpactHigh:
		return Impact(s), nil
	}
	return "", &ValidationError{Field: "impact", Reason: fmt.Sprintf("unknown value %q", s)}
}

// ActionType categorizes a retention action.
type ActionType string

const (
	ActionMessage   ActionType = "message"
	ActionDiscount  ActionType = "discount"
	ActionCall      ActionType = "call"
	ActionFreeClass ActionType = "free_class"
	ActionOther     ActionType = "other"
)

// ParseActionType validates an action type string.
func ParseActionType(s string) (ActionType, error) {
	switch ActionType(s) {
	case ActionMessage, ActionDiscount, ActionCall, ActionFreeClass, ActionOther:
		return ActionType(s), nil
	}
	return "", &ValidationError{Field: "action_type", Reason: fmt.Sprintf("unknown value %q", s)}
}

// ActionStatus is the lifecycle status of a retention action.
// Valid transitions: pending→in_progress→completed, any non-terminal→cancelled.
type ActionStatus string

const (
	ActionPending    ActionStatus = "pending"
	ActionInProgress ActionStatus = "in_progress"
	ActionCompleted  ActionStatus = "completed"
	ActionCancelled  ActionStatus = "cancelled"
)

// ParseActionStatus validates an action status string.
func ParseActionStatus(s string) (ActionStatus, error) {
	switch ActionStatus(s) {
	case ActionPending, ActionInProgress, ActionCompleted, ActionCancelled:
		return ActionStatus(s), nil
	}
	return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown value %q", s)}
}

// PaymentStatus is the state of a payment record.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// AlertCondition identifies the signal source that raised an alert.
type AlertCondition string

const (
	ConditionInactivity     AlertCondition = "inactivity"
	ConditionPaymentOverdue AlertCondition = "payment_overdue"
	ConditionManual         AlertCondition = "manual"
)

// AlertSeverity grades an alert.
type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// ParseAlertSeverity validates a severity string.
func ParseAlertSeverity(s string) (AlertSeverity, error) {
	switch AlertSeverity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return AlertSeverity(s), nil
	}
	return "", &ValidationError{Field: "severity", Reason: fmt.Sprintf("unknown value %q", s)}
}

// AlertStatus is the lifecycle status of an alert.
// pending→resolved and pending→dismissed are both terminal.
type AlertStatus string

const (
	AlertPending   AlertStatus = "pending"
	AlertResolved  AlertStatus = "resolved"
	AlertDismissed AlertStatus = "dismissed"
)

// ParseAlertStatus validates an alert status string.
func ParseAlertStatus(s string) (AlertStatus, error) {
	switch AlertStatus(s) {
	case AlertPending, AlertResolved, AlertDismissed:
		return AlertStatus(s), nil
	}
	return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown value %q", s)}
}

// ---------------------------------------------------------------------------
// Domain records
//
// Plain structs shared by the record-store implementations and the engine.
// The ent-backed store maps these to and from its generated entities; the
// in-memory store holds them directly.
// ---------------------------------------------------------------------------

// Member is owned by the membership subsystem; read-only to this engine.
type Member struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Status     MemberStatus `json:"status"`
	EnrolledAt time.Time    `json:"enrolled_at"`
}

// AttendanceEvent is one gym visit. Append-only.
type AttendanceEvent struct {
	ID              uuid.UUID `json:"id"`
	MemberID        uuid.UUID `json:"member_id"`
	OccurredAt      time.Time `json:"occurred_at"`
	SessionType     string    `json:"session_type"`
	DurationMinutes int       `json:"duration_minutes"`
}

// PaymentRecord is a billing line. The engine reads it and may transition
// status pending→overdue during alert generation.
// Invariant: PaidDate is set iff Status == paid.
type PaymentRecord struct {
	ID       uuid.UUID     `json:"id"`
	MemberID uuid.UUID     `json:"member_id"`
	Amount   Money         `json:"amount"`
	DueDate  time.Time     `json:"due_date"`
	PaidDate *time.Time    `json:"paid_date,omitempty"`
	Status   PaymentStatus `json:"status"`
}

// FeedbackRecord is one member rating. Immutable.
type FeedbackRecord struct {
	ID          uuid.UUID `json:"id"`
	MemberID    uuid.UUID `json:"member_id"`
	Rating      int       `json:"rating"` // 1..5
	Comment     string    `json:"comment,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// RiskFactor is a named, typed explanation for elevated risk. Value object;
// always embedded in a RiskAssessment.
type RiskFactor struct {
	Type        FactorType `json:"type"`
	Description string     `json:"description"`
	Impact      Impact     `json:"impact"`
}

// RiskAssessment is one churn prediction for one member.
type RiskAssessment struct {
	ID               uuid.UUID    `json:"id"`
	MemberID         uuid.UUID    `json:"member_id"`
	PredictedAt      time.Time    `json:"predicted_at"`
	ChurnProbability float64      `json:"churn_probability"` // [0,1]
	Confidence       float64      `json:"confidence"`        // [0,1]
	Tier             RiskTier     `json:"risk_tier"`
	Factors          []RiskFactor `json:"factors"`
}

// RetentionAction is a planned or executed intervention for a member.
type RetentionAction struct {
	ID           uuid.UUID    `json:"id"`
	MemberID     uuid.UUID    `json:"member_id"`
	AssessmentID *uuid.UUID   `json:"assessment_id,omitempty"`
	Type         ActionType   `json:"action_type"`
	Description  string       `json:"description"`
	Status       ActionStatus `json:"status"`
	Priority     int          `json:"priority"` // lower = more urgent
	CreatedBy    string       `json:"created_by"`
	CreatedAt    time.Time    `json:"created_at"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
}

// Alert is an operational alert. MemberID is nil for population-level alerts.
type Alert struct {
	ID         uuid.UUID      `json:"id"`
	MemberID   *uuid.UUID     `json:"member_id,omitempty"`
	Condition  AlertCondition `json:"condition"`
	Severity   AlertSeverity  `json:"severity"`
	Message    string         `json:"message"`
	Status     AlertStatus    `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	ResolvedAt *time.Time     `json:"resolved_at,omitempty"`
}

// MetricsSnapshot is one append-only model-evaluation result.
type MetricsSnapshot struct {
	ID                uuid.UUID          `json:"id"`
	EvaluatedAt       time.Time          `json:"evaluated_at"`
	Accuracy          float64            `json:"accuracy"`
	Precision         float64            `json:"precision"`
	Recall            float64            `json:"recall"`
	F1                float64            `json:"f1"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
	TotalEvaluated    int                `json:"total_evaluated"`
}
