// Package event defines the engine's domain events. Events describe intent
// and observation; actually contacting a member is the messaging
// component's job, which consumes these events downstream.
package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/types"
)

// DomainEvent carries the canonical shape of every engine event.
type DomainEvent struct {
	ID         string
	EventType  string
	OccurredAt time.Time
	MemberID   *uuid.UUID // nil for population-level events
	Summary    string
	Payload    json.RawMessage
}

func newID() string { return uuid.New().String() }

func mustJSON(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}

func short(id uuid.UUID) string { return id.String()[:8] }

// ── Risk events ─────────────────────────────────────────────────────────────

// RiskAssessedPayload carries event-specific data for risk_assessed.
type RiskAssessedPayload struct {
	AssessmentID     string             `json:"assessment_id"`
	MemberID         string             `json:"member_id"`
	ChurnProbability float64            `json:"churn_probability"`
	Confidence       float64            `json:"confidence"`
	Tier             types.RiskTier     `json:"risk_tier"`
	Factors          []types.RiskFactor `json:"factors"`
}

func NewRiskAssessed(a types.RiskAssessment) DomainEvent {
	mid := a.MemberID
	return DomainEvent{
		ID:         newID(),
		EventType:  "risk_assessed",
		OccurredAt: a.PredictedAt,
		MemberID:   &mid,
		Summary:    fmt.Sprintf("Member %s assessed %s risk (p=%.2f)", short(a.MemberID), a.Tier, a.ChurnProbability),
		Payload: mustJSON(RiskAssessedPayload{
			AssessmentID:     a.ID.String(),
			MemberID:         a.MemberID.String(),
			ChurnProbability: a.ChurnProbability,
			Confidence:       a.Confidence,
			Tier:             a.Tier,
			Factors:          a.Factors,
		}),
	}
}

// ── Alert events ────────────────────────────────────────────────────────────

// AlertRaisedPayload carries event-specific data for alert_raised.
type AlertRaisedPayload struct {
	AlertID   string               `json:"alert_id"`
	MemberID  string               `json:"member_id,omitempty"`
	Condition types.AlertCondition `json:"condition"`
	Severity  types.AlertSeverity  `json:"severity"`
	Message   string               `json:"message"`
}

func NewAlertRaised(a types.Alert) DomainEvent {
	p := AlertRaisedPayload{
		AlertID:   a.ID.String(),
		Condition: a.Condition,
		Severity:  a.Severity,
		Message:   a.Message,
	}
	if a.MemberID != nil {
		p.MemberID = a.MemberID.String()
	}
	return DomainEvent{
		ID:         newID(),
		EventType:  "alert_raised",
		OccurredAt: a.CreatedAt,
		MemberID:   a.MemberID,
		Summary:    fmt.Sprintf("%s alert (%s): %s", a.Severity, a.Condition, a.Message),
		Payload:    mustJSON(p),
	}
}

// PaymentMarkedOverduePayload carries event-specific data for
// payment_marked_overdue.
type PaymentMarkedOverduePayload struct {
	PaymentID   string      `json:"payment_id"`
	MemberID    string      `json:"member_id"`
	Amount      types.Money `json:"amount"`
	DueDate     time.Time   `json:"due_date"`
	DaysOverdue int         `json:"days_overdue"`
}

func NewPaymentMarkedOverdue(p types.PaymentRecord, daysOverdue int, at time.Time) DomainEvent {
	mid := p.MemberID
	return DomainEvent{
		ID:         newID(),
		EventType:  "payment_marked_overdue",
		OccurredAt: at,
		MemberID:   &mid,
		Summary:    fmt.Sprintf("Payment %s for member %s marked overdue (%d days)", short(p.ID), short(p.MemberID), daysOverdue),
		Payload: mustJSON(PaymentMarkedOverduePayload{
			PaymentID:   p.ID.String(),
			MemberID:    p.MemberID.String(),
			Amount:      p.Amount,
			DueDate:     p.DueDate,
			DaysOverdue: daysOverdue,
		}),
	}
}

// ── Action events ───────────────────────────────────────────────────────────

// ActionPayload carries event-specific data for action_created and
// action_status_changed.
type ActionPayload struct {
	ActionID    string             `json:"action_id"`
	MemberID    string             `json:"member_id"`
	Type        types.ActionType   `json:"action_type"`
	Status      types.ActionStatus `json:"status"`
	Priority    int                `json:"priority"`
	Description string             `json:"description"`
}

func actionPayload(a types.RetentionAction) ActionPayload {
	return ActionPayload{
		ActionID:    a.ID.String(),
		MemberID:    a.MemberID.String(),
		Type:        a.Type,
		Status:      a.Status,
		Priority:    a.Priority,
		Description: a.Description,
	}
}

func NewActionCreated(a types.RetentionAction) DomainEvent {
	mid := a.MemberID
	return DomainEvent{
		ID:         newID(),
		EventType:  "action_created",
		OccurredAt: a.CreatedAt,
		MemberID:   &mid,
		Summary:    fmt.Sprintf("Retention action %s (%s) created for member %s", short(a.ID), a.Type, short(a.MemberID)),
		Payload:    mustJSON(actionPayload(a)),
	}
}

func NewActionStatusChanged(a types.RetentionAction, at time.Time) DomainEvent {
	mid := a.MemberID
	return DomainEvent{
		ID:         newID(),
		EventType:  "action_status_changed",
		OccurredAt: at,
		MemberID:   &mid,
		Summary:    fmt.Sprintf("Retention action %s moved to %s", short(a.ID), a.Status),
		Payload:    mustJSON(actionPayload(a)),
	}
}

// ── Evaluation events ───────────────────────────────────────────────────────

// ModelEvaluatedPayload carries event-specific data for model_evaluated.
type ModelEvaluatedPayload struct {
	Accuracy       float64 `json:"accuracy"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
	TotalEvaluated int     `json:"total_evaluated"`
}

func NewModelEvaluated(s types.MetricsSnapshot) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  "model_evaluated",
		OccurredAt: s.EvaluatedAt,
		Summary: fmt.Sprintf("Model evaluated over %d predictions (accuracy %.2f, f1 %.2f)",
			s.TotalEvaluated, s.Accuracy, s.F1),
		Payload: mustJSON(ModelEvaluatedPayload{
			Accuracy:       s.Accuracy,
			Precision:      s.Precision,
			Recall:         s.Recall,
			F1:             s.F1,
			TotalEvaluated: s.TotalEvaluated,
		}),
	}
}
