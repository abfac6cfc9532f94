// Package records defines the record-store contract the retention engine is
// written against, plus two implementations: EntStore (SQLite via the Ent
// client) and MemoryStore (tests and demos, no database required).
package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/types"
)

// NotFoundError reports that a referenced entity does not exist. It names
// the entity kind and id so callers can say exactly what failed to resolve.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ErrDuplicateAlert is returned by CreateAlert when a pending alert already
// exists for the same member and condition. The store enforces this with a
// unique open-alert key so two concurrent generator runs cannot both create.
var ErrDuplicateAlert = errors.New("pending alert already exists for member and condition")

// ErrAlertClosed is returned by CloseAlert when the alert already left
// pending. Resolved and dismissed are terminal; the original resolution
// time is never rewritten.
var ErrAlertClosed = errors.New("alert is already resolved or dismissed")

// Window bounds a signal query in time. Zero values mean unbounded.
type Window struct {
	Since time.Time
	Until time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.Since.IsZero() && t.Before(w.Since) {
		return false
	}
	if !w.Until.IsZero() && t.After(w.Until) {
		return false
	}
	return true
}

// Store is everything the engine needs from persistence.
//
// Signal readers (attendance, payments, feedback) return results ordered
// most-recent-first and an empty slice when there is no signal; absence of
// signal is a valid, common state, not an error. They fail with NotFoundError
// only when a non-nil member id does not resolve to a member. memberID ==
// uuid.Nil means population scope.
type Store interface {
	// Members (owned by the membership subsystem; read-only here).
	GetMember(ctx context.Context, id uuid.UUID) (types.Member, error)
	ListMembers(ctx context.Context, status types.MemberStatus) ([]types.Member, error)

	// Signal readers.
	ListAttendance(ctx context.Context, memberID uuid.UUID, w Window) ([]types.AttendanceEvent, error)
	LatestAttendance(ctx context.Context, memberID uuid.UUID) (*types.AttendanceEvent, error)
	ListPayments(ctx context.Context, memberID uuid.UUID, w Window) ([]types.PaymentRecord, error)
	ListFeedback(ctx context.Context, memberID uuid.UUID, w Window) ([]types.FeedbackRecord, error)

	// Payment delinquency support. ListUnpaidPaymentsDueBefore returns
	// pending and overdue records with a due date strictly before cutoff;
	// a record stays in the scan set until it is paid.
	// MarkPaymentOverdue applies the one-way pending→overdue transition;
	// changed=false means the record was already overdue (or paid) and
	// nothing was written.
	ListUnpaidPaymentsDueBefore(ctx context.Context, cutoff time.Time) ([]types.PaymentRecord, error)
	MarkPaymentOverdue(ctx context.Context, id uuid.UUID) (changed bool, err error)

	// Risk assessments.
	CreateAssessment(ctx context.Context, a types.RiskAssessment) (types.RiskAssessment, error)
	GetAssessment(ctx context.Context, id uuid.UUID) (types.RiskAssessment, error)
	LatestAssessment(ctx context.Context, memberID uuid.UUID) (types.RiskAssessment, error)
	ListAssessmentsBefore(ctx context.Context, cutoff time.Time) ([]types.RiskAssessment, error)

	// Retention actions.
	CreateAction(ctx context.Context, a types.RetentionAction) (types.RetentionAction, error)
	GetAction(ctx context.Context, id uuid.UUID) (types.RetentionAction, error)
	ListActions(ctx context.Context, memberID uuid.UUID, limit, offset int) ([]types.RetentionAction, error)
	UpdateActionStatus(ctx context.Context, id uuid.UUID, status types.ActionStatus, completedAt *time.Time) (types.RetentionAction, error)

	// Alerts. CreateAlert returns ErrDuplicateAlert when a pending alert for
	// the same member+condition already exists.
	CreateAlert(ctx context.Context, a types.Alert) (types.Alert, error)
	GetAlert(ctx context.Context, id uuid.UUID) (types.Alert, error)
	HasPendingAlert(ctx context.Context, memberID uuid.UUID, cond types.AlertCondition) (bool, error)
	ListAlerts(ctx context.Context, status types.AlertStatus, limit, offset int) ([]types.Alert, error)
	// CloseAlert transitions a pending alert to resolved or dismissed and
	// stamps the resolution time. Returns ErrAlertClosed if the alert has
	// already left pending.
	CloseAlert(ctx context.Context, id uuid.UUID, status types.AlertStatus, at time.Time) (types.Alert, error)

	// Model metrics snapshots (append-only).
	CreateSnapshot(ctx context.Context, s types.MetricsSnapshot) (types.MetricsSnapshot, error)
	LatestSnapshot(ctx context.Context) (types.MetricsSnapshot, error)
}

// Seeder covers the write operations the engine itself never performs;
// members and raw signals belong to other subsystems. Used by demo seeding
// and tests.
type Seeder interface {
	CreateMember(ctx context.Context, m types.Member) (types.Member, error)
	CreateAttendance(ctx context.Context, e types.AttendanceEvent) (types.AttendanceEvent, error)
	CreatePayment(ctx context.Context, p types.PaymentRecord) (types.PaymentRecord, error)
	CreateFeedback(ctx context.Context, f types.FeedbackRecord) (types.FeedbackRecord, error)
}

// openAlertKey is the conditional-write key enforcing at most one pending
// alert per member+condition. Cleared when the alert leaves pending.
func openAlertKey(memberID *uuid.UUID, cond types.AlertCondition) string {
	if memberID == nil {
		return "population:" + string(cond)
	}
	return memberID.String() + ":" + string(cond)
}
