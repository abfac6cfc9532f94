// Package alerting scans population-wide signals and raises deduplicated
// operational alerts. Re-running the scan creates nothing while a pending
// alert covers the member and condition, enforced both by an
// application-level check and by the store's unique open-alert key (the
// conditional write that protects concurrent runs). Once that alert is
// resolved or dismissed, a still-true condition raises a fresh one on the
// next run.
package alerting

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/config"
	"github.com/gymops/memberpulse/internal/event"
	"github.com/gymops/memberpulse/internal/metrics"
	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/types"
)

// Store is what the generator needs from persistence.
type Store interface {
	GetMember(ctx context.Context, id uuid.UUID) (types.Member, error)
	ListMembers(ctx context.Context, status types.MemberStatus) ([]types.Member, error)
	LatestAttendance(ctx context.Context, memberID uuid.UUID) (*types.AttendanceEvent, error)
	ListUnpaidPaymentsDueBefore(ctx context.Context, cutoff time.Time) ([]types.PaymentRecord, error)
	MarkPaymentOverdue(ctx context.Context, id uuid.UUID) (bool, error)
	CreateAlert(ctx context.Context, a types.Alert) (types.Alert, error)
	HasPendingAlert(ctx context.Context, memberID uuid.UUID, cond types.AlertCondition) (bool, error)
	GetAlert(ctx context.Context, id uuid.UUID) (types.Alert, error)
	CloseAlert(ctx context.Context, id uuid.UUID, status types.AlertStatus, at time.Time) (types.Alert, error)
}

// Generator runs the inactivity and payment-delinquency scans.
type Generator struct {
	store  Store
	policy func() config.Policy
	bus    event.Publisher
}

// NewGenerator creates a Generator. policy is a getter so threshold changes
// apply on the next run.
func NewGenerator(store Store, policy func() config.Policy, bus event.Publisher) *Generator {
	if bus == nil {
		bus = event.NopPublisher{}
	}
	return &Generator{store: store, policy: policy, bus: bus}
}

// Result is one generation run. PaymentsMarkedOverdue makes the write side
// effect of the scan observable instead of burying it in iteration.
type Result struct {
	Created               []types.Alert `json:"created"`
	CreatedCount          int           `json:"created_count"`
	PaymentsMarkedOverdue []uuid.UUID   `json:"payments_marked_overdue"`
	Errors                int           `json:"errors"`
}

// Run executes both conditions against the current population. The two
// scans are independent; their results are concatenated. Per-item failures
// are isolated, logged, and counted; one bad record must not block
// alerting for the rest of the population. Only failing to list the
// population itself aborts the run.
func (g *Generator) Run(ctx context.Context, now time.Time) (Result, error) {
	pol := g.policy()
	var res Result

	if err := g.scanInactivity(ctx, now, pol, &res); err != nil {
		return Result{}, err
	}
	if err := g.scanPaymentDelinquency(ctx, now, pol, &res); err != nil {
		return Result{}, err
	}

	res.CreatedCount = len(res.Created)
	return res, nil
}

func (g *Generator) scanInactivity(ctx context.Context, now time.Time, pol config.Policy, res *Result) error {
	members, err := g.store.ListMembers(ctx, types.MemberActive)
	if err != nil {
		return fmt.Errorf("listing active members: %w", err)
	}

	for _, m := range members {
		latest, err := g.store.LatestAttendance(ctx, m.ID)
		if err != nil {
			res.Errors++
			metrics.GeneratorErrors.Inc()
			log.Printf("alerting: inactivity scan member %s: %v", m.ID, err)
			continue
		}

		var message string
		switch {
		case latest == nil:
			message = fmt.Sprintf("Member %s has no attendance on record", m.Name)
		default:
			gap := daysBetween(latest.OccurredAt, now)
			if gap <= pol.InactivityDays {
				continue
			}
			message = fmt.Sprintf("Member %s has not attended in %d days", m.Name, gap)
		}

		g.raise(ctx, types.Alert{
			MemberID:  ptr(m.ID),
			Condition: types.ConditionInactivity,
			Severity:  types.SeverityMedium,
			Message:   message,
		}, res)
	}
	return nil
}

func (g *Generator) scanPaymentDelinquency(ctx context.Context, now time.Time, pol config.Policy, res *Result) error {
	// Unpaid covers both pending and already-overdue records: a bill stays
	// in the scan set until it is paid, so a dismissed alert comes back on
	// the next run if the member still has not paid.
	unpaid, err := g.store.ListUnpaidPaymentsDueBefore(ctx, now)
	if err != nil {
		return fmt.Errorf("listing unpaid payments: %w", err)
	}

	for _, p := range unpaid {
		days := daysBetween(p.DueDate, now)
		if days <= 0 {
			continue
		}

		m, err := g.store.GetMember(ctx, p.MemberID)
		if err != nil {
			res.Errors++
			metrics.GeneratorErrors.Inc()
			log.Printf("alerting: delinquency scan payment %s: %v", p.ID, err)
			continue
		}

		severity := types.SeverityMedium
		if days > pol.OverdueHighSeverityDays {
			severity = types.SeverityHigh
		}

		g.raise(ctx, types.Alert{
			MemberID:  ptr(m.ID),
			Condition: types.ConditionPaymentOverdue,
			Severity:  severity,
			Message:   fmt.Sprintf("Member %s has a payment of %s overdue by %d days", m.Name, p.Amount, days),
		}, res)

		// The one-way pending→overdue transition. Idempotent (reapplying
		// to an already-overdue record changes nothing) and reported in
		// the result so the side effect stays auditable.
		changed, err := g.store.MarkPaymentOverdue(ctx, p.ID)
		if err != nil {
			res.Errors++
			metrics.GeneratorErrors.Inc()
			log.Printf("alerting: marking payment %s overdue: %v", p.ID, err)
			continue
		}
		if changed {
			res.PaymentsMarkedOverdue = append(res.PaymentsMarkedOverdue, p.ID)
			metrics.PaymentsMarkedOverdue.Inc()
			g.bus.Publish(ctx, event.NewPaymentMarkedOverdue(p, days, now))
		}
	}
	return nil
}

// raise creates the alert unless a pending one already covers the
// member+condition. Losing the create race to a concurrent run surfaces
// as ErrDuplicateAlert and counts as suppression, not failure.
func (g *Generator) raise(ctx context.Context, a types.Alert, res *Result) {
	memberID := uuid.Nil
	if a.MemberID != nil {
		memberID = *a.MemberID
	}

	open, err := g.store.HasPendingAlert(ctx, memberID, a.Condition)
	if err != nil {
		res.Errors++
		metrics.GeneratorErrors.Inc()
		log.Printf("alerting: checking pending alert for %s/%s: %v", memberID, a.Condition, err)
		return
	}
	if open {
		metrics.AlertsSuppressed.WithLabelValues(string(a.Condition)).Inc()
		return
	}

	created, err := g.store.CreateAlert(ctx, a)
	if err != nil {
		if errors.Is(err, records.ErrDuplicateAlert) {
			metrics.AlertsSuppressed.WithLabelValues(string(a.Condition)).Inc()
			return
		}
		res.Errors++
		metrics.GeneratorErrors.Inc()
		log.Printf("alerting: creating %s alert for %s: %v", a.Condition, memberID, err)
		return
	}

	res.Created = append(res.Created, created)
	metrics.AlertsRaised.WithLabelValues(string(created.Condition), string(created.Severity)).Inc()
	g.bus.Publish(ctx, event.NewAlertRaised(created))
}

// DismissResult summarizes a bulk dismiss.
type DismissResult struct {
	Dismissed int `json:"dismissed"`
	Skipped   int `json:"skipped"`
}

// DismissBulk transitions each alert to dismissed, stamping the resolution
// time. Ids that do not resolve to an existing pending alert are silently
// skipped, so alerts already resolved or dismissed keep their state; a
// store failure mid-batch surfaces with the partial counts.
func (g *Generator) DismissBulk(ctx context.Context, ids []uuid.UUID, now time.Time) (DismissResult, error) {
	var res DismissResult
	for _, id := range ids {
		if _, err := g.store.CloseAlert(ctx, id, types.AlertDismissed, now); err != nil {
			if records.IsNotFound(err) || errors.Is(err, records.ErrAlertClosed) {
				res.Skipped++
				continue
			}
			return res, err
		}
		res.Dismissed++
	}
	return res, nil
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func ptr(id uuid.UUID) *uuid.UUID { return &id }
