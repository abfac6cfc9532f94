// Package seed provides demo data seeding for local development.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/types"
)

// demoStore is the combined surface seeding needs.
type demoStore interface {
	records.Seeder
	ListMembers(ctx context.Context, status types.MemberStatus) ([]types.Member, error)
}

// Demo populates a handful of members with contrasting signal profiles:
// a regular, a fader, a delinquent, and an unhappy member. Idempotent:
// if members already exist it skips seeding.
func Demo(ctx context.Context, store demoStore, now time.Time) error {
	existing, err := store.ListMembers(ctx, "")
	if err != nil {
		return fmt.Errorf("checking members: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("seed: %d members found, skipping demo data", len(existing))
		return nil
	}

	// Regular: frequent visits, everything paid, happy.
	regular, err := member(ctx, store, "Ana Silva", types.MemberActive, now, 400)
	if err != nil {
		return err
	}
	for d := 1; d <= 28; d += 3 {
		if err := visit(ctx, store, regular, now, d); err != nil {
			return err
		}
	}
	if err := payment(ctx, store, regular, now, -20, types.PaymentPaid); err != nil {
		return err
	}
	if err := feedback(ctx, store, regular, now, 5, "Great classes"); err != nil {
		return err
	}

	// Fader: attended regularly, then stopped three weeks ago.
	fader, err := member(ctx, store, "Jonas Weber", types.MemberActive, now, 300)
	if err != nil {
		return err
	}
	for d := 22; d <= 60; d += 4 {
		if err := visit(ctx, store, fader, now, d); err != nil {
			return err
		}
	}
	if err := payment(ctx, store, fader, now, -10, types.PaymentPaid); err != nil {
		return err
	}

	// Delinquent: still visiting, but a payment sits 12 days past due.
	delinquent, err := member(ctx, store, "Maya Okafor", types.MemberActive, now, 200)
	if err != nil {
		return err
	}
	for d := 2; d <= 20; d += 5 {
		if err := visit(ctx, store, delinquent, now, d); err != nil {
			return err
		}
	}
	if err := payment(ctx, store, delinquent, now, 12, types.PaymentPending); err != nil {
		return err
	}

	// Unhappy: attends, pays, complains.
	unhappy, err := member(ctx, store, "Tom Brady-Lin", types.MemberActive, now, 150)
	if err != nil {
		return err
	}
	for d := 3; d <= 25; d += 6 {
		if err := visit(ctx, store, unhappy, now, d); err != nil {
			return err
		}
	}
	if err := payment(ctx, store, unhappy, now, -5, types.PaymentPaid); err != nil {
		return err
	}
	if err := feedback(ctx, store, unhappy, now, 2, "Showers are always cold"); err != nil {
		return err
	}
	if err := feedback(ctx, store, unhappy, now, 2, "Too crowded at peak hours"); err != nil {
		return err
	}

	// Churned: enrolled, faded, left. Gives the evaluator ground truth.
	churned, err := member(ctx, store, "Rita Kovacs", types.MemberInactive, now, 500)
	if err != nil {
		return err
	}
	if err := visit(ctx, store, churned, now, 120); err != nil {
		return err
	}

	log.Printf("seed: demo data created (5 members)")
	return nil
}

func member(ctx context.Context, store demoStore, name string, status types.MemberStatus, now time.Time, enrolledDaysAgo int) (types.Member, error) {
	m, err := store.CreateMember(ctx, types.Member{
		Name:       name,
		Status:     status,
		EnrolledAt: now.AddDate(0, 0, -enrolledDaysAgo),
	})
	if err != nil {
		return types.Member{}, fmt.Errorf("seeding member %s: %w", name, err)
	}
	return m, nil
}

func visit(ctx context.Context, store demoStore, m types.Member, now time.Time, daysAgo int) error {
	_, err := store.CreateAttendance(ctx, types.AttendanceEvent{
		MemberID:   m.ID,
		OccurredAt: now.AddDate(0, 0, -daysAgo),
	})
	if err != nil {
		return fmt.Errorf("seeding attendance for %s: %w", m.Name, err)
	}
	return nil
}

// payment seeds one monthly fee. dueDaysAgo may be negative for a future
// due date.
func payment(ctx context.Context, store demoStore, m types.Member, now time.Time, dueDaysAgo int, status types.PaymentStatus) error {
	p := types.PaymentRecord{
		MemberID: m.ID,
		Amount:   types.Money{AmountCents: 7900, Currency: "USD"},
		DueDate:  now.AddDate(0, 0, -dueDaysAgo),
		Status:   status,
	}
	if status == types.PaymentPaid {
		paid := p.DueDate.AddDate(0, 0, -1)
		p.PaidDate = &paid
	}
	if _, err := store.CreatePayment(ctx, p); err != nil {
		return fmt.Errorf("seeding payment for %s: %w", m.Name, err)
	}
	return nil
}

func feedback(ctx context.Context, store demoStore, m types.Member, now time.Time, rating int, comment string) error {
	_, err := store.CreateFeedback(ctx, types.FeedbackRecord{
		MemberID:    m.ID,
		Rating:      rating,
		Comment:     comment,
		SubmittedAt: now.AddDate(0, 0, -7),
	})
	if err != nil {
		return fmt.Errorf("seeding feedback for %s: %w", m.Name, err)
	}
	return nil
}
