package alerting

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/config"
	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/types"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newGenerator(store *records.MemoryStore) *Generator {
	pol := config.DefaultPolicy()
	return NewGenerator(store, func() config.Policy { return pol }, nil)
}

func seedMember(t *testing.T, store *records.MemoryStore, name string) types.Member {
	t.Helper()
	m, err := store.CreateMember(context.Background(), types.Member{
		ID:         uuid.New(),
		Name:       name,
		Status:     types.MemberActive,
		EnrolledAt: fixedNow.AddDate(-1, 0, 0),
	})
	if err != nil {
		t.Fatalf("seeding member: %v", err)
	}
	return m
}

func seedVisit(t *testing.T, store *records.MemoryStore, memberID uuid.UUID, daysAgo int) {
	t.Helper()
	_, err := store.CreateAttendance(context.Background(), types.AttendanceEvent{
		ID:         uuid.New(),
		MemberID:   memberID,
		OccurredAt: fixedNow.AddDate(0, 0, -daysAgo),
	})
	if err != nil {
		t.Fatalf("seeding attendance: %v", err)
	}
}

func seedPendingPayment(t *testing.T, store *records.MemoryStore, memberID uuid.UUID, daysPastDue int) types.PaymentRecord {
	t.Helper()
	p, err := store.CreatePayment(context.Background(), types.PaymentRecord{
		ID:       uuid.New(),
		MemberID: memberID,
		Amount:   types.Money{AmountCents: 15000, Currency: "USD"},
		DueDate:  fixedNow.AddDate(0, 0, -daysPastDue),
		Status:   types.PaymentPending,
	})
	if err != nil {
		t.Fatalf("seeding payment: %v", err)
	}
	return p
}

func TestRun_InactiveMemberRaisesAlert(t *testing.T) {
	store := records.NewMemoryStore()
	g := newGenerator(store)
	m := seedMember(t, store, "Jane Doe")
	seedVisit(t, store, m.ID, 21)

	res, err := g.Run(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.CreatedCount != 1 {
		t.Fatalf("got %d alerts, want 1: %+v", res.CreatedCount, res.Created)
	}
	a := res.Created[0]
	if a.Condition != types.ConditionInactivity {
		t.Errorf("condition = %q, want %q", a.Condition, types.ConditionInactivity)
	}
	if a.Severity != types.SeverityMedium {
		t.Errorf("severity = %q, want %q", a.Severity, types.SeverityMedium)
	}
	if a.MemberID == nil || *a.MemberID != m.ID {
		t.Errorf("member id = %v, want %s", a.MemberID, m.ID)
	}
	if want := "Member Jane Doe has not attended in 21 days"; a.Message != want {
		t.Errorf("message = %q, want %q", a.Message, want)
	}
}

func TestRun_RecentAttendanceNoAlert(t *testing.T) {
	store := records.NewMemoryStore()
	g := newGenerator(store)
	m := seedMember(t, store, "Sam Lee")
	seedVisit(t, store, m.ID, 5)

	res, err := g.Run(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.CreatedCount != 0 {
		t.Fatalf("got %d alerts, want 0: %+v", res.CreatedCount, res.Created)
	}
}

func TestRun_NoAttendanceOnRecord(t *testing.T) {
	store := records.NewMemoryStore()
	g := newGenerator(store)
	seedMember(t, store, "Ghost Member")

	res, err := g.Run(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.CreatedCount != 1 {
		t.Fatalf("got %d alerts, want 1", res.CreatedCount)
	}
	if want := "Member Ghost Member has no attendance on record"; res.Created[0].Message != want {
		t.Errorf("message = %q, want %q", res.Created[0].Message, want)
	}
}

func TestRun_SecondRunCreatesNothing(t *testing.T) {
	store := records.NewMemoryStore()
	g := newGenerator(store)
	m := seedMember(t, store, "Jane Doe")
	seedVisit(t, store, m.ID, 30)
	seedPendingPayment(t, store, m.ID, 10)

	first, err := g.Run(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.CreatedCount != 2 {
		t.Fatalf("first run created %d alerts, want 2", first.CreatedCount)
	}

	second, err := g.Run(context.Background(), fixedNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.CreatedCount != 0 {
		t.Errorf("second run created %d alerts, want 0: %+v", second.CreatedCount, second.Created)
	}
	if second.Errors != 0 {
		t.Errorf("second run errors = %d, want 0", second.Errors)
	}
}

func TestRun_PaymentDelinquencySeverity(t *testing.T) {
	tests := []struct {
		name       string
		daysPast   int
		wantAlerts int
		wantSev    types.AlertSeverity
	}{
		{"due yesterday is medium", 1, 1, types.SeverityMedium},
		{"at threshold is medium", 7, 1, types.SeverityMedium},
		{"past threshold is high", 8, 1, types.SeverityHigh},
		{"long overdue is high", 30, 1, types.SeverityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := records.NewMemoryStore()
			g := newGenerator(store)
			m := seedMember(t, store, "Pat Kim")
			seedVisit(t, store, m.ID, 1)
			seedPendingPayment(t, store, m.ID, tt.daysPast)

			res, err := g.Run(context.Background(), fixedNow)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.CreatedCount != tt.wantAlerts {
				t.Fatalf("got %d alerts, want %d", res.CreatedCount, tt.wantAlerts)
			}
			a := res.Created[0]
			if a.Condition != types.ConditionPaymentOverdue {
				t.Errorf("condition = %q, want %q", a.Condition, types.ConditionPaymentOverdue)
			}
			if a.Severity != tt.wantSev {
				t.Errorf("severity = %q, want %q", a.Severity, tt.wantSev)
			}
		})
	}
}

func TestRun_TransitionsPaymentToOverdueOnce(t *testing.T) {
	store := records.NewMemoryStore()
	g := newGenerator(store)
	m := seedMember(t, store, "Pat Kim")
	seedVisit(t, store, m.ID, 1)
	p := seedPendingPayment(t, store, m.ID, 10)

	first, err := g.Run(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(first.PaymentsMarkedOverdue) != 1 || first.PaymentsMarkedOverdue[0] != p.ID {
		t.Fatalf("marked overdue = %v, want [%s]", first.PaymentsMarkedOverdue, p.ID)
	}

	payments, err := store.ListPayments(context.Background(), m.ID, records.Window{Until: fixedNow.AddDate(1, 0, 0)})
	if err != nil {
		t.Fatalf("listing payments: %v", err)
	}
	if len(payments) != 1 || payments[0].Status != types.PaymentOverdue {
		t.Fatalf("payment status = %v, want overdue", payments)
	}

	// The record stays in the scan set but the transition is idempotent
	// and the pending alert dedups, so the second run changes nothing.
	second, err := g.Run(context.Background(), fixedNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(second.PaymentsMarkedOverdue) != 0 {
		t.Errorf("second run marked %v, want none", second.PaymentsMarkedOverdue)
	}
	if second.CreatedCount != 0 {
		t.Errorf("second run created %d alerts, want 0", second.CreatedCount)
	}
}

func TestRun_OnePaymentAlertPerMember(t *testing.T) {
	store := records.NewMemoryStore()
	g := newGenerator(store)
	m := seedMember(t, store, "Pat Kim")
	seedVisit(t, store, m.ID, 1)
	seedPendingPayment(t, store, m.ID, 10)
	seedPendingPayment(t, store, m.ID, 20)

	res, err := g.Run(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.CreatedCount != 1 {
		t.Errorf("got %d alerts, want 1 (one per member per condition)", res.CreatedCount)
	}
	if len(res.PaymentsMarkedOverdue) != 2 {
		t.Errorf("marked %d payments overdue, want 2", len(res.PaymentsMarkedOverdue))
	}
}

func TestRun_ReRaisesAfterDismissal(t *testing.T) {
	store := records.NewMemoryStore()
	g := newGenerator(store)
	m := seedMember(t, store, "Jane Doe")
	seedVisit(t, store, m.ID, 30)

	first, err := g.Run(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.CreatedCount != 1 {
		t.Fatalf("first run created %d alerts, want 1", first.CreatedCount)
	}

	dres, err := g.DismissBulk(context.Background(), []uuid.UUID{first.Created[0].ID}, fixedNow)
	if err != nil {
		t.Fatalf("DismissBulk: %v", err)
	}
	if dres.Dismissed != 1 {
		t.Fatalf("dismissed = %d, want 1", dres.Dismissed)
	}

	// The condition still holds, so the next run raises a fresh alert.
	second, err := g.Run(context.Background(), fixedNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.CreatedCount != 1 {
		t.Errorf("second run created %d alerts, want 1", second.CreatedCount)
	}
}

func TestRun_ReRaisesPaymentAlertAfterDismissal(t *testing.T) {
	store := records.NewMemoryStore()
	g := newGenerator(store)
	m := seedMember(t, store, "Pat Kim")
	seedVisit(t, store, m.ID, 1)
	p := seedPendingPayment(t, store, m.ID, 10)

	first, err := g.Run(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.CreatedCount != 1 {
		t.Fatalf("first run created %d alerts, want 1", first.CreatedCount)
	}
	if len(first.PaymentsMarkedOverdue) != 1 {
		t.Fatalf("first run marked %v overdue, want [%s]", first.PaymentsMarkedOverdue, p.ID)
	}

	dres, err := g.DismissBulk(context.Background(), []uuid.UUID{first.Created[0].ID}, fixedNow)
	if err != nil {
		t.Fatalf("DismissBulk: %v", err)
	}
	if dres.Dismissed != 1 {
		t.Fatalf("dismissed = %d, want 1", dres.Dismissed)
	}

	// The bill is still unpaid, so the already-overdue record stays in the
	// scan and the next run raises a fresh alert without re-marking.
	second, err := g.Run(context.Background(), fixedNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.CreatedCount != 1 {
		t.Fatalf("second run created %d alerts, want 1", second.CreatedCount)
	}
	if second.Created[0].Condition != types.ConditionPaymentOverdue {
		t.Errorf("condition = %q, want %q", second.Created[0].Condition, types.ConditionPaymentOverdue)
	}
	if len(second.PaymentsMarkedOverdue) != 0 {
		t.Errorf("second run marked %v, want none", second.PaymentsMarkedOverdue)
	}
}

func TestDismissBulk_SkipsUnknownIDs(t *testing.T) {
	store := records.NewMemoryStore()
	g := newGenerator(store)
	m := seedMember(t, store, "Jane Doe")
	seedVisit(t, store, m.ID, 30)

	run, err := g.Run(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	res, err := g.DismissBulk(context.Background(), []uuid.UUID{uuid.New(), run.Created[0].ID, uuid.New()}, fixedNow)
	if err != nil {
		t.Fatalf("DismissBulk: %v", err)
	}
	if res.Dismissed != 1 {
		t.Errorf("dismissed = %d, want 1", res.Dismissed)
	}
	if res.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", res.Skipped)
	}

	a, err := store.GetAlert(context.Background(), run.Created[0].ID)
	if err != nil {
		t.Fatalf("GetAlert: %v", err)
	}
	if a.Status != types.AlertDismissed {
		t.Errorf("status = %q, want %q", a.Status, types.AlertDismissed)
	}
	if a.ResolvedAt == nil || !a.ResolvedAt.Equal(fixedNow) {
		t.Errorf("resolved at = %v, want %v", a.ResolvedAt, fixedNow)
	}
}

func TestDismissBulk_SkipsResolvedAlerts(t *testing.T) {
	store := records.NewMemoryStore()
	g := newGenerator(store)
	m := seedMember(t, store, "Jane Doe")
	seedVisit(t, store, m.ID, 30)

	run, err := g.Run(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	id := run.Created[0].ID
	if _, err := store.CloseAlert(context.Background(), id, types.AlertResolved, fixedNow); err != nil {
		t.Fatalf("CloseAlert: %v", err)
	}

	res, err := g.DismissBulk(context.Background(), []uuid.UUID{id}, fixedNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("DismissBulk: %v", err)
	}
	if res.Dismissed != 0 || res.Skipped != 1 {
		t.Errorf("dismissed = %d skipped = %d, want 0 and 1", res.Dismissed, res.Skipped)
	}

	a, err := store.GetAlert(context.Background(), id)
	if err != nil {
		t.Fatalf("GetAlert: %v", err)
	}
	if a.Status != types.AlertResolved {
		t.Errorf("status = %q, want %q", a.Status, types.AlertResolved)
	}
	if a.ResolvedAt == nil || !a.ResolvedAt.Equal(fixedNow) {
		t.Errorf("resolved at = %v, want %v (unchanged)", a.ResolvedAt, fixedNow)
	}
}

func TestRun_IsolatesPerMemberFailures(t *testing.T) {
	store := records.NewMemoryStore()
	m1 := seedMember(t, store, "Bad Record")
	m2 := seedMember(t, store, "Good Record")
	seedVisit(t, store, m1.ID, 30)
	seedVisit(t, store, m2.ID, 30)

	faulty := &faultyStore{Store: store, failAttendanceFor: m1.ID}
	pol := config.DefaultPolicy()
	g := NewGenerator(faulty, func() config.Policy { return pol }, nil)

	res, err := g.Run(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Errors != 1 {
		t.Errorf("errors = %d, want 1", res.Errors)
	}
	if res.CreatedCount != 1 {
		t.Fatalf("got %d alerts, want 1 (scan continues past the failure)", res.CreatedCount)
	}
	if res.Created[0].MemberID == nil || *res.Created[0].MemberID != m2.ID {
		t.Errorf("alert member = %v, want %s", res.Created[0].MemberID, m2.ID)
	}
}

// faultyStore injects a failure for one member's attendance lookup.
type faultyStore struct {
	Store
	failAttendanceFor uuid.UUID
}

func (s *faultyStore) LatestAttendance(ctx context.Context, memberID uuid.UUID) (*types.AttendanceEvent, error) {
	if memberID == s.failAttendanceFor {
		return nil, &records.NotFoundError{Entity: "attendance", ID: memberID.String()}
	}
	return s.Store.LatestAttendance(ctx, memberID)
}
