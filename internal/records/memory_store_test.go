package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/types"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testMember(t *testing.T, store *MemoryStore, name string) types.Member {
	t.Helper()
	m, err := store.CreateMember(context.Background(), types.Member{
		Name:       name,
		Status:     types.MemberActive,
		EnrolledAt: testNow.AddDate(-1, 0, 0),
	})
	if err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	return m
}

func TestMemoryStore_GetMember_NotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.GetMember(context.Background(), uuid.New())
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	var nfe *NotFoundError
	if !errors.As(err, &nfe) || nfe.Entity != "member" {
		t.Errorf("entity = %v, want member", err)
	}
}

func TestMemoryStore_ListMembers_StatusFilter(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	testMember(t, store, "Alice Active")
	store.CreateMember(ctx, types.Member{Name: "Ivan Inactive", Status: types.MemberInactive})

	active, err := store.ListMembers(ctx, types.MemberActive)
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Alice Active" {
		t.Errorf("active = %+v, want only Alice", active)
	}

	all, err := store.ListMembers(ctx, "")
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all = %d members, want 2", len(all))
	}
}

func TestMemoryStore_SignalReaders_WindowAndOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := testMember(t, store, "Alice")

	for _, daysAgo := range []int{40, 3, 10} {
		store.CreateAttendance(ctx, types.AttendanceEvent{
			MemberID:   m.ID,
			OccurredAt: testNow.AddDate(0, 0, -daysAgo),
		})
	}

	w := Window{Since: testNow.AddDate(0, 0, -30), Until: testNow}
	events, err := store.ListAttendance(ctx, m.ID, w)
	if err != nil {
		t.Fatalf("ListAttendance: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2 (40d-old excluded)", len(events))
	}
	if !events[0].OccurredAt.After(events[1].OccurredAt) {
		t.Errorf("events not newest-first: %v then %v", events[0].OccurredAt, events[1].OccurredAt)
	}
}

func TestMemoryStore_SignalReaders_UnknownMember(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.ListAttendance(context.Background(), uuid.New(), Window{})
	if !IsNotFound(err) {
		t.Errorf("ListAttendance err = %v, want not found", err)
	}
	_, err = store.ListPayments(context.Background(), uuid.New(), Window{})
	if !IsNotFound(err) {
		t.Errorf("ListPayments err = %v, want not found", err)
	}
}

func TestMemoryStore_LatestAttendance_NilWhenNone(t *testing.T) {
	store := NewMemoryStore()
	m := testMember(t, store, "Alice")
	latest, err := store.LatestAttendance(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("LatestAttendance: %v", err)
	}
	if latest != nil {
		t.Errorf("latest = %+v, want nil for member with no events", latest)
	}
}

func TestMemoryStore_UnpaidPaymentsDueBefore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := testMember(t, store, "Alice")

	pending, _ := store.CreatePayment(ctx, types.PaymentRecord{
		MemberID: m.ID,
		DueDate:  testNow.AddDate(0, 0, -10),
		Status:   types.PaymentPending,
	})
	marked, _ := store.CreatePayment(ctx, types.PaymentRecord{
		MemberID: m.ID,
		DueDate:  testNow.AddDate(0, 0, -20),
		Status:   types.PaymentOverdue,
	})
	store.CreatePayment(ctx, types.PaymentRecord{
		MemberID: m.ID,
		DueDate:  testNow.AddDate(0, 0, 10),
		Status:   types.PaymentPending,
	})
	store.CreatePayment(ctx, types.PaymentRecord{
		MemberID: m.ID,
		DueDate:  testNow.AddDate(0, 0, -10),
		Status:   types.PaymentPaid,
	})

	due, err := store.ListUnpaidPaymentsDueBefore(ctx, testNow)
	if err != nil {
		t.Fatalf("ListUnpaidPaymentsDueBefore: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("due = %+v, want the pending and overdue past-due records", due)
	}
	// Oldest due date first.
	if due[0].ID != marked.ID || due[1].ID != pending.ID {
		t.Fatalf("due order = [%s %s], want [%s %s]", due[0].ID, due[1].ID, marked.ID, pending.ID)
	}
}

func TestMemoryStore_MarkPaymentOverdue_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := testMember(t, store, "Alice")
	p, _ := store.CreatePayment(ctx, types.PaymentRecord{
		MemberID: m.ID,
		DueDate:  testNow.AddDate(0, 0, -10),
		Status:   types.PaymentPending,
	})

	changed, err := store.MarkPaymentOverdue(ctx, p.ID)
	if err != nil {
		t.Fatalf("MarkPaymentOverdue: %v", err)
	}
	if !changed {
		t.Error("first mark: changed = false, want true")
	}

	changed, err = store.MarkPaymentOverdue(ctx, p.ID)
	if err != nil {
		t.Fatalf("second MarkPaymentOverdue: %v", err)
	}
	if changed {
		t.Error("second mark: changed = true, want false")
	}
}

func TestMemoryStore_LatestAssessment(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := testMember(t, store, "Alice")

	store.CreateAssessment(ctx, types.RiskAssessment{
		MemberID: m.ID, PredictedAt: testNow.AddDate(0, 0, -10), ChurnProbability: 0.3,
	})
	newest, _ := store.CreateAssessment(ctx, types.RiskAssessment{
		MemberID: m.ID, PredictedAt: testNow.AddDate(0, 0, -1), ChurnProbability: 0.8,
	})

	got, err := store.LatestAssessment(ctx, m.ID)
	if err != nil {
		t.Fatalf("LatestAssessment: %v", err)
	}
	if got.ID != newest.ID {
		t.Errorf("latest = %s (p=%v), want %s", got.ID, got.ChurnProbability, newest.ID)
	}

	if _, err := store.LatestAssessment(ctx, uuid.New()); !IsNotFound(err) {
		t.Errorf("err for member with no assessments = %v, want not found", err)
	}
}

func TestMemoryStore_CreateAlert_DuplicatePending(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := testMember(t, store, "Alice")

	a, err := store.CreateAlert(ctx, types.Alert{
		MemberID:  &m.ID,
		Condition: types.ConditionInactivity,
		Severity:  types.SeverityMedium,
		Message:   "first",
	})
	if err != nil {
		t.Fatalf("CreateAlert: %v", err)
	}
	if a.Status != types.AlertPending {
		t.Errorf("status = %q, want pending", a.Status)
	}

	_, err = store.CreateAlert(ctx, types.Alert{
		MemberID:  &m.ID,
		Condition: types.ConditionInactivity,
		Severity:  types.SeverityMedium,
		Message:   "second",
	})
	if !errors.Is(err, ErrDuplicateAlert) {
		t.Fatalf("err = %v, want ErrDuplicateAlert", err)
	}

	// A different condition for the same member is not a duplicate.
	if _, err := store.CreateAlert(ctx, types.Alert{
		MemberID:  &m.ID,
		Condition: types.ConditionPaymentOverdue,
		Severity:  types.SeverityHigh,
		Message:   "payment",
	}); err != nil {
		t.Fatalf("different condition: %v", err)
	}
}

func TestMemoryStore_CloseAlert_FreesKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := testMember(t, store, "Alice")

	a, _ := store.CreateAlert(ctx, types.Alert{
		MemberID:  &m.ID,
		Condition: types.ConditionInactivity,
		Severity:  types.SeverityMedium,
	})

	open, _ := store.HasPendingAlert(ctx, m.ID, types.ConditionInactivity)
	if !open {
		t.Fatal("HasPendingAlert = false after create, want true")
	}

	closed, err := store.CloseAlert(ctx, a.ID, types.AlertResolved, testNow)
	if err != nil {
		t.Fatalf("CloseAlert: %v", err)
	}
	if closed.Status != types.AlertResolved || closed.ResolvedAt == nil {
		t.Errorf("closed = %+v, want resolved with timestamp", closed)
	}

	open, _ = store.HasPendingAlert(ctx, m.ID, types.ConditionInactivity)
	if open {
		t.Error("HasPendingAlert = true after close, want false")
	}

	// Fresh create for the same member+condition succeeds now.
	if _, err := store.CreateAlert(ctx, types.Alert{
		MemberID:  &m.ID,
		Condition: types.ConditionInactivity,
		Severity:  types.SeverityMedium,
	}); err != nil {
		t.Fatalf("re-create after close: %v", err)
	}
}

func TestMemoryStore_CloseAlert_TerminalStates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := testMember(t, store, "Alice")

	a, _ := store.CreateAlert(ctx, types.Alert{
		MemberID:  &m.ID,
		Condition: types.ConditionInactivity,
		Severity:  types.SeverityMedium,
	})
	if _, err := store.CloseAlert(ctx, a.ID, types.AlertResolved, testNow); err != nil {
		t.Fatalf("CloseAlert: %v", err)
	}

	_, err := store.CloseAlert(ctx, a.ID, types.AlertDismissed, testNow.Add(time.Hour))
	if !errors.Is(err, ErrAlertClosed) {
		t.Fatalf("second close: err = %v, want ErrAlertClosed", err)
	}

	got, err := store.GetAlert(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetAlert: %v", err)
	}
	if got.Status != types.AlertResolved {
		t.Errorf("status = %q, want %q", got.Status, types.AlertResolved)
	}
	if got.ResolvedAt == nil || !got.ResolvedAt.Equal(testNow) {
		t.Errorf("resolved at = %v, want %v (unchanged)", got.ResolvedAt, testNow)
	}
}

func TestMemoryStore_PopulationAlertKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := testMember(t, store, "Alice")

	// Population-level and member-level alerts on the same condition
	// deduplicate independently.
	if _, err := store.CreateAlert(ctx, types.Alert{
		Condition: types.ConditionManual,
		Severity:  types.SeverityLow,
	}); err != nil {
		t.Fatalf("population alert: %v", err)
	}
	if _, err := store.CreateAlert(ctx, types.Alert{
		MemberID:  &m.ID,
		Condition: types.ConditionManual,
		Severity:  types.SeverityLow,
	}); err != nil {
		t.Fatalf("member alert: %v", err)
	}
	_, err := store.CreateAlert(ctx, types.Alert{
		Condition: types.ConditionManual,
		Severity:  types.SeverityLow,
	})
	if !errors.Is(err, ErrDuplicateAlert) {
		t.Errorf("second population alert err = %v, want ErrDuplicateAlert", err)
	}
}

func TestMemoryStore_ListAlerts_Pagination(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i := 0; i < 5; i++ {
		m := testMember(t, store, "Member")
		store.CreateAlert(ctx, types.Alert{
			MemberID:  &m.ID,
			Condition: types.ConditionInactivity,
			Severity:  types.SeverityMedium,
			CreatedAt: testNow.Add(time.Duration(i) * time.Minute),
		})
	}

	page, err := store.ListAlerts(ctx, types.AlertPending, 2, 0)
	if err != nil {
		t.Fatalf("ListAlerts: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("page = %d alerts, want 2", len(page))
	}
	if !page[0].CreatedAt.After(page[1].CreatedAt) {
		t.Error("alerts not newest-first")
	}

	rest, err := store.ListAlerts(ctx, types.AlertPending, 10, 4)
	if err != nil {
		t.Fatalf("ListAlerts offset: %v", err)
	}
	if len(rest) != 1 {
		t.Errorf("rest = %d alerts, want 1", len(rest))
	}
}

func TestMemoryStore_UpdateActionStatus(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := testMember(t, store, "Alice")

	a, _ := store.CreateAction(ctx, types.RetentionAction{
		MemberID:    m.ID,
		Type:        types.ActionCall,
		Description: "Call about renewal",
		Status:      types.ActionPending,
		Priority:    1,
	})

	done := testNow.Add(time.Hour)
	updated, err := store.UpdateActionStatus(ctx, a.ID, types.ActionCompleted, &done)
	if err != nil {
		t.Fatalf("UpdateActionStatus: %v", err)
	}
	if updated.Status != types.ActionCompleted {
		t.Errorf("status = %q, want completed", updated.Status)
	}
	if updated.CompletedAt == nil || !updated.CompletedAt.Equal(done) {
		t.Errorf("completed at = %v, want %v", updated.CompletedAt, done)
	}
}

func TestMemoryStore_LatestSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.LatestSnapshot(ctx); !IsNotFound(err) {
		t.Fatalf("empty store err = %v, want not found", err)
	}

	store.CreateSnapshot(ctx, types.MetricsSnapshot{EvaluatedAt: testNow.AddDate(0, 0, -2), Accuracy: 0.5})
	store.CreateSnapshot(ctx, types.MetricsSnapshot{EvaluatedAt: testNow, Accuracy: 0.9})

	latest, err := store.LatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("LatestSnapshot: %v", err)
	}
	if latest.Accuracy != 0.9 {
		t.Errorf("accuracy = %v, want 0.9 (most recent snapshot)", latest.Accuracy)
	}
}
