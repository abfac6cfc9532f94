package risk

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/config"
	"github.com/gymops/memberpulse/internal/types"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func visit(daysAgo int) types.AttendanceEvent {
	return types.AttendanceEvent{
		ID:         uuid.New(),
		MemberID:   uuid.New(),
		OccurredAt: fixedNow.AddDate(0, 0, -daysAgo),
	}
}

func unpaidPayment(daysPastDue int) types.PaymentRecord {
	return types.PaymentRecord{
		ID:      uuid.New(),
		Amount:  types.Money{AmountCents: 15000, Currency: "USD"},
		DueDate: fixedNow.AddDate(0, 0, -daysPastDue),
		Status:  types.PaymentPending,
	}
}

func rating(r int) types.FeedbackRecord {
	return types.FeedbackRecord{ID: uuid.New(), Rating: r, SubmittedAt: fixedNow}
}

func findFactor(factors []types.RiskFactor, ft types.FactorType) (types.RiskFactor, bool) {
	for _, f := range factors {
		if f.Type == ft {
			return f, true
		}
	}
	return types.RiskFactor{}, false
}

func TestDeriveFactors_NoSignalsNoFactors(t *testing.T) {
	pol := config.DefaultPolicy()
	// A member with recent visits, paid bills, and no feedback is clean;
	// except attendance, where zero events is itself the strongest signal.
	factors := DeriveFactors(fixedNow, pol, []types.AttendanceEvent{visit(3)}, nil, nil)
	if len(factors) != 0 {
		t.Errorf("got %d factors, want 0: %+v", len(factors), factors)
	}
}

func TestDeriveFactors_NoAttendanceEver(t *testing.T) {
	pol := config.DefaultPolicy()
	factors := DeriveFactors(fixedNow, pol, nil, nil, nil)
	f, ok := findFactor(factors, types.FactorAttendance)
	if !ok {
		t.Fatal("want attendance factor for member with no events")
	}
	if f.Impact != types.ImpactHigh {
		t.Errorf("impact = %s, want high", f.Impact)
	}
}

func TestDeriveFactors_AttendanceGapGrading(t *testing.T) {
	pol := config.DefaultPolicy() // inactivity_days = 14

	factors := DeriveFactors(fixedNow, pol, []types.AttendanceEvent{visit(20)}, nil, nil)
	if f, ok := findFactor(factors, types.FactorAttendance); !ok || f.Impact != types.ImpactMedium {
		t.Errorf("20-day gap: got %+v, want medium attendance factor", factors)
	}

	factors = DeriveFactors(fixedNow, pol, []types.AttendanceEvent{visit(40)}, nil, nil)
	if f, ok := findFactor(factors, types.FactorAttendance); !ok || f.Impact != types.ImpactHigh {
		t.Errorf("40-day gap: got %+v, want high attendance factor", factors)
	}
}

func TestDeriveFactors_Payment(t *testing.T) {
	pol := config.DefaultPolicy() // overdue_high_severity_days = 7

	factors := DeriveFactors(fixedNow, pol, []types.AttendanceEvent{visit(1)},
		[]types.PaymentRecord{unpaidPayment(3)}, nil)
	if f, ok := findFactor(factors, types.FactorPayment); !ok || f.Impact != types.ImpactMedium {
		t.Errorf("3 days past due: got %+v, want medium payment factor", factors)
	}

	factors = DeriveFactors(fixedNow, pol, []types.AttendanceEvent{visit(1)},
		[]types.PaymentRecord{unpaidPayment(10)}, nil)
	if f, ok := findFactor(factors, types.FactorPayment); !ok || f.Impact != types.ImpactHigh {
		t.Errorf("10 days past due: got %+v, want high payment factor", factors)
	}

	// Paid records never contribute.
	paid := unpaidPayment(30)
	paidAt := fixedNow.AddDate(0, 0, -29)
	paid.Status = types.PaymentPaid
	paid.PaidDate = &paidAt
	factors = DeriveFactors(fixedNow, pol, []types.AttendanceEvent{visit(1)},
		[]types.PaymentRecord{paid}, nil)
	if _, ok := findFactor(factors, types.FactorPayment); ok {
		t.Error("paid record should not produce a payment factor")
	}
}

func TestDeriveFactors_Feedback(t *testing.T) {
	pol := config.DefaultPolicy()

	factors := DeriveFactors(fixedNow, pol, []types.AttendanceEvent{visit(1)}, nil,
		[]types.FeedbackRecord{rating(1), rating(2)})
	if f, ok := findFactor(factors, types.FactorFeedback); !ok || f.Impact != types.ImpactHigh {
		t.Errorf("avg 1.5: got %+v, want high feedback factor", factors)
	}

	factors = DeriveFactors(fixedNow, pol, []types.AttendanceEvent{visit(1)}, nil,
		[]types.FeedbackRecord{rating(3), rating(3)})
	if f, ok := findFactor(factors, types.FactorFeedback); !ok || f.Impact != types.ImpactMedium {
		t.Errorf("avg 3.0: got %+v, want medium feedback factor", factors)
	}

	factors = DeriveFactors(fixedNow, pol, []types.AttendanceEvent{visit(1)}, nil,
		[]types.FeedbackRecord{rating(5), rating(4)})
	if _, ok := findFactor(factors, types.FactorFeedback); ok {
		t.Error("happy members should not produce a feedback factor")
	}
}

func TestMergeFactors_Dedupe(t *testing.T) {
	derived := []types.RiskFactor{
		{Type: types.FactorAttendance, Description: "no visits in 20 days", Impact: types.ImpactMedium},
	}
	scored := []types.RiskFactor{
		{Type: types.FactorAttendance, Description: "no visits in 20 days", Impact: types.ImpactHigh},
		{Type: types.FactorOther, Description: "short tenure", Impact: types.ImpactLow},
	}
	merged := mergeFactors(derived, scored)
	if len(merged) != 2 {
		t.Fatalf("got %d factors, want 2: %+v", len(merged), merged)
	}
	// Derived factor wins the duplicate slot and keeps first position.
	if merged[0].Impact != types.ImpactMedium {
		t.Errorf("merged[0].Impact = %s, want medium (derived wins)", merged[0].Impact)
	}
	if merged[1].Type != types.FactorOther {
		t.Errorf("merged[1].Type = %s, want other", merged[1].Type)
	}
}
