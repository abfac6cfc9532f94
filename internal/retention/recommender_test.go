package retention

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/types"
)

func assessment(tier types.RiskTier, factors ...types.RiskFactor) types.RiskAssessment {
	return types.RiskAssessment{
		ID:       uuid.New(),
		MemberID: uuid.New(),
		Tier:     tier,
		Factors:  factors,
	}
}

func assertSorted(t *testing.T, recs []Recommendation) {
	t.Helper()
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Priority > recs[i].Priority {
			t.Fatalf("not priority-sorted at %d: %+v", i, recs)
		}
	}
}

func TestRecommend_HighTierWithAttendanceFactor(t *testing.T) {
	a := assessment(types.TierHigh, types.RiskFactor{
		Type: types.FactorAttendance, Description: "no visits in 30 days", Impact: types.ImpactHigh,
	})
	recs := Recommend(a)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3: %+v", len(recs), recs)
	}
	assertSorted(t, recs)

	// Stable order among equal priority: call (tier default, inserted first)
	// before the attendance reminder, then the discount.
	if recs[0].Type != types.ActionCall || recs[0].Priority != 1 {
		t.Errorf("recs[0] = %+v, want call(1)", recs[0])
	}
	if recs[1].Type != types.ActionMessage || recs[1].Priority != 1 {
		t.Errorf("recs[1] = %+v, want attendance reminder(1)", recs[1])
	}
	if recs[2].Type != types.ActionDiscount || recs[2].Priority != 2 {
		t.Errorf("recs[2] = %+v, want discount(2)", recs[2])
	}
}

func TestRecommend_LowTierNoFactors(t *testing.T) {
	recs := Recommend(assessment(types.TierLow))
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want exactly 1: %+v", len(recs), recs)
	}
	if recs[0].Type != types.ActionOther || recs[0].Priority != 3 {
		t.Errorf("recs[0] = %+v, want newsletter(3)", recs[0])
	}
}

func TestRecommend_MediumTierDefaults(t *testing.T) {
	recs := Recommend(assessment(types.TierMedium))
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Type != types.ActionMessage || recs[1].Type != types.ActionFreeClass {
		t.Errorf("medium defaults = %+v", recs)
	}
}

func TestRecommend_FactorPriorities(t *testing.T) {
	tests := []struct {
		factor       types.RiskFactor
		wantPriority int
	}{
		{types.RiskFactor{Type: types.FactorAttendance, Impact: types.ImpactHigh}, 1},
		{types.RiskFactor{Type: types.FactorAttendance, Impact: types.ImpactMedium}, 2},
		{types.RiskFactor{Type: types.FactorPayment, Impact: types.ImpactHigh}, 1},
		{types.RiskFactor{Type: types.FactorPayment, Impact: types.ImpactLow}, 2},
		{types.RiskFactor{Type: types.FactorFeedback, Impact: types.ImpactHigh}, 2},
		{types.RiskFactor{Type: types.FactorFeedback, Impact: types.ImpactMedium}, 3},
	}
	for _, tt := range tests {
		recs := Recommend(assessment(types.TierLow, tt.factor))
		var found bool
		for _, r := range recs {
			if r.Type == types.ActionMessage && r.Priority == tt.wantPriority {
				found = true
			}
		}
		if !found {
			t.Errorf("factor %s/%s: no message action with priority %d in %+v",
				tt.factor.Type, tt.factor.Impact, tt.wantPriority, recs)
		}
	}
}

func TestRecommend_OtherFactorAddsNothing(t *testing.T) {
	recs := Recommend(assessment(types.TierLow, types.RiskFactor{
		Type: types.FactorOther, Description: "short tenure", Impact: types.ImpactLow,
	}))
	if len(recs) != 1 {
		t.Errorf("other-type factor should add no action, got %+v", recs)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	a := assessment(types.TierHigh,
		types.RiskFactor{Type: types.FactorAttendance, Impact: types.ImpactHigh},
		types.RiskFactor{Type: types.FactorPayment, Impact: types.ImpactMedium},
		types.RiskFactor{Type: types.FactorFeedback, Impact: types.ImpactHigh},
	)
	first := Recommend(a)
	for i := 0; i < 5; i++ {
		if got := Recommend(a); !reflect.DeepEqual(first, got) {
			t.Fatalf("run %d differs:\nfirst: %+v\ngot:   %+v", i, first, got)
		}
	}
	assertSorted(t, first)
}
