package evaluation

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/types"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

const windowDays = 30

func seedMember(t *testing.T, store *records.MemoryStore, status types.MemberStatus) types.Member {
	t.Helper()
	m, err := store.CreateMember(context.Background(), types.Member{
		ID:         uuid.New(),
		Name:       "Member " + uuid.NewString()[:8],
		Status:     status,
		EnrolledAt: fixedNow.AddDate(-1, 0, 0),
	})
	if err != nil {
		t.Fatalf("seeding member: %v", err)
	}
	return m
}

// seedPrediction records an assessment old enough to fall inside the
// evaluation window.
func seedPrediction(t *testing.T, store *records.MemoryStore, memberID uuid.UUID, probability float64) {
	t.Helper()
	_, err := store.CreateAssessment(context.Background(), types.RiskAssessment{
		ID:               uuid.New(),
		MemberID:         memberID,
		PredictedAt:      fixedNow.AddDate(0, 0, -(windowDays + 10)),
		ChurnProbability: probability,
		Confidence:       0.9,
		Tier:             types.TierMedium,
	})
	if err != nil {
		t.Fatalf("seeding assessment: %v", err)
	}
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-3
}

func TestEvaluate_EmptyWindowWritesNoSnapshot(t *testing.T) {
	store := records.NewMemoryStore()
	ev := NewEvaluator(store, nil)

	snap, err := ev.Evaluate(context.Background(), fixedNow, windowDays)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if snap.Accuracy != 0 || snap.Precision != 0 || snap.Recall != 0 || snap.F1 != 0 {
		t.Errorf("metrics = %+v, want all zero", snap)
	}
	if snap.TotalEvaluated != 0 {
		t.Errorf("total = %d, want 0", snap.TotalEvaluated)
	}
	if _, err := store.LatestSnapshot(context.Background()); !records.IsNotFound(err) {
		t.Errorf("LatestSnapshot err = %v, want not found (empty run must not persist)", err)
	}
}

func TestEvaluate_RecentAssessmentsExcluded(t *testing.T) {
	store := records.NewMemoryStore()
	ev := NewEvaluator(store, nil)
	m := seedMember(t, store, types.MemberActive)
	_, err := store.CreateAssessment(context.Background(), types.RiskAssessment{
		ID:               uuid.New(),
		MemberID:         m.ID,
		PredictedAt:      fixedNow.AddDate(0, 0, -5),
		ChurnProbability: 0.9,
	})
	if err != nil {
		t.Fatalf("seeding assessment: %v", err)
	}

	snap, err := ev.Evaluate(context.Background(), fixedNow, windowDays)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if snap.TotalEvaluated != 0 {
		t.Errorf("total = %d, want 0 (prediction too recent to grade)", snap.TotalEvaluated)
	}
}

func TestEvaluate_ConfusionMatrix(t *testing.T) {
	store := records.NewMemoryStore()
	ev := NewEvaluator(store, nil)

	// 6 true positives, 2 false positives, 1 false negative, 1 true negative.
	for i := 0; i < 6; i++ {
		m := seedMember(t, store, types.MemberInactive)
		seedPrediction(t, store, m.ID, 0.8)
	}
	for i := 0; i < 2; i++ {
		m := seedMember(t, store, types.MemberActive)
		seedPrediction(t, store, m.ID, 0.8)
	}
	seedPrediction(t, store, seedMember(t, store, types.MemberInactive).ID, 0.2)
	seedPrediction(t, store, seedMember(t, store, types.MemberActive).ID, 0.2)

	snap, err := ev.Evaluate(context.Background(), fixedNow, windowDays)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if snap.TotalEvaluated != 10 {
		t.Fatalf("total = %d, want 10", snap.TotalEvaluated)
	}
	if !approx(snap.Accuracy, 0.7) {
		t.Errorf("accuracy = %v, want 0.7", snap.Accuracy)
	}
	if !approx(snap.Precision, 0.75) {
		t.Errorf("precision = %v, want 0.75", snap.Precision)
	}
	if !approx(snap.Recall, 6.0/7.0) {
		t.Errorf("recall = %v, want %v", snap.Recall, 6.0/7.0)
	}
	if !approx(snap.F1, 0.8) {
		t.Errorf("f1 = %v, want 0.8", snap.F1)
	}

	persisted, err := store.LatestSnapshot(context.Background())
	if err != nil {
		t.Fatalf("LatestSnapshot: %v", err)
	}
	if persisted.TotalEvaluated != 10 {
		t.Errorf("persisted total = %d, want 10", persisted.TotalEvaluated)
	}
}

func TestEvaluate_MissingMemberCountsAsChurned(t *testing.T) {
	store := records.NewMemoryStore()
	ev := NewEvaluator(store, nil)
	// Assessment for a member record that no longer resolves.
	seedPrediction(t, store, uuid.New(), 0.9)

	snap, err := ev.Evaluate(context.Background(), fixedNow, windowDays)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if snap.TotalEvaluated != 1 {
		t.Fatalf("total = %d, want 1", snap.TotalEvaluated)
	}
	if !approx(snap.Accuracy, 1.0) {
		t.Errorf("accuracy = %v, want 1.0 (deleted member is a correct churn call)", snap.Accuracy)
	}
}

func TestEvaluate_BoundaryProbabilityIsNotChurn(t *testing.T) {
	store := records.NewMemoryStore()
	ev := NewEvaluator(store, nil)
	// Exactly 0.5 sits on the boundary; prediction is "no churn".
	seedPrediction(t, store, seedMember(t, store, types.MemberActive).ID, 0.5)

	snap, err := ev.Evaluate(context.Background(), fixedNow, windowDays)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !approx(snap.Accuracy, 1.0) {
		t.Errorf("accuracy = %v, want 1.0 (true negative)", snap.Accuracy)
	}
	if snap.Precision != 0 || snap.Recall != 0 || snap.F1 != 0 {
		t.Errorf("precision/recall/f1 = %v/%v/%v, want zeros with no positive predictions",
			snap.Precision, snap.Recall, snap.F1)
	}
}

func TestEvaluate_ZeroDenominatorsYieldZeroNotPanic(t *testing.T) {
	store := records.NewMemoryStore()
	ev := NewEvaluator(store, nil)
	// One false negative: churned but predicted safe. TP=0, FP=0.
	seedPrediction(t, store, seedMember(t, store, types.MemberInactive).ID, 0.3)

	snap, err := ev.Evaluate(context.Background(), fixedNow, windowDays)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if snap.Precision != 0 || snap.Recall != 0 || snap.F1 != 0 {
		t.Errorf("precision/recall/f1 = %v/%v/%v, want all 0", snap.Precision, snap.Recall, snap.F1)
	}
	if snap.Accuracy != 0 {
		t.Errorf("accuracy = %v, want 0", snap.Accuracy)
	}
}

func TestEvaluate_FeatureImportanceIsStatic(t *testing.T) {
	store := records.NewMemoryStore()
	ev := NewEvaluator(store, nil)
	seedPrediction(t, store, seedMember(t, store, types.MemberActive).ID, 0.2)

	snap, err := ev.Evaluate(context.Background(), fixedNow, windowDays)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := map[string]float64{
		"attendance": 0.40, "payment": 0.30, "feedback": 0.15,
		"demographics": 0.10, "other": 0.05,
	}
	for k, v := range want {
		if snap.FeatureImportance[k] != v {
			t.Errorf("feature %q = %v, want %v", k, snap.FeatureImportance[k], v)
		}
	}
	var sum float64
	for _, v := range snap.FeatureImportance {
		sum += v
	}
	if sum > 1.0+1e-9 {
		t.Errorf("importance sum = %v, want <= 1", sum)
	}
}

func TestEvaluate_RejectsNonPositiveWindow(t *testing.T) {
	ev := NewEvaluator(records.NewMemoryStore(), nil)
	_, err := ev.Evaluate(context.Background(), fixedNow, 0)
	var verr *types.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if verr.Field != "days_ago" {
		t.Errorf("field = %q, want days_ago", verr.Field)
	}
}
