package risk

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/config"
	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/scoring"
	"github.com/gymops/memberpulse/internal/types"
)

// fakeScorer returns a fixed result, or an error when failing is set.
type fakeScorer struct {
	result  scoring.Result
	failing bool
	calls   int
}

func (f *fakeScorer) ScoreMember(_ context.Context, _ scoring.Snapshot) (scoring.Result, error) {
	f.calls++
	if f.failing {
		return scoring.Result{}, &scoring.Error{Op: "score member", Err: errors.New("boom")}
	}
	return f.result, nil
}

func defaultPolicyFn() config.Policy { return config.DefaultPolicy() }

func seedMember(t *testing.T, store *records.MemoryStore, status types.MemberStatus) types.Member {
	t.Helper()
	m, err := store.CreateMember(context.Background(), types.Member{
		Name:       "Jordan Reyes",
		Status:     status,
		EnrolledAt: fixedNow.AddDate(-1, 0, 0),
	})
	if err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return m
}

func TestAssessor_Assess(t *testing.T) {
	store := records.NewMemoryStore()
	m := seedMember(t, store, types.MemberActive)
	store.CreateAttendance(context.Background(), types.AttendanceEvent{
		MemberID: m.ID, OccurredAt: fixedNow.AddDate(0, 0, -2), SessionType: "gym", DurationMinutes: 60,
	})

	sc := &fakeScorer{result: scoring.Result{Probability: 0.85, Confidence: 0.9, Tier: types.TierLow}}
	assessor := NewAssessor(store, sc, defaultPolicyFn, nil)

	a, err := assessor.Assess(context.Background(), m.ID, fixedNow)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	// Scorer labeled low, but p=0.85 with the 0.70 threshold is canonical high.
	if a.Tier != types.TierHigh {
		t.Errorf("tier = %s, want high", a.Tier)
	}
	if a.ChurnProbability != 0.85 || a.Confidence != 0.9 {
		t.Errorf("probability/confidence = %v/%v", a.ChurnProbability, a.Confidence)
	}

	// Assessment persisted and retrievable as latest.
	latest, err := store.LatestAssessment(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("LatestAssessment: %v", err)
	}
	if latest.ID != a.ID {
		t.Errorf("latest.ID = %s, want %s", latest.ID, a.ID)
	}
}

func TestAssessor_UnknownMember(t *testing.T) {
	store := records.NewMemoryStore()
	assessor := NewAssessor(store, &fakeScorer{}, defaultPolicyFn, nil)

	_, err := assessor.Assess(context.Background(), uuid.New(), fixedNow)
	if !records.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestAssessor_ScoringFailurePropagates(t *testing.T) {
	store := records.NewMemoryStore()
	m := seedMember(t, store, types.MemberActive)

	assessor := NewAssessor(store, &fakeScorer{failing: true}, defaultPolicyFn, nil)
	_, err := assessor.Assess(context.Background(), m.ID, fixedNow)
	if !scoring.IsUnavailable(err) {
		t.Fatalf("want scoring error, got %v", err)
	}
	// No fallback score is fabricated.
	if _, err := store.LatestAssessment(context.Background(), m.ID); !records.IsNotFound(err) {
		t.Errorf("no assessment should be persisted on scoring failure, got %v", err)
	}
}

func TestAssessor_RescoreAllIsolatesFailures(t *testing.T) {
	store := records.NewMemoryStore()
	seedMember(t, store, types.MemberActive)
	seedMember(t, store, types.MemberActive)
	seedMember(t, store, types.MemberInactive) // not rescored

	sc := &fakeScorer{result: scoring.Result{Probability: 0.2, Confidence: 0.8}}
	assessor := NewAssessor(store, sc, defaultPolicyFn, nil)

	res, err := assessor.RescoreAll(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("RescoreAll: %v", err)
	}
	if res.Assessed != 2 || res.Failed != 0 {
		t.Errorf("result = %+v, want 2 assessed / 0 failed", res)
	}
	if sc.calls != 2 {
		t.Errorf("scorer called %d times, want 2 (active members only)", sc.calls)
	}
}

func TestAssessor_SignalWindowPassedToScorer(t *testing.T) {
	store := records.NewMemoryStore()
	m := seedMember(t, store, types.MemberActive)
	// One event inside the 90-day lookback, one outside.
	store.CreateAttendance(context.Background(), types.AttendanceEvent{
		MemberID: m.ID, OccurredAt: fixedNow.AddDate(0, 0, -10), SessionType: "gym", DurationMinutes: 45,
	})
	store.CreateAttendance(context.Background(), types.AttendanceEvent{
		MemberID: m.ID, OccurredAt: fixedNow.AddDate(0, 0, -200), SessionType: "gym", DurationMinutes: 45,
	})

	var got scoring.Snapshot
	capture := scorerFunc(func(_ context.Context, snap scoring.Snapshot) (scoring.Result, error) {
		got = snap
		return scoring.Result{Probability: 0.1, Confidence: 0.5}, nil
	})
	assessor := NewAssessor(store, capture, defaultPolicyFn, nil)
	if _, err := assessor.Assess(context.Background(), m.ID, fixedNow); err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if len(got.Attendance) != 1 {
		t.Errorf("snapshot has %d attendance events, want 1 (window-bounded)", len(got.Attendance))
	}
	if !got.AsOf.Equal(fixedNow) {
		t.Errorf("snapshot AsOf = %v, want fixed now", got.AsOf)
	}
}

type scorerFunc func(ctx context.Context, snap scoring.Snapshot) (scoring.Result, error)

func (f scorerFunc) ScoreMember(ctx context.Context, snap scoring.Snapshot) (scoring.Result, error) {
	return f(ctx, snap)
}
