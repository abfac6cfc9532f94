package risk

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/config"
	"github.com/gymops/memberpulse/internal/event"
	"github.com/gymops/memberpulse/internal/metrics"
	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/scoring"
	"github.com/gymops/memberpulse/internal/types"
)

// signalLookbackDays bounds the signal window shipped to the scorer.
const signalLookbackDays = 90

// Store is what the assessor needs from persistence.
type Store interface {
	GetMember(ctx context.Context, id uuid.UUID) (types.Member, error)
	ListMembers(ctx context.Context, status types.MemberStatus) ([]types.Member, error)
	ListAttendance(ctx context.Context, memberID uuid.UUID, w records.Window) ([]types.AttendanceEvent, error)
	ListPayments(ctx context.Context, memberID uuid.UUID, w records.Window) ([]types.PaymentRecord, error)
	ListFeedback(ctx context.Context, memberID uuid.UUID, w records.Window) ([]types.FeedbackRecord, error)
	CreateAssessment(ctx context.Context, a types.RiskAssessment) (types.RiskAssessment, error)
}

// Assessor orchestrates scoring one member: read signals, delegate to the
// external scorer, normalize factors, classify, persist.
type Assessor struct {
	store  Store
	scorer scoring.Scorer
	policy func() config.Policy
	bus    event.Publisher
}

// NewAssessor creates an Assessor. policy is a getter so hot-reloaded
// thresholds take effect on the next assessment.
func NewAssessor(store Store, scorer scoring.Scorer, policy func() config.Policy, bus event.Publisher) *Assessor {
	if bus == nil {
		bus = event.NopPublisher{}
	}
	return &Assessor{store: store, scorer: scorer, policy: policy, bus: bus}
}

// Assess scores one member and persists the resulting assessment.
// NotFoundError, scoring errors, and store errors propagate unchanged so
// callers can branch on kind.
func (a *Assessor) Assess(ctx context.Context, memberID uuid.UUID, now time.Time) (types.RiskAssessment, error) {
	m, err := a.store.GetMember(ctx, memberID)
	if err != nil {
		return types.RiskAssessment{}, err
	}

	window := records.Window{Since: now.AddDate(0, 0, -signalLookbackDays)}
	attendance, err := a.store.ListAttendance(ctx, memberID, window)
	if err != nil {
		return types.RiskAssessment{}, err
	}
	payments, err := a.store.ListPayments(ctx, memberID, window)
	if err != nil {
		return types.RiskAssessment{}, err
	}
	feedback, err := a.store.ListFeedback(ctx, memberID, window)
	if err != nil {
		return types.RiskAssessment{}, err
	}

	result, err := a.scorer.ScoreMember(ctx, scoring.Snapshot{
		MemberID:   m.ID,
		Status:     m.Status,
		EnrolledAt: m.EnrolledAt,
		AsOf:       now,
		Attendance: attendance,
		Payments:   payments,
		Feedback:   feedback,
	})
	if err != nil {
		metrics.ScoringFailures.Inc()
		return types.RiskAssessment{}, err
	}

	pol := a.policy()
	th := ThresholdsFromPolicy(pol)
	tier := Reconcile(result.Tier, result.Probability, th)
	factors := mergeFactors(
		DeriveFactors(now, pol, attendance, payments, feedback),
		result.Factors,
	)

	assessment, err := a.store.CreateAssessment(ctx, types.RiskAssessment{
		MemberID:         m.ID,
		PredictedAt:      now,
		ChurnProbability: result.Probability,
		Confidence:       result.Confidence,
		Tier:             tier,
		Factors:          factors,
	})
	if err != nil {
		return types.RiskAssessment{}, err
	}

	metrics.AssessmentsCreated.WithLabelValues(string(tier)).Inc()
	a.bus.Publish(ctx, event.NewRiskAssessed(assessment))
	return assessment, nil
}

// BatchResult summarizes a population re-score.
type BatchResult struct {
	Assessed int `json:"assessed"`
	Failed   int `json:"failed"`
}

// RescoreAll re-scores every active member. Per-member failures are
// isolated and counted; one bad record must not block scoring for the rest
// of the population. Listing the population itself failing aborts the run.
func (a *Assessor) RescoreAll(ctx context.Context, now time.Time) (BatchResult, error) {
	members, err := a.store.ListMembers(ctx, types.MemberActive)
	if err != nil {
		return BatchResult{}, err
	}

	var res BatchResult
	for _, m := range members {
		if _, err := a.Assess(ctx, m.ID, now); err != nil {
			res.Failed++
			log.Printf("risk: rescore member %s: %v", m.ID, err)
			continue
		}
		res.Assessed++
	}
	return res, nil
}
