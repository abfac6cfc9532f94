// Package evaluation scores past churn predictions against observed
// outcomes. A prediction made long enough ago has had time to prove itself:
// the member either left or stayed.
package evaluation

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/event"
	"github.com/gymops/memberpulse/internal/metrics"
	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/types"
)

// decisionBoundary is the canonical churn cut for evaluation. It is fixed
// at 0.5 on purpose, independent of the configurable tier thresholds, so
// evaluation runs stay comparable even when operators move the tiers.
const decisionBoundary = 0.5

// featureImportance is a static illustrative weighting, persisted with
// every snapshot until a real feature-attribution source exists.
var featureImportance = map[string]float64{
	"attendance":   0.40,
	"payment":      0.30,
	"feedback":     0.15,
	"demographics": 0.10,
	"other":        0.05,
}

// Store is what the evaluator needs from persistence.
type Store interface {
	GetMember(ctx context.Context, id uuid.UUID) (types.Member, error)
	ListAssessmentsBefore(ctx context.Context, cutoff time.Time) ([]types.RiskAssessment, error)
	CreateSnapshot(ctx context.Context, s types.MetricsSnapshot) (types.MetricsSnapshot, error)
}

// Evaluator replays historical assessments against current member state.
type Evaluator struct {
	store Store
	bus   event.Publisher
}

func NewEvaluator(store Store, bus event.Publisher) *Evaluator {
	if bus == nil {
		bus = event.NopPublisher{}
	}
	return &Evaluator{store: store, bus: bus}
}

// Evaluate grades every assessment predicted more than windowDays ago.
// Ground truth: a member that is gone or inactive churned. Predicted
// churn: probability strictly above the decision boundary. An empty
// window returns zero metrics and writes nothing; an empty evaluation is
// not meaningful history.
func (e *Evaluator) Evaluate(ctx context.Context, now time.Time, windowDays int) (types.MetricsSnapshot, error) {
	if windowDays <= 0 {
		return types.MetricsSnapshot{}, &types.ValidationError{Field: "days_ago", Reason: "must be a positive number of days"}
	}

	timer := time.Now()
	defer func() { metrics.EvaluationDuration.Observe(time.Since(timer).Seconds()) }()

	cutoff := now.AddDate(0, 0, -windowDays)
	assessments, err := e.store.ListAssessmentsBefore(ctx, cutoff)
	if err != nil {
		return types.MetricsSnapshot{}, fmt.Errorf("listing assessments before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	if len(assessments) == 0 {
		return types.MetricsSnapshot{
			EvaluatedAt:       now,
			FeatureImportance: featureImportance,
		}, nil
	}

	var tp, fp, tn, fn int
	for _, a := range assessments {
		churned, err := e.memberChurned(ctx, a.MemberID)
		if err != nil {
			return types.MetricsSnapshot{}, fmt.Errorf("resolving outcome for member %s: %w", a.MemberID, err)
		}
		predicted := a.ChurnProbability > decisionBoundary
		switch {
		case predicted && churned:
			tp++
		case predicted && !churned:
			fp++
		case !predicted && churned:
			fn++
		default:
			tn++
		}
	}

	total := len(assessments)
	snap := types.MetricsSnapshot{
		EvaluatedAt:       now,
		Accuracy:          float64(tp+tn) / float64(total),
		Precision:         safeRatio(tp, tp+fp),
		Recall:            safeRatio(tp, tp+fn),
		FeatureImportance: featureImportance,
		TotalEvaluated:    total,
	}
	if snap.Precision+snap.Recall > 0 {
		snap.F1 = 2 * snap.Precision * snap.Recall / (snap.Precision + snap.Recall)
	}

	saved, err := e.store.CreateSnapshot(ctx, snap)
	if err != nil {
		return types.MetricsSnapshot{}, fmt.Errorf("persisting metrics snapshot: %w", err)
	}

	log.Printf("evaluation: %d assessments, accuracy=%.3f precision=%.3f recall=%.3f f1=%.3f",
		total, saved.Accuracy, saved.Precision, saved.Recall, saved.F1)
	e.bus.Publish(ctx, event.NewModelEvaluated(saved))
	return saved, nil
}

// memberChurned resolves the ground-truth outcome. A member record that no
// longer resolves counts as churned.
func (e *Evaluator) memberChurned(ctx context.Context, id uuid.UUID) (bool, error) {
	m, err := e.store.GetMember(ctx, id)
	if err != nil {
		if records.IsNotFound(err) {
			return true, nil
		}
		return false, err
	}
	return m.Status == types.MemberInactive, nil
}

func safeRatio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
