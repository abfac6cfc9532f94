// Package risk turns raw behavioral signals and external scores into
// churn-risk assessments: typed factors, a threshold-derived tier, and the
// persisted assessment record.
package risk

import (
	"log"

	"github.com/gymops/memberpulse/internal/config"
	"github.com/gymops/memberpulse/internal/metrics"
	"github.com/gymops/memberpulse/internal/types"
)

// Thresholds are the tier cutoffs. Probability p maps to:
// p >= High → high, Medium <= p < High → medium, p < Medium → low.
type Thresholds struct {
	High   float64
	Medium float64
}

// ThresholdsFromPolicy extracts the tier cutoffs from the current policy.
func ThresholdsFromPolicy(p config.Policy) Thresholds {
	return Thresholds{High: p.HighRiskThreshold, Medium: p.MediumRiskThreshold}
}

// Classify maps a churn probability to a risk tier. Monotonic in p under
// fixed thresholds, and trivially idempotent.
func Classify(p float64, t Thresholds) types.RiskTier {
	switch {
	case p >= t.High:
		return types.TierHigh
	case p >= t.Medium:
		return types.TierMedium
	default:
		return types.TierLow
	}
}

// Reconcile returns the canonical tier for an assessment. The
// threshold-derived tier always wins; when an upstream scorer labeled the
// prediction differently the discrepancy is logged and counted, but it is a
// degraded-but-usable input, never an error. All downstream tier-conditional
// logic (action recommendation, alerting) sees only the canonical value.
func Reconcile(reported types.RiskTier, p float64, t Thresholds) types.RiskTier {
	derived := Classify(p, t)
	if reported != "" && reported != derived {
		metrics.TierMismatches.Inc()
		log.Printf("risk: scorer tier %q disagrees with threshold tier %q for p=%.3f, using %q",
			reported, derived, p, derived)
	}
	return derived
}
