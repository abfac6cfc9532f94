package risk

import (
	"fmt"
	"time"

	"github.com/gymops/memberpulse/internal/config"
	"github.com/gymops/memberpulse/internal/types"
)

// DeriveFactors normalizes raw signal readings into typed risk factors.
// Deterministic for a fixed now and policy; thresholds come from the policy
// rather than ambient clock state so the normalizer is testable with a
// fixed time.
func DeriveFactors(now time.Time, pol config.Policy, attendance []types.AttendanceEvent, payments []types.PaymentRecord, feedback []types.FeedbackRecord) []types.RiskFactor {
	var factors []types.RiskFactor

	if f, ok := attendanceFactor(now, pol, attendance); ok {
		factors = append(factors, f)
	}
	if f, ok := paymentFactor(now, pol, payments); ok {
		factors = append(factors, f)
	}
	if f, ok := feedbackFactor(feedback); ok {
		factors = append(factors, f)
	}
	return factors
}

// attendanceFactor flags attendance gaps. No recorded visit at all is the
// strongest signal; otherwise the gap is graded against the configured
// inactivity threshold.
func attendanceFactor(now time.Time, pol config.Policy, events []types.AttendanceEvent) (types.RiskFactor, bool) {
	if len(events) == 0 {
		return types.RiskFactor{
			Type:        types.FactorAttendance,
			Description: "no attendance on record",
			Impact:      types.ImpactHigh,
		}, true
	}

	// Signal readers return most-recent-first.
	gap := int(now.Sub(events[0].OccurredAt).Hours() / 24)
	switch {
	case gap > 2*pol.InactivityDays:
		return types.RiskFactor{
			Type:        types.FactorAttendance,
			Description: fmt.Sprintf("no visits in %d days", gap),
			Impact:      types.ImpactHigh,
		}, true
	case gap > pol.InactivityDays:
		return types.RiskFactor{
			Type:        types.FactorAttendance,
			Description: fmt.Sprintf("no visits in %d days", gap),
			Impact:      types.ImpactMedium,
		}, true
	}
	return types.RiskFactor{}, false
}

// paymentFactor flags unpaid bills past their due date, whether or not the
// alert generator has flipped them to overdue yet.
func paymentFactor(now time.Time, pol config.Policy, payments []types.PaymentRecord) (types.RiskFactor, bool) {
	unpaid := 0
	maxDays := 0
	for _, p := range payments {
		if p.Status == types.PaymentPaid {
			continue
		}
		days := int(now.Sub(p.DueDate).Hours() / 24)
		if days <= 0 {
			continue
		}
		unpaid++
		if days > maxDays {
			maxDays = days
		}
	}
	if unpaid == 0 {
		return types.RiskFactor{}, false
	}

	impact := types.ImpactMedium
	if unpaid > 1 || maxDays > pol.OverdueHighSeverityDays {
		impact = types.ImpactHigh
	}
	desc := fmt.Sprintf("%d unpaid payment(s), oldest %d days past due", unpaid, maxDays)
	return types.RiskFactor{
		Type:        types.FactorPayment,
		Description: desc,
		Impact:      impact,
	}, true
}

// feedbackFactor grades average rating. Absence of feedback is not a
// factor; absence of signal is a valid state.
func feedbackFactor(feedback []types.FeedbackRecord) (types.RiskFactor, bool) {
	if len(feedback) == 0 {
		return types.RiskFactor{}, false
	}
	sum := 0
	for _, f := range feedback {
		sum += f.Rating
	}
	avg := float64(sum) / float64(len(feedback))

	switch {
	case avg < 2.5:
		return types.RiskFactor{
			Type:        types.FactorFeedback,
			Description: fmt.Sprintf("average rating %.1f across %d responses", avg, len(feedback)),
			Impact:      types.ImpactHigh,
		}, true
	case avg < 3.5:
		return types.RiskFactor{
			Type:        types.FactorFeedback,
			Description: fmt.Sprintf("average rating %.1f across %d responses", avg, len(feedback)),
			Impact:      types.ImpactMedium,
		}, true
	}
	return types.RiskFactor{}, false
}

// mergeFactors appends scorer-supplied factors to the signal-derived set,
// dropping exact duplicates by type+description. Signal-derived factors come
// first so their ordering is stable across runs.
func mergeFactors(derived, scored []types.RiskFactor) []types.RiskFactor {
	seen := make(map[string]bool, len(derived))
	key := func(f types.RiskFactor) string { return string(f.Type) + "|" + f.Description }
	out := make([]types.RiskFactor, 0, len(derived)+len(scored))
	for _, f := range derived {
		seen[key(f)] = true
		out = append(out, f)
	}
	for _, f := range scored {
		if seen[key(f)] {
			continue
		}
		seen[key(f)] = true
		out = append(out, f)
	}
	return out
}
