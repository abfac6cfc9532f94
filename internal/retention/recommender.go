// Package retention derives prioritized retention actions from a risk
// assessment. Recommendation is pure computation; persisting a chosen
// action is a separate, explicit create.
package retention

import (
	"sort"

	"github.com/gymops/memberpulse/internal/types"
)

// Recommendation is a suggested intervention. Priority is ascending:
// lower means more urgent.
type Recommendation struct {
	Type        types.ActionType `json:"action_type"`
	Description string           `json:"description"`
	Priority    int              `json:"priority"`
}

// Recommend builds the ordered action list for an assessment: tier-based
// defaults first, then one action per factor, stable-sorted by priority so
// ties keep insertion order (tier defaults before factor-derived actions).
// Deterministic for identical input.
func Recommend(a types.RiskAssessment) []Recommendation {
	recs := tierDefaults(a.Tier)
	for _, f := range a.Factors {
		if r, ok := factorAction(f); ok {
			recs = append(recs, r)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	return recs
}

func tierDefaults(tier types.RiskTier) []Recommendation {
	switch tier {
	case types.TierHigh:
		return []Recommendation{
			{Type: types.ActionCall, Description: "Personal call from staff to check in and listen", Priority: 1},
			{Type: types.ActionDiscount, Description: "Offer a limited-time membership discount", Priority: 2},
		}
	case types.TierMedium:
		return []Recommendation{
			{Type: types.ActionMessage, Description: "Send a personalized check-in message", Priority: 1},
			{Type: types.ActionFreeClass, Description: "Invite to a free trial class", Priority: 2},
		}
	default:
		return []Recommendation{
			{Type: types.ActionOther, Description: "Include in the monthly newsletter and community updates", Priority: 3},
		}
	}
}

func factorAction(f types.RiskFactor) (Recommendation, bool) {
	switch f.Type {
	case types.FactorAttendance:
		p := 2
		if f.Impact == types.ImpactHigh {
			p = 1
		}
		return Recommendation{
			Type:        types.ActionMessage,
			Description: "Send a reminder about attendance benefits and the class schedule",
			Priority:    p,
		}, true
	case types.FactorPayment:
		p := 2
		if f.Impact == types.ImpactHigh {
			p = 1
		}
		return Recommendation{
			Type:        types.ActionMessage,
			Description: "Send a friendly payment reminder",
			Priority:    p,
		}, true
	case types.FactorFeedback:
		p := 3
		if f.Impact == types.ImpactHigh {
			p = 2
		}
		return Recommendation{
			Type:        types.ActionMessage,
			Description: "Ask for detailed feedback about their recent experience",
			Priority:    p,
		}, true
	}
	return Recommendation{}, false
}
