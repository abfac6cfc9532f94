package types

import (
	"errors"
	"testing"
)

func TestParseRiskTier(t *testing.T) {
	for _, s := range []string{"low", "medium", "high"} {
		tier, err := ParseRiskTier(s)
		if err != nil {
			t.Fatalf("ParseRiskTier(%q) error: %v", s, err)
		}
		if string(tier) != s {
			t.Errorf("ParseRiskTier(%q) = %q", s, tier)
		}
	}

	_, err := ParseRiskTier("critical")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if verr.Field != "risk_tier" {
		t.Errorf("field = %q, want risk_tier", verr.Field)
	}
}

func TestTierOrdering(t *testing.T) {
	if !(TierLow.Rank() < TierMedium.Rank() && TierMedium.Rank() < TierHigh.Rank()) {
		t.Errorf("tier ranks not ordered: low=%d medium=%d high=%d",
			TierLow.Rank(), TierMedium.Rank(), TierHigh.Rank())
	}
}

func TestParseActionType_RejectsUnknown(t *testing.T) {
	if _, err := ParseActionType("carrier_pigeon"); err == nil {
		t.Error("expected error for unknown action type")
	}
	if _, err := ParseActionType("free_class"); err != nil {
		t.Errorf("free_class should parse: %v", err)
	}
}

func TestParseActionStatus_RejectsUnknown(t *testing.T) {
	if _, err := ParseActionStatus("archived"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestParseImpact_RejectsUnknown(t *testing.T) {
	if _, err := ParseImpact("severe"); err == nil {
		t.Error("expected error for unknown impact")
	}
}
