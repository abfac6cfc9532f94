package risk

import (
	"testing"

	"github.com/gymops/memberpulse/internal/types"
)

var defaultThresholds = Thresholds{High: 0.70, Medium: 0.40}

func TestClassify_Thresholds(t *testing.T) {
	tests := []struct {
		p    float64
		want types.RiskTier
	}{
		{0.0, types.TierLow},
		{0.39, types.TierLow},
		{0.40, types.TierMedium},
		{0.55, types.TierMedium},
		{0.69, types.TierMedium},
		{0.70, types.TierHigh},
		{0.85, types.TierHigh},
		{1.0, types.TierHigh},
	}
	for _, tt := range tests {
		if got := Classify(tt.p, defaultThresholds); got != tt.want {
			t.Errorf("Classify(%.2f) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestClassify_Monotonic(t *testing.T) {
	prev := Classify(0, defaultThresholds)
	for p := 0.0; p <= 1.0; p += 0.01 {
		cur := Classify(p, defaultThresholds)
		if cur.Rank() < prev.Rank() {
			t.Fatalf("tier decreased from %s to %s at p=%.2f", prev, cur, p)
		}
		prev = cur
	}
}

func TestClassify_Idempotent(t *testing.T) {
	for _, p := range []float64{0.1, 0.4, 0.7, 0.99} {
		first := Classify(p, defaultThresholds)
		second := Classify(p, defaultThresholds)
		if first != second {
			t.Errorf("Classify(%.2f) not stable: %s then %s", p, first, second)
		}
	}
}

func TestClassify_ConfigurableThresholds(t *testing.T) {
	strict := Thresholds{High: 0.50, Medium: 0.20}
	if got := Classify(0.55, strict); got != types.TierHigh {
		t.Errorf("Classify(0.55, strict) = %s, want high", got)
	}
	if got := Classify(0.55, defaultThresholds); got != types.TierMedium {
		t.Errorf("Classify(0.55, default) = %s, want medium", got)
	}
}

func TestReconcile_PrefersThresholdTier(t *testing.T) {
	// Scorer says low, thresholds say high: the threshold tier is canonical.
	if got := Reconcile(types.TierLow, 0.9, defaultThresholds); got != types.TierHigh {
		t.Errorf("Reconcile = %s, want high", got)
	}
	// Agreement passes through.
	if got := Reconcile(types.TierMedium, 0.5, defaultThresholds); got != types.TierMedium {
		t.Errorf("Reconcile = %s, want medium", got)
	}
	// No reported tier is fine.
	if got := Reconcile("", 0.2, defaultThresholds); got != types.TierLow {
		t.Errorf("Reconcile = %s, want low", got)
	}
}
