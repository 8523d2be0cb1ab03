package scoring

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{10, TierLow},
		{15, TierLow},
		{20, TierLow},
		{21, TierMedium},
		{28, TierMedium},
		{35, TierMedium},
		{36, TierHigh},
		{38, TierHigh},
		{50, TierHigh},
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestClassifyExhaustive(t *testing.T) {
	for s := MinScore; s <= MaxScore; s++ {
		switch Classify(s) {
		case TierLow, TierMedium, TierHigh:
		default:
			t.Fatalf("Classify(%d) returned an unknown tier", s)
		}
	}
}

func TestTierLabels(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierLow, "Low FOPO"},
		{TierMedium, "Moderate FOPO"},
		{TierHigh, "High FOPO"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		if got := tt.tier.Label(); got != tt.want {
			t.Errorf("Tier(%q).Label() = %q, want %q", tt.tier, got, tt.want)
		}
	}
}

func TestTierGuidancePresent(t *testing.T) {
	for _, tier := range []Tier{TierLow, TierMedium, TierHigh} {
		if tier.Description() == "" {
			t.Errorf("tier %q has no description", tier)
		}
		if len(tier.Suggestions()) == 0 {
			t.Errorf("tier %q has no suggestions", tier)
		}
	}
}
