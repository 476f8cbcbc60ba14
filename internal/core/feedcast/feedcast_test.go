package feedcast

import "testing"

func TestNext(t *testing.T) {
	cases := []struct {
		name      string
		tier      Tier
		out       Outcome
		requested int
		wantTier  Tier
		wantCont  bool
	}{
		{"primary full page", TierPrimary, Outcome{Served: 10}, 10, TierPrimary, false},
		{"primary over-serves", TierPrimary, Outcome{Served: 12}, 10, TierPrimary, false},
		{"primary short page", TierPrimary, Outcome{Served: 4}, 10, TierFallback, true},
		{"primary empty", TierPrimary, Outcome{}, 10, TierFallback, true},
		{"fallback serves one", TierFallback, Outcome{Served: 1}, 10, TierFallback, false},
		{"fallback cycled still terminal", TierFallback, Outcome{Served: 3, Cycled: true}, 10, TierFallback, false},
		{"fallback empty", TierFallback, Outcome{}, 10, TierEmergency, true},
		{"emergency terminal", TierEmergency, Outcome{}, 10, TierEmergency, false},
		{"emergency with items", TierEmergency, Outcome{Served: 2}, 10, TierEmergency, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, cont := Next(tc.tier, tc.out, tc.requested)
			if next != tc.wantTier || cont != tc.wantCont {
				t.Fatalf("Next(%v, %+v) = (%v, %v), want (%v, %v)",
					tc.tier, tc.out, next, cont, tc.wantTier, tc.wantCont)
			}
		})
	}
}

func TestSourceLabels(t *testing.T) {
	if got := TierPrimary.Source(false); got != "primary" {
		t.Errorf("primary source = %q", got)
	}
	if got := TierFallback.Source(false); got != "fallback" {
		t.Errorf("fallback source = %q", got)
	}
	if got := TierFallback.Source(true); got != "fallback_cycle" {
		t.Errorf("cycled fallback source = %q", got)
	}
	if got := TierEmergency.Source(true); got != "emergency" {
		t.Errorf("emergency source = %q", got)
	}
}

func TestNamespace(t *testing.T) {
	if Namespace(SourceFallbackCycle) != SourceFallback {
		t.Errorf("fallback_cycle must map to the fallback namespace")
	}
	if Namespace(SourcePrimary) != SourcePrimary {
		t.Errorf("primary namespace must be itself")
	}
}

func TestTierString(t *testing.T) {
	for tier, want := range map[Tier]string{
		TierPrimary:   "primary",
		TierFallback:  "fallback",
		TierEmergency: "emergency",
		Tier(42):      "unknown",
	} {
		if got := tier.String(); got != want {
			t.Errorf("Tier(%d).String() = %q, want %q", tier, got, want)
		}
	}
}
