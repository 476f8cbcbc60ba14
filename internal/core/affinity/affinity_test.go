package affinity

import (
	"testing"
	"time"
)

func at(hour int) time.Time {
	return time.Date(2026, 8, 20, hour, 15, 0, 0, time.UTC)
}

func TestBuildColdStart(t *testing.T) {
	p := Build(nil, []Authored{{ContentType: "story"}}, []string{"hiking club"})
	if !p.ColdStart {
		t.Fatalf("expected cold start with no events")
	}
	if len(p.ContentTypeWeights) != 0 || len(p.TagWeights) != 0 {
		t.Fatalf("cold start profile must carry empty weight maps: %+v", p)
	}
}

func TestBuildWeights(t *testing.T) {
	events := []Event{
		{ContentType: "community", InteractionType: "like", OccurredAt: at(9)},
		{ContentType: "community", InteractionType: "comment", OccurredAt: at(9)},
		{ContentType: "story", InteractionType: "view", OccurredAt: at(21)},
	}
	p := Build(events, nil, nil)

	if p.ColdStart {
		t.Fatalf("warm history must not be cold start")
	}
	if got := p.ContentTypeWeights["community"]; got != 8 { // like 3 + comment 5
		t.Errorf("community weight = %v, want 8", got)
	}
	if got := p.ContentTypeWeights["story"]; got != 1 {
		t.Errorf("story weight = %v, want 1", got)
	}
	if got := p.InteractionTypeWeights["like"]; got != 3 {
		t.Errorf("like weight = %v, want 3", got)
	}
	if want := (3.0 + 5.0 + 1.0) / 3.0; p.EngagementDepth != want {
		t.Errorf("engagement depth = %v, want %v", p.EngagementDepth, want)
	}
	if len(p.PreferredContentTypes) == 0 || p.PreferredContentTypes[0] != "community" {
		t.Errorf("preferred types = %v, want community first", p.PreferredContentTypes)
	}
}

func TestBuildTemporalHistogram(t *testing.T) {
	events := []Event{
		{ContentType: "story", InteractionType: "view", OccurredAt: at(9)},
		{ContentType: "story", InteractionType: "view", OccurredAt: at(9)},
		{ContentType: "story", InteractionType: "view", OccurredAt: at(22)},
	}
	p := Build(events, nil, nil)

	if p.TemporalHistogram[9] != 2 || p.TemporalHistogram[22] != 1 {
		t.Fatalf("histogram = %v", p.TemporalHistogram)
	}
	if !p.ActiveHours[9] {
		t.Errorf("hour 9 should be active at threshold")
	}
	if p.ActiveHours[22] {
		t.Errorf("hour 22 has a single event, below threshold")
	}
}

func TestBuildTagWeights(t *testing.T) {
	p := Build(
		[]Event{{ContentType: "story", InteractionType: "view", OccurredAt: at(10)}},
		[]Authored{{ContentType: "photo story", CategoryTerms: []string{"urban photography"}}},
		[]string{"Trail Running"},
	)

	if got := p.TagWeights["photo"]; got != 2.0 {
		t.Errorf("authored tag photo = %v, want 2.0", got)
	}
	if got := p.TagWeights["photography"]; got != 2.0 {
		t.Errorf("authored category tag = %v, want 2.0", got)
	}
	if got := p.TagWeights["running"]; got != 1.5 {
		t.Errorf("community tag running = %v, want 1.5", got)
	}
	if _, ok := p.TagWeights["to"]; ok {
		t.Errorf("short tokens must be dropped")
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "Trail Running", []string{"trail", "running"}},
		{"short tokens dropped", "go up a hill", []string{"hill"}},
		{"separators", "photo_story/daily-log", []string{"photo", "story", "daily", "log"}},
		{"fullwidth folds", "ｃａｆｅｓ", []string{"cafes"}},
		{"empty", "", nil},
		{"only short", "a b cd", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
				}
			}
		})
	}
}

func TestInteractionWeight(t *testing.T) {
	if InteractionWeight("create") <= InteractionWeight("view") {
		t.Errorf("create must outweigh view")
	}
	if InteractionWeight("like") != InteractionWeight("reaction") {
		t.Errorf("like and reaction share a weight row")
	}
	if InteractionWeight("unknown") != 1 {
		t.Errorf("unknown types fall back to the default weight")
	}
}
