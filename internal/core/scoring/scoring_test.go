package scoring

import (
	"math/rand"
	"testing"
	"time"

	"mingle/internal/core/affinity"
)

var now = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

func warmProfile(t *testing.T, events []affinity.Event) affinity.Profile {
	t.Helper()
	p := affinity.Build(events, nil, nil)
	if p.ColdStart {
		t.Fatalf("expected warm profile")
	}
	return p
}

func TestBaseline(t *testing.T) {
	pool := []Candidate{
		{EngagementScore: 1}, {EngagementScore: 9}, {EngagementScore: 5},
	}
	cases := []struct {
		name  string
		pool  []Candidate
		mode  BaselineMode
		fixed float64
		want  float64
	}{
		{"median odd", pool, BaselineMedian, 0, 5},
		{"median even", pool[:2], BaselineMedian, 0, 5},
		{"mean", pool, BaselineMean, 0, 5},
		{"fixed", pool, BaselineFixed, 2.5, 2.5},
		{"empty pool", nil, BaselineMedian, 0, 0},
		{"fixed ignores pool", nil, BaselineFixed, 7, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Baseline(tc.pool, tc.mode, tc.fixed); got != tc.want {
				t.Fatalf("Baseline = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRecencyBonus(t *testing.T) {
	cases := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{"fresh", 6 * time.Hour, 0.2},
		{"day old", 30 * time.Hour, 0.1},
		{"stale", 100 * time.Hour, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RecencyBonus(now.Add(-tc.age), now); got != tc.want {
				t.Fatalf("RecencyBonus = %v, want %v", got, tc.want)
			}
		})
	}
}

// a heavy community affinity must rank every community item above every story
// item when recency and engagement are equal
func TestWarmRankingByTypeAffinity(t *testing.T) {
	events := make([]affinity.Event, 10)
	for i := range events {
		events[i] = affinity.Event{
			ContentType:     "community",
			InteractionType: "like",
			OccurredAt:      now.Add(-time.Duration(i) * time.Hour),
		}
	}
	s := New(warmProfile(t, events), 4.0, now)

	community := Candidate{ContentType: "community", CreatedAt: now.Add(-2 * time.Hour), EngagementScore: 4.0}
	story := Candidate{ContentType: "story", CreatedAt: now.Add(-2 * time.Hour), EngagementScore: 4.0}

	cs, ss := s.Score(community), s.Score(story)
	if cs <= ss {
		t.Fatalf("community %v must outrank story %v", cs, ss)
	}
	// story still gets base + recency, nothing else
	if want := 1.0 + 0.2; ss != want {
		t.Errorf("story score = %v, want %v", ss, want)
	}
}

func TestWarmEngagementAboveBaseline(t *testing.T) {
	p := warmProfile(t, []affinity.Event{
		{ContentType: "story", InteractionType: "view", OccurredAt: now},
	})
	s := New(p, 5.0, now)

	old := now.Add(-200 * time.Hour)
	below := Candidate{ContentType: "photo", CreatedAt: old, EngagementScore: 3.0}
	above := Candidate{ContentType: "photo", CreatedAt: old, EngagementScore: 7.0}

	if got := s.Score(below); got != 1.0 {
		t.Errorf("below-baseline score = %v, want 1.0", got)
	}
	if got, want := s.Score(above), 1.0+2.0*0.4; got != want {
		t.Errorf("above-baseline score = %v, want %v", got, want)
	}
}

func TestWarmTagHints(t *testing.T) {
	p := warmProfile(t, []affinity.Event{
		{ContentType: "story", InteractionType: "view", OccurredAt: now},
	})
	p.TagWeights["hiking"] = 2.0

	s := New(p, 0, now)
	old := now.Add(-200 * time.Hour)
	plain := Candidate{ContentType: "photo", CreatedAt: old}
	tagged := Candidate{ContentType: "photo", CreatedAt: old, TagHints: []string{"hiking"}}

	if s.Score(tagged) <= s.Score(plain) {
		t.Fatalf("tag hint match must raise the score")
	}
}

func TestScoreFloor(t *testing.T) {
	p := warmProfile(t, []affinity.Event{
		{ContentType: "story", InteractionType: "view", OccurredAt: now},
	})
	s := New(p, 1000, now)
	c := Candidate{ContentType: "story", CreatedAt: now.Add(-500 * time.Hour)}
	if got := s.Score(c); got < Floor {
		t.Fatalf("score %v below floor", got)
	}

	cold := New(affinity.ColdStartProfile(), 0, now, WithJitter(0))
	if got := cold.Score(c); got < Floor {
		t.Fatalf("cold score %v below floor", got)
	}
}

// cold-start scoring must interleave content types: the first item of a
// novel type always outranks the nth repeat of a saturated one
func TestColdStartBalancesTypes(t *testing.T) {
	s := New(affinity.ColdStartProfile(), 0, now, WithRand(rand.New(rand.NewSource(1))))

	var storyScores []float64
	for i := 0; i < 5; i++ {
		storyScores = append(storyScores, s.Score(Candidate{ContentType: "story"}))
	}
	firstPhoto := s.Score(Candidate{ContentType: "photo"})

	for i, sc := range storyScores[1:] {
		if firstPhoto <= sc {
			t.Fatalf("first photo %v must outrank story repeat %d (%v)", firstPhoto, i+2, sc)
		}
	}
	if storyScores[0] <= storyScores[2] {
		t.Errorf("repeats of one type must decay: %v", storyScores)
	}
}
