// Package scoring assigns relevance scores to feed candidates.
// Warm profiles get a weighted linear blend of type affinity, tag affinity,
// relative engagement, and recency. Cold-start users get a diversity-first
// score that rewards under-represented content types instead
package scoring

import (
	"math/rand"
	"sort"
	"time"

	"mingle/internal/core/affinity"
)

// Floor is the minimum score any candidate can receive. A zero score would
// make an item indistinguishable from an excluded one
const Floor = 0.1

// blend weights for the warm formula
const (
	typeFactor       = 0.3
	tagFactor        = 0.2
	engagementFactor = 0.4
)

// recency bonuses
const (
	freshBonus  = 0.2 // under 24h
	recentBonus = 0.1 // under 72h
)

// Candidate is the scoring view of a pool item
type Candidate struct {
	ID              string
	ContentType     string
	CreatorID       string
	CreatedAt       time.Time
	EngagementScore float64
	TagHints        []string
}

// BaselineMode selects how the pool's typical engagement signal is computed
type BaselineMode string

const (
	BaselineMedian BaselineMode = "median"
	BaselineMean   BaselineMode = "mean"
	BaselineFixed  BaselineMode = "fixed"
)

// Baseline computes the engagement baseline for a pool under the given mode.
// Fixed mode returns the configured constant; an empty pool yields zero
func Baseline(pool []Candidate, mode BaselineMode, fixed float64) float64 {
	if mode == BaselineFixed {
		return fixed
	}
	if len(pool) == 0 {
		return 0
	}
	switch mode {
	case BaselineMean:
		var sum float64
		for _, c := range pool {
			sum += c.EngagementScore
		}
		return sum / float64(len(pool))
	default: // median
		vals := make([]float64, len(pool))
		for i, c := range pool {
			vals[i] = c.EngagementScore
		}
		sort.Float64s(vals)
		mid := len(vals) / 2
		if len(vals)%2 == 0 {
			return (vals[mid-1] + vals[mid]) / 2
		}
		return vals[mid]
	}
}

// Scorer scores candidates against one profile within one feed request.
// Not safe for concurrent use: the cold-start path accumulates type counts
// as it scores
type Scorer struct {
	Profile  affinity.Profile
	Baseline float64
	Now      time.Time

	jitterBound float64
	rng         *rand.Rand
	seenTypes   map[string]int
}

// Option tunes a Scorer
type Option func(*Scorer)

// WithJitter sets the cold-start jitter bound
func WithJitter(bound float64) Option {
	return func(s *Scorer) { s.jitterBound = bound }
}

// WithRand injects the randomness source, for deterministic tests
func WithRand(r *rand.Rand) Option {
	return func(s *Scorer) { s.rng = r }
}

// New constructs a Scorer for one request
func New(profile affinity.Profile, baseline float64, now time.Time, opts ...Option) *Scorer {
	s := &Scorer{
		Profile:     profile,
		Baseline:    baseline,
		Now:         now,
		jitterBound: 0.05,
		seenTypes:   map[string]int{},
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(now.UnixNano()))
	}
	return s
}

// Score returns the relevance score for c, never below Floor
func (s *Scorer) Score(c Candidate) float64 {
	if s.Profile.ColdStart {
		return s.scoreCold(c)
	}
	return s.scoreWarm(c)
}

func (s *Scorer) scoreWarm(c Candidate) float64 {
	score := 1.0
	score += s.Profile.ContentTypeWeights[c.ContentType] * typeFactor

	tag := s.Profile.TagWeights[c.ContentType]
	for _, h := range c.TagHints {
		tag += s.Profile.TagWeights[h]
	}
	score += tag * tagFactor

	if d := c.EngagementScore - s.Baseline; d > 0 {
		score += d * engagementFactor
	}
	score += RecencyBonus(c.CreatedAt, s.Now)

	if score < Floor {
		return Floor
	}
	return score
}

// scoreCold trades personalization for exploration: a bounded jitter plus a
// balancing term that decays as a content type fills the page
func (s *Scorer) scoreCold(c Candidate) float64 {
	score := 1.0
	if s.jitterBound > 0 {
		score += s.rng.Float64() * s.jitterBound
	}

	seen := s.seenTypes[c.ContentType]
	score += 0.5 / float64(seen+1)
	s.seenTypes[c.ContentType]++

	if score < Floor {
		return Floor
	}
	return score
}

// RecencyBonus rewards fresh content: +0.2 under 24h, +0.1 under 72h
func RecencyBonus(createdAt, now time.Time) float64 {
	age := now.Sub(createdAt)
	switch {
	case age < 24*time.Hour:
		return freshBonus
	case age < 72*time.Hour:
		return recentBonus
	default:
		return 0
	}
}
