// Package affinity derives a per-user preference profile from a trailing
// window of interaction events plus the user's own authored content.
// The profile is ephemeral: built fresh for every feed request, never stored
package affinity

import (
	"sort"
	"time"
)

// interaction weight table
// the relative ordering matters more than the absolute values: creation is the
// strongest signal, passive views the weakest
var interactionWeights = map[string]float64{
	"view":              1,
	"like":              3,
	"reaction":          3,
	"save":              6,
	"comment":           5,
	"share":             7,
	"connection_accept": 8,
	"create":            10,
}

// defaultWeight applies to interaction types outside the canonical set
const defaultWeight = 1

// activeHourThreshold is the minimum histogram count for an hour to register
// as part of the user's active window
const activeHourThreshold = 2

const (
	authoredTagWeight  = 2.0
	communityTagWeight = 1.5
)

// Event is one row of a user's interaction history
type Event struct {
	ContentType     string
	InteractionType string
	OccurredAt      time.Time
}

// Authored describes one piece of content the user created, used as an
// implicit topical signal
type Authored struct {
	ContentType   string
	CategoryTerms []string
}

// Profile is the derived affinity profile for a single feed request
type Profile struct {
	ContentTypeWeights     map[string]float64
	InteractionTypeWeights map[string]float64
	TagWeights             map[string]float64
	TemporalHistogram      [24]int
	EngagementDepth        float64
	ColdStart              bool
	PreferredContentTypes  []string
	ActiveHours            map[int]bool
}

// InteractionWeight returns the canonical weight for an interaction type
func InteractionWeight(interactionType string) float64 {
	if w, ok := interactionWeights[interactionType]; ok {
		return w
	}
	return defaultWeight
}

// KnownInteraction reports whether t is in the canonical interaction set
func KnownInteraction(t string) bool {
	_, ok := interactionWeights[t]
	return ok
}

// ColdStartProfile returns the degraded profile used when history is
// unavailable or empty. Callers must never get an error from profile
// building; this is the fail-open path
func ColdStartProfile() Profile {
	return Profile{
		ContentTypeWeights:     map[string]float64{},
		InteractionTypeWeights: map[string]float64{},
		TagWeights:             map[string]float64{},
		ColdStart:              true,
		ActiveHours:            map[int]bool{},
	}
}

// Build derives a profile from the interaction window, the user's authored
// content, and the category names of communities the user belongs to.
// An empty event window yields a cold-start profile regardless of the other
// two inputs
func Build(events []Event, authored []Authored, communityCategories []string) Profile {
	if len(events) == 0 {
		return ColdStartProfile()
	}

	p := Profile{
		ContentTypeWeights:     make(map[string]float64, 8),
		InteractionTypeWeights: make(map[string]float64, 8),
		TagWeights:             make(map[string]float64, 16),
		ActiveHours:            map[int]bool{},
	}

	var total float64
	for _, ev := range events {
		w := InteractionWeight(ev.InteractionType)
		if ev.ContentType != "" {
			p.ContentTypeWeights[ev.ContentType] += w
		}
		p.InteractionTypeWeights[ev.InteractionType] += w
		p.TemporalHistogram[ev.OccurredAt.UTC().Hour()]++
		total += w
	}
	p.EngagementDepth = total / float64(len(events))

	for _, a := range authored {
		for _, tok := range Tokenize(a.ContentType) {
			p.TagWeights[tok] += authoredTagWeight
		}
		for _, term := range a.CategoryTerms {
			for _, tok := range Tokenize(term) {
				p.TagWeights[tok] += authoredTagWeight
			}
		}
	}
	for _, name := range communityCategories {
		for _, tok := range Tokenize(name) {
			p.TagWeights[tok] += communityTagWeight
		}
	}

	for h, n := range p.TemporalHistogram {
		if n >= activeHourThreshold {
			p.ActiveHours[h] = true
		}
	}

	p.PreferredContentTypes = rankTypes(p.ContentTypeWeights)
	return p
}

// rankTypes sorts content types by weight descending, name ascending on ties
// so the ordering is deterministic
func rankTypes(weights map[string]float64) []string {
	out := make([]string, 0, len(weights))
	for t := range weights {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		wi, wj := weights[out[i]], weights[out[j]]
		if wi != wj {
			return wi > wj
		}
		return out[i] < out[j]
	})
	return out
}
