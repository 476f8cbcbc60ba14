// Package feedcast models the three-tier fallback cascade as an explicit
// state machine: primary (scored, deduplicated), fallback (cycling), and
// emergency (suppression-blind). Keeping the transitions here, away from the
// scoring and storage code, makes exhaustion and cycling testable in isolation
package feedcast

// Tier is one stage of the cascade
type Tier int

const (
	TierPrimary Tier = iota
	TierFallback
	TierEmergency
)

// String returns the tier's diagnostic name
func (t Tier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierFallback:
		return "fallback"
	case TierEmergency:
		return "emergency"
	default:
		return "unknown"
	}
}

// Suppression source labels recorded against served items. The cycled
// fallback label is distinct so a later call can detect the restart
const (
	SourcePrimary       = "primary"
	SourceFallback      = "fallback"
	SourceFallbackCycle = "fallback_cycle"
	SourceEmergency     = "emergency"
)

// Source returns the suppression namespace label for items served by this
// tier. Cycled fallback pages record under a separate label while still
// belonging to the fallback namespace
func (t Tier) Source(cycled bool) string {
	switch t {
	case TierPrimary:
		return SourcePrimary
	case TierFallback:
		if cycled {
			return SourceFallbackCycle
		}
		return SourceFallback
	default:
		return SourceEmergency
	}
}

// Namespace returns the suppression namespace a source label belongs to.
// fallback_cycle records live in the fallback namespace
func Namespace(source string) string {
	if source == SourceFallbackCycle {
		return SourceFallback
	}
	return source
}

// Outcome summarizes one tier's evaluation
type Outcome struct {
	Served int
	Cycled bool // fallback only: the namespace was exhausted and restarted
}

// Next decides whether the cascade continues after a tier's outcome.
// Primary is sufficient only when it fills the whole page; fallback is
// terminal as soon as it serves anything; emergency is always terminal —
// an empty emergency result means the pool itself is globally empty
func Next(t Tier, out Outcome, requested int) (Tier, bool) {
	switch t {
	case TierPrimary:
		if out.Served >= requested {
			return t, false
		}
		return TierFallback, true
	case TierFallback:
		if out.Served > 0 {
			return t, false
		}
		return TierEmergency, true
	default:
		return TierEmergency, false
	}
}
