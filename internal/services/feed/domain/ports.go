package domain

import (
	"context"
	"time"
)

// GeneratePort produces a personalized feed page
type GeneratePort interface {
	GenerateFeed(ctx context.Context, userID string, requested int, cursor string) (FeedResult, error)
}

// RecorderPort appends organic interaction events from the API surface
type RecorderPort interface {
	RecordInteraction(ctx context.Context, ev InteractionEvent) error
}

// StatsPort exposes the tier mix analytics
type StatsPort interface {
	TierStats(ctx context.Context, days int) ([]TierStatsRow, error)
}

// InteractionLogPort is the append-only interaction log collaborator
type InteractionLogPort interface {
	Window(ctx context.Context, userID string, since time.Time) ([]InteractionEvent, error)
	Append(ctx context.Context, evs []InteractionEvent) error
}

// CandidatePoolPort supplies recency-ordered, cursor-paginated candidates
type CandidatePoolPort interface {
	Fetch(ctx context.Context, userID string, cursor Cursor, limit int) ([]CandidateItem, error)
}

// AuthoredContentPort yields the user's own content plus the category names
// of the communities they belong to, used only for tag seeding
type AuthoredContentPort interface {
	ForUser(ctx context.Context, userID string) ([]AuthoredContent, []string, error)
}

// SuppressionPort tracks which content ids a user was already shown today,
// per independent namespace
type SuppressionPort interface {
	Seen(ctx context.Context, userID string, day time.Time, namespace string) (map[string]bool, error)
	Record(ctx context.Context, userID string, ids []string, source string, at time.Time) error
}

// ServeLogPort is the best-effort analytics sink
type ServeLogPort interface {
	AppendServe(ctx context.Context, e ServeLogEntry) error
	TierStats(ctx context.Context, since time.Time) ([]TierStatsRow, error)
}
