// Package domain defines the types and interfaces for the feed service
package domain

import "time"

// InteractionEvent is one append-only row of the interaction log
type InteractionEvent struct {
	UserID          string
	ContentID       string
	ContentType     string
	InteractionType string
	Source          string // content_source partition label, empty for organic events
	OccurredAt      time.Time
}

// CandidateItem is one pool item eligible for ranking in a feed call
type CandidateItem struct {
	ID              string
	ContentType     string
	CreatorID       string
	CreatedAt       time.Time
	EngagementScore float64
	Category        string
	TagHints        []string
	CursorKey       string
}

// AuthoredContent summarizes one item the user created, used only to seed
// topical tag weights
type AuthoredContent struct {
	ContentType   string
	CategoryTerms []string
}

// FeedItem is one entry of an assembled feed page
type FeedItem struct {
	ID          string    `json:"id"`
	ContentType string    `json:"content_type"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	Score       float64   `json:"score"`
	Source      string    `json:"source"`
}

// Diagnostics attributes the personalization/fallback mix of one response
type Diagnostics struct {
	Tier          string         `json:"tier"`
	ColdStart     bool           `json:"cold_start"`
	Cycled        bool           `json:"cycled"`
	Candidates    int            `json:"candidates"`
	CountsPerTier map[string]int `json:"counts_per_tier"`
}

// FeedResult is the outcome of one feed generation call. An empty Items
// slice is a valid business outcome, not an error
type FeedResult struct {
	Items       []FeedItem  `json:"items"`
	NextCursor  string      `json:"next_cursor,omitempty"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// ServeLogEntry is one analytics row, appended best-effort after a response
type ServeLogEntry struct {
	UserID      string
	Day         time.Time
	Tier        string
	ColdStart   bool
	Candidates  int
	Served      int
	GeneratedAt time.Time
}

// TierStatsRow aggregates served feeds by day and tier
type TierStatsRow struct {
	Day      time.Time `json:"day"`
	Tier     string    `json:"tier"`
	Requests int64     `json:"requests"`
	Served   int64     `json:"served"`
}
