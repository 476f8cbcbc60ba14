// Package repo provides the feed service repositories: Postgres for the
// interaction log, candidate pool, and suppression scans, ClickHouse for the
// serve-log analytics sink
package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	perr "mingle/internal/platform/errors"

	"mingle/internal/modkit/repokit"
	"mingle/internal/services/feed/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage is the relational surface of the feed service
type Storage interface {
	Window(ctx context.Context, userID string, since time.Time) ([]domain.InteractionEvent, error)
	Append(ctx context.Context, evs []domain.InteractionEvent) error
	FetchPool(ctx context.Context, userID string, cursor domain.Cursor, limit int) ([]domain.CandidateItem, error)
	Authored(ctx context.Context, userID string) ([]domain.AuthoredContent, []string, error)
	SeenToday(ctx context.Context, userID string, day time.Time, namespace string) (map[string]bool, error)
}

// Window returns the user's interaction events since the given time,
// oldest first
func (s *pg) Window(ctx context.Context, userID string, since time.Time) ([]domain.InteractionEvent, error) {
	const q = `
		SELECT user_id, content_id, content_type, interaction_type,
		       COALESCE(content_source, ''), occurred_at
		FROM interaction_events
		WHERE user_id = $1 AND occurred_at >= $2
		ORDER BY occurred_at ASC`

	rows, err := s.q.Query(ctx, q, userID, since)
	if err != nil {
		return nil, perr.FromPG(err, "feed.window")
	}
	defer rows.Close()

	var out []domain.InteractionEvent
	for rows.Next() {
		var ev domain.InteractionEvent
		if err := rows.Scan(&ev.UserID, &ev.ContentID, &ev.ContentType,
			&ev.InteractionType, &ev.Source, &ev.OccurredAt); err != nil {
			return nil, perr.FromPG(err, "feed.window.scan")
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// Append writes interaction events in one multi-row insert
func (s *pg) Append(ctx context.Context, evs []domain.InteractionEvent) error {
	if len(evs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO interaction_events
		(user_id, content_id, content_type, interaction_type, content_source, occurred_at) VALUES `)

	args := make([]any, 0, len(evs)*6)
	for i, ev := range evs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*6 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5)
		args = append(args,
			ev.UserID, ev.ContentID, ev.ContentType,
			ev.InteractionType, ev.Source, ev.OccurredAt)
	}

	if _, err := s.q.Exec(ctx, sb.String(), args...); err != nil {
		return perr.FromPG(err, "feed.append")
	}
	return nil
}

// FetchPool returns recency-ordered candidates after the cursor position,
// keyset-paginated on (created_at, id). The user's own content is excluded
func (s *pg) FetchPool(ctx context.Context, userID string, cursor domain.Cursor, limit int) ([]domain.CandidateItem, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, content_type, creator_id, created_at,
		       COALESCE(engagement_score, 0), COALESCE(category, '')
		FROM content_items
		WHERE creator_id <> $1`)

	args := []any{userID}
	if !cursor.IsZero() {
		sb.WriteString(` AND (created_at, id) < ($2, $3)`)
		args = append(args, cursor.CreatedAt, cursor.LastID)
	}
	sb.WriteString(` ORDER BY created_at DESC, id DESC LIMIT `)
	fmt.Fprintf(&sb, "$%d", len(args)+1)
	args = append(args, limit)

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, perr.FromPG(err, "feed.pool")
	}
	defer rows.Close()

	var out []domain.CandidateItem
	for rows.Next() {
		var c domain.CandidateItem
		if err := rows.Scan(&c.ID, &c.ContentType, &c.CreatorID,
			&c.CreatedAt, &c.EngagementScore, &c.Category); err != nil {
			return nil, perr.FromPG(err, "feed.pool.scan")
		}
		c.CursorKey = domain.Cursor{CreatedAt: c.CreatedAt, LastID: c.ID}.Encode()
		out = append(out, c)
	}
	return out, rows.Err()
}

// Authored returns the user's own content summaries plus the category names
// of communities they belong to
func (s *pg) Authored(ctx context.Context, userID string) ([]domain.AuthoredContent, []string, error) {
	const contentQ = `
		SELECT content_type, COALESCE(category, '')
		FROM content_items
		WHERE creator_id = $1
		ORDER BY created_at DESC
		LIMIT 100`

	rows, err := s.q.Query(ctx, contentQ, userID)
	if err != nil {
		return nil, nil, perr.FromPG(err, "feed.authored")
	}

	var authored []domain.AuthoredContent
	for rows.Next() {
		var a domain.AuthoredContent
		var category string
		if err := rows.Scan(&a.ContentType, &category); err != nil {
			rows.Close()
			return nil, nil, perr.FromPG(err, "feed.authored.scan")
		}
		if category != "" {
			a.CategoryTerms = []string{category}
		}
		authored = append(authored, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	const communityQ = `
		SELECT COALESCE(c.category, c.name)
		FROM communities c
		JOIN community_members m ON m.community_id = c.id
		WHERE m.user_id = $1`

	crows, err := s.q.Query(ctx, communityQ, userID)
	if err != nil {
		return nil, nil, perr.FromPG(err, "feed.communities")
	}
	defer crows.Close()

	var categories []string
	for crows.Next() {
		var name string
		if err := crows.Scan(&name); err != nil {
			return nil, nil, perr.FromPG(err, "feed.communities.scan")
		}
		if name != "" {
			categories = append(categories, name)
		}
	}
	return authored, categories, crows.Err()
}

// SeenToday scans the interaction log for view records of the given
// suppression namespace within the day. A log-scan keeps suppression state
// in the one table that already outlives requests; the port lets an indexed
// cache replace it later without touching the engine.
// The fallback namespace restarts at the latest fallback_cycle marker:
// only rows at or after it count, so a cycle begins a fresh exclusion set
// seeded by the cycle page itself
func (s *pg) SeenToday(ctx context.Context, userID string, day time.Time, namespace string) (map[string]bool, error) {
	const q = `
		SELECT DISTINCT content_id
		FROM interaction_events
		WHERE user_id = $1
		  AND interaction_type = 'view'
		  AND content_source = ANY($2)
		  AND occurred_at >= $3 AND occurred_at < $4`

	const qFallback = `
		SELECT DISTINCT content_id
		FROM interaction_events
		WHERE user_id = $1
		  AND interaction_type = 'view'
		  AND content_source = ANY($2)
		  AND occurred_at >= GREATEST($3, COALESCE((
		        SELECT max(occurred_at)
		        FROM interaction_events
		        WHERE user_id = $1
		          AND interaction_type = 'view'
		          AND content_source = 'fallback_cycle'
		          AND occurred_at >= $3 AND occurred_at < $4
		      ), $3))
		  AND occurred_at < $4`

	query := q
	sources := []string{namespace}
	if namespace == "fallback" {
		// fallback_cycle rows count toward the fallback namespace
		query = qFallback
		sources = append(sources, "fallback_cycle")
	}

	rows, err := s.q.Query(ctx, query, userID, sources, day, day.Add(24*time.Hour))
	if err != nil {
		return nil, perr.FromPG(err, "feed.seen")
	}
	defer rows.Close()

	seen := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, perr.FromPG(err, "feed.seen.scan")
		}
		seen[id] = true
	}
	return seen, rows.Err()
}
