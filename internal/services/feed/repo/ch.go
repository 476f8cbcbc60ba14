package repo

import (
	"context"
	"time"

	"mingle/internal/platform/store"
	"mingle/internal/services/feed/domain"
)

// CH is the ClickHouse serve-log repository. Appends are best-effort
// analytics; the caller decides whether failures matter
type CH struct {
	conn store.Clickhouse
}

// NewCH constructs the serve-log repo over a clickhouse seam
func NewCH(conn store.Clickhouse) *CH { return &CH{conn: conn} }

var serveCols = []string{
	"user_id", "day", "tier", "cold_start", "candidates", "served", "generated_at",
}

// AppendServe writes one serve-log row
func (c *CH) AppendServe(ctx context.Context, e domain.ServeLogEntry) error {
	cold := uint8(0)
	if e.ColdStart {
		cold = 1
	}
	return c.conn.Insert(ctx, "feed_serve_log", serveCols, [][]any{{
		e.UserID, e.Day, e.Tier, cold,
		uint32(e.Candidates), uint32(e.Served), e.GeneratedAt,
	}})
}

// TierStats aggregates serve-log rows by day and tier since the given time
func (c *CH) TierStats(ctx context.Context, since time.Time) ([]domain.TierStatsRow, error) {
	const q = `
		SELECT toStartOfDay(day) AS d, tier,
		       count() AS requests, sum(served) AS served
		FROM feed_serve_log
		WHERE day >= ?
		GROUP BY d, tier
		ORDER BY d DESC, tier ASC`

	rows, err := c.conn.Query(ctx, q, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TierStatsRow
	for rows.Next() {
		var r domain.TierStatsRow
		var requests, served uint64
		if err := rows.Scan(&r.Day, &r.Tier, &requests, &served); err != nil {
			return nil, err
		}
		r.Requests = int64(requests)
		r.Served = int64(served)
		out = append(out, r)
	}
	return out, rows.Err()
}
