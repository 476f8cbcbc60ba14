//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"mingle/internal/platform/store"
	"mingle/internal/services/feed/domain"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

var schema = []string{
	`CREATE TABLE interaction_events (
		id               BIGSERIAL PRIMARY KEY,
		user_id          TEXT        NOT NULL,
		content_id       TEXT        NOT NULL,
		content_type     TEXT        NOT NULL DEFAULT '',
		interaction_type TEXT        NOT NULL,
		content_source   TEXT        NOT NULL DEFAULT '',
		occurred_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX idx_ie_user_time ON interaction_events (user_id, occurred_at)`,
	`CREATE TABLE content_items (
		id               TEXT PRIMARY KEY,
		content_type     TEXT        NOT NULL,
		creator_id       TEXT        NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL,
		engagement_score DOUBLE PRECISION,
		category         TEXT
	)`,
	`CREATE TABLE communities (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		category TEXT
	)`,
	`CREATE TABLE community_members (
		community_id TEXT NOT NULL REFERENCES communities (id),
		user_id      TEXT NOT NULL,
		PRIMARY KEY (community_id, user_id)
	)`,
}

func TestPGPorts_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "mingle-repo-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	for _, stmt := range schema {
		if _, err := st.PG.Exec(ctx, stmt); err != nil {
			t.Fatalf("schema: %v", err)
		}
	}

	ports := NewPGPorts(st.PG)
	now := time.Now().UTC().Truncate(time.Microsecond)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	t.Run("append and window", func(t *testing.T) {
		evs := []domain.InteractionEvent{
			{UserID: "u1", ContentID: "c1", ContentType: "story", InteractionType: "like", OccurredAt: now.Add(-2 * time.Hour)},
			{UserID: "u1", ContentID: "c2", ContentType: "community", InteractionType: "comment", OccurredAt: now.Add(-1 * time.Hour)},
			{UserID: "u2", ContentID: "c3", ContentType: "story", InteractionType: "view", OccurredAt: now},
		}
		if err := ports.Append(ctx, evs); err != nil {
			t.Fatalf("Append: %v", err)
		}

		got, err := ports.Window(ctx, "u1", now.Add(-24*time.Hour))
		if err != nil {
			t.Fatalf("Window: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("window rows = %d, want 2", len(got))
		}
		if got[0].ContentID != "c1" || got[1].ContentID != "c2" {
			t.Fatalf("window must be oldest first: %+v", got)
		}
	})

	t.Run("suppression scan per namespace", func(t *testing.T) {
		if err := ports.Record(ctx, "u1", []string{"c10", "c11"}, "primary", now); err != nil {
			t.Fatalf("Record primary: %v", err)
		}
		if err := ports.Record(ctx, "u1", []string{"c12"}, "fallback", now); err != nil {
			t.Fatalf("Record fallback: %v", err)
		}
		if err := ports.Record(ctx, "u1", []string{"c13"}, "fallback_cycle", now); err != nil {
			t.Fatalf("Record fallback_cycle: %v", err)
		}

		primary, err := ports.Seen(ctx, "u1", day, "primary")
		if err != nil {
			t.Fatalf("Seen primary: %v", err)
		}
		if !primary["c10"] || !primary["c11"] || primary["c12"] {
			t.Fatalf("primary namespace = %v", primary)
		}

		fallback, err := ports.Seen(ctx, "u1", day, "fallback")
		if err != nil {
			t.Fatalf("Seen fallback: %v", err)
		}
		// cycle-tagged rows count toward the fallback namespace
		if !fallback["c12"] || !fallback["c13"] || fallback["c10"] {
			t.Fatalf("fallback namespace = %v", fallback)
		}

		// yesterday's scope must be empty
		empty, err := ports.Seen(ctx, "u1", day.Add(-24*time.Hour), "primary")
		if err != nil {
			t.Fatalf("Seen yesterday: %v", err)
		}
		if len(empty) != 0 {
			t.Fatalf("yesterday = %v, want empty", empty)
		}
	})

	t.Run("fallback cycle restarts exclusion", func(t *testing.T) {
		if err := ports.Record(ctx, "u2", []string{"f1", "f2"}, "fallback", day.Add(10*time.Hour)); err != nil {
			t.Fatalf("Record fallback: %v", err)
		}
		if err := ports.Record(ctx, "u2", []string{"f3"}, "fallback_cycle", day.Add(11*time.Hour)); err != nil {
			t.Fatalf("Record fallback_cycle: %v", err)
		}
		if err := ports.Record(ctx, "u2", []string{"f4"}, "fallback", day.Add(12*time.Hour)); err != nil {
			t.Fatalf("Record fallback: %v", err)
		}

		// rows before the latest cycle marker no longer suppress; the cycle
		// page itself seeds the fresh set
		fallback, err := ports.Seen(ctx, "u2", day, "fallback")
		if err != nil {
			t.Fatalf("Seen fallback: %v", err)
		}
		if fallback["f1"] || fallback["f2"] {
			t.Fatalf("pre-cycle rows still suppress: %v", fallback)
		}
		if !fallback["f3"] || !fallback["f4"] {
			t.Fatalf("post-cycle rows missing: %v", fallback)
		}
	})

	t.Run("pool fetch with keyset cursor", func(t *testing.T) {
		for i := 0; i < 6; i++ {
			_, err := st.PG.Exec(ctx, `
				INSERT INTO content_items (id, content_type, creator_id, created_at, engagement_score, category)
				VALUES ($1, 'story', 'author', $2, $3, 'daily log')`,
				fmt.Sprintf("p-%d", i), now.Add(-time.Duration(i)*time.Minute), float64(i))
			if err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		// the requester's own item must be excluded
		_, err := st.PG.Exec(ctx, `
			INSERT INTO content_items (id, content_type, creator_id, created_at)
			VALUES ('mine', 'story', 'u1', $1)`, now)
		if err != nil {
			t.Fatalf("seed own: %v", err)
		}

		first, err := ports.Fetch(ctx, "u1", domain.Cursor{}, 3)
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if len(first) != 3 || first[0].ID != "p-0" {
			t.Fatalf("first page = %+v", first)
		}
		for _, c := range first {
			if c.ID == "mine" {
				t.Fatalf("own content leaked into the pool")
			}
			if c.CursorKey == "" {
				t.Fatalf("candidates must carry cursor keys")
			}
		}

		cur := domain.DecodeCursor(first[len(first)-1].CursorKey)
		second, err := ports.Fetch(ctx, "u1", cur, 3)
		if err != nil {
			t.Fatalf("Fetch page 2: %v", err)
		}
		if len(second) != 3 || second[0].ID != "p-3" {
			t.Fatalf("second page = %+v", second)
		}
	})

	t.Run("authored content and community terms", func(t *testing.T) {
		if _, err := st.PG.Exec(ctx, `
			INSERT INTO communities (id, name, category) VALUES ('g1', 'Trail Club', 'hiking outdoors')`); err != nil {
			t.Fatalf("seed community: %v", err)
		}
		if _, err := st.PG.Exec(ctx, `
			INSERT INTO community_members (community_id, user_id) VALUES ('g1', 'u1')`); err != nil {
			t.Fatalf("seed membership: %v", err)
		}

		authored, cats, err := ports.ForUser(ctx, "u1")
		if err != nil {
			t.Fatalf("ForUser: %v", err)
		}
		if len(authored) != 1 || authored[0].ContentType != "story" {
			t.Fatalf("authored = %+v", authored)
		}
		if len(cats) != 1 || cats[0] != "hiking outdoors" {
			t.Fatalf("categories = %v", cats)
		}
	})
}
