package repo

import (
	"context"
	"time"

	"mingle/internal/modkit/repokit"
	"mingle/internal/services/feed/domain"
)

// PGPorts adapts the Postgres storage to the domain collaborator ports.
// Each call binds against the shared runner; there is no per-request state
type PGPorts struct {
	tx repokit.TxRunner
	b  repokit.Binder[Storage]
}

// NewPGPorts constructs the port adapter over a transaction runner
func NewPGPorts(tx repokit.TxRunner) *PGPorts {
	return &PGPorts{tx: tx, b: NewPG()}
}

func (p *PGPorts) storage() Storage { return repokit.MustBind(p.b, p.tx) }

// Window implements domain.InteractionLogPort
func (p *PGPorts) Window(ctx context.Context, userID string, since time.Time) ([]domain.InteractionEvent, error) {
	return p.storage().Window(ctx, userID, since)
}

// Append implements domain.InteractionLogPort
func (p *PGPorts) Append(ctx context.Context, evs []domain.InteractionEvent) error {
	return p.storage().Append(ctx, evs)
}

// Fetch implements domain.CandidatePoolPort
func (p *PGPorts) Fetch(ctx context.Context, userID string, cursor domain.Cursor, limit int) ([]domain.CandidateItem, error) {
	return p.storage().FetchPool(ctx, userID, cursor, limit)
}

// ForUser implements domain.AuthoredContentPort
func (p *PGPorts) ForUser(ctx context.Context, userID string) ([]domain.AuthoredContent, []string, error) {
	return p.storage().Authored(ctx, userID)
}

// Seen implements domain.SuppressionPort
func (p *PGPorts) Seen(ctx context.Context, userID string, day time.Time, namespace string) (map[string]bool, error) {
	return p.storage().SeenToday(ctx, userID, day, namespace)
}

// Record implements domain.SuppressionPort by appending view events tagged
// with the serving source
func (p *PGPorts) Record(ctx context.Context, userID string, ids []string, source string, at time.Time) error {
	evs := make([]domain.InteractionEvent, len(ids))
	for i, id := range ids {
		evs[i] = domain.InteractionEvent{
			UserID:          userID,
			ContentID:       id,
			InteractionType: "view",
			Source:          source,
			OccurredAt:      at,
		}
	}
	return p.storage().Append(ctx, evs)
}
