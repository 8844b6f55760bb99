package audit

import (
	"context"
	"time"

	domain "community-media-api/internal/domain/audit"
	"community-media-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) Append(ctx context.Context, e domain.Entry) error {
	_, err := r.db.Exec(ctx, InsertAuditEntry, e.ActorID, string(e.Action), e.MediaID)
	return err
}

func (r *Repository) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, PruneAuditEntries, cutoff)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
