package settings

import (
	"context"

	domain "community-media-api/internal/domain/settings"
	"community-media-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Query(ctx, SelectAllSettings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	kv := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err = rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		kv[k] = v
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return kv, nil
}

func (r *Repository) Upsert(ctx context.Context, key, value string) error {
	_, err := r.db.Exec(ctx, UpsertSetting, key, value)
	return err
}
