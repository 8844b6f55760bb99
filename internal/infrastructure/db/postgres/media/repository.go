package media

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "community-media-api/internal/domain/media"
	"community-media-api/internal/infrastructure/db/postgres"
)

var ErrStoragePathTaken = errors.New("storage path already in use")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Record, error) {
	m := new(Media)

	err := row.Scan(
		&m.ID,
		&m.StoragePath,

		&m.OriginalFilename,
		&m.MimeType,
		&m.FileSizeBytes,
		&m.Width,
		&m.Height,

		&m.UploadedBy,
		&m.OriginalUploaderID,

		&m.EntityType,
		&m.EntityID,

		&m.Caption,
		&m.AltText,
		&m.SortOrder,

		&m.DeletedAt,
		&m.DeletedBy,
		&m.DeletionReason,

		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) scanMany(rows pgx.Rows) (domain.Records, error) {
	defer rows.Close()

	var ms MediaList
	for rows.Next() {
		m := new(Media)

		if err := rows.Scan(
			&m.ID,
			&m.StoragePath,

			&m.OriginalFilename,
			&m.MimeType,
			&m.FileSizeBytes,
			&m.Width,
			&m.Height,

			&m.UploadedBy,
			&m.OriginalUploaderID,

			&m.EntityType,
			&m.EntityID,

			&m.Caption,
			&m.AltText,
			&m.SortOrder,

			&m.DeletedAt,
			&m.DeletedBy,
			&m.DeletionReason,

			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}

		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ms), nil
}

func (r *Repository) Insert(ctx context.Context, req *domain.Record) (*domain.Record, error) {
	row := r.db.QueryRow(
		ctx,
		InsertMedia,
		req.StoragePath,
		req.OriginalFilename, req.MimeType, req.FileSizeBytes, req.Width, req.Height,
		req.UploadedBy, req.OriginalUploaderID,
		string(req.Entity.Type), req.Entity.ID,
		req.Caption, req.AltText, req.SortOrder,
	)

	out, err := r.scanOne(row)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrStoragePathTaken
		}
		return nil, err
	}

	return out, nil
}

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	out, err := r.scanOne(r.db.QueryRow(ctx, SelectMediaByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return out, nil
}

func (r *Repository) FetchForEntity(ctx context.Context, entity domain.EntityRef) (domain.Records, error) {
	rows, err := r.db.Query(ctx, SelectMediaForEntity, string(entity.Type), entity.ID)
	if err != nil {
		return nil, err
	}

	return r.scanMany(rows)
}

func (r *Repository) CountForEntity(ctx context.Context, entity domain.EntityRef) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, CountMediaForEntity, string(entity.Type), entity.ID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, upd domain.RecordUpdate) (*domain.Record, error) {
	out, err := r.scanOne(r.db.QueryRow(ctx, UpdateMediaByID, id, upd.Caption, upd.AltText, upd.SortOrder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return out, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id, deletedBy uuid.UUID, reason string) (*domain.Record, error) {
	out, err := r.scanOne(r.db.QueryRow(ctx, SoftDeleteMediaByID, id, deletedBy, reason))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return out, nil
}

func (r *Repository) FetchByUser(ctx context.Context, userID uuid.UUID) (domain.Records, error) {
	rows, err := r.db.Query(ctx, SelectMediaByUser, userID)
	if err != nil {
		return nil, err
	}

	return r.scanMany(rows)
}

func (r *Repository) SoftDeleteByUser(ctx context.Context, userID, deletedBy uuid.UUID, reason string) (int64, error) {
	tag, err := r.db.Exec(ctx, SoftDeleteMediaByUser, userID, deletedBy, reason)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) FetchActiveStoragePaths(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, SelectActiveStoragePaths)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err = rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return paths, nil
}
