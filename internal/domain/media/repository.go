package media

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, req *Record) (*Record, error)
	FetchByID(ctx context.Context, id uuid.UUID) (*Record, error)
	FetchForEntity(ctx context.Context, entity EntityRef) (Records, error)
	CountForEntity(ctx context.Context, entity EntityRef) (int, error)
	Update(ctx context.Context, id uuid.UUID, upd RecordUpdate) (*Record, error)
	SoftDelete(ctx context.Context, id, deletedBy uuid.UUID, reason string) (*Record, error)

	// FetchByUser returns every record where the user is uploader or
	// original uploader, soft-deleted rows included.
	FetchByUser(ctx context.Context, userID uuid.UUID) (Records, error)
	// SoftDeleteByUser soft-deletes all of the user's media and clears
	// uploaded_by while preserving original_uploader_id.
	SoftDeleteByUser(ctx context.Context, userID, deletedBy uuid.UUID, reason string) (int64, error)

	FetchActiveStoragePaths(ctx context.Context) ([]string, error)
}
