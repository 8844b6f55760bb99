package ports

import (
	"context"

	"github.com/google/uuid"

	"community-media-api/internal/domain/media"
)

type MediaService interface {
	FindForEntity(ctx context.Context, entity media.EntityRef) (media.Records, error)
	FindByID(ctx context.Context, id uuid.UUID) (*media.Record, error)
	UpdateMedia(ctx context.Context, id uuid.UUID, upd media.RecordUpdate) (*media.Record, error)
	DeleteMedia(ctx context.Context, id uuid.UUID, reason string) error

	ExportUserMedia(ctx context.Context, userID uuid.UUID) (*media.ExportManifest, error)
	DeleteUserMedia(ctx context.Context, userID uuid.UUID) (int64, error)
}
