package ports

import (
	"context"

	"community-media-api/internal/domain/media"
)

type Compressor interface {
	Compress(ctx context.Context, f media.File, entityType media.EntityType) (media.File, error)
	Dimensions(f media.File) (width, height int, err error)
}
