package ports

import (
	"context"

	"community-media-api/internal/domain/media"
)

// ProgressFunc fires after each file in a batch has been attempted,
// success or not. done is monotonic and ends at total.
type ProgressFunc func(done, total int)

type UploadService interface {
	Upload(ctx context.Context, f media.File, opts media.UploadOptions) (*media.Record, error)
	UploadMultiple(ctx context.Context, files []media.File, opts media.UploadOptions, onProgress ProgressFunc) media.BatchResult
}
