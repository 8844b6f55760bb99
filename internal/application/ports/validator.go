package ports

import (
	"context"

	"community-media-api/internal/domain/media"
	"community-media-api/internal/domain/settings"
)

type Validator interface {
	// ValidateFile checks size and mime type against policy. A non-nil
	// override replaces the resolved settings (for callers that already
	// hold them).
	ValidateFile(ctx context.Context, f media.File, override *settings.MediaSettings) []media.ValidationError
	ValidateImageDimensions(f media.File) []media.ValidationError
	CanUploadMore(ctx context.Context, entity media.EntityRef, requested int) media.QuotaCheck
	ValidateFiles(ctx context.Context, files []media.File, entity media.EntityRef) media.BatchValidation
}
