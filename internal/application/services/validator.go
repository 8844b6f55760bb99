package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"community-media-api/internal/application/ports"
	domain "community-media-api/internal/domain/media"
	"community-media-api/internal/domain/settings"
)

type MediaValidator struct {
	settings        ports.SettingsService
	mediaRepository domain.Repository
	compressor      ports.Compressor
	logger          *zap.Logger
}

func NewMediaValidator(
	settingsService ports.SettingsService,
	mediaRepository domain.Repository,
	compressor ports.Compressor,
	logger *zap.Logger,
) ports.Validator {
	return &MediaValidator{
		settings:        settingsService,
		mediaRepository: mediaRepository,
		compressor:      compressor,
		logger:          logger,
	}
}

func (v *MediaValidator) ValidateFile(ctx context.Context, f domain.File, override *settings.MediaSettings) []domain.ValidationError {
	var s settings.MediaSettings
	if override != nil {
		s = *override
	} else {
		s = v.settings.GetSettings(ctx)
	}

	var errs []domain.ValidationError

	if f.SizeBytes() > s.MaxFileSizeBytes() {
		errs = append(errs, domain.ValidationError{
			Code:    domain.CodeFileTooLarge,
			Message: fmt.Sprintf("file exceeds the maximum size of %d MB", s.MaxFileSizeMB),
		})
	}
	if !s.TypeAllowed(f.MimeType) {
		errs = append(errs, domain.ValidationError{
			Code:    domain.CodeInvalidType,
			Message: fmt.Sprintf("file type %q is not allowed", f.MimeType),
		})
	}

	return errs
}

// ValidateImageDimensions only checks that the file decodes as an
// image. Oversized images are downscaled by the compressor, never
// rejected here.
func (v *MediaValidator) ValidateImageDimensions(f domain.File) []domain.ValidationError {
	if _, _, err := v.compressor.Dimensions(f); err != nil {
		return []domain.ValidationError{{
			Code:    domain.CodeInvalidDimensions,
			Message: "file could not be decoded as an image",
		}}
	}

	return nil
}

// CanUploadMore is advisory, not a lock: a concurrent writer can pass
// the same check. On a counting failure it fails open, server-side
// constraints are the final backstop.
func (v *MediaValidator) CanUploadMore(ctx context.Context, entity domain.EntityRef, requested int) domain.QuotaCheck {
	s := v.settings.GetSettings(ctx)
	max := s.MaxForEntity(entity.Type)

	count, err := v.mediaRepository.CountForEntity(ctx, entity)
	if err != nil {
		v.logger.Warn("media count failed, allowing upload",
			zap.String("entity_type", string(entity.Type)),
			zap.String("entity_id", entity.ID),
			zap.Error(err))
		return domain.QuotaCheck{Allowed: true, MaxCount: max}
	}

	if count+requested <= max {
		return domain.QuotaCheck{Allowed: true, CurrentCount: count, MaxCount: max}
	}

	remaining := max - count
	if remaining < 0 {
		remaining = 0
	}

	return domain.QuotaCheck{
		Allowed:      false,
		CurrentCount: count,
		MaxCount:     max,
		Message:      fmt.Sprintf("upload limit reached: %d of %d used, %d more may be uploaded", count, max, remaining),
	}
}

// ValidateFiles rejects the whole batch when it would exceed quota;
// partial admission is never attempted at the quota boundary.
func (v *MediaValidator) ValidateFiles(ctx context.Context, files []domain.File, entity domain.EntityRef) domain.BatchValidation {
	out := domain.BatchValidation{
		Files: make([]domain.FileValidation, 0, len(files)),
	}

	quota := v.CanUploadMore(ctx, entity, len(files))
	if !quota.Allowed {
		out.Message = quota.Message
		for idx, f := range files {
			out.Files = append(out.Files, domain.FileValidation{
				Index:    idx,
				Filename: f.Name,
				Errors: []domain.ValidationError{{
					Code:    domain.CodeLimitExceeded,
					Message: quota.Message,
				}},
			})
		}
		return out
	}

	s := v.settings.GetSettings(ctx)
	for idx, f := range files {
		fv := domain.FileValidation{
			Index:    idx,
			Filename: f.Name,
			Errors:   v.ValidateFile(ctx, f, &s),
		}
		out.Files = append(out.Files, fv)
		if fv.OK() {
			out.CanUpload = true
		}
	}

	return out
}
