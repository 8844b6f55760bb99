package media

import (
	domain "community-media-api/internal/domain/media"
)

func fromDBModel(model *Media) *domain.Record {
	var m = &domain.Record{
		ID:          model.ID,
		StoragePath: model.StoragePath,

		OriginalFilename: model.OriginalFilename,
		MimeType:         model.MimeType,
		FileSizeBytes:    model.FileSizeBytes,
		Width:            model.Width,
		Height:           model.Height,

		UploadedBy:         model.UploadedBy,
		OriginalUploaderID: model.OriginalUploaderID,

		Entity: domain.EntityRef{
			Type: domain.EntityType(model.EntityType),
			ID:   model.EntityID,
		},

		Caption:   model.Caption,
		AltText:   model.AltText,
		SortOrder: model.SortOrder,

		DeletedAt:      model.DeletedAt,
		DeletedBy:      model.DeletedBy,
		DeletionReason: model.DeletionReason,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return m
}

func fromDBModels(models *MediaList) domain.Records {
	ms := make(domain.Records, len(*models))
	for idx, m := range *models {
		ms[idx] = fromDBModel(m)
	}

	return ms
}
