package settings

import (
	domain "community-media-api/internal/domain/settings"
)

func ToResponseSettings(s domain.MediaSettings) Settings {
	return Settings{
		MaxFileSizeMB:         s.MaxFileSizeMB,
		MaxImagesPerPost:      s.MaxImagesPerPost,
		MaxImagesPerGeography: s.MaxImagesPerGeography,
		MaxImageDimension:     s.MaxImageDimension,
		AllowedTypes:          s.AllowedTypes,
	}
}

func ToPartial(r UpdateRequest) domain.Partial {
	return domain.Partial{
		MaxFileSizeMB:         r.MaxFileSizeMB,
		MaxImagesPerPost:      r.MaxImagesPerPost,
		MaxImagesPerGeography: r.MaxImagesPerGeography,
		MaxImageDimension:     r.MaxImageDimension,
		AllowedTypes:          r.AllowedTypes,
	}
}
