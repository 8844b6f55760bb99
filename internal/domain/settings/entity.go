package settings

import (
	"community-media-api/internal/domain/media"
)

// Keys in the media_settings table. Each is upserted independently so a
// partial update never clobbers unrelated keys.
const (
	KeyMaxFileSizeMB         = "media_max_file_size_mb"
	KeyMaxImagesPerPost      = "media_max_images_per_post"
	KeyMaxImagesPerGeography = "media_max_images_per_geography"
	KeyMaxImageDimension     = "media_max_image_dimension"
	KeyAllowedTypes          = "media_allowed_types"
)

type MediaSettings struct {
	MaxFileSizeMB         int
	MaxImagesPerPost      int
	MaxImagesPerGeography int
	MaxImageDimension     int
	AllowedTypes          []string
}

func Defaults() MediaSettings {
	return MediaSettings{
		MaxFileSizeMB:         20,
		MaxImagesPerPost:      30,
		MaxImagesPerGeography: 100,
		MaxImageDimension:     2048,
		AllowedTypes:          []string{"image/jpeg", "image/png", "image/webp"},
	}
}

func (s MediaSettings) MaxFileSizeBytes() int64 {
	return int64(s.MaxFileSizeMB) << 20
}

func (s MediaSettings) TypeAllowed(mimeType string) bool {
	for _, t := range s.AllowedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// MaxForEntity resolves the per-entity-type maximum. Avatars hold a
// single slot; unknown types fall back to the post limit.
func (s MediaSettings) MaxForEntity(t media.EntityType) int {
	switch {
	case t == media.EntityProfileAvatar:
		return 1
	case t.IsGeography():
		return s.MaxImagesPerGeography
	default:
		return s.MaxImagesPerPost
	}
}

// Partial is a partial settings write; nil fields are left untouched.
type Partial struct {
	MaxFileSizeMB         *int
	MaxImagesPerPost      *int
	MaxImagesPerGeography *int
	MaxImageDimension     *int
	AllowedTypes          []string
}
