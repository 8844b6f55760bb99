package media

import (
	"time"

	"github.com/google/uuid"
)

type (
	Media struct {
		ID          uuid.UUID
		StoragePath string

		OriginalFilename string
		MimeType         string
		FileSizeBytes    int64
		Width            *int
		Height           *int

		UploadedBy         *uuid.UUID
		OriginalUploaderID uuid.UUID

		EntityType string
		EntityID   string

		Caption   *string
		AltText   *string
		SortOrder int

		DeletedAt      *time.Time
		DeletedBy      *uuid.UUID
		DeletionReason *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	MediaList []*Media
)
