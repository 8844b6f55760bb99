package media

import (
	"time"

	"github.com/google/uuid"
)

type (
	Media struct {
		ID               uuid.UUID `json:"id"`
		EntityType       string    `json:"entity_type"`
		EntityID         string    `json:"entity_id"`
		OriginalFilename string    `json:"original_filename"`
		MimeType         string    `json:"mime_type"`
		FileSizeBytes    int64     `json:"file_size_bytes"`
		Width            *int      `json:"width,omitempty"`
		Height           *int      `json:"height,omitempty"`
		Caption          *string   `json:"caption,omitempty"`
		AltText          *string   `json:"alt_text,omitempty"`
		SortOrder        int       `json:"sort_order"`
		StoragePath      string    `json:"storage_path"`
		URL              string    `json:"url,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
	}
	MediaList []Media

	ResponseData struct {
		Data MediaList `json:"data"`
	}

	BatchFailure struct {
		Index    int    `json:"index"`
		Filename string `json:"filename"`
		Errors   []BatchFailureError `json:"errors,omitempty"`
		Reason   string `json:"reason,omitempty"`
	}
	BatchFailureError struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	BatchResponse struct {
		Successful    MediaList      `json:"successful"`
		Failed        []BatchFailure `json:"failed"`
		TotalUploaded int            `json:"total_uploaded"`
		TotalFailed   int            `json:"total_failed"`
	}
)
