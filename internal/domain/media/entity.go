package media

import (
	"time"

	"github.com/google/uuid"
)

// EntityType discriminates the polymorphic owner of a media record.
// The set is open-ended; owning entities live in unrelated subsystems,
// so there is no foreign key behind Entity.ID.
type EntityType string

const (
	EntityPost                  EntityType = "post"
	EntityProfileAvatar         EntityType = "profile_avatar"
	EntityGeographyLanguageArea EntityType = "geography_language_area"
	EntityGeographyMunicipality EntityType = "geography_municipality"
	EntityGeographyPlace        EntityType = "geography_place"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityPost, EntityProfileAvatar,
		EntityGeographyLanguageArea, EntityGeographyMunicipality, EntityGeographyPlace:
		return true
	}
	return false
}

func (t EntityType) IsGeography() bool {
	switch t {
	case EntityGeographyLanguageArea, EntityGeographyMunicipality, EntityGeographyPlace:
		return true
	}
	return false
}

// EntityRef points at the owning entity. ID is an opaque string because
// some subsystems key their entities by slug rather than uuid.
type EntityRef struct {
	Type EntityType
	ID   string
}

type (
	Record struct {
		ID          uuid.UUID
		StoragePath string

		OriginalFilename string
		MimeType         string
		FileSizeBytes    int64
		Width            *int
		Height           *int

		// UploadedBy is cleared by a compliance erasure,
		// OriginalUploaderID survives until the record itself is erased.
		UploadedBy         *uuid.UUID
		OriginalUploaderID uuid.UUID

		Entity EntityRef

		Caption   *string
		AltText   *string
		SortOrder int

		DeletedAt      *time.Time
		DeletedBy      *uuid.UUID
		DeletionReason *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Records []*Record
)

func (r *Record) Deleted() bool { return r.DeletedAt != nil }

// File is an upload candidate as handed over by the interface layer.
type File struct {
	Name     string
	MimeType string
	Data     []byte
}

func (f File) SizeBytes() int64 { return int64(len(f.Data)) }

type UploadOptions struct {
	Entity    EntityRef
	Caption   *string
	AltText   *string
	SortOrder int
}

// RecordUpdate carries a partial metadata update; nil fields are left untouched.
type RecordUpdate struct {
	Caption   *string
	AltText   *string
	SortOrder *int
}

// DeletionReasonErasure marks records soft-deleted by a compliance
// erasure request.
const DeletionReasonErasure = "gdpr_erasure_request"

type (
	ExportItem struct {
		ID               uuid.UUID `json:"id"`
		StoragePath      string    `json:"storage_path"`
		OriginalFilename string    `json:"original_filename"`
		FileSizeBytes    int64     `json:"file_size_bytes"`
		EntityType       EntityType `json:"entity_type"`
		EntityID         string    `json:"entity_id"`
		Caption          *string   `json:"caption,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
	}

	// ExportManifest is the data-portability deliverable for one user.
	ExportManifest struct {
		UserID     uuid.UUID    `json:"user_id"`
		TotalFiles int          `json:"total_files"`
		Files      []ExportItem `json:"files"`
	}
)
