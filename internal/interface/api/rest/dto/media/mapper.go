package media

import (
	domain "community-media-api/internal/domain/media"
)

func ToResponseMedia(m domain.Record) Media {
	var out = Media{
		ID:               m.ID,
		EntityType:       string(m.Entity.Type),
		EntityID:         m.Entity.ID,
		OriginalFilename: m.OriginalFilename,
		MimeType:         m.MimeType,
		FileSizeBytes:    m.FileSizeBytes,
		Width:            m.Width,
		Height:           m.Height,
		Caption:          m.Caption,
		AltText:          m.AltText,
		SortOrder:        m.SortOrder,
		StoragePath:      m.StoragePath,
		CreatedAt:        m.CreatedAt,
	}

	return out
}

func ToResponseMediaList(ms domain.Records) MediaList {
	out := make(MediaList, len(ms))
	for idx, m := range ms {
		out[idx] = ToResponseMedia(*m)
	}

	return out
}

func ToBatchResponse(res domain.BatchResult) BatchResponse {
	out := BatchResponse{
		Successful:    ToResponseMediaList(res.Successful),
		Failed:        make([]BatchFailure, 0, len(res.Failed)),
		TotalUploaded: res.TotalUploaded,
		TotalFailed:   res.TotalFailed,
	}

	for _, f := range res.Failed {
		bf := BatchFailure{
			Index:    f.Index,
			Filename: f.Filename,
		}
		for _, ve := range f.Errors {
			bf.Errors = append(bf.Errors, BatchFailureError{
				Code:    string(ve.Code),
				Message: ve.Message,
			})
		}
		if f.Err != nil {
			bf.Reason = f.Err.Error()
		}
		out.Failed = append(out.Failed, bf)
	}

	return out
}
