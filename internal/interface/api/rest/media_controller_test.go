package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-media-api/internal/application/ports"
	domain "community-media-api/internal/domain/media"
	"community-media-api/internal/infrastructure/identity"
)

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for name, data := range files {
		fw, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func TestMediaController_GetEntityMedia(t *testing.T) {
	r, jwtService := newTestRouter()

	mediaService := &FakeMediaService{
		FindForEntityFunc: func(_ context.Context, entity domain.EntityRef) (domain.Records, error) {
			assert.Equal(t, domain.EntityPost, entity.Type)
			assert.Equal(t, "42", entity.ID)
			return domain.Records{{ID: uuid.New(), OriginalFilename: "a.jpg"}}, nil
		},
	}
	NewMediaController(r, &FakeUploadService{}, mediaService, noopLogger(), jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entities/post/42/media", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			OriginalFilename string `json:"original_filename"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "a.jpg", resp.Data[0].OriginalFilename)
}

func TestMediaController_GetEntityMedia_UnknownEntityType(t *testing.T) {
	r, jwtService := newTestRouter()
	NewMediaController(r, &FakeUploadService{}, &FakeMediaService{}, noopLogger(), jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entities/banana/42/media", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaController_Upload_RequiresToken(t *testing.T) {
	r, jwtService := newTestRouter()
	NewMediaController(r, &FakeUploadService{}, &FakeMediaService{}, noopLogger(), jwtService)

	body, contentType := multipartBody(t, nil, map[string][]byte{"a.jpg": []byte("data")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entities/post/42/media", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMediaController_Upload(t *testing.T) {
	r, jwtService := newTestRouter()

	actor := uuid.New()
	uploadService := &FakeUploadService{
		UploadMultipleFunc: func(ctx context.Context, files []domain.File, opts domain.UploadOptions, _ ports.ProgressFunc) domain.BatchResult {
			// the auth middleware put the actor on the request context
			gotActor, ok := identity.NewResolver().CurrentActorID(ctx)
			assert.True(t, ok)
			assert.Equal(t, actor, gotActor)

			require.Len(t, files, 2)
			assert.Equal(t, "a.jpg", files[0].Name)
			assert.Equal(t, []byte("first"), files[0].Data)
			assert.Equal(t, domain.EntityPost, opts.Entity.Type)
			require.NotNil(t, opts.Caption)
			assert.Equal(t, "summer", *opts.Caption)
			assert.Equal(t, 3, opts.SortOrder)

			return domain.BatchResult{
				Successful:    domain.Records{{ID: uuid.New()}},
				Failed:        []domain.UploadFailure{{Index: 1, Filename: files[1].Name}},
				TotalUploaded: 1,
				TotalFailed:   1,
			}
		},
	}
	NewMediaController(r, uploadService, &FakeMediaService{}, noopLogger(), jwtService)

	body, contentType := multipartBody(t,
		map[string]string{"caption": "summer", "sort_order": "3"},
		map[string][]byte{"a.jpg": []byte("first"), "b.jpg": []byte("second")},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entities/post/42/media", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", signToken(t, jwtService, actor))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		TotalUploaded int `json:"total_uploaded"`
		TotalFailed   int `json:"total_failed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalUploaded)
	assert.Equal(t, 1, resp.TotalFailed)
}

func TestMediaController_Upload_AllFailed(t *testing.T) {
	r, jwtService := newTestRouter()

	uploadService := &FakeUploadService{
		UploadMultipleFunc: func(_ context.Context, files []domain.File, _ domain.UploadOptions, _ ports.ProgressFunc) domain.BatchResult {
			return domain.BatchResult{
				Failed: []domain.UploadFailure{{
					Index:    0,
					Filename: files[0].Name,
					Errors:   []domain.ValidationError{{Code: domain.CodeInvalidType, Message: "nope"}},
				}},
				TotalFailed: 1,
			}
		},
	}
	NewMediaController(r, uploadService, &FakeMediaService{}, noopLogger(), jwtService)

	body, contentType := multipartBody(t, nil, map[string][]byte{"clip.mp4": []byte("data")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entities/post/42/media", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", signToken(t, jwtService, uuid.New()))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMediaController_Upload_NoFiles(t *testing.T) {
	r, jwtService := newTestRouter()
	NewMediaController(r, &FakeUploadService{}, &FakeMediaService{}, noopLogger(), jwtService)

	body, contentType := multipartBody(t, map[string]string{"caption": "x"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entities/post/42/media", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", signToken(t, jwtService, uuid.New()))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaController_UpdateMedia(t *testing.T) {
	id := uuid.New()
	caption := "updated"

	tests := []struct {
		name       string
		mediaID    string
		body       string
		updateFunc func(ctx context.Context, id uuid.UUID, upd domain.RecordUpdate) (*domain.Record, error)
		wantStatus int
	}{
		{
			name:    "success",
			mediaID: id.String(),
			body:    `{"caption":"updated"}`,
			updateFunc: func(_ context.Context, gotID uuid.UUID, upd domain.RecordUpdate) (*domain.Record, error) {
				assert.Equal(t, id, gotID)
				require.NotNil(t, upd.Caption)
				assert.Equal(t, caption, *upd.Caption)
				return &domain.Record{ID: gotID, Caption: upd.Caption}, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid uuid",
			mediaID:    "not-a-uuid",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "not found",
			mediaID: id.String(),
			body:    `{}`,
			updateFunc: func(_ context.Context, _ uuid.UUID, _ domain.RecordUpdate) (*domain.Record, error) {
				return nil, domain.ErrNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "service failure",
			mediaID: id.String(),
			body:    `{}`,
			updateFunc: func(_ context.Context, _ uuid.UUID, _ domain.RecordUpdate) (*domain.Record, error) {
				return nil, assert.AnError
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, jwtService := newTestRouter()
			NewMediaController(r, &FakeUploadService{}, &FakeMediaService{UpdateMediaFunc: tt.updateFunc}, noopLogger(), jwtService)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/api/v1/media/"+tt.mediaID, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", signToken(t, jwtService, uuid.New()))
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestMediaController_DeleteMedia(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		mediaID    string
		body       string
		deleteFunc func(ctx context.Context, id uuid.UUID, reason string) error
		wantStatus int
	}{
		{
			name:    "success",
			mediaID: id.String(),
			body:    `{"reason":"user requested deletion"}`,
			deleteFunc: func(_ context.Context, gotID uuid.UUID, reason string) error {
				assert.Equal(t, id, gotID)
				assert.Equal(t, "user requested deletion", reason)
				return nil
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing reason",
			mediaID:    id.String(),
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "not found",
			mediaID: id.String(),
			body:    `{"reason":"spam"}`,
			deleteFunc: func(_ context.Context, _ uuid.UUID, _ string) error {
				return domain.ErrNotFound
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, jwtService := newTestRouter()
			NewMediaController(r, &FakeUploadService{}, &FakeMediaService{DeleteMediaFunc: tt.deleteFunc}, noopLogger(), jwtService)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/media/"+tt.mediaID, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", signToken(t, jwtService, uuid.New()))
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
