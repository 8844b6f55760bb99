package rest

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"community-media-api/internal/application/ports"
	domain "community-media-api/internal/domain/media"
	settingsdomain "community-media-api/internal/domain/settings"
	"community-media-api/internal/infrastructure/jwt"
)

const testJWTSecret = "test-secret"

type FakeUploadService struct {
	UploadFunc         func(ctx context.Context, f domain.File, opts domain.UploadOptions) (*domain.Record, error)
	UploadMultipleFunc func(ctx context.Context, files []domain.File, opts domain.UploadOptions, onProgress ports.ProgressFunc) domain.BatchResult
}

func (f *FakeUploadService) Upload(ctx context.Context, file domain.File, opts domain.UploadOptions) (*domain.Record, error) {
	return f.UploadFunc(ctx, file, opts)
}

func (f *FakeUploadService) UploadMultiple(ctx context.Context, files []domain.File, opts domain.UploadOptions, onProgress ports.ProgressFunc) domain.BatchResult {
	return f.UploadMultipleFunc(ctx, files, opts, onProgress)
}

type FakeMediaService struct {
	FindForEntityFunc   func(ctx context.Context, entity domain.EntityRef) (domain.Records, error)
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	UpdateMediaFunc     func(ctx context.Context, id uuid.UUID, upd domain.RecordUpdate) (*domain.Record, error)
	DeleteMediaFunc     func(ctx context.Context, id uuid.UUID, reason string) error
	ExportUserMediaFunc func(ctx context.Context, userID uuid.UUID) (*domain.ExportManifest, error)
	DeleteUserMediaFunc func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (f *FakeMediaService) FindForEntity(ctx context.Context, entity domain.EntityRef) (domain.Records, error) {
	return f.FindForEntityFunc(ctx, entity)
}

func (f *FakeMediaService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	return f.FindByIDFunc(ctx, id)
}

func (f *FakeMediaService) UpdateMedia(ctx context.Context, id uuid.UUID, upd domain.RecordUpdate) (*domain.Record, error) {
	return f.UpdateMediaFunc(ctx, id, upd)
}

func (f *FakeMediaService) DeleteMedia(ctx context.Context, id uuid.UUID, reason string) error {
	return f.DeleteMediaFunc(ctx, id, reason)
}

func (f *FakeMediaService) ExportUserMedia(ctx context.Context, userID uuid.UUID) (*domain.ExportManifest, error) {
	return f.ExportUserMediaFunc(ctx, userID)
}

func (f *FakeMediaService) DeleteUserMedia(ctx context.Context, userID uuid.UUID) (int64, error) {
	return f.DeleteUserMediaFunc(ctx, userID)
}

type FakeSettingsService struct {
	GetSettingsFunc    func(ctx context.Context) settingsdomain.MediaSettings
	UpdateSettingsFunc func(ctx context.Context, p settingsdomain.Partial) error
}

func (f *FakeSettingsService) GetSettings(ctx context.Context) settingsdomain.MediaSettings {
	if f.GetSettingsFunc == nil {
		return settingsdomain.Defaults()
	}
	return f.GetSettingsFunc(ctx)
}

func (f *FakeSettingsService) Invalidate() {}

func (f *FakeSettingsService) UpdateSettings(ctx context.Context, p settingsdomain.Partial) error {
	return f.UpdateSettingsFunc(ctx, p)
}

func newTestRouter() (*gin.Engine, *jwt.Service) {
	gin.SetMode(gin.TestMode)
	return gin.New(), jwt.New(testJWTSecret)
}

func signToken(t *testing.T, jwtService *jwt.Service, userID uuid.UUID) string {
	t.Helper()

	token, err := jwtService.GenerateJWT(userID.String(), "user", time.Hour)
	require.NoError(t, err)

	return "Bearer " + token
}

func noopLogger() *zap.Logger { return zap.NewNop() }
