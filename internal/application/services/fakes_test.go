package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	auditdomain "community-media-api/internal/domain/audit"
	domain "community-media-api/internal/domain/media"
	settingsdomain "community-media-api/internal/domain/settings"
	"community-media-api/internal/infrastructure/mq"
)

type FakeMediaRepository struct {
	InsertFunc                  func(ctx context.Context, req *domain.Record) (*domain.Record, error)
	FetchByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	FetchForEntityFunc          func(ctx context.Context, entity domain.EntityRef) (domain.Records, error)
	CountForEntityFunc          func(ctx context.Context, entity domain.EntityRef) (int, error)
	UpdateFunc                  func(ctx context.Context, id uuid.UUID, upd domain.RecordUpdate) (*domain.Record, error)
	SoftDeleteFunc              func(ctx context.Context, id, deletedBy uuid.UUID, reason string) (*domain.Record, error)
	FetchByUserFunc             func(ctx context.Context, userID uuid.UUID) (domain.Records, error)
	SoftDeleteByUserFunc        func(ctx context.Context, userID, deletedBy uuid.UUID, reason string) (int64, error)
	FetchActiveStoragePathsFunc func(ctx context.Context) ([]string, error)
}

func (f *FakeMediaRepository) Insert(ctx context.Context, req *domain.Record) (*domain.Record, error) {
	return f.InsertFunc(ctx, req)
}

func (f *FakeMediaRepository) FetchByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	return f.FetchByIDFunc(ctx, id)
}

func (f *FakeMediaRepository) FetchForEntity(ctx context.Context, entity domain.EntityRef) (domain.Records, error) {
	return f.FetchForEntityFunc(ctx, entity)
}

func (f *FakeMediaRepository) CountForEntity(ctx context.Context, entity domain.EntityRef) (int, error) {
	return f.CountForEntityFunc(ctx, entity)
}

func (f *FakeMediaRepository) Update(ctx context.Context, id uuid.UUID, upd domain.RecordUpdate) (*domain.Record, error) {
	return f.UpdateFunc(ctx, id, upd)
}

func (f *FakeMediaRepository) SoftDelete(ctx context.Context, id, deletedBy uuid.UUID, reason string) (*domain.Record, error) {
	return f.SoftDeleteFunc(ctx, id, deletedBy, reason)
}

func (f *FakeMediaRepository) FetchByUser(ctx context.Context, userID uuid.UUID) (domain.Records, error) {
	return f.FetchByUserFunc(ctx, userID)
}

func (f *FakeMediaRepository) SoftDeleteByUser(ctx context.Context, userID, deletedBy uuid.UUID, reason string) (int64, error) {
	return f.SoftDeleteByUserFunc(ctx, userID, deletedBy, reason)
}

func (f *FakeMediaRepository) FetchActiveStoragePaths(ctx context.Context) ([]string, error) {
	return f.FetchActiveStoragePathsFunc(ctx)
}

type FakeAuditRepository struct {
	AppendFunc         func(ctx context.Context, e auditdomain.Entry) error
	PruneOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (f *FakeAuditRepository) Append(ctx context.Context, e auditdomain.Entry) error {
	if f.AppendFunc == nil {
		return nil
	}
	return f.AppendFunc(ctx, e)
}

func (f *FakeAuditRepository) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return f.PruneOlderThanFunc(ctx, cutoff)
}

type FakeSettingsRepository struct {
	FetchAllFunc func(ctx context.Context) (map[string]string, error)
	UpsertFunc   func(ctx context.Context, key, value string) error
}

func (f *FakeSettingsRepository) FetchAll(ctx context.Context) (map[string]string, error) {
	return f.FetchAllFunc(ctx)
}

func (f *FakeSettingsRepository) Upsert(ctx context.Context, key, value string) error {
	return f.UpsertFunc(ctx, key, value)
}

type FakeBlobStore struct {
	PutFunc    func(ctx context.Context, path string, data []byte, contentType string) error
	RemoveFunc func(ctx context.Context, paths []string) error
	ListFunc   func(ctx context.Context, prefix string) ([]string, error)
}

func (f *FakeBlobStore) Put(ctx context.Context, path string, data []byte, contentType string) error {
	if f.PutFunc == nil {
		return nil
	}
	return f.PutFunc(ctx, path, data, contentType)
}

func (f *FakeBlobStore) Remove(ctx context.Context, paths []string) error {
	if f.RemoveFunc == nil {
		return nil
	}
	return f.RemoveFunc(ctx, paths)
}

func (f *FakeBlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	return f.ListFunc(ctx, prefix)
}

func (f *FakeBlobStore) GetPublicURL(key string) string { return "https://test/" + key }
func (f *FakeBlobStore) GetBucket() string              { return "test-bucket" }

type FakeCompressor struct {
	CompressFunc   func(ctx context.Context, f domain.File, entityType domain.EntityType) (domain.File, error)
	DimensionsFunc func(f domain.File) (int, int, error)
}

func (fc *FakeCompressor) Compress(ctx context.Context, f domain.File, entityType domain.EntityType) (domain.File, error) {
	if fc.CompressFunc == nil {
		return f, nil
	}
	return fc.CompressFunc(ctx, f, entityType)
}

func (fc *FakeCompressor) Dimensions(f domain.File) (int, int, error) {
	if fc.DimensionsFunc == nil {
		return 640, 480, nil
	}
	return fc.DimensionsFunc(f)
}

type FakeSettingsService struct {
	GetSettingsFunc    func(ctx context.Context) settingsdomain.MediaSettings
	UpdateSettingsFunc func(ctx context.Context, p settingsdomain.Partial) error
	Invalidated        int
}

func (f *FakeSettingsService) GetSettings(ctx context.Context) settingsdomain.MediaSettings {
	if f.GetSettingsFunc == nil {
		return settingsdomain.Defaults()
	}
	return f.GetSettingsFunc(ctx)
}

func (f *FakeSettingsService) Invalidate() { f.Invalidated++ }

func (f *FakeSettingsService) UpdateSettings(ctx context.Context, p settingsdomain.Partial) error {
	return f.UpdateSettingsFunc(ctx, p)
}

// FakeMQ swallows events into a buffered channel so services never
// block in tests.
type FakeMQ struct {
	in chan mq.Event
}

func NewFakeMQ() *FakeMQ {
	return &FakeMQ{in: make(chan mq.Event, 64)}
}

func (f *FakeMQ) Connect(_ context.Context, _ string) error { return nil }
func (f *FakeMQ) Init() error                               { return nil }
func (f *FakeMQ) PublisherWorker(_ context.Context)         {}
func (f *FakeMQ) GetInputChan() chan mq.Event               { return f.in }
func (f *FakeMQ) GetConn() *amqp091.Connection              { return nil }

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "test",
			Name:      "general_counters",
		},
		[]string{"result"})
}
