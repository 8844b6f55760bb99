package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"community-media-api/internal/application/ports"
	auditdomain "community-media-api/internal/domain/audit"
	domain "community-media-api/internal/domain/media"
	"community-media-api/internal/infrastructure/mq"
	mediadto "community-media-api/internal/interface/api/rest/dto/media"
)

type MediaManager struct {
	mediaRepository domain.Repository
	auditRepository auditdomain.Repository
	identity        ports.Identity
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
	logger          *zap.Logger
}

func NewMediaManager(
	mediaRepository domain.Repository,
	auditRepository auditdomain.Repository,
	identity ports.Identity,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.MediaService {
	return &MediaManager{
		mediaRepository: mediaRepository,
		auditRepository: auditRepository,
		identity:        identity,
		mq:              mq,
		mCounter:        mCounter,
		logger:          logger,
	}
}

// FindForEntity returns the entity's visible media in display order.
// A failed read yields an empty list, absence of media must never be
// fatal to a rendering caller.
func (mm *MediaManager) FindForEntity(ctx context.Context, entity domain.EntityRef) (domain.Records, error) {
	ms, err := mm.mediaRepository.FetchForEntity(ctx, entity)
	if err != nil {
		mm.logger.Error("FetchForEntity() error",
			zap.String("entity_type", string(entity.Type)),
			zap.String("entity_id", entity.ID),
			zap.Error(err))
		return domain.Records{}, nil
	}

	return ms, nil
}

func (mm *MediaManager) FindByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	return mm.mediaRepository.FetchByID(ctx, id)
}

func (mm *MediaManager) UpdateMedia(ctx context.Context, id uuid.UUID, upd domain.RecordUpdate) (*domain.Record, error) {
	actor, ok := mm.identity.CurrentActorID(ctx)
	if !ok {
		return nil, domain.ErrAuthenticationRequired
	}

	out, err := mm.mediaRepository.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.ErrNotFound
	}

	mm.appendAudit(ctx, actor, auditdomain.ActionUpdate, out.ID)
	mm.publish(mq.ActionUpdated, out)
	mm.mCounter.WithLabelValues("media_updated_total").Inc()

	return out, nil
}

func (mm *MediaManager) DeleteMedia(ctx context.Context, id uuid.UUID, reason string) error {
	actor, ok := mm.identity.CurrentActorID(ctx)
	if !ok {
		return domain.ErrAuthenticationRequired
	}

	out, err := mm.mediaRepository.SoftDelete(ctx, id, actor, reason)
	if err != nil {
		return err
	}
	if out == nil {
		return domain.ErrNotFound
	}

	mm.appendAudit(ctx, actor, auditdomain.ActionDelete, out.ID)
	mm.publish(mq.ActionDeleted, out)
	mm.mCounter.WithLabelValues("media_deleted_total").Inc()

	return nil
}

// ExportUserMedia builds the data-portability manifest. Any failure is
// fatal: a partial export is worse than none.
func (mm *MediaManager) ExportUserMedia(ctx context.Context, userID uuid.UUID) (*domain.ExportManifest, error) {
	ms, err := mm.mediaRepository.FetchByUser(ctx, userID)
	if err != nil {
		return nil, &domain.ComplianceError{Op: "export", Err: err}
	}

	manifest := &domain.ExportManifest{
		UserID:     userID,
		TotalFiles: len(ms),
		Files:      make([]domain.ExportItem, 0, len(ms)),
	}
	for _, m := range ms {
		manifest.Files = append(manifest.Files, domain.ExportItem{
			ID:               m.ID,
			StoragePath:      m.StoragePath,
			OriginalFilename: m.OriginalFilename,
			FileSizeBytes:    m.FileSizeBytes,
			EntityType:       m.Entity.Type,
			EntityID:         m.Entity.ID,
			Caption:          m.Caption,
			CreatedAt:        m.CreatedAt,
		})
	}

	mm.mCounter.WithLabelValues("media_exports_total").Inc()

	return manifest, nil
}

// DeleteUserMedia soft-deletes everything the user uploaded and clears
// uploaded_by. original_uploader_id stays: responsibility for the
// content survives the erasure of its current owner.
func (mm *MediaManager) DeleteUserMedia(ctx context.Context, userID uuid.UUID) (int64, error) {
	actor, ok := mm.identity.CurrentActorID(ctx)
	if !ok {
		return 0, domain.ErrAuthenticationRequired
	}

	count, err := mm.mediaRepository.SoftDeleteByUser(ctx, userID, actor, domain.DeletionReasonErasure)
	if err != nil {
		return 0, &domain.ComplianceError{Op: "erasure", Err: err}
	}

	mm.mCounter.WithLabelValues("media_erasures_total").Inc()

	return count, nil
}

func (mm *MediaManager) appendAudit(ctx context.Context, actor uuid.UUID, action auditdomain.Action, mediaID uuid.UUID) {
	if err := mm.auditRepository.Append(ctx, auditdomain.Entry{
		ActorID: actor,
		Action:  action,
		MediaID: mediaID,
	}); err != nil {
		mm.logger.Error("audit append failed", zap.Stringer("media_id", mediaID), zap.Error(err))
	}
}

func (mm *MediaManager) publish(action string, m *domain.Record) {
	mm.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		MediaID: m.ID.String(),
		Payload: mediadto.ToResponseMedia(*m),
	}
}
