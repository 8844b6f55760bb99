package services

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
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

// UploadPipeline runs the full upload chain: validate, compress, write
// the blob, insert the record, append the audit entry. The blob write
// and the record insert share no transaction; a failed insert is
// compensated by deleting the just-written blob.
type UploadPipeline struct {
	blobs           ports.BlobStore
	mediaRepository domain.Repository
	auditRepository auditdomain.Repository
	validator       ports.Validator
	compressor      ports.Compressor
	identity        ports.Identity
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
	logger          *zap.Logger
}

func NewUploadPipeline(
	blobs ports.BlobStore,
	mediaRepository domain.Repository,
	auditRepository auditdomain.Repository,
	validator ports.Validator,
	compressor ports.Compressor,
	identity ports.Identity,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.UploadService {
	return &UploadPipeline{
		blobs:           blobs,
		mediaRepository: mediaRepository,
		auditRepository: auditRepository,
		validator:       validator,
		compressor:      compressor,
		identity:        identity,
		mq:              mq,
		mCounter:        mCounter,
		logger:          logger,
	}
}

func (up *UploadPipeline) Upload(ctx context.Context, f domain.File, opts domain.UploadOptions) (*domain.Record, error) {
	actor, ok := up.identity.CurrentActorID(ctx)
	if !ok {
		return nil, domain.ErrAuthenticationRequired
	}

	compressed, err := up.compressor.Compress(ctx, f, opts.Entity.Type)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	var width, height *int
	if w, h, dErr := up.compressor.Dimensions(compressed); dErr == nil {
		width, height = &w, &h
	}

	storagePath := up.genStoragePath(actor, opts.Entity, compressed)

	if err = up.blobs.Put(ctx, storagePath, compressed.Data, compressed.MimeType); err != nil {
		return nil, err
	}

	rec := &domain.Record{
		StoragePath:        storagePath,
		OriginalFilename:   sanitizeFileName(f.Name),
		MimeType:           compressed.MimeType,
		FileSizeBytes:      compressed.SizeBytes(),
		Width:              width,
		Height:             height,
		UploadedBy:         &actor,
		OriginalUploaderID: actor,
		Entity:             opts.Entity,
		Caption:            opts.Caption,
		AltText:            opts.AltText,
		SortOrder:          opts.SortOrder,
	}

	out, err := up.mediaRepository.Insert(ctx, rec)
	if err != nil {
		// compensate: the blob must not outlive a failed insert
		if rmErr := up.blobs.Remove(ctx, []string{storagePath}); rmErr != nil {
			up.logger.Error("orphaned blob left behind after failed insert",
				zap.String("storage_path", storagePath), zap.Error(rmErr))
		}
		return nil, err
	}

	// audit is best-effort, never rolls back the upload
	if aErr := up.auditRepository.Append(ctx, auditdomain.Entry{
		ActorID: actor,
		Action:  auditdomain.ActionUpload,
		MediaID: out.ID,
	}); aErr != nil {
		up.logger.Error("audit append failed", zap.Stringer("media_id", out.ID), zap.Error(aErr))
	}

	up.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionUploaded,
		MediaID: out.ID.String(),
		Payload: mediadto.ToResponseMedia(*out),
	}

	up.mCounter.WithLabelValues("media_uploaded_total").Inc()

	return out, nil
}

// UploadMultiple processes files sequentially in input order so
// progress stays monotonic and a mid-batch abort leaves at most one
// file to compensate. One file's failure never aborts the rest.
func (up *UploadPipeline) UploadMultiple(
	ctx context.Context,
	files []domain.File,
	opts domain.UploadOptions,
	onProgress ports.ProgressFunc,
) domain.BatchResult {
	var res domain.BatchResult

	total := len(files)
	done := 0
	progress := func() {
		done++
		if onProgress != nil {
			onProgress(done, total)
		}
	}

	batch := up.validator.ValidateFiles(ctx, files, opts.Entity)

	for idx, fv := range batch.Files {
		if !fv.OK() {
			res.Failed = append(res.Failed, domain.UploadFailure{
				Index:    idx,
				Filename: files[idx].Name,
				Errors:   fv.Errors,
			})
			progress()
			continue
		}

		rec, err := up.Upload(ctx, files[idx], opts)
		if err != nil {
			res.Failed = append(res.Failed, domain.UploadFailure{
				Index:    idx,
				Filename: files[idx].Name,
				Err:      err,
			})
		} else {
			res.Successful = append(res.Successful, rec)
		}
		progress()
	}

	res.TotalUploaded = len(res.Successful)
	res.TotalFailed = len(res.Failed)

	return res
}

// genStoragePath: "<actor>/<entityType>/<entityId>/<ts-nanosec>.<ext>"
// The timestamp component makes paths collision-free and never reused,
// so a dangling reference from a failed insert is unambiguous.
func (up *UploadPipeline) genStoragePath(actor uuid.UUID, entity domain.EntityRef, f domain.File) string {
	ext := strings.ToLower(filepath.Ext(sanitizeFileName(f.Name)))
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(f.MimeType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	if ext == "" {
		ext = ".bin"
	}

	now := time.Now().UTC()
	return fmt.Sprintf(
		"%s/%s/%s/%s%s",
		actor.String(),
		entity.Type,
		entity.ID,
		now.Format("20060102T150405.000000000Z"),
		ext,
	)
}
