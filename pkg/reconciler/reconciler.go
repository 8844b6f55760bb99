package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"community-media-api/internal/application/ports"
	auditdomain "community-media-api/internal/domain/audit"
	mediadomain "community-media-api/internal/domain/media"
)

const (
	sweepInterval  = time.Hour
	auditRetention = 90 * 24 * time.Hour
)

// Reconciler sweeps drift between the blob store and the metadata
// store. Orphans are an accepted consequence of the missing cross-store
// transaction; they are mitigated here, after the fact, not prevented.
type Reconciler struct {
	log             *zap.Logger
	blobs           ports.BlobStore
	mediaRepository mediadomain.Repository
	auditRepository auditdomain.Repository
	mCounter        *prometheus.CounterVec
}

func New(
	logger *zap.Logger,
	blobs ports.BlobStore,
	mediaRepository mediadomain.Repository,
	auditRepository auditdomain.Repository,
	mCounter *prometheus.CounterVec,
) *Reconciler {
	return &Reconciler{
		log:             logger,
		blobs:           blobs,
		mediaRepository: mediaRepository,
		auditRepository: auditRepository,
		mCounter:        mCounter,
	}
}

type OrphanReport struct {
	DeletedCount int
	Errors       []error
}

// Worker runs both maintenance sweeps on a fixed interval until the
// context is cancelled.
func (r *Reconciler) Worker(ctx context.Context) {
	r.log.Info("starting reconciler worker")

	defer func() {
		r.log.Info("reconciler worker gracefully stopped")
	}()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			report := r.CleanupOrphaned(ctx)
			if len(report.Errors) > 0 {
				r.log.Error("orphan sweep finished with errors",
					zap.Int("deleted", report.DeletedCount),
					zap.Int("errors", len(report.Errors)))
			} else {
				r.log.Info("orphan sweep finished", zap.Int("deleted", report.DeletedCount))
			}

			pruned := r.CleanupAuditLog(ctx)
			r.log.Info("audit log pruned", zap.Int64("rows", pruned))
		case <-ctx.Done():
			return
		}
	}
}

// CleanupOrphaned deletes every blob no non-deleted record points at.
// A listing failure aborts the run; a single delete failure is recorded
// and the sweep moves on.
func (r *Reconciler) CleanupOrphaned(ctx context.Context) OrphanReport {
	var report OrphanReport

	blobKeys, err := r.blobs.List(ctx, "")
	if err != nil {
		report.Errors = append(report.Errors, fmt.Errorf("list storage objects: %w", err))
		return report
	}

	paths, err := r.mediaRepository.FetchActiveStoragePaths(ctx)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Errorf("fetch storage paths: %w", err))
		return report
	}

	known := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		known[p] = struct{}{}
	}

	for _, key := range blobKeys {
		if _, ok := known[key]; ok {
			continue
		}
		if err = r.blobs.Remove(ctx, []string{key}); err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("remove orphan %s: %w", key, err))
			continue
		}
		report.DeletedCount++
		r.mCounter.WithLabelValues("orphans_deleted_total").Inc()
	}

	return report
}

// CleanupAuditLog prunes audit entries past retention. Failure yields 0
// rather than an error, this is non-critical maintenance.
func (r *Reconciler) CleanupAuditLog(ctx context.Context) int64 {
	cutoff := time.Now().Add(-auditRetention)

	count, err := r.auditRepository.PruneOlderThan(ctx, cutoff)
	if err != nil {
		r.log.Error("audit log prune failed", zap.Error(err))
		return 0
	}

	return count
}
