package audit

import (
	"context"
	"time"
)

type Repository interface {
	Append(ctx context.Context, e Entry) error
	// PruneOlderThan removes entries created before the cutoff and
	// returns how many rows went away.
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
