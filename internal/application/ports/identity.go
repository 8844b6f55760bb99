package ports

import (
	"context"

	"github.com/google/uuid"
)

// Identity resolves the current actor, or reports that there is none.
type Identity interface {
	CurrentActorID(ctx context.Context) (uuid.UUID, bool)
}
