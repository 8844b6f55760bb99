package audit

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionUpload Action = "upload"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Entry is one append-only audit record. Entries are never updated,
// only inserted and pruned by age.
type Entry struct {
	ID        uint64
	ActorID   uuid.UUID
	Action    Action
	MediaID   uuid.UUID
	CreatedAt time.Time
}
