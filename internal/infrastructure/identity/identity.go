package identity

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// WithActor stamps the authenticated actor id onto the context. The auth
// middleware is the only writer.
func WithActor(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Resolver reads the current actor back out of the request context.
type Resolver struct{}

func NewResolver() *Resolver { return &Resolver{} }

func (Resolver) CurrentActorID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	return id, ok
}
