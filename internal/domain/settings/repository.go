package settings

import "context"

type Repository interface {
	FetchAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, key, value string) error
}
