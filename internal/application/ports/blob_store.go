package ports

import "context"

// BlobStore is the byte-storage collaborator. It shares no transaction
// boundary with the metadata store; callers compensate after the fact.
type BlobStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) error
	Remove(ctx context.Context, paths []string) error
	List(ctx context.Context, prefix string) ([]string, error)
	GetPublicURL(key string) string
	GetBucket() string
}
