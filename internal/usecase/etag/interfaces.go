package etag

import "context"

// Repository is the durable side of the store.
type Repository interface {
	Get(ctx context.Context, uri string) (string, bool, error)
	Upsert(ctx context.Context, etags map[string]string) error
}
