package ports

import (
	"context"
)

// IdempotencyStore tracks which record a create request produced, keyed by
// the client's Idempotency-Key scoped to a resource. A key is first reserved,
// then completed with the record ID or released when the create fails.
type IdempotencyStore interface {
	// Reserve claims key for resource. claimed is true when the caller now
	// owns the key. Otherwise id is the completed record, or zero while
	// another request still holds the key.
	Reserve(ctx context.Context, resource, key string) (id int64, claimed bool, err error)
	// Complete records id for a key the caller reserved. The first completed
	// ID is kept.
	Complete(ctx context.Context, resource, key string, id int64) error
	// Release drops an unfinished reservation so the key can be retried.
	Release(ctx context.Context, resource, key string) error
}
