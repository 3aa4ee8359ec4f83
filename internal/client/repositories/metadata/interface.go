// Package metadata is a small key/value store in the client's SQLite
// database. It holds the sealed login session.
package metadata

import (
	"context"
)

// Repository reads and writes opaque values by key. Get reports a missing
// key as common.ErrorNotFound.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
