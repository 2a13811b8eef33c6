// Package keystore persists small secrets (the bearer token) on disk,
// sealed with AES-GCM under a key derived from a per-install secret.
package keystore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("keystore: key not found")

// Store is a fixed-key secret store. Implementations must treat Delete of a
// missing key as a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
