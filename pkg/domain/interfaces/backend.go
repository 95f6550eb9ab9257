package interfaces

import "context"

// Backend is a persisted key-value capability storing opaque blobs by
// key. Implementations report a missing key with their package's
// ErrKeyNotFound sentinel so callers can tell "absent" from "broken".
type Backend interface {
	// Get retrieves the blob stored under key
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores the blob under key, replacing any existing value
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the blob under key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend
	Close() error
}
