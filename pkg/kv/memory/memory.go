package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/kv"
)

// Backend is an in-memory key-value backend for tests and development
type Backend struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ interfaces.Backend = &Backend{}

// New returns an empty in-memory backend
func New() *Backend {
	return &Backend{
		blobs: make(map[string][]byte),
	}
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	blob, ok := b.blobs[key]
	if !ok {
		return nil, goerr.Wrap(kv.ErrKeyNotFound, "no blob for key", goerr.V("key", key))
	}

	copied := make([]byte, len(blob))
	copy(copied, blob)
	return copied, nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return goerr.New("empty key")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	b.blobs[key] = copied
	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.blobs, key)
	return nil
}

func (b *Backend) Close() error {
	return nil
}
