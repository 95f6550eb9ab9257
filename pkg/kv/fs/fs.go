package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/kv"
)

// Backend stores each key as a file under a root directory. It is
// intentionally simple: single-process, last-write-wins, no locking
// beyond a process-local mutex.
type Backend struct {
	mu   sync.Mutex
	root string
}

var _ interfaces.Backend = &Backend{}

// New returns a filesystem backend rooted at root, creating the
// directory if needed.
func New(root string) (*Backend, error) {
	if root == "" {
		return nil, goerr.New("fs backend root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create fs backend root", goerr.V("root", root))
	}
	return &Backend{root: root}, nil
}

// sanitizeKey forbids path traversal, absolute paths and empty keys so
// a key can never escape the root.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", goerr.New("empty key")
	}
	if strings.Contains(key, "..") {
		return "", goerr.New("key contains '..'", goerr.V("key", key))
	}
	if strings.HasPrefix(key, "/") {
		return "", goerr.New("absolute key", goerr.V("key", key))
	}
	clean := filepath.ToSlash(filepath.Clean(key))
	if strings.HasPrefix(clean, "..") {
		return "", goerr.New("key escapes root", goerr.V("key", key))
	}
	return clean + ".json", nil
}

func (b *Backend) pathFor(key string) (string, error) {
	name, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(b.root, name), nil
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := b.pathFor(key)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(kv.ErrKeyNotFound, "no blob for key", goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to read blob", goerr.V("key", key))
	}
	return data, nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	path, err := b.pathFor(key)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return goerr.Wrap(err, "failed to write blob", goerr.V("key", key))
	}
	if err := os.Rename(tmp, path); err != nil {
		return goerr.Wrap(err, "failed to commit blob", goerr.V("key", key))
	}
	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	path, err := b.pathFor(key)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return goerr.Wrap(err, "failed to delete blob", goerr.V("key", key))
	}
	return nil
}

func (b *Backend) Close() error {
	return nil
}
