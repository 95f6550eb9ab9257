package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/kv"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type blobDocument struct {
	Value     []byte    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// Backend stores each key as a Firestore document in a flat collection
type Backend struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.Backend = &Backend{}

type Option func(*Backend)

// WithCollectionPrefix namespaces the blob collection, mainly for
// sharing one database between environments.
func WithCollectionPrefix(prefix string) Option {
	return func(b *Backend) {
		b.collectionPrefix = prefix
	}
}

// New creates a Firestore-backed key-value backend
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Backend, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	b := &Backend{client: client}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func (b *Backend) collection() string {
	if b.collectionPrefix != "" {
		return b.collectionPrefix + "_kv"
	}
	return "kv"
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	doc, err := b.client.Collection(b.collection()).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(kv.ErrKeyNotFound, "no blob for key", goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to get blob", goerr.V("key", key))
	}

	var blob blobDocument
	if err := doc.DataTo(&blob); err != nil {
		return nil, goerr.Wrap(err, "failed to decode blob document", goerr.V("key", key))
	}
	return blob.Value, nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return goerr.New("empty key")
	}

	_, err := b.client.Collection(b.collection()).Doc(key).Set(ctx, blobDocument{
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to put blob", goerr.V("key", key))
	}
	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	if _, err := b.client.Collection(b.collection()).Doc(key).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete blob", goerr.V("key", key))
	}
	return nil
}

func (b *Backend) Close() error {
	return b.client.Close()
}
