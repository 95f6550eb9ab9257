package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/kv/firestore"
	"github.com/revisor-lab/revisor/pkg/kv/fs"
	"github.com/revisor-lab/revisor/pkg/kv/memory"
	"github.com/revisor-lab/revisor/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Backend holds CLI flags for storage backend configuration
type Backend struct {
	backend    string
	dataDir    string
	projectID  string
	databaseID string
}

// Flags returns CLI flags for backend configuration
func (b *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend",
			Usage:       "Storage backend type (memory, fs or firestore)",
			Value:       "fs",
			Sources:     cli.EnvVars("REVISOR_BACKEND"),
			Destination: &b.backend,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Data directory (required when using fs backend)",
			Value:       "./data",
			Sources:     cli.EnvVars("REVISOR_DATA_DIR"),
			Destination: &b.dataDir,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Sources:     cli.EnvVars("REVISOR_FIRESTORE_PROJECT_ID"),
			Destination: &b.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Sources:     cli.EnvVars("REVISOR_FIRESTORE_DATABASE_ID"),
			Destination: &b.databaseID,
		},
	}
}

// Backend returns the configured backend type
func (b *Backend) Backend() string {
	return b.backend
}

// Configure initializes and returns a storage backend. The caller is
// responsible for calling Close() on the returned backend.
func (b *Backend) Configure(ctx context.Context) (interfaces.Backend, error) {
	switch b.backend {
	case "memory":
		logging.Default().Info("Using in-memory backend (data is not persisted)")
		return memory.New(), nil

	case "fs":
		if b.dataDir == "" {
			return nil, goerr.New("data-dir is required when using fs backend")
		}
		backend, err := fs.New(b.dataDir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize fs backend")
		}
		logging.Default().Info("Using filesystem backend", "data_dir", b.dataDir)
		return backend, nil

	case "firestore":
		if b.projectID == "" {
			return nil, goerr.New("firestore-project-id is required when using firestore backend")
		}
		backend, err := firestore.New(ctx, b.projectID, b.databaseID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore backend")
		}
		logging.Default().Info("Using Firestore backend",
			"project_id", b.projectID,
			"database_id", b.databaseID,
		)
		return backend, nil

	default:
		return nil, goerr.New("invalid storage backend", goerr.V("backend", b.backend))
	}
}
