package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/revisor-lab/revisor/pkg/cli/config"
	"github.com/revisor-lab/revisor/pkg/store"
	"github.com/revisor-lab/revisor/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var backendCfg config.Backend

	return &cli.Command{
		Name:  "seed",
		Usage: "Manage seeded demo data",
		Flags: backendCfg.Flags(),
		Commands: []*cli.Command{
			{
				Name:  "restore",
				Usage: "Restore the default checklist executions, honoring deleted IDs",
				Action: func(ctx context.Context, c *cli.Command) error {
					backend, err := backendCfg.Configure(ctx)
					if err != nil {
						return goerr.Wrap(err, "failed to initialize storage backend")
					}
					defer func() {
						if err := backend.Close(); err != nil {
							logging.Default().Error("failed to close backend", "error", err.Error())
						}
					}()

					stores := store.New(backend)
					stores.Executions.RestoreDefaults(ctx)
					logging.Default().Info("Restored default checklist executions",
						"count", stores.Executions.Count(ctx))
					return nil
				},
			},
			{
				Name:  "reset",
				Usage: "Clear every store, including seeded data",
				Action: func(ctx context.Context, c *cli.Command) error {
					backend, err := backendCfg.Configure(ctx)
					if err != nil {
						return goerr.Wrap(err, "failed to initialize storage backend")
					}
					defer func() {
						if err := backend.Close(); err != nil {
							logging.Default().Error("failed to close backend", "error", err.Error())
						}
					}()

					stores := store.New(backend)
					stores.AuditTypes.ClearAll(ctx)
					stores.Audits.ClearAll(ctx)
					stores.Executions.ClearAll(ctx)
					stores.Actions.ClearAll(ctx)
					stores.Reports.ClearAll(ctx)

					logging.Default().Info("Cleared all stores")
					return nil
				},
			},
		},
	}
}
