package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/revisor-lab/revisor/pkg/cli/config"
	"github.com/revisor-lab/revisor/pkg/store"
	"github.com/revisor-lab/revisor/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdStatus() *cli.Command {
	var backendCfg config.Backend

	return &cli.Command{
		Name:  "status",
		Usage: "Show record counts per store",
		Flags: backendCfg.Flags(),
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

			heading := color.New(color.FgCyan, color.Bold)
			label := color.New(color.FgWhite)
			count := color.New(color.FgGreen, color.Bold)

			heading.Fprintf(os.Stdout, "revisor stores (%s backend)\n", backendCfg.Backend())
			rows := []struct {
				name string
				n    int
			}{
				{"audit types", stores.AuditTypes.Count(ctx)},
				{"audits", stores.Audits.Count(ctx)},
				{"checklist executions", stores.Executions.Count(ctx)},
				{"corrective actions", stores.Actions.Count(ctx)},
				{"reports", stores.Reports.Count(ctx)},
			}
			for _, row := range rows {
				label.Fprintf(os.Stdout, "  %-22s", row.name)
				count.Fprintf(os.Stdout, "%d\n", row.n)
			}
			fmt.Fprintln(os.Stdout)
			return nil
		},
	}
}
