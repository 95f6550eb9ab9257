package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/revisor-lab/revisor/pkg/cli/config"
	httpctrl "github.com/revisor-lab/revisor/pkg/controller/http"
	"github.com/revisor-lab/revisor/pkg/store"
	"github.com/revisor-lab/revisor/pkg/usecase"
	"github.com/revisor-lab/revisor/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var noAuthn bool
	var backendCfg config.Backend
	var appCfg config.App

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("REVISOR_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "no-authn",
			Usage:       "Skip authentication (development only)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("REVISOR_NO_AUTHN"),
			Destination: &noAuthn,
		},
	}

	// Add shared config flags
	flags = append(flags, backendCfg.Flags()...)
	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
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

			authCfg, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load application configuration")
			}

			if noAuthn {
				logging.Default().Warn("Running without authentication (development only)")
			}

			stores := store.New(backend)
			uc := usecase.New(stores, backend, usecase.WithAuthConfig(authCfg))

			handler := httpctrl.New(uc, httpctrl.WithNoAuthn(noAuthn))
			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "backend", backendCfg.Backend())
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
