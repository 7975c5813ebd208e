package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intdb "tripbuilder/internal/db"
	router "tripbuilder/internal/http"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, conn, dialect, err := openStore()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx := cmd.Context()
			if migrate {
				if _, err := intdb.Migrate(ctx, conn, dialect); err != nil {
					return err
				}
			} else if missing := intdb.MissingTables(ctx, conn, dialect, intdb.Tables...); len(missing) > 0 {
				slog.Warn("schema incomplete, run tripbuilder migrate", "missing_tables", missing)
			}

			srv := &http.Server{
				Addr:              env.AppAddr,
				Handler:           router.NewRouter(env, conn, dialect),
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       20 * time.Second,
				WriteTimeout:      20 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			serverErrors := make(chan error, 1)
			go func() {
				slog.Info("server listening", "addr", env.AppAddr, "db", dialect)
				serverErrors <- srv.ListenAndServe()
			}()

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(shutdown)

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case sig := <-shutdown:
				slog.Info("shutting down server", "signal", sig.String())
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Error("graceful shutdown did not complete", "error", err)
				return srv.Close()
			}
			slog.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations before serving")
	return cmd
}
