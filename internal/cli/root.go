// Package cli wires the tripbuilder commands: serve, migrate, seed and
// create-admin. Every command reads its settings from the environment.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"tripbuilder/internal/config"
	intdb "tripbuilder/internal/db"
	"tripbuilder/internal/logging"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tripbuilder",
		Short:         "Trip catalog and vacation planner",
		Long:          `tripbuilder serves the vacation planner and manages its trip catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newCreateAdminCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore loads the environment, installs the logger and opens the
// configured database.
func openStore() (config.Env, *sql.DB, intdb.Dialect, error) {
	env := config.LoadEnv()
	logging.Setup(env.LogLevel)

	conn, dialect, err := config.ConnectDB(env)
	if err != nil {
		return env, nil, "", err
	}
	return env, conn, dialect, nil
}
