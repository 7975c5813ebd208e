package cli

import (
	"fmt"

	intdb "tripbuilder/internal/db"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, conn, dialect, err := openStore()
			if err != nil {
				return err
			}
			defer conn.Close()

			applied, err := intdb.Migrate(cmd.Context(), conn, dialect)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(applied) == 0 {
				fmt.Fprintln(out, "schema is up to date")
				return nil
			}
			for _, m := range applied {
				fmt.Fprintf(out, "applied %03d_%s\n", m.Version, m.Name)
			}
			return nil
		},
	}
}
