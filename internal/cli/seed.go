package cli

import (
	"fmt"
	"os"

	"tripbuilder/internal/repositories"
	"tripbuilder/internal/services"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load trips from a YAML file into the catalog",
		Long: `Load trips from a YAML file into the catalog. Trips already present
(same country, origin and destination) are skipped, so seeding twice is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}
			trips, err := services.ParseTripSeed(data)
			if err != nil {
				return err
			}

			_, conn, _, err := openStore()
			if err != nil {
				return err
			}
			defer conn.Close()

			svc := services.CatalogService{Trips: repositories.TripRepository{DB: conn}, RequestID: "cli"}
			added, err := svc.Seed(cmd.Context(), trips)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d of %d trips\n", added, len(trips))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "seed/trips.yaml", "YAML file listing trips")
	return cmd
}
