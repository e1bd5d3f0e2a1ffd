package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/groceries/internal/entrypoint"
)

func newSeedCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default item types and items if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.loadConfig(cmd)
			logger := setupLogging(cfg)
			defer logger.Close()

			result, err := entrypoint.Seed(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %d item types and %d items\n", result.TypesCreated, result.ItemsCreated)
			return nil
		},
	}
}
