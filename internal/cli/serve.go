package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/groceries/internal/entrypoint"
)

func newServeCommand(opts *rootOptions, info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.loadConfig(cmd)
			logger := setupLogging(cfg)
			defer logger.Close()

			return entrypoint.Run(cfg, logger, info.Version)
		},
	}
}
