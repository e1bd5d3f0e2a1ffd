// Package cli defines the groceries command line: serve (the default), seed
// and version.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/groceries/internal/config"
	"github.com/mrlokans/groceries/internal/logging"
)

// BuildInfo is set at build time via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
}

type rootOptions struct {
	databasePath string
	logLevel     string
	readOnly     bool
}

// NewRootCommand returns the groceries command tree. Running it without a
// subcommand starts the server.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	serveCmd := newServeCommand(opts, info)

	rootCmd := &cobra.Command{
		Use:           "groceries",
		Short:         "Grocery list HTTP API",
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          serveCmd.RunE,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.databasePath, "database", "", "SQLite database path (overrides DATABASE_PATH)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides LOG_LEVEL)")
	rootCmd.Flags().BoolVar(&opts.readOnly, "read-only", false, "reject every write request (overrides READ_ONLY)")
	serveCmd.Flags().BoolVar(&opts.readOnly, "read-only", false, "reject every write request (overrides READ_ONLY)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newSeedCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// loadConfig reads the environment and applies flag overrides.
func (o *rootOptions) loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.NewConfig()
	if o.databasePath != "" {
		cfg.Database.Path = o.databasePath
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if f := cmd.Flags().Lookup("read-only"); f != nil && f.Changed {
		cfg.Mode.ReadOnly = o.readOnly
	}
	return cfg
}

func setupLogging(cfg *config.Config) *logging.Logger {
	return logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		Format: string(cfg.Log.Format),
		File:   cfg.Log.File,
	})
}
