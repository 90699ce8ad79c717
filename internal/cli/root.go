package cli

import (
	"carport_configurator/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

// RootOptions holds what every command shares.
type RootOptions struct {
	// LoadConfig reads the application configuration. Tests replace it.
	LoadConfig func() (*config.AppConfig, error)
}

// NewRootCommand creates the root command of the configurator binary.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{LoadConfig: config.Load})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configurator",
		Short: "Carport configurator service",
		Long:  "Configuration composition, pricing and catalog service for the wood and iron carport lines.",
		// serve is the default so the container entrypoint needs no arguments.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}
