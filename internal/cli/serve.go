package cli

import (
	"carport_configurator/internal/adapter/http/routes"
	"carport_configurator/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Start the HTTP API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, rootOpts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *RootOptions) error {
	a, err := initApplication(cmd, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Release(); err != nil {
			zap.L().Error("[cli] release failed", zap.Error(err))
		}
	}()

	return routes.Run(a)
}

func initApplication(cmd *cobra.Command, opts *RootOptions) (*app.Application, error) {
	cfg, err := opts.LoadConfig()
	if err != nil {
		return nil, err
	}
	a := app.NewApplication(cfg)
	if err := a.Init(cmd.Context()); err != nil {
		_ = a.Release()
		return nil, err
	}
	return a, nil
}
