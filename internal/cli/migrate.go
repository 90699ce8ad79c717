package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the storage of both product lines",
		Long: `Create the tables of the wood and iron product lines in the configured backend.

DynamoDB gets the catalog and configurations tables of each line; Postgres gets
the per-line schema with its foreign keys and checks. Running it again is a no-op.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initApplication(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer a.Release()

			if err := a.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "storage ready (%s)\n", a.Config().Storage.Backend)
			return nil
		},
	}
}
