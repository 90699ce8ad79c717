package cli

import (
	"fmt"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/infrastructure/seed"

	"github.com/spf13/cobra"
)

// SeedOptions holds the seed command flags.
type SeedOptions struct {
	File string
	Line string
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert catalog entries from a YAML file",
		Long: `Upsert catalog entries into the configured backend.

Without --file the built-in default catalog is used. Entries are matched by id,
so seeding twice leaves the catalog unchanged.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "catalog YAML file (default: built-in catalog)")
	cmd.Flags().StringVar(&opts.Line, "line", "", "only seed this product line (wood|iron)")

	return cmd
}

func runSeed(cmd *cobra.Command, rootOpts *RootOptions, opts *SeedOptions) error {
	var lines []entities.ProductLine
	if opts.Line != "" {
		line, err := entities.ParseProductLine(opts.Line)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	catalog, err := loadCatalog(opts.File)
	if err != nil {
		return err
	}

	a, err := initApplication(cmd, rootOpts)
	if err != nil {
		return err
	}
	defer a.Release()

	counts, err := seed.Apply(cmd.Context(), a.CatalogUseCase(), catalog, lines...)
	if err != nil {
		return err
	}
	for _, line := range entities.ProductLines() {
		if n, ok := counts[line]; ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries\n", line, n)
		}
	}
	return nil
}

func loadCatalog(path string) (*seed.Catalog, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.LoadFile(path)
}
