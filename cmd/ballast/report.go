package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ballast-dev/ballast/internal/cli/config"
	"github.com/ballast-dev/ballast/internal/exercise"
	"github.com/ballast-dev/ballast/internal/universe"
)

var reportTop int

func init() {
	reportCmd.Flags().IntVar(&reportTop, "top", 15, "number of packages to list")
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run a pass and summarize the touched type universe",
	Long: `Report executes the same pass as run, then queries the catalog for the
packages that contributed the most retained types. Useful for checking
what a given build actually carries before handing the artifact to the
analysis tooling.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = &config.Config{}
		}

		logger := newLogger(cfg.Verbose)
		defer logger.Sync()

		rep := exercise.Run(context.Background(), cfg, logger)
		logger.Info("pass complete", zap.Int("types", rep.Universe.Types))

		type pkgCount struct {
			pkg   string
			count int
		}
		var counts []pkgCount
		for _, pkg := range universe.Packages() {
			counts = append(counts, pkgCount{pkg, len(universe.TypesInPackage(pkg))})
		}
		sort.Slice(counts, func(i, j int) bool {
			if counts[i].count != counts[j].count {
				return counts[i].count > counts[j].count
			}
			return counts[i].pkg < counts[j].pkg
		})

		fmt.Printf("Catalog: %d types across %d packages\n",
			universe.CatalogSize(), len(counts))
		for i, c := range counts {
			if i >= reportTop {
				break
			}
			fmt.Printf("%6d  %s\n", c.count, c.pkg)
		}
	},
}
