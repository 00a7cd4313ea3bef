package cmd

import (
	"github.com/huangsam/foodprint/core"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/spf13/cobra"
)

// robustCmd lists products that rank well under every scenario.
var robustCmd = &cobra.Command{
	Use:   "robust",
	Short: "Show the products that rank in the top N of every scenario.",
	Long: `Find the products whose ranking does not depend on the weighting scenario.

A product is robust when it is in the top N (--robust-top, default 10) of every
configured scenario. Robust products are ordered by the selected scenario's score
and grouped by category.

Examples:
  foodprint robust
  foodprint robust --robust-top 5 --scenario B`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRobust(rootCtx, cfg, source, writer); err != nil {
			contract.LogFatal("Cannot find robust products", err)
		}
	},
}
