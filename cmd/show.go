package cmd

import (
	"github.com/huangsam/foodprint/core"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/spf13/cobra"
)

// showCmd prints the detail of one product.
var showCmd = &cobra.Command{
	Use:   "show <product>",
	Short: "Show the score, profile and alternatives of one product.",
	Long: `Print everything known about one product of the dataset: its score and tier,
its position in the ranking, the raw indicators with readable labels, the normalized
profile and better products of the same category.

Names are matched ignoring case and accents, so "platano" finds "Plátano".

Examples:
  foodprint show Mango
  foodprint show platano --scenario B
  foodprint show "Carne de res" --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteShow(rootCtx, cfg, source, writer); err != nil {
			contract.LogFatal("Cannot show product", err)
		}
	},
}
