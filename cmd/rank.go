package cmd

import (
	"github.com/huangsam/foodprint/core"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd ranks the dataset under one scenario.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Show the most sustainable products of the dataset.",
	Long: `Score every product of the dataset and rank them from most to least sustainable.

Each product gets a 0-100 score under the selected scenario and a tier:
Excellent (90+), Very Good (80+), Good (70+), Moderate (60+) or Low.
The footer summarizes the whole dataset: count, mean, best and worst.

Examples:
  # Top 25 products under the default scenario
  foodprint rank

  # Waste-focused scenario, top 10
  foodprint rank --scenario B --limit 10

  # Use a specific dataset
  foodprint rank --dataset data/products.xlsx

  # Export the full ranking as JSON or Parquet
  foodprint rank --output json --output-file ranking.json
  foodprint rank --output parquet --output-file ranking.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(rootCtx, cfg, source, writer); err != nil {
			contract.LogFatal("Cannot rank products", err)
		}
	},
}
