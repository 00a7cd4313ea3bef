package cmd

import (
	"github.com/huangsam/foodprint/core"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd compares products side by side.
var compareCmd = &cobra.Command{
	Use:   "compare <product> <product> [product...]",
	Short: "Compare two to five products side by side.",
	Long: `Compare the scores, tiers and normalized indicators of two to five products.

Products are shown in the order given. Each indicator is printed as the raw value
followed by its normalized value, where 100 is best.

Examples:
  foodprint compare Frijol Res
  foodprint compare Mango Aguacate Plátano --scenario B
  foodprint compare Frijol Garbanzo --output csv --output-file legumes.csv`,
	Args:    cobra.RangeArgs(core.MinCompare, core.MaxCompare),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCompare(rootCtx, cfg, source, writer); err != nil {
			contract.LogFatal("Cannot compare products", err)
		}
	},
}
