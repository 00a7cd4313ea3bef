package cmd

import (
	"github.com/huangsam/foodprint/core"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/spf13/cobra"
)

// evaluateCmd scores a product given on the command line.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score a new product from its six indicators.",
	Long: `Score a product that is not part of the dataset.

The product is scored under every scenario and classified under the selected one.
When a dataset is available, the result also shows the distance to the dataset mean
and the products with the closest scores.

Values outside the reference ranges are accepted; the score then falls outside 0-100.

Examples:
  # A local, natural product with little waste
  foodprint evaluate --name "Nopal" --cf 0.4 --wf 200 --lu 0.5 --origin 0 --waste 5 --nova 1

  # Same product under the waste-focused scenario, as JSON
  foodprint evaluate --cf 0.4 --wf 200 --lu 0.5 --waste 5 --scenario B --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEvaluate(rootCtx, cfg, source, writer); err != nil {
			contract.LogFatal("Cannot evaluate product", err)
		}
	},
}
