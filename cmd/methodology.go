package cmd

import (
	"github.com/huangsam/foodprint/core"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/spf13/cobra"
)

// methodologyCmd prints the ranges, weights and tiers in effect.
var methodologyCmd = &cobra.Command{
	Use:   "methodology",
	Short: "Show how scores are computed.",
	Long: `Print the normalization ranges, the weight table and formula of every scenario,
and the tier ladder, including any overrides from the config file.

Every indicator is normalized so that lower raw values score higher:

  normalized = 100 - (value - min) / (max - min) * 100

and the score is the weighted sum of the six normalized values.

Examples:
  foodprint methodology
  foodprint methodology --output yaml`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMethodology(rootCtx, cfg, source, writer); err != nil {
			contract.LogFatal("Cannot show methodology", err)
		}
	},
}
