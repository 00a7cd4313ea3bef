package cmd

import (
	"github.com/huangsam/foodprint/core"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/spf13/cobra"
)

// categoriesCmd groups the ranking by category.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the ranking grouped by food category.",
	Long: `Group every product by category, best first within each group.

Categories come from the dataset's category column and can be assigned or
overridden in the config file:

  categories:
    fruits: [Mango, Aguacate]
    legumes: [Frijol, Garbanzo]

Products without a category are listed last as Uncategorized.

Examples:
  foodprint categories
  foodprint categories --scenario B --output yaml`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCategories(rootCtx, cfg, source, writer); err != nil {
			contract.LogFatal("Cannot group products", err)
		}
	},
}
