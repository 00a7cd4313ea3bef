package cmd

import (
	"github.com/huangsam/foodprint/core"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd writes the ranking workbook.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ranking as an Excel workbook.",
	Long: `Write an Excel workbook with three sheets:

- Full_Ranking: every product with its indicators, score and tier
- Top_N: the most sustainable products (--top, default 15)
- Least_Sustainable: the least sustainable products, worst first (--bottom, default 10)

The workbook is named foodprint_ranking_<scenario>.xlsx unless --output-file is given.

Examples:
  # Export scenario A
  foodprint export

  # Export scenario B with a custom file name and sheet sizes
  foodprint export --scenario B --top 20 --bottom 5 --output-file ranking_b.xlsx`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, source, writer); err != nil {
			contract.LogFatal("Cannot export workbook", err)
		}
	},
}
