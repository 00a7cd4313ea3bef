package cmd

import (
	"github.com/huangsam/foodprint/core"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/spf13/cobra"
)

// verifyCmd checks stored scores against computed ones.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the dataset's stored scores against recomputed ones (fails on mismatch).",
	Long: `Recompute every product and compare it with the Score_A and Score_B columns
shipped in the dataset. Products without stored scores are skipped.

Exits with a non-zero code when any score differs by more than --tolerance,
which makes it usable as a CI gate for published datasets.

Examples:
  foodprint verify --dataset dataset_con_scores_A_y_B.csv
  foodprint verify --tolerance 0.01 --output csv --output-file mismatches.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteVerify(rootCtx, cfg, source, writer); err != nil {
			contract.LogFatal("Verification failed", err)
		}
	},
}
