// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

var _ contract.OutputWriter = &OutWriter{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRanking prints a ranking using the configured output format.
func (ow *OutWriter) WriteRanking(report schema.RankingReport, cfg *contract.Config) error {
	return WriteRankingResults(report, cfg)
}

// WriteWorkbook exports the full result set as a multi-sheet workbook.
func (ow *OutWriter) WriteWorkbook(results []schema.ProductResult, cfg *contract.Config) error {
	return WriteWorkbookResults(results, cfg)
}

// WriteDetail prints one product in full.
func (ow *OutWriter) WriteDetail(detail schema.ProductDetail, cfg *contract.Config) error {
	return WriteDetailResult(detail, cfg)
}

// WriteEvaluation prints the score of a product that is not in the dataset.
func (ow *OutWriter) WriteEvaluation(eval schema.Evaluation, cfg *contract.Config) error {
	return WriteEvaluationResult(eval, cfg)
}

// WriteComparison prints products side by side.
func (ow *OutWriter) WriteComparison(result schema.ComparisonResult, cfg *contract.Config) error {
	return WriteComparisonResults(result, cfg)
}

// WriteCategories prints products grouped by category.
func (ow *OutWriter) WriteCategories(groups []schema.CategoryGroup, cfg *contract.Config) error {
	return WriteCategoryResults(groups, cfg)
}

// WriteRobust prints the products that rank well under every scenario.
func (ow *OutWriter) WriteRobust(result schema.RobustResult, cfg *contract.Config) error {
	return WriteRobustResults(result, cfg)
}

// WriteVerification prints the outcome of a score verification pass.
func (ow *OutWriter) WriteVerification(result schema.VerificationResult, cfg *contract.Config) error {
	return WriteVerificationResults(result, cfg)
}

// WriteMethodology prints the ranges, weights and tiers in use.
func (ow *OutWriter) WriteMethodology(m schema.Methodology, cfg *contract.Config) error {
	return WriteMethodologyDefinitions(m, cfg)
}

// GetMaxTableNameWidth calculates the maximum width for product names in table output
// based on terminal width and the number of score columns shown.
func GetMaxTableNameWidth(cfg *contract.Config, extraColumns int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Score + Tier with borders/padding
	baseWidth := 35
	baseWidth += extraColumns * 10

	// Table borders, separators and padding
	baseWidth += 10

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 50 {
		return 50
	}
	return available
}
