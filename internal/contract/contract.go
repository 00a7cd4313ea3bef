// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/foodprint/schema"
)

// ProductSource loads the product catalog.
// This allows the core logic to be tested without reading real dataset files.
type ProductSource interface {
	// Load returns every well-formed product plus notices for rows that were skipped.
	Load(ctx context.Context) ([]schema.Product, []schema.Notice, error)

	// Describe names the underlying source for log and error messages.
	Describe() string
}

// OutputWriter renders results in the configured output format.
// This allows the core logic to be tested without touching stdout or files.
type OutputWriter interface {
	WriteRanking(report schema.RankingReport, cfg *Config) error
	WriteWorkbook(results []schema.ProductResult, cfg *Config) error
	WriteDetail(detail schema.ProductDetail, cfg *Config) error
	WriteEvaluation(eval schema.Evaluation, cfg *Config) error
	WriteComparison(result schema.ComparisonResult, cfg *Config) error
	WriteCategories(groups []schema.CategoryGroup, cfg *Config) error
	WriteRobust(result schema.RobustResult, cfg *Config) error
	WriteVerification(result schema.VerificationResult, cfg *Config) error
	WriteMethodology(m schema.Methodology, cfg *Config) error
}
