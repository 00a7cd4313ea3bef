// Package core has core logic for loading, scoring and ranking products.
package core

import (
	"context"
	"fmt"
	"math"

	"github.com/huangsam/foodprint/core/algo"
	"github.com/huangsam/foodprint/internal/catalog"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/schema"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Limits on the number of products that can be compared at once.
const (
	MinCompare = 2
	MaxCompare = 5
)

var (
	// ErrInvalidSelection is returned when a command gets the wrong number of product names.
	ErrInvalidSelection = eris.New("invalid product selection")

	// ErrScoreMismatch is returned by verification when a stored score disagrees with the computed one.
	ErrScoreMismatch = eris.New("stored scores do not match")
)

// ExecutorFunc defines the function signature shared by all commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, src contract.ProductSource, w contract.OutputWriter) error

// ExecuteRank scores the dataset under the active scenario and prints the best products.
// Workbook output always receives the full ranking.
func ExecuteRank(ctx context.Context, cfg *contract.Config, src contract.ProductSource, w contract.OutputWriter) error {
	data, err := loadAndScore(ctx, cfg, src)
	if err != nil {
		return err
	}
	if cfg.Output == schema.XLSXOut {
		return w.WriteWorkbook(data.results, cfg)
	}

	report := schema.RankingReport{
		Summary:  algo.Summarize(data.results, cfg.Scenario),
		Products: enrichAt(algo.RankProducts(data.results, cfg.ResultLimit), data.results),
		Notices:  data.notices,
	}
	return w.WriteRanking(report, cfg)
}

// DefaultExportFile names the workbook written when no output file is given.
func DefaultExportFile(scenario schema.ScenarioID) string {
	return fmt.Sprintf("foodprint_ranking_%s.xlsx", scenario)
}

// ExecuteExport writes the full ranking, top and bottom sheets as a workbook.
func ExecuteExport(ctx context.Context, cfg *contract.Config, src contract.ProductSource, w contract.OutputWriter) error {
	data, err := loadAndScore(ctx, cfg, src)
	if err != nil {
		return err
	}

	exportCfg := cfg.Clone()
	exportCfg.Output = schema.XLSXOut
	if exportCfg.OutputFile == "" {
		exportCfg.OutputFile = DefaultExportFile(cfg.Scenario)
	}
	return w.WriteWorkbook(data.results, exportCfg)
}

// ExecuteShow prints the full detail of one product.
func ExecuteShow(ctx context.Context, cfg *contract.Config, src contract.ProductSource, w contract.OutputWriter) error {
	if len(cfg.Names) != 1 {
		return eris.Wrapf(ErrInvalidSelection, "show needs exactly one product name, got %d", len(cfg.Names))
	}

	data, err := loadAndScore(ctx, cfg, src)
	if err != nil {
		return err
	}

	p, err := data.catalog.Lookup(cfg.Names[0])
	if err != nil {
		return err
	}
	r, _ := findResult(data.results, p.Name)
	position := algo.Position(data.results, r.Score)

	alternatives := catalog.Alternatives(p.Name, data.results, cfg.NearestN)
	detail := schema.ProductDetail{
		Product:      algo.Enrich(r, position),
		Position:     position,
		Total:        len(data.results),
		OriginLabel:  schema.OriginLabel(p.Origin),
		NovaLabel:    schema.NovaLabel(p.NOVA),
		Alternatives: enrichAt(alternatives, data.results),
	}
	return w.WriteDetail(detail, cfg)
}

// ExecuteEvaluate scores the candidate product from the config under every scenario
// and places it against the dataset when one is available.
func ExecuteEvaluate(ctx context.Context, cfg *contract.Config, src contract.ProductSource, w contract.OutputWriter) error {
	candidate := schema.Product{ProductIndicators: cfg.Candidate}
	scored, err := algo.ScoreProduct(candidate, cfg.Scenario, cfg.Methodology)
	if err != nil {
		return err
	}

	tier := algo.ClassifyScore(scored.Score)
	eval := schema.Evaluation{
		Indicators: cfg.Candidate,
		Scenario:   cfg.Scenario,
		Score:      scored.Score,
		Tier:       tier,
		Label:      tier.Label(),
		Marker:     tier.Marker(),
		Normalized: scored.Normalized,
		Scores:     scored.Scores,
	}

	data, err := loadAndScore(ctx, cfg, src)
	if err != nil {
		return err
	}
	if len(data.results) > 0 {
		summary := algo.Summarize(data.results, cfg.Scenario)
		eval.HasDataset = true
		eval.DatasetMean = summary.Mean
		eval.DiffFromMean = scored.Score - summary.Mean
		eval.Nearest = enrichAt(algo.NearestByScore(data.results, scored.Score, cfg.NearestN, ""), data.results)
	}
	return w.WriteEvaluation(eval, cfg)
}

// ExecuteCompare prints two to five products side by side, in the order given.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, src contract.ProductSource, w contract.OutputWriter) error {
	if len(cfg.Names) < MinCompare || len(cfg.Names) > MaxCompare {
		return eris.Wrapf(ErrInvalidSelection, "compare needs %d to %d product names, got %d", MinCompare, MaxCompare, len(cfg.Names))
	}

	data, err := loadAndScore(ctx, cfg, src)
	if err != nil {
		return err
	}

	selected := make([]schema.ProductResult, 0, len(cfg.Names))
	seen := make(map[string]struct{}, len(cfg.Names))
	for _, name := range cfg.Names {
		p, err := data.catalog.Lookup(name)
		if err != nil {
			return err
		}
		if _, dup := seen[p.Name]; dup {
			return eris.Wrapf(ErrInvalidSelection, "%s is listed twice", p.Name)
		}
		seen[p.Name] = struct{}{}
		r, _ := findResult(data.results, p.Name)
		selected = append(selected, r)
	}

	return w.WriteComparison(schema.ComparisonResult{
		Scenario: cfg.Scenario,
		Products: enrichAt(selected, data.results),
	}, cfg)
}

// ExecuteCategories prints every product grouped by category, best first within each group.
func ExecuteCategories(ctx context.Context, cfg *contract.Config, src contract.ProductSource, w contract.OutputWriter) error {
	data, err := loadAndScore(ctx, cfg, src)
	if err != nil {
		return err
	}
	ranked := enrichAt(algo.RankProducts(data.results, 0), data.results)
	return w.WriteCategories(catalog.GroupByCategory(ranked), cfg)
}

// ExecuteRobust prints the products that rank in the top N under every configured scenario.
func ExecuteRobust(ctx context.Context, cfg *contract.Config, src contract.ProductSource, w contract.OutputWriter) error {
	data, err := loadAndScore(ctx, cfg, src)
	if err != nil {
		return err
	}

	scenarios := cfg.Methodology.ScenarioIDs()
	robust := enrichAt(algo.ConsensusTop(data.results, scenarios, cfg.RobustTopN), data.results)
	return w.WriteRobust(schema.RobustResult{
		Scenarios: scenarios,
		TopN:      cfg.RobustTopN,
		Products:  robust,
		Groups:    catalog.GroupByCategory(robust),
	}, cfg)
}

// ExecuteVerify recomputes every product and compares it with the scores stored in the dataset.
// The result is always written; ErrScoreMismatch is returned afterwards if anything disagreed.
func ExecuteVerify(ctx context.Context, cfg *contract.Config, src contract.ProductSource, w contract.OutputWriter) error {
	data, err := loadAndScore(ctx, cfg, src)
	if err != nil {
		return err
	}

	result := VerifyScores(data.catalog.Products(), data.results, cfg.Tolerance)
	if err := w.WriteVerification(result, cfg); err != nil {
		return err
	}
	if !result.OK() {
		return eris.Wrapf(ErrScoreMismatch, "%d of %d scores differ by more than %g", len(result.Mismatches), result.Checked, cfg.Tolerance)
	}
	return nil
}

// VerifyScores compares stored scores against computed ones. Products are matched
// to results by name; a product without stored scores counts as skipped.
func VerifyScores(products []schema.Product, results []schema.ProductResult, tolerance float64) schema.VerificationResult {
	out := schema.VerificationResult{Tolerance: tolerance, Mismatches: []schema.ScoreMismatch{}}
	for _, p := range products {
		if len(p.Precomputed) == 0 {
			out.Skipped++
			continue
		}
		r, ok := findResult(results, p.Name)
		if !ok {
			out.Skipped++
			continue
		}
		for _, id := range schema.DefaultScenarios {
			expected, stored := p.Precomputed[id]
			actual, computed := r.Scores[id]
			if !stored || !computed {
				continue
			}
			out.Checked++
			if delta := math.Abs(actual - expected); delta > tolerance {
				out.Mismatches = append(out.Mismatches, schema.ScoreMismatch{
					Name:     p.Name,
					Scenario: id,
					Expected: expected,
					Actual:   actual,
					Delta:    delta,
				})
			}
		}
	}

	zap.L().Debug("Verified stored scores",
		zap.Int("checked", out.Checked),
		zap.Int("skipped", out.Skipped),
		zap.Int("mismatches", len(out.Mismatches)))
	return out
}

// ExecuteMethodology prints the ranges, weights and tiers in effect. It never reads the dataset.
func ExecuteMethodology(_ context.Context, cfg *contract.Config, _ contract.ProductSource, w contract.OutputWriter) error {
	return w.WriteMethodology(cfg.Methodology, cfg)
}
