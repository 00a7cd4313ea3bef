package core

import (
	"context"

	"github.com/huangsam/foodprint/core/algo"
	"github.com/huangsam/foodprint/internal/catalog"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/internal/dataset"
	"github.com/huangsam/foodprint/schema"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// loaded is a dataset scored under the active scenario.
type loaded struct {
	catalog *catalog.Catalog
	results []schema.ProductResult
	notices []schema.Notice
}

// loadAndScore reads the products and scores every one of them. A missing
// dataset is not fatal: it is logged and an empty catalog is returned.
func loadAndScore(ctx context.Context, cfg *contract.Config, src contract.ProductSource) (*loaded, error) {
	products, notices, err := src.Load(ctx)
	logNotices(notices)
	if err != nil {
		if !eris.Is(err, dataset.ErrNoDataset) {
			return nil, eris.Wrapf(err, "cannot load %s", src.Describe())
		}
		contract.LogWarn("No dataset available, continuing without products", err)
		notices = append(notices, schema.Notice{Source: src.Describe(), Message: "dataset not found"})
		products = nil
	}

	cat := catalog.New(products, cfg.Categories)
	results, err := algo.ScoreProducts(cat.Products(), cfg.Scenario, cfg.Methodology)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("Scored products",
		zap.String("source", src.Describe()),
		zap.String("scenario", string(cfg.Scenario)),
		zap.Int("products", len(results)),
		zap.Int("notices", len(notices)))

	return &loaded{catalog: cat, results: results, notices: notices}, nil
}

func logNotices(notices []schema.Notice) {
	for _, n := range notices {
		zap.L().Warn("Skipped dataset row",
			zap.String("source", n.Source),
			zap.Int("line", n.Line),
			zap.String("reason", n.Message))
	}
}

// enrichAt attaches tiers to the selected results, ranking each against the full set.
func enrichAt(selected, all []schema.ProductResult) []schema.EnrichedProductResult {
	out := make([]schema.EnrichedProductResult, len(selected))
	for i, r := range selected {
		out[i] = algo.Enrich(r, algo.Position(all, r.Score))
	}
	return out
}

// findResult returns the scored result of a catalog product.
func findResult(results []schema.ProductResult, name string) (schema.ProductResult, bool) {
	for _, r := range results {
		if r.Name == name {
			return r, true
		}
	}
	return schema.ProductResult{}, false
}
