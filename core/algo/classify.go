package algo

import "github.com/huangsam/foodprint/schema"

// ClassifyScore maps a composite score to its tier. Lower bounds are
// inclusive and there is no upper bound, so 105 is still TierExcellent.
func ClassifyScore(score float64) schema.Tier {
	for _, step := range schema.TierLadder {
		if score >= step.Min {
			return step.Tier
		}
	}
	return schema.TierLow
}

// Enrich attaches tier presentation data to a single result.
func Enrich(r schema.ProductResult, rank int) schema.EnrichedProductResult {
	tier := ClassifyScore(r.Score)
	return schema.EnrichedProductResult{
		Rank:          rank,
		Tier:          tier,
		Label:         tier.Label(),
		Marker:        tier.Marker(),
		ProductResult: r,
	}
}

// EnrichProducts adds rank and tier to a list of results in their current order.
func EnrichProducts(results []schema.ProductResult) []schema.EnrichedProductResult {
	output := make([]schema.EnrichedProductResult, len(results))
	for i, r := range results {
		output[i] = Enrich(r, i+1)
	}
	return output
}
