package algo

import (
	"math"
	"slices"
	"sort"

	"github.com/huangsam/foodprint/schema"
)

// sortByScore orders results by score descending, then by name.
func sortByScore(results []schema.ProductResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Name < results[j].Name
	})
}

// RankProducts returns a sorted copy of the results, best first, truncated to
// 'limit'. A limit of zero or less, or one above the number of results,
// returns everything.
func RankProducts(results []schema.ProductResult, limit int) []schema.ProductResult {
	ranked := slices.Clone(results)
	sortByScore(ranked)
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

// BottomProducts returns the 'limit' least sustainable results, worst first.
func BottomProducts(results []schema.ProductResult, limit int) []schema.ProductResult {
	ranked := slices.Clone(results)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score < ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

// Position counts the results scoring at least as high as 'score'.
// For a product taken from the results this is its 1-based rank, with ties sharing the worse rank.
func Position(results []schema.ProductResult, score float64) int {
	count := 0
	for _, r := range results {
		if r.Score >= score {
			count++
		}
	}
	return count
}

// NearestByScore returns up to n results closest in score, skipping 'exclude' by name.
func NearestByScore(results []schema.ProductResult, score float64, n int, exclude string) []schema.ProductResult {
	candidates := make([]schema.ProductResult, 0, len(results))
	for _, r := range results {
		if exclude != "" && r.Name == exclude {
			continue
		}
		candidates = append(candidates, r)
	}
	sort.Slice(candidates, func(i, j int) bool {
		di := math.Abs(candidates[i].Score - score)
		dj := math.Abs(candidates[j].Score - score)
		if di != dj {
			return di < dj
		}
		return candidates[i].Name < candidates[j].Name
	})
	if n >= 0 && len(candidates) > n {
		return candidates[:n]
	}
	return candidates
}

// Summarize computes count, mean, best and worst over the results.
func Summarize(results []schema.ProductResult, scenario schema.ScenarioID) schema.RankingSummary {
	summary := schema.RankingSummary{Scenario: scenario, Count: len(results)}
	if len(results) == 0 {
		return summary
	}

	ranked := RankProducts(results, 0)
	var total float64
	for _, r := range ranked {
		total += r.Score
	}
	summary.Mean = total / float64(len(ranked))

	best, worst := ranked[0], ranked[len(ranked)-1]
	summary.Best = schema.ScoreStat{Name: best.Name, Score: best.Score}
	summary.Worst = schema.ScoreStat{Name: worst.Name, Score: worst.Score}
	return summary
}

// ConsensusTop returns the results that rank within the top n under every
// given scenario, ordered by the active score. A scenario missing from a
// result's Scores map excludes that result.
func ConsensusTop(results []schema.ProductResult, scenarios []schema.ScenarioID, n int) []schema.ProductResult {
	if len(results) == 0 || len(scenarios) == 0 || n <= 0 {
		return nil
	}

	hits := make(map[string]int, len(results))
	for _, id := range scenarios {
		byScenario := make([]schema.ProductResult, 0, len(results))
		for _, r := range results {
			score, ok := r.Scores[id]
			if !ok {
				continue
			}
			clone := r
			clone.Score = score
			byScenario = append(byScenario, clone)
		}
		for _, r := range RankProducts(byScenario, n) {
			hits[r.Name]++
		}
	}

	var robust []schema.ProductResult
	for _, r := range results {
		if hits[r.Name] == len(scenarios) {
			robust = append(robust, r)
		}
	}
	return RankProducts(robust, 0)
}
