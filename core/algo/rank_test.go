package algo

import (
	"testing"

	"github.com/huangsam/foodprint/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []schema.ProductResult {
	return []schema.ProductResult{
		{Name: "Banana", Score: 88, Scores: map[schema.ScenarioID]float64{"A": 88, "B": 85}},
		{Name: "Beef", Score: 10, Scores: map[schema.ScenarioID]float64{"A": 10, "B": 12}},
		{Name: "Avocado", Score: 92, Scores: map[schema.ScenarioID]float64{"A": 92, "B": 70}},
		{Name: "Bean", Score: 88, Scores: map[schema.ScenarioID]float64{"A": 88, "B": 90}},
		{Name: "Cheese", Score: 35, Scores: map[schema.ScenarioID]float64{"A": 35, "B": 40}},
	}
}

func names(results []schema.ProductResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func TestRankProducts(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected []string
	}{
		{"limit less than total", 3, []string{"Avocado", "Banana", "Bean"}},
		{"limit equal to total", 5, []string{"Avocado", "Banana", "Bean", "Cheese", "Beef"}},
		{"limit greater than total", 15, []string{"Avocado", "Banana", "Bean", "Cheese", "Beef"}},
		{"zero limit returns all", 0, []string{"Avocado", "Banana", "Bean", "Cheese", "Beef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sampleResults()
			ranked := RankProducts(input, tt.limit)
			assert.Equal(t, tt.expected, names(ranked))
			assert.Equal(t, "Banana", input[0].Name, "input must not be reordered")
		})
	}
}

func TestRankProductsEmpty(t *testing.T) {
	assert.Empty(t, RankProducts(nil, 10))
}

func TestBottomProducts(t *testing.T) {
	assert.Equal(t, []string{"Beef", "Cheese"}, names(BottomProducts(sampleResults(), 2)))
	assert.Len(t, BottomProducts(sampleResults(), 10), 5)
	assert.Empty(t, BottomProducts(nil, 10))
}

func TestPosition(t *testing.T) {
	results := sampleResults()
	assert.Equal(t, 1, Position(results, 92))
	assert.Equal(t, 3, Position(results, 88))
	assert.Equal(t, 5, Position(results, 10))
	assert.Equal(t, 0, Position(results, 99))
	assert.Equal(t, 5, Position(results, -1))
}

func TestNearestByScore(t *testing.T) {
	results := sampleResults()

	nearest := NearestByScore(results, 89, 2, "")
	assert.Equal(t, []string{"Banana", "Bean"}, names(nearest))

	nearest = NearestByScore(results, 88, 2, "Banana")
	assert.Equal(t, []string{"Bean", "Avocado"}, names(nearest))

	assert.Len(t, NearestByScore(results, 50, 10, ""), 5)
	assert.Empty(t, NearestByScore(nil, 50, 5, ""))
}

func TestSummarize(t *testing.T) {
	summary := Summarize(sampleResults(), schema.ScenarioA)
	assert.Equal(t, schema.ScenarioA, summary.Scenario)
	assert.Equal(t, 5, summary.Count)
	assert.InDelta(t, (88+10+92+88+35)/5.0, summary.Mean, 1e-9)
	assert.Equal(t, schema.ScoreStat{Name: "Avocado", Score: 92}, summary.Best)
	assert.Equal(t, schema.ScoreStat{Name: "Beef", Score: 10}, summary.Worst)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, schema.ScenarioB)
	assert.Equal(t, 0, summary.Count)
	assert.Zero(t, summary.Mean)
	assert.Empty(t, summary.Best.Name)
}

func TestConsensusTop(t *testing.T) {
	results := sampleResults()
	scenarios := []schema.ScenarioID{schema.ScenarioA, schema.ScenarioB}

	// Top 3 under A: Avocado, Banana, Bean. Under B: Bean, Banana, Avocado.
	robust := ConsensusTop(results, scenarios, 3)
	assert.Equal(t, []string{"Avocado", "Banana", "Bean"}, names(robust))

	// Top 2 under A: Avocado, Banana. Under B: Bean, Banana.
	robust = ConsensusTop(results, scenarios, 2)
	require.Len(t, robust, 1)
	assert.Equal(t, "Banana", robust[0].Name)
}

func TestConsensusTopEdgeCases(t *testing.T) {
	scenarios := []schema.ScenarioID{schema.ScenarioA}
	assert.Nil(t, ConsensusTop(nil, scenarios, 3))
	assert.Nil(t, ConsensusTop(sampleResults(), nil, 3))
	assert.Nil(t, ConsensusTop(sampleResults(), scenarios, 0))

	robust := ConsensusTop(sampleResults(), []schema.ScenarioID{"C"}, 3)
	assert.Empty(t, robust)
}
