package parquet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/foodprint/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEnriched() []schema.EnrichedProductResult {
	return []schema.EnrichedProductResult{
		{
			Rank:  1,
			Tier:  schema.TierExcellent,
			Label: "Excellent",
			ProductResult: schema.ProductResult{
				Name:       "Frijol",
				Category:   "Legumes",
				Indicators: schema.ProductIndicators{Name: "Frijol", CF: 0.8, WF: 5053, LU: 2.1, Origin: 0, Waste: 4.5, NOVA: 1},
				Scenario:   schema.ScenarioA,
				Score:      91.2,
				Scores:     map[schema.ScenarioID]float64{schema.ScenarioA: 91.2, schema.ScenarioB: 90.4},
			},
		},
		{
			Rank:  2,
			Tier:  schema.TierLow,
			Label: "Low",
			ProductResult: schema.ProductResult{
				Name:       "Res",
				Indicators: schema.ProductIndicators{Name: "Res", CF: 60, WF: 15415, LU: 326, Origin: 100, Waste: 20, NOVA: 1},
				Scenario:   schema.ScenarioA,
				Score:      12.5,
				Scores:     map[schema.ScenarioID]float64{schema.ScenarioA: 12.5},
			},
		},
	}
}

func TestProductScoreStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(ProductScore))
	require.NotNil(t, s)

	expectedColumns := []string{
		"rank", "product", "category",
		"cf_kgco2eq_kg", "wf_l_kg", "lu_m2_kg", "origin_score", "waste_pct", "nova",
		"scenario", "score", "tier", "score_a", "score_b",
	}
	for _, colName := range expectedColumns {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertEnrichedProducts(t *testing.T) {
	rows := ConvertEnrichedProducts(sampleEnriched())
	require.Len(t, rows, 2)

	assert.Equal(t, int32(1), rows[0].Rank)
	assert.Equal(t, "Frijol", rows[0].Product)
	require.NotNil(t, rows[0].Category)
	assert.Equal(t, "Legumes", *rows[0].Category)
	assert.Equal(t, "A", rows[0].Scenario)
	assert.Equal(t, "Excellent", rows[0].Tier)
	require.NotNil(t, rows[0].ScoreB)
	assert.Equal(t, 90.4, *rows[0].ScoreB)

	assert.Nil(t, rows[1].Category)
	assert.Nil(t, rows[1].ScoreB)
	require.NotNil(t, rows[1].ScoreA)
	assert.Equal(t, 12.5, *rows[1].ScoreA)
}

func TestWriteAndReadProductScoresParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "scores.parquet")
	data := ConvertEnrichedProducts(sampleEnriched())

	require.NoError(t, WriteProductScoresParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	readData, err := ReadProductScoresParquet(outputPath)
	require.NoError(t, err)
	require.Len(t, readData, len(data))

	for i := range data {
		assert.Equal(t, data[i].Product, readData[i].Product)
		assert.Equal(t, data[i].NOVA, readData[i].NOVA)
		assert.InDelta(t, data[i].Score, readData[i].Score, 1e-9)
		assert.InDelta(t, data[i].WF, readData[i].WF, 1e-9)
	}
	require.NotNil(t, readData[0].Category)
	assert.Equal(t, "Legumes", *readData[0].Category)
	assert.Nil(t, readData[1].ScoreB)
}

func TestWriteProductScoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProductScores(&buf, []ProductScore{}))
	assert.Greater(t, buf.Len(), 0, "An empty file still has a footer")
}

func TestWriteProductScoresParquetBadPath(t *testing.T) {
	err := WriteProductScoresParquet(nil, filepath.Join(t.TempDir(), "missing", "x.parquet"))
	assert.Error(t, err)
}

func TestReadProductScoresParquetMissing(t *testing.T) {
	_, err := ReadProductScoresParquet(filepath.Join(t.TempDir(), "nope.parquet"))
	assert.Error(t, err)
}

func TestToProducts(t *testing.T) {
	products := ToProducts(ConvertEnrichedProducts(sampleEnriched()))
	require.Len(t, products, 2)

	assert.Equal(t, "Frijol", products[0].Name)
	assert.Equal(t, "Legumes", products[0].Category)
	assert.Equal(t, 1, products[0].NOVA)
	assert.Equal(t, 91.2, products[0].Precomputed[schema.ScenarioA])
	assert.Equal(t, 90.4, products[0].Precomputed[schema.ScenarioB])

	assert.Empty(t, products[1].Category)
	_, hasB := products[1].Precomputed[schema.ScenarioB]
	assert.False(t, hasB)
}
