package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/foodprint/core/algo"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/internal/parquet"
	"github.com/huangsam/foodprint/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Scenario:    schema.ScenarioA,
		Methodology: schema.DefaultMethodology(),
		ResultLimit: contract.DefaultResultLimit,
		TopN:        contract.DefaultTopN,
		BottomN:     contract.DefaultBottomN,
		Precision:   1,
		Output:      schema.TextOut,
		Width:       120,
	}
}

func formatOne(v float64) string {
	fmtFloat, _ := createFormatters(1)
	return fmtFloat(v)
}

func makeReport(t *testing.T, n, limit int) schema.RankingReport {
	t.Helper()
	results := makeResults(t, n)
	return schema.RankingReport{
		Summary:  algo.Summarize(results, schema.ScenarioA),
		Products: algo.EnrichProducts(algo.RankProducts(results, limit)),
	}
}

func TestWriteRankingTable(t *testing.T) {
	report := makeReport(t, 5, 3)
	report.Notices = []schema.Notice{{Source: "x.csv", Line: 4, Message: "bad"}}

	var buf bytes.Buffer
	require.NoError(t, writeRankingTable(&buf, report, testConfig(), formatOne))

	out := buf.String()
	assert.Contains(t, out, "Product 00")
	assert.Contains(t, out, "Product 02")
	assert.NotContains(t, out, "Product 03")
	assert.Contains(t, out, "Excellent")
	assert.Contains(t, out, "Showing 3 of 5 products under scenario A")
	assert.Contains(t, out, "Best: Product 00 (100.0)")
	assert.Contains(t, out, "Skipped 1 dataset rows")
}

func TestWriteRankingTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	report := schema.RankingReport{Summary: schema.RankingSummary{Scenario: schema.ScenarioB}}
	require.NoError(t, writeRankingTable(&buf, report, testConfig(), formatOne))
	assert.Contains(t, buf.String(), "No products to rank under scenario B")
}

func TestWriteRankingCSV(t *testing.T) {
	report := makeReport(t, 2, 0)

	var buf bytes.Buffer
	require.NoError(t, writeRankingCSV(&buf, report.Products, schema.DefaultScenarios, formatOne))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "rank,product,category,CF_kgCO2eq_kg,WF_L_kg,LU_m2_kg,Origin_Score,Waste_pct,NOVA,scenario,score,tier,score_A,score_B", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,Product 00,Fruits,0.3,131,0.3,0,3,1,A,100.0,Excellent,100.0,"))
}

func TestWriteRankingResultsJSON(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "ranking.json")

	require.NoError(t, WriteRankingResults(makeReport(t, 3, 0), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var decoded schema.RankingReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 3, decoded.Summary.Count)
	require.Len(t, decoded.Products, 3)
	assert.Equal(t, 1, decoded.Products[0].Rank)
	assert.Equal(t, schema.TierExcellent, decoded.Products[0].Tier)
}

func TestWriteRankingResultsYAML(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.YAMLOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "ranking.yaml")

	require.NoError(t, WriteRankingResults(makeReport(t, 1, 0), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "products:")
	assert.Contains(t, string(data), "Product 00")
}

func TestWriteRankingResultsParquet(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.ParquetOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "ranking.parquet")

	require.NoError(t, WriteRankingResults(makeReport(t, 4, 0), cfg))

	rows, err := parquet.ReadProductScoresParquet(cfg.OutputFile)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Product 00", rows[0].Product)
	assert.Equal(t, int32(1), rows[0].Rank)
	require.NotNil(t, rows[0].ScoreB)
}

func TestWriteRankingResultsXLSX(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.XLSXOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "ranking.xlsx")

	require.NoError(t, WriteRankingResults(makeReport(t, 4, 0), cfg))

	info, err := os.Stat(cfg.OutputFile)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestGetMaxTableNameWidth(t *testing.T) {
	cfg := testConfig()

	cfg.Width = 40
	assert.Equal(t, 15, GetMaxTableNameWidth(cfg, 2))

	cfg.Width = 300
	assert.Equal(t, 50, GetMaxTableNameWidth(cfg, 2))

	cfg.Width = 100
	assert.Equal(t, 35, GetMaxTableNameWidth(cfg, 2))
}
