package outwriter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/foodprint/core/algo"
	"github.com/huangsam/foodprint/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteDetailText(t *testing.T) {
	results := makeResults(t, 4)
	ranked := algo.EnrichProducts(algo.RankProducts(results, 0))
	detail := schema.ProductDetail{
		Product:      ranked[2],
		Position:     3,
		Total:        4,
		OriginLabel:  schema.OriginLabel(0),
		NovaLabel:    schema.NovaLabel(1),
		Alternatives: ranked[:2],
	}

	var buf bytes.Buffer
	require.NoError(t, writeDetailText(&buf, detail, testConfig(), formatOne))

	out := buf.String()
	assert.Contains(t, out, "Product 02 (Fruits)")
	assert.Contains(t, out, "Position: 3 of 4")
	assert.Contains(t, out, "All scenarios: A ")
	assert.Contains(t, out, "| B ")
	assert.Contains(t, out, "Local")
	assert.Contains(t, out, "Natural")
	assert.Contains(t, out, "Better alternatives in Fruits:")
	assert.Contains(t, out, "Product 00")
}

func TestWriteEvaluationText(t *testing.T) {
	res, err := algo.ComputeScore(schema.ProductIndicators{Name: "New product", CF: 0.3, WF: 131, LU: 0.3, Origin: 50, Waste: 3, NOVA: 1}, schema.ScenarioA, schema.DefaultMethodology())
	require.NoError(t, err)

	eval := schema.Evaluation{
		Indicators:   schema.ProductIndicators{Name: "New product", CF: 0.3, WF: 131, LU: 0.3, Origin: 50, Waste: 3, NOVA: 1},
		Scenario:     schema.ScenarioA,
		Score:        res.Composite,
		Tier:         algo.ClassifyScore(res.Composite),
		Normalized:   res.Normalized,
		Scores:       map[schema.ScenarioID]float64{schema.ScenarioA: 90, schema.ScenarioB: 91},
		HasDataset:   true,
		DatasetMean:  70,
		DiffFromMean: 20,
	}

	var buf bytes.Buffer
	require.NoError(t, writeEvaluationText(&buf, eval, testConfig(), formatOne))

	out := buf.String()
	assert.Contains(t, out, "Score (scenario A): 90.0")
	assert.Contains(t, out, "Excellent")
	assert.Contains(t, out, "A 90.0 | B 91.0")
	assert.Contains(t, out, "Dataset mean: 70.0 (+20.0)")
	assert.Contains(t, out, "Regional")
	assert.NotContains(t, out, "similar score")
}

func TestWriteEvaluationWithoutDataset(t *testing.T) {
	eval := schema.Evaluation{Indicators: schema.ProductIndicators{Name: "X", NOVA: 4}, Scenario: schema.ScenarioB}

	var buf bytes.Buffer
	require.NoError(t, writeEvaluationText(&buf, eval, testConfig(), formatOne))
	assert.NotContains(t, buf.String(), "Dataset mean")
	assert.Contains(t, buf.String(), "Ultra-processed")
}

func TestWriteProfileCSV(t *testing.T) {
	normalized := map[schema.IndicatorKey]float64{schema.CarbonFootprint: 100, schema.NovaLevel: 0}

	var buf bytes.Buffer
	require.NoError(t, writeProfileCSV(&buf, schema.ProductIndicators{Name: "Frijol", CF: 0.3, NOVA: 4}, normalized, formatOne))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "product,indicator,value,normalized", lines[0])
	assert.Equal(t, "Frijol,CF_kgCO2eq_kg,0.3,100.0", lines[1])
	assert.Equal(t, "Frijol,NOVA,4,0.0", lines[6])
}

func TestWriteComparison(t *testing.T) {
	result := schema.ComparisonResult{
		Scenario: schema.ScenarioA,
		Products: algo.EnrichProducts(algo.RankProducts(makeResults(t, 3), 0)),
	}

	var table bytes.Buffer
	require.NoError(t, writeComparisonTable(&table, result, testConfig(), formatOne))
	assert.Contains(t, table.String(), "Product 00")
	assert.Contains(t, table.String(), "Product 02")
	assert.Contains(t, table.String(), "0.3 (100.0)")

	assert.NotContains(t, table.String(), "PRODUCT 00")

	var csvBuf bytes.Buffer
	require.NoError(t, writeComparisonCSV(&csvBuf, result, formatOne))
	lines := strings.Split(strings.TrimSpace(csvBuf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "rank,product,category,scenario,score,tier,norm_cf,norm_wf,norm_lu,norm_origin,norm_waste,norm_nova", lines[0])
	assert.Equal(t, "1,Product 00,Fruits,A,100.0,Excellent,100.0,100.0,100.0,100.0,100.0,100.0", lines[1])
}

func TestWriteComparisonKeepsNameCase(t *testing.T) {
	results := makeResults(t, 2)
	results[0].Name = "Plátano"
	results[1].Name = "frijol negro"
	result := schema.ComparisonResult{Scenario: schema.ScenarioA, Products: algo.EnrichProducts(results)}

	var buf bytes.Buffer
	require.NoError(t, writeComparisonTable(&buf, result, testConfig(), formatOne))
	assert.Contains(t, buf.String(), "Plátano")
	assert.Contains(t, buf.String(), "frijol negro")
	assert.NotContains(t, buf.String(), "PLÁTANO")
}

func TestWriteGroupsAndRobust(t *testing.T) {
	ranked := algo.EnrichProducts(algo.RankProducts(makeResults(t, 3), 0))
	groups := []schema.CategoryGroup{
		{Category: "Fruits", Products: ranked[:2]},
		{Category: "Uncategorized", Products: ranked[2:]},
	}

	var buf bytes.Buffer
	require.NoError(t, writeGroupsText(&buf, groups, testConfig(), formatOne))
	assert.Contains(t, buf.String(), "Fruits (2)")
	assert.Contains(t, buf.String(), "Uncategorized (1)")

	var csvBuf bytes.Buffer
	require.NoError(t, writeGroupsCSV(&csvBuf, groups, formatOne))
	assert.Len(t, strings.Split(strings.TrimSpace(csvBuf.String()), "\n"), 4)

	var robust bytes.Buffer
	result := schema.RobustResult{Scenarios: schema.DefaultScenarios, TopN: 10}
	require.NoError(t, writeRobustText(&robust, result, testConfig(), formatOne))
	assert.Equal(t, "Products in the top 10 of every scenario (A, B): 0\n\n", robust.String())
}

func TestWriteVerificationText(t *testing.T) {
	var ok bytes.Buffer
	require.NoError(t, writeVerificationText(&ok, schema.VerificationResult{Tolerance: 0.05, Checked: 10}, testConfig(), formatOne))
	assert.Contains(t, ok.String(), "Checked 10 scores")
	assert.Contains(t, ok.String(), "All stored scores match")

	result := schema.VerificationResult{
		Tolerance: 0.05,
		Checked:   4,
		Skipped:   1,
		Mismatches: []schema.ScoreMismatch{
			{Name: "Res", Scenario: schema.ScenarioB, Expected: 12.5, Actual: 12.9, Delta: 0.4},
		},
	}
	var bad bytes.Buffer
	require.NoError(t, writeVerificationText(&bad, result, testConfig(), formatOne))
	assert.Contains(t, bad.String(), "1 mismatches")
	assert.Contains(t, bad.String(), "0.4000")

	var csvBuf bytes.Buffer
	require.NoError(t, writeVerificationCSV(&csvBuf, result))
	assert.Contains(t, csvBuf.String(), "Res,B,12.5000,12.9000,0.4000")
}

func TestBuildMethodologyRenderModel(t *testing.T) {
	model := buildMethodologyRenderModel(schema.DefaultMethodology())

	require.Len(t, model.Ranges, 6)
	assert.Equal(t, schema.CarbonFootprint, model.Ranges[0].Indicator)
	require.Len(t, model.Scenarios, 2)
	assert.Equal(t, "0.15*cf + 0.15*wf + 0.10*lu + 0.20*origin + 0.25*waste + 0.15*nova", model.Scenarios[0].Formula)
	assert.Equal(t, "0.14*cf + 0.14*wf + 0.09*lu + 0.18*origin + 0.30*waste + 0.15*nova", model.Scenarios[1].Formula)
	require.Len(t, model.Tiers, 5)
	assert.Equal(t, schema.TierLow, model.Tiers[4].Tier)
}

func TestWriteMethodologyText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeMethodologyText(&buf, buildMethodologyRenderModel(schema.DefaultMethodology())))

	out := buf.String()
	assert.Contains(t, out, "Scenario A: Score = 0.15*cf")
	assert.Contains(t, out, "18900")
	assert.Contains(t, out, "Very Good")
}

func TestWriteMethodologyYAML(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.YAMLOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "methodology.yaml")

	require.NoError(t, WriteMethodologyDefinitions(schema.DefaultMethodology(), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var decoded schema.MethodologyRenderModel
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded.Scenarios, 2)
	assert.InDelta(t, 0.30, decoded.Scenarios[1].Weights[schema.Waste], 1e-12)
	assert.Equal(t, 45.0, decoded.Ranges[4].Max)
}

func TestWriteMethodologyCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeMethodologyCSV(&buf, buildMethodologyRenderModel(schema.DefaultMethodology())))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "indicator,min,max,weight_A,weight_B", lines[0])
	assert.Equal(t, "waste,3,45,0.25,0.3", lines[5])
}
