package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	for _, id := range DefaultScenarios {
		t.Run(string(id), func(t *testing.T) {
			sw := ScenarioWeights{Scenario: id, Weights: GetDefaultWeights(id)}
			assert.InDelta(t, 1.0, sw.Sum(), 1e-9)
			assert.Len(t, sw.Weights, len(AllIndicators))
		})
	}
}

func TestGetDefaultWeightsUnknown(t *testing.T) {
	assert.Nil(t, GetDefaultWeights("C"))
	assert.Nil(t, GetDefaultWeights("a"))
}

func TestDefaultRanges(t *testing.T) {
	ranges := DefaultRanges()
	require.Len(t, ranges, len(AllIndicators))

	tests := []struct {
		key      IndicatorKey
		min, max float64
	}{
		{CarbonFootprint, 0.3, 60.0},
		{WaterFootprint, 131, 18900},
		{LandUse, 0.3, 326},
		{Origin, 0, 100},
		{Waste, 3.0, 45.0},
		{NovaLevel, 1, 4},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			r, ok := ranges[tt.key]
			require.True(t, ok)
			assert.Equal(t, tt.key, r.Indicator)
			assert.Equal(t, tt.min, r.Min)
			assert.Equal(t, tt.max, r.Max)
		})
	}
}

func TestMethodologyScenarioIDs(t *testing.T) {
	m := DefaultMethodology()
	assert.Equal(t, []ScenarioID{ScenarioA, ScenarioB}, m.ScenarioIDs())

	m.Scenarios["D"] = ScenarioWeights{Scenario: "D"}
	m.Scenarios["C"] = ScenarioWeights{Scenario: "C"}
	assert.Equal(t, []ScenarioID{ScenarioA, ScenarioB, "C", "D"}, m.ScenarioIDs())

	delete(m.Scenarios, ScenarioA)
	assert.Equal(t, []ScenarioID{ScenarioB, "C", "D"}, m.ScenarioIDs())
}

func TestMethodologyClone(t *testing.T) {
	original := DefaultMethodology()
	clone := original.Clone()

	clone.Ranges[Waste] = IndicatorRange{Indicator: Waste, Min: 0.4, Max: 45.5}
	clone.Scenarios[ScenarioA].Weights[Waste] = 0.99

	assert.Equal(t, 3.0, original.Ranges[Waste].Min)
	assert.Equal(t, 0.25, original.Scenarios[ScenarioA].Weights[Waste])
}

func TestProductIndicatorsValue(t *testing.T) {
	p := ProductIndicators{Name: "Lentil", CF: 0.9, WF: 5874, LU: 3.4, Origin: 50, Waste: 8, NOVA: 1}

	assert.Equal(t, 0.9, p.Value(CarbonFootprint))
	assert.Equal(t, 5874.0, p.Value(WaterFootprint))
	assert.Equal(t, 3.4, p.Value(LandUse))
	assert.Equal(t, 50.0, p.Value(Origin))
	assert.Equal(t, 8.0, p.Value(Waste))
	assert.Equal(t, 1.0, p.Value(NovaLevel))
	assert.Equal(t, 0.0, p.Value("unknown"))
}

func TestVerificationResultOK(t *testing.T) {
	assert.True(t, VerificationResult{Checked: 3}.OK())
	assert.False(t, VerificationResult{Mismatches: []ScoreMismatch{{Name: "Beef"}}}.OK())
}
