package contract

import (
	"testing"

	"github.com/huangsam/foodprint/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

// validInput mirrors the viper defaults registered by the CLI.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Scenario:  "A",
		Limit:     DefaultResultLimit,
		Top:       DefaultTopN,
		Bottom:    DefaultBottomN,
		Precision: DefaultPrecision,
		Output:    "text",
		Color:     "yes",
		Tolerance: DefaultTolerance,
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{"valid minimal config", func(*ConfigRawInput) {}, false},
		{"lowercase scenario", func(in *ConfigRawInput) { in.Scenario = "b" }, false},
		{"empty scenario defaults to A", func(in *ConfigRawInput) { in.Scenario = "" }, false},
		{"unknown scenario", func(in *ConfigRawInput) { in.Scenario = "C" }, true},
		{"zero limit", func(in *ConfigRawInput) { in.Limit = 0 }, true},
		{"limit too large", func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }, true},
		{"zero top", func(in *ConfigRawInput) { in.Top = 0 }, true},
		{"negative bottom", func(in *ConfigRawInput) { in.Bottom = -1 }, true},
		{"negative robust top", func(in *ConfigRawInput) { in.RobustTop = -3 }, true},
		{"precision too high", func(in *ConfigRawInput) { in.Precision = 3 }, true},
		{"invalid output", func(in *ConfigRawInput) { in.Output = "xml" }, true},
		{"uppercase output", func(in *ConfigRawInput) { in.Output = "JSON" }, false},
		{"yaml output", func(in *ConfigRawInput) { in.Output = "yaml" }, false},
		{"xlsx without file", func(in *ConfigRawInput) { in.Output = "xlsx" }, true},
		{"xlsx with file", func(in *ConfigRawInput) { in.Output = "xlsx"; in.OutputFile = "out.xlsx" }, false},
		{"parquet without file", func(in *ConfigRawInput) { in.Output = "parquet" }, true},
		{"invalid color", func(in *ConfigRawInput) { in.Color = "maybe" }, true},
		{"negative tolerance", func(in *ConfigRawInput) { in.Tolerance = -0.1 }, true},
		{"invalid log format", func(in *ConfigRawInput) { in.LogFormat = "xml" }, true},
		{"inverted range", func(in *ConfigRawInput) {
			in.Ranges.CF = &RangeRaw{Min: ptr(10), Max: ptr(1)}
		}, true},
		{"custom scenario", func(in *ConfigRawInput) {
			in.Scenario = "c"
			in.Scenarios = map[string]ScenarioWeightsRaw{
				"c": {CF: ptr(0.5), WF: ptr(0.1), LU: ptr(0.1), Origin: ptr(0.1), Waste: ptr(0.1), Nova: ptr(0.1)},
			}
		}, false},
		{"custom scenario bad sum", func(in *ConfigRawInput) {
			in.Scenarios = map[string]ScenarioWeightsRaw{
				"c": {CF: ptr(0.5), WF: ptr(0.5), LU: ptr(0.5), Origin: ptr(0), Waste: ptr(0), Nova: ptr(0)},
			}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateFields(t *testing.T) {
	input := validInput()
	input.Scenario = " b "
	input.Args = []string{"Mango", "Frijol"}
	input.Dataset = " data.csv "
	input.Name = "Quinoa"
	input.CF = 1.2
	input.Nova = 2

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, schema.ScenarioB, cfg.Scenario)
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, DefaultTopN, cfg.TopN)
	assert.Equal(t, DefaultBottomN, cfg.BottomN)
	assert.Equal(t, DefaultRobustTopN, cfg.RobustTopN)
	assert.Equal(t, DefaultNearestN, cfg.NearestN)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, "data.csv", cfg.DatasetPath)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, []string{"Mango", "Frijol"}, cfg.Names)
	assert.Equal(t, "Quinoa", cfg.Candidate.Name)
	assert.Equal(t, 1.2, cfg.Candidate.CF)
	assert.Equal(t, 2, cfg.Candidate.NOVA)
	assert.Equal(t, schema.DefaultMethodology(), cfg.Methodology)
	assert.Equal(t, "Fruits", cfg.Categories["platano"])
	assert.Equal(t, "Legumes", cfg.Categories["frijol"])
}

func TestProcessAndValidateCandidateDefaultName(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))
	assert.Equal(t, "New product", cfg.Candidate.Name)
}

func TestProcessRangesRawInput(t *testing.T) {
	defaults := schema.DefaultRanges()

	ranges, err := ProcessRangesRawInput(RangesRawInput{
		CF:    &RangeRaw{Min: ptr(0.28)},
		Waste: &RangeRaw{Min: ptr(0.4), Max: ptr(45.5)},
		Nova:  &RangeRaw{Min: ptr(2), Max: ptr(2)},
	}, defaults)
	require.NoError(t, err)

	assert.Equal(t, 0.28, ranges[schema.CarbonFootprint].Min)
	assert.Equal(t, 60.0, ranges[schema.CarbonFootprint].Max)
	assert.Equal(t, 0.4, ranges[schema.Waste].Min)
	assert.Equal(t, 45.5, ranges[schema.Waste].Max)
	assert.Equal(t, 2.0, ranges[schema.NovaLevel].Min)
	assert.Equal(t, defaults[schema.WaterFootprint], ranges[schema.WaterFootprint])

	// Defaults must not be modified.
	assert.Equal(t, 0.3, defaults[schema.CarbonFootprint].Min)
}

func TestProcessScenariosRawInput(t *testing.T) {
	t.Run("partial override of built-in", func(t *testing.T) {
		scenarios, err := ProcessScenariosRawInput(map[string]ScenarioWeightsRaw{
			"a": {Origin: ptr(0.15), Waste: ptr(0.30)},
		})
		require.NoError(t, err)
		sw, ok := scenarios[schema.ScenarioA]
		require.True(t, ok)
		assert.Equal(t, 0.30, sw.Weights[schema.Waste])
		assert.Equal(t, 0.15, sw.Weights[schema.CarbonFootprint])
		assert.InDelta(t, 1.0, sw.Sum(), 1e-9)
	})

	t.Run("partial override breaking the sum", func(t *testing.T) {
		_, err := ProcessScenariosRawInput(map[string]ScenarioWeightsRaw{
			"b": {Waste: ptr(0.5)},
		})
		assert.Error(t, err)
	})

	t.Run("new scenario missing weights", func(t *testing.T) {
		_, err := ProcessScenariosRawInput(map[string]ScenarioWeightsRaw{
			"local": {Origin: ptr(1.0)},
		})
		assert.Error(t, err)
	})

	t.Run("negative weight", func(t *testing.T) {
		_, err := ProcessScenariosRawInput(map[string]ScenarioWeightsRaw{
			"neg": {CF: ptr(-0.1), WF: ptr(0.3), LU: ptr(0.2), Origin: ptr(0.2), Waste: ptr(0.2), Nova: ptr(0.2)},
		})
		assert.Error(t, err)
	})

	t.Run("nil input", func(t *testing.T) {
		scenarios, err := ProcessScenariosRawInput(nil)
		require.NoError(t, err)
		assert.Empty(t, scenarios)
	})
}

func TestValidateScenarioWeightsDefaults(t *testing.T) {
	for _, sw := range schema.DefaultMethodology().Scenarios {
		assert.NoError(t, ValidateScenarioWeights(sw))
	}
}

func TestProcessCategoriesFromConfig(t *testing.T) {
	input := validInput()
	input.Categories = map[string][]string{
		"dairy":      {"Leche", "Queso "},
		"root crops": {"Papa"},
	}

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "Dairy", cfg.Categories["queso"])
	assert.Equal(t, "Root Crops", cfg.Categories["papa"])
	_, builtin := cfg.Categories["mango"]
	assert.False(t, builtin)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))
	cfg.Names = []string{"Mango"}

	clone := cfg.Clone()
	clone.Categories["mango"] = "Other"
	clone.Names[0] = "Papaya"
	clone.Methodology.Scenarios[schema.ScenarioA].Weights[schema.Waste] = 0

	assert.Equal(t, "Fruits", cfg.Categories["mango"])
	assert.Equal(t, "Mango", cfg.Names[0])
	assert.Equal(t, 0.25, cfg.Methodology.Scenarios[schema.ScenarioA].Weights[schema.Waste])
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	ProcessProfilingConfig(profile, " run ")
	assert.True(t, profile.Enabled)
	assert.Equal(t, "run", profile.Prefix)

	ProcessProfilingConfig(profile, "")
	assert.False(t, profile.Enabled)
}
