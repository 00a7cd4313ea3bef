package contract

import (
	"maps"
	"math"
	"sort"
	"strings"

	"github.com/huangsam/foodprint/schema"
	"github.com/rotisserie/eris"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultTopN        = 15
	DefaultBottomN     = 10
	DefaultRobustTopN  = 10
	DefaultNearestN    = 5
	DefaultTolerance   = 0.05
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "console"

	// WeightSumTolerance bounds how far a configured weight table may drift from 1.0.
	WeightSumTolerance = 1e-6
)

// DefaultDatasetPaths are tried in order when no dataset is configured.
var DefaultDatasetPaths = []string{
	"products.csv",
	"dataset_con_scores_A_y_B.csv",
	"products.xlsx",
	"products.parquet",
}

// DefaultCategories groups the products that rank well under every scenario.
var DefaultCategories = map[string][]string{
	"Fruits":     {"Aguacate", "Mango", "Naranja", "Plátano", "Limón"},
	"Vegetables": {"Calabaza", "Tomate"},
	"Legumes":    {"Frijol", "Garbanzo"},
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// RangeRaw holds an optional range override for one indicator.
type RangeRaw struct {
	Min *float64 `mapstructure:"min"`
	Max *float64 `mapstructure:"max"`
}

// RangesRawInput holds all custom range definitions from the YAML config file.
type RangesRawInput struct {
	CF     *RangeRaw `mapstructure:"cf"`
	WF     *RangeRaw `mapstructure:"wf"`
	LU     *RangeRaw `mapstructure:"lu"`
	Origin *RangeRaw `mapstructure:"origin"`
	Waste  *RangeRaw `mapstructure:"waste"`
	Nova   *RangeRaw `mapstructure:"nova"`
}

// ScenarioWeightsRaw holds the weights for a single scenario.
// Use float64 pointers so that omitted keys can be told apart from zero.
type ScenarioWeightsRaw struct {
	CF     *float64 `mapstructure:"cf"`
	WF     *float64 `mapstructure:"wf"`
	LU     *float64 `mapstructure:"lu"`
	Origin *float64 `mapstructure:"origin"`
	Waste  *float64 `mapstructure:"waste"`
	Nova   *float64 `mapstructure:"nova"`
}

// Config holds the runtime configuration.
// This struct remains the "final, validated" config.
type Config struct {
	Scenario    schema.ScenarioID
	Methodology schema.Methodology

	ResultLimit int
	TopN        int
	BottomN     int
	RobustTopN  int
	NearestN    int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	DatasetPath string
	Tolerance   float64

	// Categories maps a folded product name to its category.
	Categories map[string]string

	LogLevel  string
	LogFormat string

	// Names holds positional product names for show and compare.
	Names []string

	// Candidate holds the indicators passed to evaluate.
	Candidate schema.ProductIndicators
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	Args []string

	// --- Fields from rootCmd.PersistentFlags() ---
	Scenario   string  `mapstructure:"scenario"`
	Limit      int     `mapstructure:"limit"`
	Top        int     `mapstructure:"top"`
	Bottom     int     `mapstructure:"bottom"`
	Precision  int     `mapstructure:"precision"`
	Output     string  `mapstructure:"output"`
	OutputFile string  `mapstructure:"output-file"`
	Width      int     `mapstructure:"width"`
	Color      string  `mapstructure:"color"`
	Dataset    string  `mapstructure:"dataset"`
	Tolerance  float64 `mapstructure:"tolerance"`
	LogLevel   string  `mapstructure:"log-level"`
	LogFormat  string  `mapstructure:"log-format"`

	// --- Fields from robustCmd.Flags() ---
	RobustTop int `mapstructure:"robust-top"`

	// --- Fields from evaluateCmd.Flags() ---
	Name   string  `mapstructure:"name"`
	CF     float64 `mapstructure:"cf"`
	WF     float64 `mapstructure:"wf"`
	LU     float64 `mapstructure:"lu"`
	Origin float64 `mapstructure:"origin"`
	Waste  float64 `mapstructure:"waste"`
	Nova   int     `mapstructure:"nova"`

	// --- Methodology overrides from config file ---
	Ranges    RangesRawInput                `mapstructure:"ranges"`
	Scenarios map[string]ScenarioWeightsRaw `mapstructure:"scenarios"`

	// --- Category assignments from config file, category -> product names ---
	Categories map[string][]string `mapstructure:"categories"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Methodology = c.Methodology.Clone()
	if c.Categories != nil {
		clone.Categories = make(map[string]string, len(c.Categories))
		maps.Copy(clone.Categories, c.Categories)
	}
	if c.Names != nil {
		clone.Names = make([]string, len(c.Names))
		copy(clone.Names, c.Names)
	}
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processMethodology(cfg, input); err != nil {
		return err
	}
	if err := processScenario(cfg, input); err != nil {
		return err
	}
	processCategories(cfg, input)
	processCandidate(cfg, input)
	return nil
}

// validateSimpleInputs processes and validates all non-methodology fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	cfg.Width = input.Width
	cfg.DatasetPath = strings.TrimSpace(input.Dataset)
	cfg.NearestN = DefaultNearestN
	cfg.Names = append([]string(nil), input.Args...)

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return eris.Wrap(err, "invalid --color value")
	}
	cfg.UseColors = colors

	// --- 1. Limit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return eris.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Top <= 0 || input.Top > MaxResultLimit {
		return eris.Errorf("top must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Top)
	}
	cfg.TopN = input.Top

	if input.Bottom <= 0 || input.Bottom > MaxResultLimit {
		return eris.Errorf("bottom must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Bottom)
	}
	cfg.BottomN = input.Bottom

	cfg.RobustTopN = input.RobustTop
	if cfg.RobustTopN == 0 {
		cfg.RobustTopN = DefaultRobustTopN
	}
	if cfg.RobustTopN < 0 || cfg.RobustTopN > MaxResultLimit {
		return eris.Errorf("robust-top must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.RobustTop)
	}

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return eris.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(strings.TrimSpace(input.Output)))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return eris.Errorf("invalid output format '%s'. must be text, csv, json, yaml, parquet, xlsx", input.Output)
	}
	if _, binary := schema.BinaryOutputModes[cfg.Output]; binary && cfg.OutputFile == "" {
		return eris.Errorf("output format '%s' requires --output-file", cfg.Output)
	}

	// --- 3. Verification tolerance ---
	if input.Tolerance < 0 || math.IsNaN(input.Tolerance) {
		return eris.Errorf("tolerance must not be negative (received %v)", input.Tolerance)
	}
	cfg.Tolerance = input.Tolerance

	// --- 4. Logging ---
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(input.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(input.LogFormat))
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return eris.Errorf("invalid log format '%s'. must be console, json", input.LogFormat)
	}

	return nil
}

// processScenario resolves the active scenario against the final methodology.
func processScenario(cfg *Config, input *ConfigRawInput) error {
	cfg.Scenario = schema.ScenarioID(strings.ToUpper(strings.TrimSpace(input.Scenario)))
	if cfg.Scenario == "" {
		cfg.Scenario = schema.ScenarioA
	}
	if _, ok := cfg.Methodology.Scenarios[cfg.Scenario]; !ok {
		return eris.Errorf("invalid scenario '%s'. must be one of %s", input.Scenario, joinScenarios(cfg.Methodology.ScenarioIDs()))
	}
	return nil
}

// processMethodology starts from the reference methodology and applies range
// and weight overrides from the config file.
func processMethodology(cfg *Config, input *ConfigRawInput) error {
	m := schema.DefaultMethodology()

	ranges, err := ProcessRangesRawInput(input.Ranges, m.Ranges)
	if err != nil {
		return err
	}
	m.Ranges = ranges

	scenarios, err := ProcessScenariosRawInput(input.Scenarios)
	if err != nil {
		return err
	}
	for id, sw := range scenarios {
		m.Scenarios[id] = sw
	}

	cfg.Methodology = m
	return nil
}

// ProcessRangesRawInput applies range overrides on top of the given defaults.
// A range may be degenerate (min == max) but never inverted.
func ProcessRangesRawInput(raw RangesRawInput, defaults map[schema.IndicatorKey]schema.IndicatorRange) (map[schema.IndicatorKey]schema.IndicatorRange, error) {
	result := make(map[schema.IndicatorKey]schema.IndicatorRange, len(defaults))
	maps.Copy(result, defaults)

	overrides := map[schema.IndicatorKey]*RangeRaw{
		schema.CarbonFootprint: raw.CF,
		schema.WaterFootprint:  raw.WF,
		schema.LandUse:         raw.LU,
		schema.Origin:          raw.Origin,
		schema.Waste:           raw.Waste,
		schema.NovaLevel:       raw.Nova,
	}

	for _, key := range schema.AllIndicators {
		override := overrides[key]
		if override == nil {
			continue
		}
		r := result[key]
		r.Indicator = key
		if override.Min != nil {
			r.Min = *override.Min
		}
		if override.Max != nil {
			r.Max = *override.Max
		}
		if r.Min > r.Max {
			return nil, eris.Errorf("range for %s has min %v greater than max %v", key, r.Min, r.Max)
		}
		result[key] = r
	}

	return result, nil
}

// ProcessScenariosRawInput converts the raw scenario tables into weight vectors.
// Built-in scenarios may be partially overridden; new scenarios must set all six weights.
// Every resulting table must sum to 1.0.
func ProcessScenariosRawInput(raw map[string]ScenarioWeightsRaw) (map[schema.ScenarioID]schema.ScenarioWeights, error) {
	result := make(map[schema.ScenarioID]schema.ScenarioWeights, len(raw))

	// Viper lowercases map keys, so ids are normalized here.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		id := schema.ScenarioID(strings.ToUpper(strings.TrimSpace(key)))
		if id == "" {
			return nil, eris.New("scenario id must not be empty")
		}

		weights := make(map[schema.IndicatorKey]float64, len(schema.AllIndicators))
		maps.Copy(weights, schema.GetDefaultWeights(id))

		r := raw[key]
		provided := map[schema.IndicatorKey]*float64{
			schema.CarbonFootprint: r.CF,
			schema.WaterFootprint:  r.WF,
			schema.LandUse:         r.LU,
			schema.Origin:          r.Origin,
			schema.Waste:           r.Waste,
			schema.NovaLevel:       r.Nova,
		}
		for k, v := range provided {
			if v != nil {
				weights[k] = *v
			}
		}

		sw := schema.ScenarioWeights{Scenario: id, Weights: weights}
		if err := ValidateScenarioWeights(sw); err != nil {
			return nil, err
		}
		result[id] = sw
	}

	return result, nil
}

// ValidateScenarioWeights checks that a table covers every indicator with a
// non-negative weight and sums to 1.0.
func ValidateScenarioWeights(sw schema.ScenarioWeights) error {
	for _, key := range schema.AllIndicators {
		w, ok := sw.Weights[key]
		if !ok {
			return eris.Errorf("scenario %s is missing a weight for %s", sw.Scenario, key)
		}
		if w < 0 {
			return eris.Errorf("scenario %s has a negative weight for %s", sw.Scenario, key)
		}
	}
	if sum := sw.Sum(); math.Abs(sum-1.0) > WeightSumTolerance {
		return eris.Errorf("weights for scenario %s must sum to 1.0, got %.6f", sw.Scenario, sum)
	}
	return nil
}

// processCategories builds the folded-name lookup. Config file assignments
// replace the built-in groups entirely.
func processCategories(cfg *Config, input *ConfigRawInput) {
	groups := DefaultCategories
	if len(input.Categories) > 0 {
		groups = input.Categories
	}

	cfg.Categories = make(map[string]string)
	for category, products := range groups {
		label := TitleCase(category)
		for _, name := range products {
			if folded := Fold(name); folded != "" {
				cfg.Categories[folded] = label
			}
		}
	}
}

// processCandidate copies the evaluate flags into the candidate product.
func processCandidate(cfg *Config, input *ConfigRawInput) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "New product"
	}
	cfg.Candidate = schema.ProductIndicators{
		Name:   name,
		CF:     input.CF,
		WF:     input.WF,
		LU:     input.LU,
		Origin: input.Origin,
		Waste:  input.Waste,
		NOVA:   input.Nova,
	}
}

// ProcessProfilingConfig enables profiling when a file prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) {
	profilePrefix = strings.TrimSpace(profilePrefix)
	profile.Enabled = profilePrefix != ""
	profile.Prefix = profilePrefix
}

func joinScenarios(ids []schema.ScenarioID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
