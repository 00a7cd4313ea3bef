package schema

import "sort"

// Custom string types for type safety.
type (
	// IndicatorKey names one of the six environmental indicators.
	IndicatorKey string

	// ScenarioID names a weighting scenario.
	ScenarioID string

	// OutputMode represents the format of the output.
	OutputMode string

	// Tier is the qualitative sustainability class of a score.
	Tier string
)

// Indicator keys used in the scoring logic.
const (
	CarbonFootprint IndicatorKey = "cf"     // kg CO2-eq per kg
	WaterFootprint  IndicatorKey = "wf"     // L per kg
	LandUse         IndicatorKey = "lu"     // m2 per kg
	Origin          IndicatorKey = "origin" // 0 local .. 100 imported
	Waste           IndicatorKey = "waste"  // percent wasted
	NovaLevel       IndicatorKey = "nova"   // processing level 1..4
)

// AllIndicators is the fixed order used for every weighted sum.
var AllIndicators = []IndicatorKey{CarbonFootprint, WaterFootprint, LandUse, Origin, Waste, NovaLevel}

// Built-in weighting scenarios.
const (
	ScenarioA ScenarioID = "A" // default
	ScenarioB ScenarioID = "B" // waste-focused
)

// DefaultScenarios lists the built-in scenarios in display order.
var DefaultScenarios = []ScenarioID{ScenarioA, ScenarioB}

// ValidDefaultScenarios lists the built-in scenarios.
var ValidDefaultScenarios = map[ScenarioID]struct{}{
	ScenarioA: {},
	ScenarioB: {},
}

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	YAMLOut    OutputMode = "yaml"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	YAMLOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
}

// BinaryOutputModes cannot be written to a terminal.
var BinaryOutputModes = map[OutputMode]struct{}{
	ParquetOut: {},
	XLSXOut:    {},
}

// All tiers, from best to worst.
const (
	TierExcellent Tier = "excellent"
	TierVeryGood  Tier = "very_good"
	TierGood      Tier = "good"
	TierModerate  Tier = "moderate"
	TierLow       Tier = "low"
)

// TierThreshold is the inclusive lower bound of a tier.
type TierThreshold struct {
	Tier Tier
	Min  float64
}

// TierLadder is checked top-down; a score below every threshold is TierLow.
var TierLadder = []TierThreshold{
	{Tier: TierExcellent, Min: 90},
	{Tier: TierVeryGood, Min: 80},
	{Tier: TierGood, Min: 70},
	{Tier: TierModerate, Min: 60},
}

// DefaultRanges returns the reference normalization ranges.
func DefaultRanges() map[IndicatorKey]IndicatorRange {
	return map[IndicatorKey]IndicatorRange{
		CarbonFootprint: {Indicator: CarbonFootprint, Min: 0.3, Max: 60.0},
		WaterFootprint:  {Indicator: WaterFootprint, Min: 131, Max: 18900},
		LandUse:         {Indicator: LandUse, Min: 0.3, Max: 326},
		Origin:          {Indicator: Origin, Min: 0, Max: 100},
		Waste:           {Indicator: Waste, Min: 3.0, Max: 45.0},
		NovaLevel:       {Indicator: NovaLevel, Min: 1, Max: 4},
	}
}

// GetDefaultWeights returns the default weight map for a built-in scenario.
// It returns nil for any other scenario.
func GetDefaultWeights(scenario ScenarioID) map[IndicatorKey]float64 {
	switch scenario {
	case ScenarioA:
		return map[IndicatorKey]float64{
			CarbonFootprint: 0.15,
			WaterFootprint:  0.15,
			LandUse:         0.10,
			Origin:          0.20,
			Waste:           0.25,
			NovaLevel:       0.15,
		}
	case ScenarioB:
		return map[IndicatorKey]float64{
			CarbonFootprint: 0.14,
			WaterFootprint:  0.14,
			LandUse:         0.09,
			Origin:          0.18,
			Waste:           0.30,
			NovaLevel:       0.15,
		}
	default:
		return nil
	}
}

// DefaultMethodology returns the reference ranges with both built-in scenarios.
func DefaultMethodology() Methodology {
	m := Methodology{
		Ranges:    DefaultRanges(),
		Scenarios: make(map[ScenarioID]ScenarioWeights, len(DefaultScenarios)),
	}
	for _, id := range DefaultScenarios {
		m.Scenarios[id] = ScenarioWeights{Scenario: id, Weights: GetDefaultWeights(id)}
	}
	return m
}

func sortScenarioIDs(ids []ScenarioID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
