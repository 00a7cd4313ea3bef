// Package schema has the models and constants shared by all parts of foodprint.
package schema

// IndicatorRange is the reference interval used to normalize one indicator.
// Min may equal Max, in which case every value normalizes to the neutral 50.
type IndicatorRange struct {
	Indicator IndicatorKey `json:"indicator" yaml:"indicator"`
	Min       float64      `json:"min" yaml:"min"`
	Max       float64      `json:"max" yaml:"max"`
}

// ScenarioWeights is the weight vector for one weighting scenario.
// The weights of a valid scenario sum to 1.0.
type ScenarioWeights struct {
	Scenario ScenarioID               `json:"scenario" yaml:"scenario"`
	Weights  map[IndicatorKey]float64 `json:"weights" yaml:"weights"`
}

// Sum adds the weights in indicator order.
func (w ScenarioWeights) Sum() float64 {
	var total float64
	for _, key := range AllIndicators {
		total += w.Weights[key]
	}
	return total
}

// Methodology bundles the normalization ranges and the weight tables.
// It is the single source of truth for how a score is computed.
type Methodology struct {
	Ranges    map[IndicatorKey]IndicatorRange
	Scenarios map[ScenarioID]ScenarioWeights
}

// ScenarioIDs returns the configured scenarios, built-in ones first and the rest sorted.
func (m Methodology) ScenarioIDs() []ScenarioID {
	ids := make([]ScenarioID, 0, len(m.Scenarios))
	for _, id := range DefaultScenarios {
		if _, ok := m.Scenarios[id]; ok {
			ids = append(ids, id)
		}
	}
	var extra []ScenarioID
	for id := range m.Scenarios {
		if _, builtin := ValidDefaultScenarios[id]; !builtin {
			extra = append(extra, id)
		}
	}
	sortScenarioIDs(extra)
	return append(ids, extra...)
}

// Clone returns a deep copy so that callers can override ranges or weights safely.
func (m Methodology) Clone() Methodology {
	clone := Methodology{
		Ranges:    make(map[IndicatorKey]IndicatorRange, len(m.Ranges)),
		Scenarios: make(map[ScenarioID]ScenarioWeights, len(m.Scenarios)),
	}
	for k, r := range m.Ranges {
		clone.Ranges[k] = r
	}
	for id, sw := range m.Scenarios {
		weights := make(map[IndicatorKey]float64, len(sw.Weights))
		for k, v := range sw.Weights {
			weights[k] = v
		}
		clone.Scenarios[id] = ScenarioWeights{Scenario: sw.Scenario, Weights: weights}
	}
	return clone
}

// ProductIndicators holds the six raw indicator values for one product.
type ProductIndicators struct {
	Name   string  `json:"name" yaml:"name"`
	CF     float64 `json:"cf_kgco2eq_kg" yaml:"cf_kgco2eq_kg"` // Carbon footprint, kg CO2-eq per kg
	WF     float64 `json:"wf_l_kg" yaml:"wf_l_kg"`             // Water footprint, liters per kg
	LU     float64 `json:"lu_m2_kg" yaml:"lu_m2_kg"`           // Land use, m2 per kg
	Origin float64 `json:"origin_score" yaml:"origin_score"`   // 0 local, 50 regional, 100 imported
	Waste  float64 `json:"waste_pct" yaml:"waste_pct"`         // Percent of product wasted
	NOVA   int     `json:"nova" yaml:"nova"`                   // Processing level 1..4
}

// Value returns the raw value of the given indicator.
func (p ProductIndicators) Value(key IndicatorKey) float64 {
	switch key {
	case CarbonFootprint:
		return p.CF
	case WaterFootprint:
		return p.WF
	case LandUse:
		return p.LU
	case Origin:
		return p.Origin
	case Waste:
		return p.Waste
	case NovaLevel:
		return float64(p.NOVA)
	default:
		return 0
	}
}

// Product is a dataset row: indicators plus catalog metadata.
type Product struct {
	ProductIndicators `yaml:",inline"`

	// Category is the optional food group from the dataset.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Precomputed holds score columns shipped with the dataset, keyed by scenario.
	// They are only used for verification, never for ranking.
	Precomputed map[ScenarioID]float64 `json:"precomputed,omitempty" yaml:"precomputed,omitempty"`
}

// ScoreResult is the output of one score computation.
type ScoreResult struct {
	Scenario   ScenarioID               `json:"scenario" yaml:"scenario"`
	Composite  float64                  `json:"composite" yaml:"composite"`
	Normalized map[IndicatorKey]float64 `json:"normalized" yaml:"normalized"`
}

// Notice describes a dataset row or file that was skipped without failing the run.
type Notice struct {
	Source  string `json:"source" yaml:"source"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Message string `json:"message" yaml:"message"`
}
