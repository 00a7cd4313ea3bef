package schema

// MethodologyScenario is a scenario prepared for display.
type MethodologyScenario struct {
	Scenario ScenarioID               `json:"scenario" yaml:"scenario"`
	Weights  map[IndicatorKey]float64 `json:"weights" yaml:"weights"`
	Formula  string                   `json:"formula" yaml:"formula"`
}

// MethodologyTier is a tier prepared for display.
type MethodologyTier struct {
	Tier   Tier    `json:"tier" yaml:"tier"`
	Label  string  `json:"label" yaml:"label"`
	Marker string  `json:"marker" yaml:"marker"`
	Min    float64 `json:"min" yaml:"min"`
}

// MethodologyRenderModel contains all processed data needed for displaying the methodology.
type MethodologyRenderModel struct {
	Title       string                `json:"title" yaml:"title"`
	Description string                `json:"description" yaml:"description"`
	Normalizer  string                `json:"normalizer" yaml:"normalizer"`
	Ranges      []IndicatorRange      `json:"ranges" yaml:"ranges"`
	Scenarios   []MethodologyScenario `json:"scenarios" yaml:"scenarios"`
	Tiers       []MethodologyTier     `json:"tiers" yaml:"tiers"`
}
