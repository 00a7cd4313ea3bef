package schema

// ProductResult is a product scored under the active scenario.
type ProductResult struct {
	Name       string                   `json:"name" yaml:"name"`
	Category   string                   `json:"category,omitempty" yaml:"category,omitempty"`
	Indicators ProductIndicators        `json:"indicators" yaml:"indicators"`
	Scenario   ScenarioID               `json:"scenario" yaml:"scenario"`
	Score      float64                  `json:"score" yaml:"score"`
	Normalized map[IndicatorKey]float64 `json:"normalized" yaml:"normalized"`
	Scores     map[ScenarioID]float64   `json:"scores" yaml:"scores"` // Composite under every configured scenario
}

// EnrichedProductResult adds presentation data to a ProductResult.
type EnrichedProductResult struct {
	Rank   int    `json:"rank" yaml:"rank"`
	Tier   Tier   `json:"tier" yaml:"tier"`
	Label  string `json:"label" yaml:"label"`
	Marker string `json:"marker" yaml:"marker"`
	ProductResult `yaml:",inline"`
}

// ScoreStat is a named score used in summaries.
type ScoreStat struct {
	Name  string  `json:"name" yaml:"name"`
	Score float64 `json:"score" yaml:"score"`
}

// RankingSummary holds aggregate statistics for one scenario.
type RankingSummary struct {
	Scenario ScenarioID `json:"scenario" yaml:"scenario"`
	Count    int        `json:"count" yaml:"count"`
	Mean     float64    `json:"mean" yaml:"mean"`
	Best     ScoreStat  `json:"best" yaml:"best"`
	Worst    ScoreStat  `json:"worst" yaml:"worst"`
}

// RankingReport is the JSON shape of a ranking.
type RankingReport struct {
	Summary  RankingSummary          `json:"summary" yaml:"summary"`
	Products []EnrichedProductResult `json:"products" yaml:"products"`
	Notices  []Notice                `json:"notices,omitempty" yaml:"notices,omitempty"`
}

// ProductDetail is the full view of one catalog product.
type ProductDetail struct {
	Product      EnrichedProductResult   `json:"product" yaml:"product"`
	Position     int                     `json:"position" yaml:"position"` // Products scoring at least as high, itself included
	Total        int                     `json:"total" yaml:"total"`
	OriginLabel  string                  `json:"origin_label" yaml:"origin_label"`
	NovaLabel    string                  `json:"nova_label" yaml:"nova_label"`
	Alternatives []EnrichedProductResult `json:"alternatives" yaml:"alternatives"`
}

// Evaluation is the result of scoring a product that is not in the dataset.
type Evaluation struct {
	Indicators   ProductIndicators        `json:"indicators" yaml:"indicators"`
	Scenario     ScenarioID               `json:"scenario" yaml:"scenario"`
	Score        float64                  `json:"score" yaml:"score"`
	Tier         Tier                     `json:"tier" yaml:"tier"`
	Label        string                   `json:"label" yaml:"label"`
	Marker       string                   `json:"marker" yaml:"marker"`
	Normalized   map[IndicatorKey]float64 `json:"normalized" yaml:"normalized"`
	Scores       map[ScenarioID]float64   `json:"scores" yaml:"scores"`
	HasDataset   bool                     `json:"has_dataset" yaml:"has_dataset"`
	DatasetMean  float64                  `json:"dataset_mean" yaml:"dataset_mean"`
	DiffFromMean float64                  `json:"diff_from_mean" yaml:"diff_from_mean"`
	Nearest      []EnrichedProductResult  `json:"nearest" yaml:"nearest"`
}

// ComparisonResult holds two to five products side by side.
type ComparisonResult struct {
	Scenario ScenarioID              `json:"scenario" yaml:"scenario"`
	Products []EnrichedProductResult `json:"products" yaml:"products"`
}

// CategoryGroup is a food group and its products.
type CategoryGroup struct {
	Category string                  `json:"category" yaml:"category"`
	Products []EnrichedProductResult `json:"products" yaml:"products"`
}

// RobustResult lists products that rank highly under every scenario.
type RobustResult struct {
	Scenarios []ScenarioID            `json:"scenarios" yaml:"scenarios"`
	TopN      int                     `json:"top_n" yaml:"top_n"`
	Products  []EnrichedProductResult `json:"products" yaml:"products"`
	Groups    []CategoryGroup         `json:"groups" yaml:"groups"`
}

// ScoreMismatch is a recomputed score that disagrees with a shipped column.
type ScoreMismatch struct {
	Name     string     `json:"name" yaml:"name"`
	Scenario ScenarioID `json:"scenario" yaml:"scenario"`
	Expected float64    `json:"expected" yaml:"expected"`
	Actual   float64    `json:"actual" yaml:"actual"`
	Delta    float64    `json:"delta" yaml:"delta"`
}

// VerificationResult summarizes a recompute-and-compare pass over a dataset.
type VerificationResult struct {
	Tolerance  float64         `json:"tolerance" yaml:"tolerance"`
	Checked    int             `json:"checked" yaml:"checked"`
	Skipped    int             `json:"skipped" yaml:"skipped"` // Products without a precomputed column
	Mismatches []ScoreMismatch `json:"mismatches" yaml:"mismatches"`
}

// OK reports whether every checked score matched.
func (v VerificationResult) OK() bool {
	return len(v.Mismatches) == 0
}
