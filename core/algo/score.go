package algo

import (
	"strings"

	"github.com/huangsam/foodprint/schema"
	"github.com/rotisserie/eris"
)

var (
	// ErrUnknownScenario is returned when a scenario has no weight table.
	ErrUnknownScenario = eris.New("unknown scenario")

	// ErrMissingRange is returned when an indicator has no normalization range.
	ErrMissingRange = eris.New("missing indicator range")
)

// ParseScenario upper-cases and trims a user-supplied scenario id.
func ParseScenario(s string) schema.ScenarioID {
	return schema.ScenarioID(strings.ToUpper(strings.TrimSpace(s)))
}

// LookupWeights returns the weight table of a scenario.
func LookupWeights(m schema.Methodology, scenario schema.ScenarioID) (schema.ScenarioWeights, error) {
	sw, ok := m.Scenarios[scenario]
	if !ok {
		return schema.ScenarioWeights{}, eris.Wrapf(ErrUnknownScenario, "scenario %q", scenario)
	}
	return sw, nil
}

// ComputeScore normalizes the six indicators of a product and combines them
// with the weights of the given scenario. The weighted sum always runs in
// schema.AllIndicators order so results are reproducible to the last bit.
func ComputeScore(p schema.ProductIndicators, scenario schema.ScenarioID, m schema.Methodology) (schema.ScoreResult, error) {
	sw, err := LookupWeights(m, scenario)
	if err != nil {
		return schema.ScoreResult{}, err
	}

	normalized := make(map[schema.IndicatorKey]float64, len(schema.AllIndicators))
	var composite float64
	for _, key := range schema.AllIndicators {
		r, ok := m.Ranges[key]
		if !ok {
			return schema.ScoreResult{}, eris.Wrapf(ErrMissingRange, "indicator %q", key)
		}
		n := NormalizeInverse(p.Value(key), r.Min, r.Max)
		normalized[key] = n
		composite += n * sw.Weights[key]
	}

	return schema.ScoreResult{
		Scenario:   scenario,
		Composite:  composite,
		Normalized: normalized,
	}, nil
}

// Score computes the composite of raw indicator values with the default methodology.
// The scenario id is case-insensitive.
func Score(cf, wf, lu, origin, waste float64, nova int, scenario string) (schema.ScoreResult, error) {
	p := schema.ProductIndicators{CF: cf, WF: wf, LU: lu, Origin: origin, Waste: waste, NOVA: nova}
	return ComputeScore(p, ParseScenario(scenario), schema.DefaultMethodology())
}

// ScoreProduct scores a product under the active scenario and records its
// composite under every other configured scenario as well.
func ScoreProduct(p schema.Product, active schema.ScenarioID, m schema.Methodology) (schema.ProductResult, error) {
	primary, err := ComputeScore(p.ProductIndicators, active, m)
	if err != nil {
		return schema.ProductResult{}, err
	}

	scores := make(map[schema.ScenarioID]float64, len(m.Scenarios))
	scores[active] = primary.Composite
	for _, id := range m.ScenarioIDs() {
		if id == active {
			continue
		}
		other, err := ComputeScore(p.ProductIndicators, id, m)
		if err != nil {
			return schema.ProductResult{}, err
		}
		scores[id] = other.Composite
	}

	return schema.ProductResult{
		Name:       p.Name,
		Category:   p.Category,
		Indicators: p.ProductIndicators,
		Scenario:   active,
		Score:      primary.Composite,
		Normalized: primary.Normalized,
		Scores:     scores,
	}, nil
}

// ScoreProducts scores every product. It fails fast on the first error and
// never returns a partial list.
func ScoreProducts(products []schema.Product, active schema.ScenarioID, m schema.Methodology) ([]schema.ProductResult, error) {
	results := make([]schema.ProductResult, 0, len(products))
	for _, p := range products {
		r, err := ScoreProduct(p, active, m)
		if err != nil {
			return nil, eris.Wrapf(err, "scoring %q", p.Name)
		}
		results = append(results, r)
	}
	return results, nil
}
