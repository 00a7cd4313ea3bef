package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteMethodologyDefinitions displays the normalization ranges, scenario weights and tiers.
// This is a static display that does not require a dataset.
func WriteMethodologyDefinitions(m schema.Methodology, cfg *contract.Config) error {
	model := buildMethodologyRenderModel(m)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, model)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMethodologyCSV(w, model)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMethodologyText(w, model)
		}, "Wrote text")
	}
}

// formatWeights formats weights for display in formulas.
func formatWeights(weights map[schema.IndicatorKey]float64) string {
	parts := make([]string, 0, len(schema.AllIndicators))
	for _, key := range schema.AllIndicators {
		if weight := weights[key]; weight > 0 {
			parts = append(parts, fmt.Sprintf("%.2f*%s", weight, key))
		}
	}
	return strings.Join(parts, " + ")
}

// buildMethodologyRenderModel constructs the complete render model with all processed data.
func buildMethodologyRenderModel(m schema.Methodology) *schema.MethodologyRenderModel {
	ranges := make([]schema.IndicatorRange, 0, len(schema.AllIndicators))
	for _, key := range schema.AllIndicators {
		if r, ok := m.Ranges[key]; ok {
			ranges = append(ranges, r)
		}
	}

	ids := m.ScenarioIDs()
	scenarios := make([]schema.MethodologyScenario, 0, len(ids))
	for _, id := range ids {
		sw := m.Scenarios[id]
		scenarios = append(scenarios, schema.MethodologyScenario{
			Scenario: id,
			Weights:  sw.Weights,
			Formula:  formatWeights(sw.Weights),
		})
	}

	tiers := make([]schema.MethodologyTier, 0, len(schema.TierLadder)+1)
	for _, step := range schema.TierLadder {
		tiers = append(tiers, schema.MethodologyTier{Tier: step.Tier, Label: step.Tier.Label(), Marker: step.Tier.Marker(), Min: step.Min})
	}
	tiers = append(tiers, schema.MethodologyTier{Tier: schema.TierLow, Label: schema.TierLow.Label(), Marker: schema.TierLow.Marker()})

	return &schema.MethodologyRenderModel{
		Title:       "Food Sustainability Score",
		Description: "Score = weighted sum of normalized indicators, higher is more sustainable",
		Normalizer:  "n(v) = 100 - (v - min) / (max - min) * 100, or 50 when min = max",
		Ranges:      ranges,
		Scenarios:   scenarios,
		Tiers:       tiers,
	}
}

// writeMethodologyText displays the methodology in human-readable text format.
func writeMethodologyText(w io.Writer, model *schema.MethodologyRenderModel) error {
	if _, err := fmt.Fprintf(w, "🌱 %s\n%s\n\n%s\n%s\n\n", model.Title, strings.Repeat("=", len(model.Title)+3), model.Description, model.Normalizer); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Indicator", "Min", "Max"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, r := range model.Ranges {
		data = append(data, []string{schema.IndicatorName(r.Indicator), fmt.Sprintf("%g", r.Min), fmt.Sprintf("%g", r.Max)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, s := range model.Scenarios {
		if _, err := fmt.Fprintf(w, "Scenario %s: Score = %s\n", s.Scenario, s.Formula); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "\nTiers"); err != nil {
		return err
	}
	for _, t := range model.Tiers {
		bound := fmt.Sprintf(">= %g", t.Min)
		if t.Tier == schema.TierLow {
			bound = "below the rest"
		}
		if _, err := fmt.Fprintf(w, "   %s %-10s %s\n", t.Marker, t.Label, bound); err != nil {
			return err
		}
	}
	return nil
}

// writeMethodologyCSV writes one row per indicator with its range and scenario weights.
func writeMethodologyCSV(w io.Writer, model *schema.MethodologyRenderModel) error {
	header := []string{"indicator", "min", "max"}
	for _, s := range model.Scenarios {
		header = append(header, "weight_"+string(s.Scenario))
	}

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range model.Ranges {
			rec := []string{string(r.Indicator), fmt.Sprintf("%g", r.Min), fmt.Sprintf("%g", r.Max)}
			for _, s := range model.Scenarios {
				rec = append(rec, fmt.Sprintf("%g", s.Weights[r.Indicator]))
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
