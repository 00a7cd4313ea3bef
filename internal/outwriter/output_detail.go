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

// WriteDetailResult outputs the full view of one product.
func WriteDetailResult(detail schema.ProductDetail, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, detail)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, detail)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileCSV(w, detail.Product.Indicators, detail.Product.Normalized, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDetailText(w, detail, cfg, fmtFloat)
		}, "Wrote text")
	}
}

func writeDetailText(w io.Writer, d schema.ProductDetail, cfg *contract.Config, fmtFloat func(float64) string) error {
	p := d.Product
	title := p.Name
	if p.Category != "" {
		title += " (" + p.Category + ")"
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("=", len([]rune(title)))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Score (scenario %s): %s %s\n", p.Scenario, fmtFloat(p.Score), tierLabel(p.Tier, cfg)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Position: %d of %d\n", d.Position, d.Total); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "All scenarios: %s\n\n", formatScenarioScores(p.Scores, cfg.Methodology.ScenarioIDs(), fmtFloat)); err != nil {
		return err
	}

	labels := map[schema.IndicatorKey]string{
		schema.Origin:    d.OriginLabel,
		schema.NovaLevel: d.NovaLabel,
	}
	if err := writeProfileTable(w, p.Indicators, p.Normalized, labels, fmtFloat); err != nil {
		return err
	}

	if len(d.Alternatives) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nBetter alternatives in %s:\n", p.Category); err != nil {
		return err
	}
	for _, alt := range d.Alternatives {
		if _, err := fmt.Fprintf(w, "  %s %s %s\n", alt.Marker, alt.Name, fmtFloat(alt.Score)); err != nil {
			return err
		}
	}
	return nil
}

// WriteEvaluationResult outputs the score of a product that is not in the dataset.
func WriteEvaluationResult(eval schema.Evaluation, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, eval)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, eval)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileCSV(w, eval.Indicators, eval.Normalized, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEvaluationText(w, eval, cfg, fmtFloat)
		}, "Wrote text")
	}
}

func writeEvaluationText(w io.Writer, e schema.Evaluation, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "%s\n", e.Indicators.Name); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Score (scenario %s): %s %s\n", e.Scenario, fmtFloat(e.Score), tierLabel(e.Tier, cfg)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "All scenarios: %s\n", formatScenarioScores(e.Scores, cfg.Methodology.ScenarioIDs(), fmtFloat)); err != nil {
		return err
	}
	if e.HasDataset {
		sign := ""
		if e.DiffFromMean > 0 {
			sign = "+"
		}
		if _, err := fmt.Fprintf(w, "Dataset mean: %s (%s%s)\n", fmtFloat(e.DatasetMean), sign, fmtFloat(e.DiffFromMean)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	labels := map[schema.IndicatorKey]string{
		schema.Origin:    schema.OriginLabel(e.Indicators.Origin),
		schema.NovaLevel: schema.NovaLabel(e.Indicators.NOVA),
	}
	if err := writeProfileTable(w, e.Indicators, e.Normalized, labels, fmtFloat); err != nil {
		return err
	}

	if len(e.Nearest) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nProducts with a similar score:\n"); err != nil {
		return err
	}
	for _, n := range e.Nearest {
		if _, err := fmt.Fprintf(w, "  %s %s %s\n", n.Marker, n.Name, fmtFloat(n.Score)); err != nil {
			return err
		}
	}
	return nil
}

// writeProfileTable prints raw and normalized values per indicator.
func writeProfileTable(w io.Writer, p schema.ProductIndicators, normalized map[schema.IndicatorKey]float64, labels map[schema.IndicatorKey]string, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Indicator", "Value", "Class", "Normalized"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	raw := indicatorCells(p)
	var data [][]string
	for i, key := range schema.AllIndicators {
		data = append(data, []string{
			schema.IndicatorName(key),
			raw[i],
			labels[key],
			fmtFloat(normalized[key]),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeProfileCSV writes one row per indicator.
func writeProfileCSV(w io.Writer, p schema.ProductIndicators, normalized map[schema.IndicatorKey]float64, fmtFloat func(float64) string) error {
	raw := indicatorCells(p)
	return writeCSVWithHeader(w, []string{"product", "indicator", "value", "normalized"}, func(cw *csv.Writer) error {
		for i, key := range schema.AllIndicators {
			if err := cw.Write([]string{p.Name, schema.IndicatorName(key), raw[i], fmtFloat(normalized[key])}); err != nil {
				return err
			}
		}
		return nil
	})
}

// formatScenarioScores renders "A 90.0 | B 91.0".
func formatScenarioScores(scores map[schema.ScenarioID]float64, ids []schema.ScenarioID, fmtFloat func(float64) string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if v, ok := scores[id]; ok {
			parts = append(parts, string(id)+" "+fmtFloat(v))
		}
	}
	return strings.Join(parts, " | ")
}
