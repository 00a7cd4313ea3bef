package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteComparisonResults outputs products side by side, dispatching based on the output format configured.
func WriteComparisonResults(result schema.ComparisonResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, result)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(w, result, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeComparisonTable prints one column per product and one row per indicator.
// Indicator cells show the raw value followed by its normalized score.
func writeComparisonTable(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	nameWidth := GetMaxTableNameWidth(cfg, len(result.Products))
	headers := []string{""}
	for _, p := range result.Products {
		headers = append(headers, contract.TruncateName(p.Name, nameWidth))
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Formatting.AutoFormat = tw.Off // product names are shown as stored
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	scoreRow := []string{"Score " + string(result.Scenario)}
	tierRow := []string{"Tier"}
	rankRow := []string{"Rank"}
	for _, p := range result.Products {
		scoreRow = append(scoreRow, fmtFloat(p.Score))
		tierRow = append(tierRow, tierLabel(p.Tier, cfg))
		rankRow = append(rankRow, strconv.Itoa(p.Rank))
	}
	data := [][]string{scoreRow, tierRow, rankRow}

	for i, key := range schema.AllIndicators {
		row := []string{schema.IndicatorName(key)}
		for _, p := range result.Products {
			raw := indicatorCells(p.Indicators)[i]
			row = append(row, fmt.Sprintf("%s (%s)", raw, fmtFloat(p.Normalized[key])))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeComparisonCSV writes one row per product with its normalized profile.
func writeComparisonCSV(w io.Writer, result schema.ComparisonResult, fmtFloat func(float64) string) error {
	header := []string{"rank", "product", "category", "scenario", "score", "tier"}
	for _, key := range schema.AllIndicators {
		header = append(header, "norm_"+string(key))
	}

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range result.Products {
			rec := []string{strconv.Itoa(p.Rank), p.Name, p.Category, string(result.Scenario), fmtFloat(p.Score), p.Label}
			rec = append(rec, normalizedCells(p.Normalized, fmtFloat)...)
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
