package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/internal/parquet"
	"github.com/huangsam/foodprint/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rotisserie/eris"
)

// WriteRankingResults outputs a ranking, dispatching based on the output format configured.
func WriteRankingResults(report schema.RankingReport, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, report)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingCSV(w, report.Products, cfg.Methodology.ScenarioIDs(), fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteProductScores(w, parquet.ConvertEnrichedProducts(report.Products))
		}, "Wrote Parquet")
	case schema.XLSXOut:
		results := make([]schema.ProductResult, len(report.Products))
		for i, p := range report.Products {
			results[i] = p.ProductResult
		}
		return WriteWorkbookResults(results, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingTable(w, report, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeRankingTable generates and writes the human-readable table.
func writeRankingTable(w io.Writer, report schema.RankingReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	ids := cfg.Methodology.ScenarioIDs()
	table := tablewriter.NewWriter(w)

	headers := []string{"Rank", "Product", "Category", "Score", "Tier"}
	headers = append(headers, scenarioHeaders("Score ", ids)...)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg, len(ids)+1)
	var data [][]string
	for _, p := range report.Products {
		row := []string{
			strconv.Itoa(p.Rank),
			contract.TruncateName(p.Name, nameWidth),
			p.Category,
			fmtFloat(p.Score),
			tierLabel(p.Tier, cfg),
		}
		row = append(row, scenarioCells(p.Scores, ids, fmtFloat)...)
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	return writeRankingFooter(w, report, fmtFloat)
}

// writeRankingFooter prints the summary statistics below a ranking table.
func writeRankingFooter(w io.Writer, report schema.RankingReport, fmtFloat func(float64) string) error {
	s := report.Summary
	if s.Count == 0 {
		_, err := fmt.Fprintf(w, "No products to rank under scenario %s\n", s.Scenario)
		return err
	}
	if _, err := fmt.Fprintf(w, "Showing %d of %d products under scenario %s (mean score: %s)\n",
		len(report.Products), s.Count, s.Scenario, fmtFloat(s.Mean)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best: %s (%s). Worst: %s (%s)\n",
		s.Best.Name, fmtFloat(s.Best.Score), s.Worst.Name, fmtFloat(s.Worst.Score)); err != nil {
		return err
	}
	if len(report.Notices) > 0 {
		if _, err := fmt.Fprintf(w, "Skipped %d dataset rows\n", len(report.Notices)); err != nil {
			return err
		}
	}
	return nil
}

// writeRankingCSV writes one row per product with raw indicators and every scenario score.
func writeRankingCSV(w io.Writer, products []schema.EnrichedProductResult, ids []schema.ScenarioID, fmtFloat func(float64) string) error {
	header := []string{"rank", "product", "category"}
	header = append(header, indicatorHeaders()...)
	header = append(header, "scenario", "score", "tier")
	header = append(header, scenarioHeaders("score_", ids)...)

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range products {
			rec := []string{strconv.Itoa(p.Rank), p.Name, p.Category}
			rec = append(rec, indicatorCells(p.Indicators)...)
			rec = append(rec, string(p.Scenario), fmtFloat(p.Score), p.Label)
			rec = append(rec, scenarioCells(p.Scores, ids, fmtFloat)...)
			if err := cw.Write(rec); err != nil {
				return eris.Wrapf(err, "failed to write CSV row for %s", p.Name)
			}
		}
		return nil
	})
}
