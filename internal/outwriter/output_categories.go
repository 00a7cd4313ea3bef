package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteCategoryResults outputs products grouped by category.
func WriteCategoryResults(groups []schema.CategoryGroup, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, groups)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, groups)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGroupsCSV(w, groups, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGroupsText(w, groups, cfg, fmtFloat)
		}, "Wrote text")
	}
}

// WriteRobustResults outputs the products that stay in the top N of every scenario.
func WriteRobustResults(result schema.RobustResult, cfg *contract.Config) error {
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
			return writeGroupsCSV(w, result.Groups, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRobustText(w, result, cfg, fmtFloat)
		}, "Wrote text")
	}
}

func writeRobustText(w io.Writer, result schema.RobustResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	ids := make([]string, len(result.Scenarios))
	for i, id := range result.Scenarios {
		ids[i] = string(id)
	}
	if _, err := fmt.Fprintf(w, "Products in the top %d of every scenario (%s): %d\n\n",
		result.TopN, strings.Join(ids, ", "), len(result.Products)); err != nil {
		return err
	}
	if len(result.Products) == 0 {
		return nil
	}
	return writeGroupsText(w, result.Groups, cfg, fmtFloat)
}

// writeGroupsText prints one small table per category.
func writeGroupsText(w io.Writer, groups []schema.CategoryGroup, cfg *contract.Config, fmtFloat func(float64) string) error {
	ids := cfg.Methodology.ScenarioIDs()
	nameWidth := GetMaxTableNameWidth(cfg, len(ids))

	for i, g := range groups {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s (%d)\n", g.Category, len(g.Products)); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		headers := []string{"Rank", "Product", "Tier"}
		headers = append(headers, scenarioHeaders("Score ", ids)...)
		table.Header(headers)
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, p := range g.Products {
			row := []string{strconv.Itoa(p.Rank), contract.TruncateName(p.Name, nameWidth), tierLabel(p.Tier, cfg)}
			row = append(row, scenarioCells(p.Scores, ids, fmtFloat)...)
			data = append(data, row)
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

func writeGroupsCSV(w io.Writer, groups []schema.CategoryGroup, fmtFloat func(float64) string) error {
	header := []string{"category", "rank", "product", "scenario", "score", "tier"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, g := range groups {
			for _, p := range g.Products {
				rec := []string{g.Category, strconv.Itoa(p.Rank), p.Name, string(p.Scenario), fmtFloat(p.Score), p.Label}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
