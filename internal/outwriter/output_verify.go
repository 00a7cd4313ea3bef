package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteVerificationResults outputs the mismatches found by a verification pass.
func WriteVerificationResults(result schema.VerificationResult, cfg *contract.Config) error {
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
			return writeVerificationCSV(w, result)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeVerificationText(w, result, cfg, fmtFloat)
		}, "Wrote text")
	}
}

func writeVerificationText(w io.Writer, result schema.VerificationResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	ok, bad := fmt.Sprint, fmt.Sprint
	if cfg.UseColors {
		ok = color.New(color.FgGreen).SprintFunc()
		bad = color.New(color.FgRed).SprintFunc()
	}

	if _, err := fmt.Fprintf(w, "Checked %d scores, skipped %d products without stored scores (tolerance %g)\n",
		result.Checked, result.Skipped, result.Tolerance); err != nil {
		return err
	}
	if result.OK() {
		_, err := fmt.Fprintln(w, ok("✅ All stored scores match"))
		return err
	}
	if _, err := fmt.Fprintln(w, bad(fmt.Sprintf("❌ %d mismatches", len(result.Mismatches)))); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Product", "Scenario", "Stored", "Computed", "Delta"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	precise := func(v float64) string { return fmt.Sprintf("%.4f", v) }
	var data [][]string
	for _, m := range result.Mismatches {
		data = append(data, []string{m.Name, string(m.Scenario), fmtFloat(m.Expected), fmtFloat(m.Actual), precise(m.Delta)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeVerificationCSV(w io.Writer, result schema.VerificationResult) error {
	header := []string{"product", "scenario", "expected", "actual", "delta"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range result.Mismatches {
			rec := []string{
				m.Name,
				string(m.Scenario),
				fmt.Sprintf("%.4f", m.Expected),
				fmt.Sprintf("%.4f", m.Actual),
				fmt.Sprintf("%.4f", m.Delta),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
