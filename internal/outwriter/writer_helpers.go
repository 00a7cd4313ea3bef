package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/schema"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return eris.Wrap(err, "failed to encode JSON")
	}
	return nil
}

// writeYAML is the YAML counterpart of writeJSON.
func writeYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return eris.Wrap(err, "failed to encode YAML")
	}
	return eris.Wrap(encoder.Close(), "failed to flush YAML")
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return eris.Wrap(err, "failed to write CSV header")
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return eris.Wrap(csvWriter.Error(), "failed to flush CSV")
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// indicatorHeaders returns the dataset column names of the six indicators.
func indicatorHeaders() []string {
	headers := make([]string, len(schema.AllIndicators))
	for i, key := range schema.AllIndicators {
		headers[i] = schema.IndicatorName(key)
	}
	return headers
}

// indicatorCells formats raw indicator values in schema.AllIndicators order.
// Raw values are printed in full since they are measurements, not scores.
func indicatorCells(p schema.ProductIndicators) []string {
	cells := make([]string, len(schema.AllIndicators))
	for i, key := range schema.AllIndicators {
		if key == schema.NovaLevel {
			cells[i] = strconv.Itoa(p.NOVA)
			continue
		}
		cells[i] = strconv.FormatFloat(p.Value(key), 'f', -1, 64)
	}
	return cells
}

// normalizedCells formats a normalized profile in schema.AllIndicators order.
func normalizedCells(normalized map[schema.IndicatorKey]float64, fmtFloat func(float64) string) []string {
	cells := make([]string, len(schema.AllIndicators))
	for i, key := range schema.AllIndicators {
		cells[i] = fmtFloat(normalized[key])
	}
	return cells
}

// tierLabel returns a colored or plain tier label.
func tierLabel(tier schema.Tier, cfg *contract.Config) string {
	if cfg.UseColors {
		return tier.Marker() + " " + contract.GetColorLabel(tier)
	}
	return tier.Marker() + " " + tier.Label()
}

// scenarioHeaders returns one score column per scenario.
func scenarioHeaders(prefix string, ids []schema.ScenarioID) []string {
	headers := make([]string, len(ids))
	for i, id := range ids {
		headers[i] = prefix + string(id)
	}
	return headers
}

// scenarioCells formats the per-scenario scores of a result, blank when absent.
func scenarioCells(scores map[schema.ScenarioID]float64, ids []schema.ScenarioID, fmtFloat func(float64) string) []string {
	cells := make([]string, len(ids))
	for i, id := range ids {
		if v, ok := scores[id]; ok {
			cells[i] = fmtFloat(v)
		}
	}
	return cells
}
