package outwriter

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/huangsam/foodprint/core/algo"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/schema"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// Sheet names of an exported workbook. The top sheet is named after its size.
const (
	FullRankingSheet      = "Full_Ranking"
	LeastSustainableSheet = "Least_Sustainable"
)

// ErrReportClosed is returned when reading a report after Close.
var ErrReportClosed = eris.New("report is closed")

// ExportOptions sizes the partial sheets of a workbook.
type ExportOptions struct {
	TopN    int
	BottomN int
}

// TopSheetName returns the name of the best-products sheet.
func (o ExportOptions) TopSheetName() string {
	return fmt.Sprintf("Top_%d", o.TopN)
}

// Report is a generated workbook held in memory.
// It is read from the start and must be closed once the caller is done with it.
type Report struct {
	Scenario schema.ScenarioID
	Sheets   []string

	reader *bytes.Reader
}

var _ io.ReadCloser = &Report{}

// Read reads workbook bytes.
func (r *Report) Read(p []byte) (int, error) {
	if r.reader == nil {
		return 0, ErrReportClosed
	}
	return r.reader.Read(p)
}

// Size returns the workbook size in bytes, or zero once closed.
func (r *Report) Size() int64 {
	if r.reader == nil {
		return 0
	}
	return r.reader.Size()
}

// Close releases the buffer. Calling it more than once is a no-op.
func (r *Report) Close() error {
	r.reader = nil
	return nil
}

// ExportWorkbook ranks the results by the given scenario and renders three sheets:
// the full ranking, the top products and the least sustainable products.
// Fewer results than TopN or BottomN produce shorter sheets, and no results
// produce sheets with only a header row.
func ExportWorkbook(results []schema.ProductResult, scenario schema.ScenarioID, opts ExportOptions) (*Report, error) {
	if opts.TopN <= 0 || opts.BottomN <= 0 {
		return nil, eris.Errorf("export sizes must be positive (top %d, bottom %d)", opts.TopN, opts.BottomN)
	}

	keyed, err := keyByScenario(results, scenario)
	if err != nil {
		return nil, err
	}
	ranked := rankByPosition(keyed)
	bottom := slices.Clone(ranked[len(ranked)-min(opts.BottomN, len(ranked)):])
	slices.Reverse(bottom)
	scoreHeader := "Score_" + string(scenario)

	f := xlsx.NewFile()
	sheets := []struct {
		name  string
		write func(*xlsx.Sheet)
	}{
		{FullRankingSheet, func(s *xlsx.Sheet) { writeFullRankingSheet(s, ranked, scoreHeader) }},
		{opts.TopSheetName(), func(s *xlsx.Sheet) { writeScoreSheet(s, ranked[:min(opts.TopN, len(ranked))], scoreHeader) }},
		{LeastSustainableSheet, func(s *xlsx.Sheet) { writeScoreSheet(s, bottom, scoreHeader) }},
	}

	names := make([]string, 0, len(sheets))
	for _, sh := range sheets {
		sheet, err := f.AddSheet(sh.name)
		if err != nil {
			return nil, eris.Wrapf(err, "failed to add sheet %s", sh.name)
		}
		sh.write(sheet)
		names = append(names, sh.name)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, eris.Wrap(err, "failed to render workbook")
	}

	return &Report{
		Scenario: scenario,
		Sheets:   names,
		reader:   bytes.NewReader(buf.Bytes()),
	}, nil
}

// rankByPosition sorts best first and numbers every row by position, so tied
// products share the worse rank as they do in every other view.
func rankByPosition(results []schema.ProductResult) []schema.EnrichedProductResult {
	sorted := algo.RankProducts(results, 0)
	ranked := make([]schema.EnrichedProductResult, len(sorted))
	for i, r := range sorted {
		ranked[i] = algo.Enrich(r, algo.Position(sorted, r.Score))
	}
	return ranked
}

// keyByScenario makes the given scenario the active score of every result.
func keyByScenario(results []schema.ProductResult, scenario schema.ScenarioID) ([]schema.ProductResult, error) {
	keyed := make([]schema.ProductResult, len(results))
	for i, r := range results {
		if r.Scenario != scenario {
			score, ok := r.Scores[scenario]
			if !ok {
				return nil, eris.Wrapf(algo.ErrUnknownScenario, "no %s score for %s", scenario, r.Name)
			}
			r.Scenario, r.Score = scenario, score
		}
		keyed[i] = r
	}
	return keyed, nil
}

func addHeaderRow(sheet *xlsx.Sheet, headers ...string) {
	row := sheet.AddRow()
	for _, h := range headers {
		row.AddCell().SetString(h)
	}
}

func writeFullRankingSheet(sheet *xlsx.Sheet, ranked []schema.EnrichedProductResult, scoreHeader string) {
	headers := append([]string{"Rank", "Product", "Category"}, indicatorHeaders()...)
	headers = append(headers, scoreHeader, "Tier")
	addHeaderRow(sheet, headers...)

	for _, p := range ranked {
		row := sheet.AddRow()
		row.AddCell().SetInt(p.Rank)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Category)
		for _, key := range schema.AllIndicators {
			if key == schema.NovaLevel {
				row.AddCell().SetInt(p.Indicators.NOVA)
				continue
			}
			row.AddCell().SetFloat(p.Indicators.Value(key))
		}
		row.AddCell().SetFloat(p.Score)
		row.AddCell().SetString(p.Label)
	}
}

func writeScoreSheet(sheet *xlsx.Sheet, products []schema.EnrichedProductResult, scoreHeader string) {
	addHeaderRow(sheet, "Rank", "Product", scoreHeader, "Tier")
	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(p.Rank)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetFloat(p.Score)
		row.AddCell().SetString(p.Label)
	}
}

// WriteWorkbookResults exports the results as a workbook to the configured output file.
func WriteWorkbookResults(results []schema.ProductResult, cfg *contract.Config) error {
	report, err := ExportWorkbook(results, cfg.Scenario, ExportOptions{TopN: cfg.TopN, BottomN: cfg.BottomN})
	if err != nil {
		return err
	}
	defer func() { _ = report.Close() }()

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		_, err := io.Copy(w, report)
		return eris.Wrap(err, "failed to copy workbook")
	}, "Wrote workbook")
}
