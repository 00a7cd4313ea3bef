package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/schema"
	"github.com/rotisserie/eris"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = eris.New("missing required column")

// column identifies a logical dataset field.
type column string

const (
	colName     column = "name"
	colCF       column = "cf"
	colWF       column = "wf"
	colLU       column = "lu"
	colOrigin   column = "origin"
	colWaste    column = "waste"
	colNova     column = "nova"
	colCategory column = "category"
	colScoreA   column = "score_a"
	colScoreB   column = "score_b"
)

// requiredColumns must all be present in the header.
var requiredColumns = []column{colName, colCF, colWF, colLU, colOrigin, colWaste, colNova}

// headerAliases maps folded header text to a logical field.
var headerAliases = map[string]column{
	"producto":       colName,
	"product":        colName,
	"nombre":         colName,
	"name":           colName,
	"cf_kgco2eq_kg":  colCF,
	"cf":             colCF,
	"wf_l_kg":        colWF,
	"wf":             colWF,
	"lu_m2_kg":       colLU,
	"lu":             colLU,
	"origin_score":   colOrigin,
	"origin":         colOrigin,
	"waste_pct":      colWaste,
	"waste":          colWaste,
	"nova":           colNova,
	"categoria":      colCategory,
	"category":       colCategory,
	"score_mexico":   colScoreA,
	"score_a":        colScoreA,
	"score_mexico_b": colScoreB,
	"score_b":        colScoreB,
}

// mapHeader resolves header cells to column positions. The first occurrence of a field wins.
func mapHeader(header []string) (map[column]int, error) {
	positions := make(map[column]int, len(header))
	for i, cell := range header {
		col, ok := headerAliases[contract.Fold(strings.TrimPrefix(cell, "\ufeff"))]
		if !ok {
			continue
		}
		if _, seen := positions[col]; !seen {
			positions[col] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := positions[col]; !ok {
			missing = append(missing, string(col))
		}
	}
	if len(missing) > 0 {
		return nil, eris.Wrapf(ErrMissingColumn, "%s", strings.Join(missing, ", "))
	}
	return positions, nil
}

// ParseRecords converts header-first string rows into products. Blank rows are
// ignored; rows with an empty name, an unparseable number or a duplicate name
// are skipped and reported as notices.
func ParseRecords(source string, records [][]string) ([]schema.Product, []schema.Notice, error) {
	if len(records) == 0 {
		return nil, nil, eris.Wrapf(ErrMissingColumn, "%s has no header row", source)
	}

	positions, err := mapHeader(records[0])
	if err != nil {
		return nil, nil, eris.Wrapf(err, "reading %s", source)
	}

	products := make([]schema.Product, 0, len(records)-1)
	var notices []schema.Notice
	seen := make(map[string]struct{}, len(records))

	for i, row := range records[1:] {
		line := i + 2
		if isBlank(row) {
			continue
		}

		p, err := parseRow(row, positions)
		if err != nil {
			notices = append(notices, schema.Notice{Source: source, Line: line, Message: err.Error()})
			continue
		}

		key := contract.Fold(p.Name)
		if _, dup := seen[key]; dup {
			notices = append(notices, schema.Notice{Source: source, Line: line, Message: "duplicate product " + p.Name})
			continue
		}
		seen[key] = struct{}{}
		products = append(products, p)
	}

	return products, notices, nil
}

func parseRow(row []string, positions map[column]int) (schema.Product, error) {
	cell := func(col column) string {
		idx, ok := positions[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var p schema.Product
	p.Name = cell(colName)
	if p.Name == "" {
		return p, eris.New("empty product name")
	}
	p.Category = cell(colCategory)

	floats := []struct {
		col  column
		dest *float64
	}{
		{colCF, &p.CF},
		{colWF, &p.WF},
		{colLU, &p.LU},
		{colOrigin, &p.Origin},
		{colWaste, &p.Waste},
	}
	for _, f := range floats {
		v, err := parseNumber(cell(f.col))
		if err != nil {
			return p, eris.Wrapf(err, "%s: column %s", p.Name, f.col)
		}
		*f.dest = v
	}

	nova, err := parseNumber(cell(colNova))
	if err != nil {
		return p, eris.Wrapf(err, "%s: column %s", p.Name, colNova)
	}
	if nova != math.Trunc(nova) {
		return p, eris.Errorf("%s: column %s must be a whole number, got %v", p.Name, colNova, nova)
	}
	p.NOVA = int(nova)

	for id, col := range map[schema.ScenarioID]column{schema.ScenarioA: colScoreA, schema.ScenarioB: colScoreB} {
		raw := cell(col)
		if raw == "" {
			continue
		}
		v, err := parseNumber(raw)
		if err != nil {
			return p, eris.Wrapf(err, "%s: column %s", p.Name, col)
		}
		if p.Precomputed == nil {
			p.Precomputed = make(map[schema.ScenarioID]float64, 2)
		}
		p.Precomputed[id] = v
	}

	return p, nil
}

// parseNumber accepts a dot or a lone comma as the decimal separator.
func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, eris.New("missing value")
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, eris.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, eris.Errorf("non-finite number %q", s)
	}
	return v, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
