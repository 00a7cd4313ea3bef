// Package parquet provides data structures and functions for exchanging scored
// products as Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"io"
	"os"

	"github.com/huangsam/foodprint/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/rotisserie/eris"
)

// ProductScore is one scored product as stored in a Parquet file.
// The indicator columns match the dataset headers so the file can be loaded again.
type ProductScore struct {
	// Rank is the 1-based position under the active scenario
	Rank int32 `parquet:"rank,snappy"`

	// Product is the product name
	Product string `parquet:"product,snappy"`

	// Category is the food group (nullable)
	Category *string `parquet:"category,optional,snappy"`

	CF     float64 `parquet:"cf_kgco2eq_kg,snappy"`
	WF     float64 `parquet:"wf_l_kg,snappy"`
	LU     float64 `parquet:"lu_m2_kg,snappy"`
	Origin float64 `parquet:"origin_score,snappy"`
	Waste  float64 `parquet:"waste_pct,snappy"`
	NOVA   int32   `parquet:"nova,snappy"`

	// Scenario is the active scenario the rank and tier refer to
	Scenario string `parquet:"scenario,snappy"`

	// Score is the composite under the active scenario
	Score float64 `parquet:"score,snappy"`

	// Tier is the plain tier label of Score
	Tier string `parquet:"tier,snappy"`

	// ScoreA and ScoreB hold the built-in scenario composites (nullable)
	ScoreA *float64 `parquet:"score_a,optional,snappy"`
	ScoreB *float64 `parquet:"score_b,optional,snappy"`
}

// WriteProductScores writes a slice of ProductScore structs to w.
func WriteProductScores(w io.Writer, data []ProductScore) error {
	// The schema is derived from the ProductScore struct tags
	writer := parquet.NewGenericWriter[ProductScore](w)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return eris.Wrap(err, "failed to write data to parquet")
	}

	// Close flushes the footer, so its error matters
	if err := writer.Close(); err != nil {
		return eris.Wrap(err, "failed to close parquet writer")
	}
	return nil
}

// WriteProductScoresParquet writes a slice of ProductScore structs to a Parquet file.
func WriteProductScoresParquet(data []ProductScore, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "failed to create output file")
	}
	defer func() { _ = file.Close() }()

	return WriteProductScores(file, data)
}

// ReadProductScoresParquet reads every row of a Parquet file written by WriteProductScoresParquet.
func ReadProductScoresParquet(path string) ([]ProductScore, error) {
	rows, err := parquet.ReadFile[ProductScore](path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read parquet file %s", path)
	}
	return rows, nil
}

// ConvertEnrichedProducts converts ranked results to ProductScore rows for Parquet export.
func ConvertEnrichedProducts(results []schema.EnrichedProductResult) []ProductScore {
	rows := make([]ProductScore, len(results))
	for i, r := range results {
		row := ProductScore{
			Rank:     int32(r.Rank),
			Product:  r.Name,
			CF:       r.Indicators.CF,
			WF:       r.Indicators.WF,
			LU:       r.Indicators.LU,
			Origin:   r.Indicators.Origin,
			Waste:    r.Indicators.Waste,
			NOVA:     int32(r.Indicators.NOVA),
			Scenario: string(r.Scenario),
			Score:    r.Score,
			Tier:     r.Label,
		}
		if r.Category != "" {
			category := r.Category
			row.Category = &category
		}
		if v, ok := r.Scores[schema.ScenarioA]; ok {
			row.ScoreA = &v
		}
		if v, ok := r.Scores[schema.ScenarioB]; ok {
			row.ScoreB = &v
		}
		rows[i] = row
	}
	return rows
}

// ToProducts converts ProductScore rows back to dataset products.
// The built-in scenario columns become precomputed scores.
func ToProducts(rows []ProductScore) []schema.Product {
	products := make([]schema.Product, len(rows))
	for i, row := range rows {
		p := schema.Product{
			ProductIndicators: schema.ProductIndicators{
				Name:   row.Product,
				CF:     row.CF,
				WF:     row.WF,
				LU:     row.LU,
				Origin: row.Origin,
				Waste:  row.Waste,
				NOVA:   int(row.NOVA),
			},
		}
		if row.Category != nil {
			p.Category = *row.Category
		}
		if row.ScoreA != nil || row.ScoreB != nil {
			p.Precomputed = make(map[schema.ScenarioID]float64, 2)
			if row.ScoreA != nil {
				p.Precomputed[schema.ScenarioA] = *row.ScoreA
			}
			if row.ScoreB != nil {
				p.Precomputed[schema.ScenarioB] = *row.ScoreB
			}
		}
		products[i] = p
	}
	return products
}
