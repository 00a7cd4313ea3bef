// Package dataset loads product catalogs from CSV, XLSX and Parquet files.
package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/internal/parquet"
	"github.com/huangsam/foodprint/schema"
	"github.com/rotisserie/eris"
)

var (
	// ErrNoDataset is returned when no dataset file can be found.
	ErrNoDataset = eris.New("no dataset found")

	// ErrUnsupportedFormat is returned for file extensions without a reader.
	ErrUnsupportedFormat = eris.New("unsupported dataset format")
)

// FileSource loads products from a dataset file on disk.
type FileSource struct {
	// Path is the configured dataset; empty means probe the default locations.
	Path string

	// Dir is where default locations are probed; empty means the working directory.
	Dir string
}

// NewFileSource creates a new file-backed product source.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Describe names the configured dataset.
func (s *FileSource) Describe() string {
	if s.Path == "" {
		return "default dataset"
	}
	return s.Path
}

// Resolve returns the dataset path to read. A configured path wins; otherwise
// the first existing default location is used.
func (s *FileSource) Resolve() (string, error) {
	if s.Path != "" {
		if _, err := os.Stat(s.Path); err != nil {
			return "", eris.Wrapf(ErrNoDataset, "%s", s.Path)
		}
		return s.Path, nil
	}
	for _, candidate := range contract.DefaultDatasetPaths {
		path := filepath.Join(s.Dir, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", eris.Wrapf(ErrNoDataset, "tried %s", strings.Join(contract.DefaultDatasetPaths, ", "))
}

// Load reads the dataset. Malformed rows are skipped and reported as notices;
// a missing file or a missing required column is an error.
func (s *FileSource) Load(ctx context.Context) ([]schema.Product, []schema.Notice, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, eris.Wrap(err, "dataset: context cancelled")
	}

	path, err := s.Resolve()
	if err != nil {
		return nil, nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, err := ReadCSV(path)
		if err != nil {
			return nil, nil, err
		}
		return ParseRecords(path, records)
	case ".xlsx":
		records, err := ReadXLSX(path)
		if err != nil {
			return nil, nil, err
		}
		return ParseRecords(path, records)
	case ".parquet":
		rows, err := parquet.ReadProductScoresParquet(path)
		if err != nil {
			return nil, nil, err
		}
		products, notices := dedupe(path, parquet.ToProducts(rows))
		return products, notices, nil
	default:
		return nil, nil, eris.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

// dedupe drops products whose folded name was already seen.
func dedupe(source string, products []schema.Product) ([]schema.Product, []schema.Notice) {
	seen := make(map[string]struct{}, len(products))
	kept := make([]schema.Product, 0, len(products))
	var notices []schema.Notice
	for i, p := range products {
		key := contract.Fold(p.Name)
		if key == "" {
			notices = append(notices, schema.Notice{Source: source, Line: i + 2, Message: "empty product name"})
			continue
		}
		if _, dup := seen[key]; dup {
			notices = append(notices, schema.Notice{Source: source, Line: i + 2, Message: "duplicate product " + p.Name})
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, p)
	}
	return kept, notices
}

var _ contract.ProductSource = &FileSource{}
