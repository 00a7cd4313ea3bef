// Package main provides a performance benchmarking tool for the foodprint CLI.
// It generates synthetic datasets of increasing size in every supported input format,
// runs each command several times against them, treats the first successful run as cold
// and averages the rest as warm, and writes a CSV summary for documentation.
//
// Prerequisites:
// - foodprint binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for the generated datasets (defaults to a temp dir)
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/huangsam/foodprint/internal/parquet"
	"github.com/huangsam/foodprint/schema"
)

// BenchmarkResult holds the result of one command against one dataset.
type BenchmarkResult struct {
	Dataset  string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Sizes    []int
	Formats  []string
	Commands [][]string
}

func main() {
	if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	workDir := ""
	if len(os.Args) == 2 {
		workDir = os.Args[1]
	} else {
		dir, err := os.MkdirTemp("", "foodprint-benchmark-*")
		if err != nil {
			fmt.Printf("Failed to create work dir: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = os.RemoveAll(dir) }()
		workDir = dir
	}

	config := BenchmarkConfig{
		WorkDir: workDir,
		Timeout: 2 * time.Minute,
		Runs:    5,
		Sizes:   []int{100, 10_000, 100_000},
		Formats: []string{"csv", "parquet"},
		Commands: [][]string{
			{"rank", "--output", "json", "--output-file", os.DevNull},
			{"categories", "--output", "csv", "--output-file", os.DevNull},
			{"robust", "--output", "json", "--output-file", os.DevNull},
			{"verify", "--output", "csv", "--output-file", os.DevNull},
			{"export", "--output-file", filepath.Join(workDir, "bench.xlsx")},
		},
	}

	if _, err := exec.LookPath("foodprint"); err != nil {
		fmt.Printf("Prerequisites check failed: foodprint binary not found in PATH\n")
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// syntheticProducts builds n products with indicators spread across the reference ranges.
// Stored scores are left empty so verify exercises the skip path as well.
func syntheticProducts(n int) []parquet.ProductScore {
	rng := rand.New(rand.NewPCG(42, uint64(n)))
	ranges := schema.DefaultRanges()
	draw := func(key schema.IndicatorKey) float64 {
		r := ranges[key]
		return r.Min + rng.Float64()*(r.Max-r.Min)
	}

	rows := make([]parquet.ProductScore, n)
	for i := range rows {
		rows[i] = parquet.ProductScore{
			Product: fmt.Sprintf("Product %06d", i),
			CF:      draw(schema.CarbonFootprint),
			WF:      draw(schema.WaterFootprint),
			LU:      draw(schema.LandUse),
			Origin:  float64(rng.IntN(3) * 50),
			Waste:   draw(schema.Waste),
			NOVA:    int32(1 + rng.IntN(4)),
		}
	}
	return rows
}

// writeDataset writes the rows in the given format and returns the file path.
func writeDataset(dir, format string, rows []parquet.ProductScore) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("products_%d.%s", len(rows), format))
	switch format {
	case "parquet":
		return path, parquet.WriteProductScoresParquet(rows, path)
	case "csv":
		return path, writeCSVDataset(path, rows)
	default:
		return "", fmt.Errorf("unsupported dataset format %s", format)
	}
}

func writeCSVDataset(path string, rows []parquet.ProductScore) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	header := []string{"Product"}
	for _, key := range schema.AllIndicators {
		header = append(header, schema.IndicatorName(key))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
	for _, r := range rows {
		record := []string{r.Product, f(r.CF), f(r.WF), f(r.LU), f(r.Origin), f(r.Waste), strconv.Itoa(int(r.NOVA))}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// runBenchmarks generates every dataset and times every command against it.
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: sizes %v, formats %v, %d runs, %v timeout\n",
		config.Sizes, config.Formats, config.Runs, config.Timeout)

	for _, size := range config.Sizes {
		rows := syntheticProducts(size)
		for _, format := range config.Formats {
			path, err := writeDataset(config.WorkDir, format, rows)
			if err != nil {
				return nil, err
			}
			name := filepath.Base(path)
			fmt.Printf("Benchmarking %s\n", name)

			for _, args := range config.Commands {
				results = append(results, runBenchmarkSuite(config, name, path, args))
			}
		}
	}

	return results, nil
}

// runBenchmarkSuite runs one command several times and summarizes the timings.
func runBenchmarkSuite(config BenchmarkConfig, name, datasetPath string, args []string) BenchmarkResult {
	command := args[0]
	fmt.Printf("  %s (%d runs)\n", command, config.Runs)

	cold, warm := runBenchmark(config, datasetPath, args)

	coldTime := "TIMEOUT"
	if cold > 0 {
		coldTime = fmt.Sprintf("%.3fs", cold)
	}
	warmTime := "TIMEOUT"
	if len(warm) > 0 {
		var sum float64
		for _, t := range warm {
			sum += t
		}
		warmTime = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
	}

	fmt.Printf("    Cold: %s, Warm average: %s\n", coldTime, warmTime)
	return BenchmarkResult{Dataset: name, Command: command, ColdTime: coldTime, WarmTime: warmTime}
}

// runBenchmark executes a foodprint command repeatedly and returns the cold time and warm times.
// Failed or timed out runs are not counted.
func runBenchmark(config BenchmarkConfig, datasetPath string, args []string) (coldTime float64, warmTimes []float64) {
	fullArgs := append([]string{}, args...)
	fullArgs = append(fullArgs, "--dataset", datasetPath, "--color", "no")

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		start := time.Now()
		cmd := exec.CommandContext(ctx, "foodprint", fullArgs...)
		cmd.Dir = config.WorkDir
		err := cmd.Run()
		elapsed := time.Since(start).Seconds()
		cancel()

		if err == nil {
			times = append(times, elapsed)
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("foodprint_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"dataset", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-26s %-11s Cold: %s, Warm: %s\n", result.Dataset, result.Command, result.ColdTime, result.WarmTime)
	}
}
