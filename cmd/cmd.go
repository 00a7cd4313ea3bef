// Package cmd defines the command-line interface for foodprint.
package cmd

import (
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(robustCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(methodologyCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("scenario", "s", string(schema.ScenarioA), "Weighting scenario: A (default) or B (waste-focused) or any scenario from the config file")
	rootCmd.PersistentFlags().StringP("dataset", "d", "", "Path to the product dataset (.csv, .xlsx or .parquet)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("top", contract.DefaultTopN, "Rows in the top sheet of a workbook export")
	rootCmd.PersistentFlags().Int("bottom", contract.DefaultBottomN, "Rows in the least sustainable sheet of a workbook export")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or yaml or parquet or xlsx")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("log-format", contract.DefaultLogFormat, "Log format: console or json")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of evaluateCmd to Viper
	evaluateCmd.Flags().String("name", "", "Name of the new product")
	evaluateCmd.Flags().Float64("cf", 0, "Carbon footprint in kg CO2-eq per kg")
	evaluateCmd.Flags().Float64("wf", 0, "Water footprint in liters per kg")
	evaluateCmd.Flags().Float64("lu", 0, "Land use in m2 per kg")
	evaluateCmd.Flags().Float64("origin", 0, "Origin score: 0 local, 50 regional, 100 imported")
	evaluateCmd.Flags().Float64("waste", 0, "Percent of the product that is wasted")
	evaluateCmd.Flags().Int("nova", 1, "NOVA processing level from 1 to 4")
	if err := viper.BindPFlags(evaluateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding evaluate flags", err)
	}

	// Bind all flags of robustCmd to Viper
	robustCmd.Flags().Int("robust-top", contract.DefaultRobustTopN, "Top N that a product must reach under every scenario")
	if err := viper.BindPFlags(robustCmd.Flags()); err != nil {
		contract.LogFatal("Error binding robust flags", err)
	}

	// Bind all flags of verifyCmd to Viper
	verifyCmd.Flags().Float64("tolerance", contract.DefaultTolerance, "Largest accepted difference between stored and computed scores")
	if err := viper.BindPFlags(verifyCmd.Flags()); err != nil {
		contract.LogFatal("Error binding verify flags", err)
	}
}
