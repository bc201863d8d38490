package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mmatos/tabula/internal/config"
	"github.com/mmatos/tabula/internal/generator"
	"github.com/mmatos/tabula/internal/logging"
	"github.com/mmatos/tabula/internal/sampler"
)

const version = "0.1.0"

var logLevel string

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "tabula",
		Short: "Locale-aware fake tabular data generator",
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")

	rootCmd.AddCommand(generateCmd(cfg))
	rootCmd.AddCommand(sampleCmd(cfg))
	rootCmd.AddCommand(schemaCmd(cfg))
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildGenerator loads a dataset file, resolves the seed and declares
// its columns on a fresh generator.
func buildGenerator(cfg *config.Config, file string, seedFlag *int64) (*generator.Generator, *config.DatasetFile, error) {
	ds, err := config.LoadDataset(file)
	if err != nil {
		return nil, nil, err
	}

	seed := cfg.Seed
	if ds.Seed != nil {
		seed = *ds.Seed
	}
	if seedFlag != nil {
		seed = *seedFlag
	}

	gen, err := generator.New(ds.Locale, seed)
	if err != nil {
		return nil, nil, err
	}
	if err := gen.AddColumns(ds.Columns); err != nil {
		return nil, nil, err
	}
	return gen, ds, nil
}

func outPath(cfg *config.Config, out string, ds *config.DatasetFile) string {
	if out != "" {
		return out
	}
	name := ds.Name
	if name == "" {
		name = "dataset"
	}
	return filepath.Join(cfg.OutDir, name)
}

func generateCmd(cfg *config.Config) *cobra.Command {
	var (
		file   string
		rows   int
		seed   int64
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset from a dataset file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(logLevel, os.Stderr)

			var seedFlag *int64
			if cmd.Flags().Changed("seed") {
				seedFlag = &seed
			}

			gen, ds, err := buildGenerator(cfg, file, seedFlag)
			if err != nil {
				return err
			}

			n := ds.Rows
			if rows > 0 {
				n = rows
			}

			runID := uuid.NewString()
			start := time.Now()
			if err := gen.Generate(n, true); err != nil {
				return err
			}
			logger.Info("run %s: generated %d rows (%d columns, locale %s) in %s",
				runID, n, len(gen.Columns()), gen.Locale(), time.Since(start))

			if format == "" {
				_, err := gen.Table(false)
				return err
			}

			path := outPath(cfg, out, ds)
			if err := gen.Save(format, path); err != nil {
				return err
			}
			logger.Info("run %s: saved %s.%s", runID, path, format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Dataset file (YAML)")
	cmd.Flags().IntVar(&rows, "rows", 0, "Override the dataset row count")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Override the random seed")
	cmd.Flags().StringVar(&format, "format", "", "Export format (csv|json|html); prints a table when omitted")
	cmd.Flags().StringVar(&out, "out", "", "Output path without extension")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func sampleCmd(cfg *config.Config) *cobra.Command {
	var (
		file        string
		seed        int64
		method      string
		n           int
		column      string
		interval    int
		replacement bool
		format      string
		out         string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a dataset and resample it",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(logLevel, os.Stderr)

			var seedFlag *int64
			if cmd.Flags().Changed("seed") {
				seedFlag = &seed
			}

			gen, ds, err := buildGenerator(cfg, file, seedFlag)
			if err != nil {
				return err
			}
			if err := gen.Generate(ds.Rows, true); err != nil {
				return err
			}

			var sample *sampler.Sample
			switch method {
			case "random":
				sample, err = gen.Sampler().Random(n, replacement)
			case "stratified":
				sample, err = gen.Sampler().Stratified(n, column)
			case "systematic":
				sample, err = gen.Sampler().Systematic(interval, n)
			case "cluster":
				sample, err = gen.Sampler().Cluster(column, n)
			default:
				return fmt.Errorf("unknown sampling method %q (random|stratified|systematic|cluster)", method)
			}
			if err != nil {
				return err
			}
			logger.Info("sampled %d of %d rows using %s sampling", len(sample.Rows), ds.Rows, method)

			if format == "" {
				_, err := sample.Table(false)
				return err
			}
			return sample.Save(format, outPath(cfg, out, ds)+"-sample")
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Dataset file (YAML)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Override the random seed")
	cmd.Flags().StringVar(&method, "method", "random", "Sampling method (random|stratified|systematic|cluster)")
	cmd.Flags().IntVarP(&n, "samples", "n", 10, "Sample size (cluster count for cluster sampling)")
	cmd.Flags().StringVar(&column, "column", "", "Stratification or clustering column")
	cmd.Flags().IntVar(&interval, "interval", 1, "Interval for systematic sampling")
	cmd.Flags().BoolVar(&replacement, "replacement", true, "Sample with replacement (random sampling)")
	cmd.Flags().StringVar(&format, "format", "", "Export format (csv|json|html); prints a table when omitted")
	cmd.Flags().StringVar(&out, "out", "", "Output path without extension")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func schemaCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect dataset files",
	}

	validateCmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate a dataset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ds, err := buildGenerator(cfg, args[0], nil)
			if err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return err
			}

			name := ds.Name
			if name == "" {
				name = args[0]
			}
			fmt.Printf("Dataset '%s' is valid\n", name)
			gen.Info(os.Stdout)
			return nil
		},
	}

	cmd.AddCommand(validateCmd)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tabula " + version)
		},
	}
}
