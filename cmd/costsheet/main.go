// Package main provides the CLI entry point for costsheet.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/costsheet-go/pkg/costsheet"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/config"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/output"
	"golang.org/x/sync/errgroup"
)

var (
	outputPath string
	pretty     bool
	format     string
	configPath string
	outDir     string
	fillMerged bool
	verbose    bool
	jobs       int
)

func main() {
	// Optional .env supplies COSTSHEET_CONFIG.
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "costsheet [flags] FILE...",
		Short: "Ingest LED cost sheet workbooks",
		Long: `costsheet reads LED cost sheet workbooks (.xlsx, .xls), matches the
display specifications to the margin analysis, and outputs reconciled
project totals as JSON or YAML.`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml")
	rootCmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for per-file results and manifest.json")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "Files processed concurrently with --out-dir")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Heuristics config file (default: $COSTSHEET_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&fillMerged, "fill-merged", false, "Copy merged cell values into every covered cell")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")

	rootCmd.AddCommand(newInspectCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("COSTSHEET_CONFIG")
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if fillMerged {
		cfg.FillMergedCells = true
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	outFormat := output.Format(strings.ToLower(format))
	if outFormat != output.FormatJSON && outFormat != output.FormatYAML {
		return fmt.Errorf("invalid format: %s (must be json or yaml)", format)
	}
	if len(args) > 1 && outDir == "" {
		return fmt.Errorf("%d input files need --out-dir", len(args))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := costsheet.Options{Config: cfg, Logger: newLogger()}

	if outDir != "" {
		return runBatch(args, opts, outFormat)
	}

	result, err := costsheet.IngestFile(args[0], opts)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	data, err := output.Marshal(result, outFormat, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// runBatch ingests every file independently, writes one result per file
// and a manifest. A failing file is recorded and does not stop the others.
func runBatch(inputs []string, opts costsheet.Options, outFormat output.Format) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	names := outputNames(inputs, string(outFormat))
	entries := make([]output.ManifestEntry, len(inputs))

	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			entries[i] = ingestToFile(input, filepath.Join(outDir, names[i]), opts, outFormat)
			return nil
		})
	}
	g.Wait()

	manifest := &output.Manifest{RunID: uuid.NewString(), Files: entries}
	data, err := output.ManifestToJSON(manifest, true)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "manifest.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	failed := 0
	for _, e := range entries {
		if e.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed, see manifest.json", failed, len(inputs))
	}
	return nil
}

func ingestToFile(input, path string, opts costsheet.Options, outFormat output.Format) output.ManifestEntry {
	entry := output.ManifestEntry{Input: input}

	result, err := costsheet.IngestFile(input, opts)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	data, err := output.Marshal(result, outFormat, pretty)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		entry.Error = err.Error()
		return entry
	}

	entry.Output = filepath.Base(path)
	entry.ProjectName = result.ResolvedProjectName
	entry.FinalTotal = result.Totals.FinalClientTotal
	entry.Warnings = len(result.Diagnostics.Warnings)
	return entry
}

// outputNames derives one result file name per input, suffixing repeats.
func outputNames(inputs []string, ext string) []string {
	names := make([]string, len(inputs))
	seen := make(map[string]int)
	for i, input := range inputs {
		base := filepath.Base(input)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		seen[base]++
		if n := seen[base]; n > 1 {
			base = fmt.Sprintf("%s-%d", base, n)
		}
		names[i] = base + "." + ext
	}
	return names
}
