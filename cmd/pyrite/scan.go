package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"pyrite/internal/config"
	"pyrite/internal/diagfmt"
	"pyrite/internal/driver"
	"pyrite/internal/metadata"
	"pyrite/internal/observ"
	"pyrite/internal/pipeline"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan Python sources for analysis directives",
	Long: `Scan reads the directive comments of every Python file under a path:
the local analysis mode, suppression comments, generation markers and the
language version. It derives each file's module qualifier and reports the
effective mode after applying pyrite.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	scanCmd.Flags().Int("jobs", 0, "parallel scan workers (0 = GOMAXPROCS)")
	scanCmd.Flags().Bool("no-cache", false, "bypass the on-disk scan cache")
	scanCmd.Flags().Bool("verbose", false, "list suppression directives per file")
}

func runScan(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 && args[0] != "" {
		target = args[0]
	}

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}
	startDir := target
	if !info.IsDir() {
		startDir = filepath.Dir(target)
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	// Конфиг проекта опционален: без pyrite.toml все флаги ложны.
	cfg := metadata.Config{}
	if manifest, ok, err := config.LoadManifest(startDir); err != nil {
		return err
	} else if ok {
		cfg = metadata.Config{
			Infer:   manifest.Config.Analysis.Infer,
			Strict:  manifest.Config.Analysis.Strict,
			Declare: manifest.Config.Analysis.Declare,
		}
	}

	timer := observ.NewTimer()
	tsink := newTimingSink()

	var reports []driver.FileReport
	scanPhase := timer.Begin("scan")
	if !info.IsDir() {
		reports = []driver.FileReport{driver.ScanFile(target, cfg)}
	} else {
		opts := driver.ScanOptions{Config: cfg, Jobs: jobs, Progress: tsink}
		if !noCache {
			cache, err := driver.OpenDiskCache("pyrite")
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: disk cache unavailable: %v\n", err)
			} else {
				opts.Cache = cache
			}
		}

		mode, err := readUIMode(uiFlag)
		if err != nil {
			return err
		}
		if shouldUseTUI(mode) && format == "pretty" && !quiet {
			files, listErr := driver.ListPythonFiles(target)
			if listErr != nil {
				return listErr
			}
			reports, err = runScanWithUI(cmd.Context(), "pyrite scan "+target, files, target, opts)
		} else {
			reports, err = driver.ScanDir(cmd.Context(), target, opts)
		}
		if err != nil {
			return err
		}
	}
	timer.End(scanPhase, fmt.Sprintf("%d %s", len(reports), plural(len(reports), "file", "files")))

	renderStart := time.Now()
	switch format {
	case "json":
		var obsReport *observ.Report
		if showTimings {
			r := timer.Report()
			obsReport = &r
		}
		if err := diagfmt.ReportsJSON(os.Stdout, reports, obsReport); err != nil {
			return err
		}
	default:
		if !quiet {
			diagfmt.PrettyReports(os.Stdout, reports, diagfmt.PrettyOpts{
				Color:   useColor(cmd, os.Stdout),
				Verbose: verbose,
			})
		}
		if showTimings {
			timings := tsink.Timings()
			timings.Set(pipeline.StageReport, time.Since(renderStart))
			printStageTimings(os.Stderr, timings)
		}
	}

	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
