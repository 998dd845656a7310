// Command comicrenamer normalizes messy digital-comic filenames into a
// canonical naming scheme, sorts the results into per-title folders, and
// quarantines unparseable files and suspected archive duplicates.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jungleberrydev/comicRenamer/internal/config"
	"github.com/jungleberrydev/comicRenamer/internal/display"
	"github.com/jungleberrydev/comicRenamer/internal/logging"
	"github.com/jungleberrydev/comicRenamer/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// errNotADirectory is the only process-fatal condition; it maps to exit
// code 2 and is rejected before any processing begins.
var errNotADirectory = errors.New("not a directory")

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "comicrenamer: %v\n", err)
		if errors.Is(err, errNotADirectory) {
			return 2
		}
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	cfg := config.DefaultConfig()
	var forceColor, noColor bool

	cmd := &cobra.Command{
		Use:   "comicrenamer [directory]",
		Short: "Sort comic archives into per-title folders under canonical names",
		Long: `comicrenamer normalizes comic filenames to canonical forms (issues
"Title #XXX (YEAR)", volumes "Title Vol. N (YEAR)", annuals and standalone
books), moves each file into ./<Title>, routes unparseable files to ./error,
and relocates titles already present in the configured external archive to
./possibleDuplicates.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.TargetDir = config.NormalizeDirArg(args[0])
			}
			if noColor {
				cfg.ColorMode = config.ColorNever
			} else if forceColor {
				cfg.ColorMode = config.ColorAlways
			}
			return runSort(&cfg)
		},
	}

	cmd.Flags().BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Show planned changes without modifying files")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Print detailed per-file actions")
	cmd.Flags().BoolVar(&forceColor, "color", false, "Force colored logs")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored logs")
	cmd.Flags().StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")

	return cmd
}

func runSort(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Reject an invalid target before any processing; the abs path keeps
	// log lines unambiguous when the default (cwd) is used.
	target, err := filepath.Abs(cfg.TargetDir)
	if err != nil {
		return err
	}
	if fi, err := os.Stat(target); err != nil || !fi.IsDir() {
		return fmt.Errorf("%w: %s", errNotADirectory, target)
	}
	cfg.TargetDir = target
	cfg.ExternalDir = config.LoadExternalDir()

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()
	log.Info("=== comicrenamer v%s (%s) ===", version, commit)
	log.Info("Target:  %s", cfg.TargetDir)
	if cfg.ExternalDir != "" {
		log.Info("Archive: %s", cfg.ExternalDir)
	} else {
		log.Info("Archive: not configured (duplicate detection off)")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be moved")
	}
	log.Info("")

	stats := pipeline.Run(cfg, log)

	if report := display.Report(stats.Unparseable, stats.DuplicateFiles); report != "" {
		fmt.Println()
		fmt.Print(report)
	}
	return nil
}
