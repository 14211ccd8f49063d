package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mihai/cvscope/internal/lexicon"
	"github.com/mihai/cvscope/internal/observability"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a lexicon tree and report every problem",
	Long: "Check the whole library tree (domain index, core library, domain " +
		"libraries, profiles) and report every error and warning, not just the " +
		"first. Exits non-zero when the tree has errors.",
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	cfg, err := engineConfig()
	if err != nil {
		return err
	}

	var report *lexicon.Report
	if cfg.LibraryRoot != "" {
		report = lexicon.Lint(cfg.LibraryRoot)
	} else {
		report, err = lexicon.LintDefault()
		if err != nil {
			return err
		}
	}

	observability.NewPrinter(os.Stdout).PrintLintReport(report)

	if !report.OK() {
		return fmt.Errorf("library tree has %d errors", report.CountLevel(lexicon.LevelError))
	}
	return nil
}
