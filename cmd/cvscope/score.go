package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mihai/cvscope/internal/observability"
	"github.com/mihai/cvscope/internal/session"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a CV's keyword coverage against a job description",
	Long: "Compare a structured CV against the active keyword set (core plus " +
		"domain plus profile) and report which keywords are present, which are " +
		"missing and the coverage ratio. With --apply, missing keywords are " +
		"appended to the CV's extra-keywords section.",
	RunE: runScore,
}

var (
	scoreCVFile  string
	scoreJDFile  string
	scoreProfile string
	scoreApply   bool
	scoreOut     string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreCVFile, "cv", "c", "", "CV JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJDFile, "jd", "i", "", "job description text file, or - for stdin")
	scoreCmd.Flags().StringVarP(&scoreProfile, "profile", "p", "", "profile id to score against")
	scoreCmd.Flags().BoolVar(&scoreApply, "apply", false, "append missing keywords to the CV's extra-keywords section")
	scoreCmd.Flags().StringVarP(&scoreOut, "out", "o", "", "write the (possibly tailored) CV JSON to this file")
	must(scoreCmd.MarkFlagRequired("cv"))

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := engineConfig()
	if err != nil {
		return err
	}
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	cv, err := loadCV(scoreCVFile)
	if err != nil {
		return err
	}

	sess := session.New(store, cfg)
	sess.CV = cv
	if err := applyProfile(sess, log, scoreProfile); err != nil {
		return err
	}
	if scoreJDFile != "" {
		jd, err := readTextInput(scoreJDFile)
		if err != nil {
			return err
		}
		sess.SetJobDescription(jd)
	}

	report, err := sess.Coverage()
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintCoverage(report)

	if scoreApply {
		if scoreOut == "" {
			return fmt.Errorf("--apply requires --out")
		}
		added := sess.ApplyMissing(report.Missing)
		log.Info("missing keywords applied",
			zap.Int("added", added),
			zap.Int("limit", cfg.ApplyLimit))
	}

	if scoreOut != "" {
		if err := writeJSON(scoreOut, sess.CV); err != nil {
			return err
		}
		log.Info("CV written", zap.String("path", scoreOut))
	}
	return nil
}
