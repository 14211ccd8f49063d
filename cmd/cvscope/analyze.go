package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mihai/cvscope/internal/observability"
	"github.com/mihai/cvscope/internal/session"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and rank its keywords",
	Long: "Detect the job description's language, extract its keywords and rank " +
		"them by relevance. Keywords from the active library (core plus domain " +
		"plus profile) are boosted over free-form terms.",
	RunE: runAnalyze,
}

var (
	analyzeJDFile  string
	analyzeProfile string
	analyzeOut     string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJDFile, "jd", "i", "", "job description text file, or - for stdin (required)")
	analyzeCmd.Flags().StringVarP(&analyzeProfile, "profile", "p", "", "profile id whose keyword library boosts matching terms")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "write the analysis as JSON to this file")
	must(analyzeCmd.MarkFlagRequired("jd"))

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
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

	jd, err := readTextInput(analyzeJDFile)
	if err != nil {
		return err
	}

	sess := session.New(store, cfg)
	if err := applyProfile(sess, log, analyzeProfile); err != nil {
		return err
	}
	sess.SetJobDescription(jd)

	result, err := sess.Analyze()
	if err != nil {
		return err
	}
	log.Debug("analysis complete",
		zap.String("jd_hash", result.JDHash),
		zap.String("language", result.Language.String()),
		zap.Int("keywords", len(result.Keywords)))

	observability.NewPrinter(os.Stdout).PrintAnalysis(result)

	if analyzeOut != "" {
		if err := writeJSON(analyzeOut, result); err != nil {
			return err
		}
		log.Info("analysis written", zap.String("path", analyzeOut))
	}
	return nil
}
