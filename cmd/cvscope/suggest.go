package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mihai/cvscope/internal/observability"
	"github.com/mihai/cvscope/internal/session"
	"github.com/mihai/cvscope/internal/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest the best-fitting profile for a job description",
	Long: "Score every loaded profile against the job description's extracted " +
		"keywords and rank them by fit, best first.",
	RunE: runSuggest,
}

var suggestJDFile string

func init() {
	suggestCmd.Flags().StringVarP(&suggestJDFile, "jd", "i", "", "job description text file, or - for stdin (required)")
	must(suggestCmd.MarkFlagRequired("jd"))

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
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

	jd, err := readTextInput(suggestJDFile)
	if err != nil {
		return err
	}

	sess := session.New(store, cfg)
	sess.SetJobDescription(jd)
	result, err := sess.Analyze()
	if err != nil {
		return err
	}

	scores, err := suggest.Suggest(store, result.Keywords, result.Language)
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintSuggestions(scores)

	if best, ok := suggest.Best(scores); ok && best.Score > 0 {
		log.Info("best fit",
			zap.String("profile", best.ProfileID),
			zap.Float64("score", best.Score))
	}
	return nil
}
