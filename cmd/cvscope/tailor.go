package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mihai/cvscope/internal/observability"
	"github.com/mihai/cvscope/internal/session"
	"github.com/mihai/cvscope/internal/suggest"
	"github.com/mihai/cvscope/internal/types"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Interactively tailor a CV to a job description",
	Long: "Analyze the job description, pick a profile from the ranked " +
		"suggestions, review the CV's keyword coverage and, on confirmation, " +
		"append the missing keywords to the CV's extra-keywords section.",
	RunE: runTailor,
}

var (
	tailorCVFile     string
	tailorJDFile     string
	tailorOut        string
	tailorSessionIn  string
	tailorSessionOut string
	tailorYes        bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorCVFile, "cv", "c", "", "CV JSON file")
	tailorCmd.Flags().StringVarP(&tailorJDFile, "jd", "i", "", "job description text file, or - for stdin")
	tailorCmd.Flags().StringVarP(&tailorOut, "out", "o", "", "write the tailored CV JSON to this file (required)")
	tailorCmd.Flags().StringVar(&tailorSessionIn, "load-session", "", "restore CV, JD and profile from an exported session file")
	tailorCmd.Flags().StringVar(&tailorSessionOut, "save-session", "", "export the finished session to this file")
	tailorCmd.Flags().BoolVarP(&tailorYes, "yes", "y", false, "apply missing keywords without asking (non-interactive)")
	must(tailorCmd.MarkFlagRequired("out"))

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
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

	sess := session.New(store, cfg)
	if tailorSessionIn != "" {
		data, err := os.ReadFile(tailorSessionIn)
		if err != nil {
			return fmt.Errorf("reading session file: %w", err)
		}
		if err := sess.Import(data); err != nil {
			return err
		}
		log.Info("session restored", zap.String("path", tailorSessionIn))
	}
	if tailorCVFile != "" {
		cv, err := loadCV(tailorCVFile)
		if err != nil {
			return err
		}
		sess.CV = cv
	}
	if tailorJDFile != "" {
		jd, err := readTextInput(tailorJDFile)
		if err != nil {
			return err
		}
		sess.SetJobDescription(jd)
	}
	if sess.JobDescription == "" {
		return fmt.Errorf("no job description: pass --jd or --load-session")
	}

	printer := observability.NewPrinter(os.Stdout)

	result, err := sess.Analyze()
	if err != nil {
		return err
	}
	printer.PrintAnalysis(result)

	scores, err := suggest.Suggest(store, result.Keywords, result.Language)
	if err != nil {
		return err
	}
	printer.PrintSuggestions(scores)

	if err := pickProfile(sess, scores, log); err != nil {
		return err
	}

	report, err := sess.Coverage()
	if err != nil {
		return err
	}
	printer.PrintCoverage(report)

	if len(report.Missing) > 0 {
		apply := tailorYes
		if !apply {
			apply, err = confirm(fmt.Sprintf("Append up to %d of the %d missing keywords to the CV",
				cfg.ApplyLimit, len(report.Missing)))
			if err != nil {
				return err
			}
		}
		if apply {
			added := sess.ApplyMissing(report.Missing)
			log.Info("missing keywords applied", zap.Int("added", added))
		}
	}

	if err := writeJSON(tailorOut, sess.CV); err != nil {
		return err
	}
	log.Info("tailored CV written", zap.String("path", tailorOut))

	if tailorSessionOut != "" {
		data, err := sess.Export()
		if err != nil {
			return err
		}
		if err := os.WriteFile(tailorSessionOut, data, 0o644); err != nil {
			return fmt.Errorf("writing session file: %w", err)
		}
		log.Info("session exported", zap.String("path", tailorSessionOut))
	}
	return nil
}

// pickProfile lets the user choose among the ranked suggestions. With --yes
// the top-scoring profile is selected automatically; a zero top score keeps
// the core-only set.
func pickProfile(sess *session.Session, scores []types.ProfileScore, log *zap.Logger) error {
	if len(scores) == 0 {
		return nil
	}
	if tailorYes {
		if best, ok := suggest.Best(scores); ok && best.Score > 0 {
			log.Info("profile selected", zap.String("profile", best.ProfileID))
			return sess.SetProfile(best.ProfileID)
		}
		return nil
	}

	items := make([]string, 0, len(scores)+1)
	items = append(items, "(none - core keywords only)")
	for _, s := range scores {
		items = append(items, fmt.Sprintf("%s - %s (%.2f)", s.ProfileID, s.Label, s.Score))
	}
	prompt := promptui.Select{
		Label: "Select a profile",
		Items: items,
		Size:  10,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return fmt.Errorf("profile selection aborted: %w", err)
	}
	if idx == 0 {
		return nil
	}
	return sess.SetProfile(scores[idx-1].ProfileID)
}

// confirm asks a yes/no question; declining is not an error.
func confirm(label string) (bool, error) {
	prompt := promptui.Prompt{Label: label, IsConfirm: true}
	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
