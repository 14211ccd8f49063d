package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mihai/cvscope/internal/observability"
	"github.com/mihai/cvscope/internal/types"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles [profile-id]",
	Short: "List loaded profiles, or show one profile's merged content",
	Long: "Without arguments, list every loaded profile in declaration order. " +
		"With a profile id, show the profile's effective keyword set and writing " +
		"aids merged from the core, domain and profile libraries.",
	Args: cobra.MaximumNArgs(1),
	RunE: runProfiles,
}

var (
	profilesDomain string
	profilesLang   string
)

func init() {
	profilesCmd.Flags().StringVar(&profilesDomain, "domain", "", "only list profiles of this domain")
	profilesCmd.Flags().StringVarP(&profilesLang, "lang", "l", "en", "language of the shown content (en or ro)")

	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(_ *cobra.Command, args []string) error {
	cfg, err := engineConfig()
	if err != nil {
		return err
	}
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}
	lang, err := types.ParseLanguage(profilesLang)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		prof, err := store.ResolveProfile(args[0], lang)
		if err != nil {
			return err
		}
		observability.NewPrinter(os.Stdout).PrintProfile(prof)
		return nil
	}

	profiles := store.Profiles(profilesDomain)
	if len(profiles) == 0 {
		fmt.Println("no profiles loaded")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDOMAIN\tTITLE")
	for _, p := range profiles {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Domain, p.Title.For(lang))
	}
	return w.Flush()
}
