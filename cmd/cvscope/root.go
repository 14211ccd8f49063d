package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mihai/cvscope/internal/config"
	"github.com/mihai/cvscope/internal/lexicon"
	"github.com/mihai/cvscope/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cvscope",
	Short: "Offline CV scoring and tailoring against a job description",
	Long: "cvscope analyzes a pasted job description with keyword matching only - " +
		"no network, no AI services - and scores or tailors a CV against it using " +
		"bilingual (en/ro) keyword libraries.",
}

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default cvscope.yaml in the current directory)")
	rootCmd.PersistentFlags().String("root", "", "path to a lexicon tree (default: the bundled library)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	must(viper.BindPFlag("library-root", rootCmd.PersistentFlags().Lookup("root")))
	must(viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")))
	must(viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json")))

	viper.SetDefault("max-keywords", config.DefaultMaxKeywords)
	viper.SetDefault("frequency-weight", config.DefaultFrequencyWeight)
	viper.SetDefault("library-boost", config.DefaultLibraryBoost)
	viper.SetDefault("apply-limit", config.DefaultApplyLimit)

	viper.SetEnvPrefix("CVSCOPE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("cvscope")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return // the config file is optional
		}
		cobra.CheckErr(err)
	}
}

// engineConfig decodes the merged file/env/flag configuration and validates
// it.
func engineConfig() (*config.Config, error) {
	cfg := config.Default()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadStore loads the user's lexicon tree, or the bundled one when no root is
// configured.
func loadStore(cfg *config.Config) (*lexicon.Store, error) {
	if cfg.LibraryRoot != "" {
		return lexicon.Load(cfg.LibraryRoot)
	}
	return lexicon.LoadDefault()
}

// newLogger builds the command logger from the persistent flags.
func newLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json"), viper.GetBool("debug"))
}
