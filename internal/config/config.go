// Package config holds the tunable knobs of the matching engine. The ranking
// weights are configuration on purpose: the score formula is
// frequency*FrequencyWeight + LibraryBoost for library members, and the right
// balance is an editorial call, not a constant.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mihai/cvscope/internal/types"
)

// Config is the engine and CLI configuration, decoded from cvscope.yaml /
// CVSCOPE_* environment variables by viper.
type Config struct {
	// LibraryRoot points at a user-maintained lexicon tree. Empty means
	// the tree bundled with the binary.
	LibraryRoot string `mapstructure:"library-root"`
	// DefaultLanguage overrides the detector fallback.
	DefaultLanguage string `mapstructure:"default-language" validate:"omitempty,oneof=en ro"`

	// MaxKeywords caps the extractor's ranked output.
	MaxKeywords int `mapstructure:"max-keywords" validate:"gte=1,lte=500"`
	// FrequencyWeight scales a keyword's raw occurrence count.
	FrequencyWeight float64 `mapstructure:"frequency-weight" validate:"gte=0"`
	// LibraryBoost is added once to every keyword that belongs to the
	// active effective keyword set.
	LibraryBoost float64 `mapstructure:"library-boost" validate:"gte=0"`
	// ApplyLimit caps how many missing keywords one tailor pass may append
	// to the CV's extra-keywords section.
	ApplyLimit int `mapstructure:"apply-limit" validate:"gte=1,lte=200"`
}

// Defaults for every knob; verified against the scenario suite in the
// analysis and suggest tests.
const (
	DefaultMaxKeywords     = 70
	DefaultFrequencyWeight = 1.0
	DefaultLibraryBoost    = 2.5
	DefaultApplyLimit      = 25
)

// Default returns the configuration used when no file or flags override it.
func Default() *Config {
	return &Config{
		MaxKeywords:     DefaultMaxKeywords,
		FrequencyWeight: DefaultFrequencyWeight,
		LibraryBoost:    DefaultLibraryBoost,
		ApplyLimit:      DefaultApplyLimit,
	}
}

var validate = validator.New()

// Validate checks every field against its constraints and reports the first
// offending field by name.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("config error: field %s fails %q", verrs[0].Field(), verrs[0].Tag())
	}
	return fmt.Errorf("config error: %w", err)
}

// Language returns the detector fallback language.
func (c *Config) Language() types.Language {
	if c.DefaultLanguage == "" {
		return types.DefaultLanguage
	}
	lang, err := types.ParseLanguage(c.DefaultLanguage)
	if err != nil {
		return types.DefaultLanguage
	}
	return lang
}
