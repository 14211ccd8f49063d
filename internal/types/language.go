// Package types provides type definitions for structured data shared across the cvscope engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Language identifies one of the two lexicon locales the engine supports.
// It is a closed enumeration: anything outside en/ro is rejected at parse
// time, never at lookup time.
type Language string

const (
	// LanguageEnglish is the first supported locale.
	LanguageEnglish Language = "en"
	// LanguageRomanian is the second supported locale.
	LanguageRomanian Language = "ro"
)

// DefaultLanguage is what the detector falls back to on ties, empty or
// too-short input.
const DefaultLanguage = LanguageEnglish

// SupportedLanguages returns both locales in canonical order.
func SupportedLanguages() []Language {
	return []Language{LanguageEnglish, LanguageRomanian}
}

// ParseLanguage converts a free-form locale string into a Language.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageEnglish:
		return LanguageEnglish, nil
	case LanguageRomanian:
		return LanguageRomanian, nil
	}
	return "", fmt.Errorf("unsupported language %q (supported: en, ro)", s)
}

// Valid reports whether l is one of the supported locales.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageRomanian
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}
