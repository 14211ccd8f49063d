// Package normalize turns raw CV and job-description text into the canonical
// token form shared by every matcher in the engine.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mihai/cvscope/internal/types"
)

// stripMarks removes combining diacritical marks so accented and unaccented
// spellings of the same token compare equal (experiență == experienta). Both
// the modern comma-below and the legacy cedilla Romanian letters decompose to
// a base letter plus a mark, so one chain covers them.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics. Language independent.
func Fold(s string) string {
	folded, _, _ := transform.String(stripMarks, strings.ToLower(s))
	return folded
}

// Tokens splits text into folded word tokens. Letters and digits are word
// runes, plus + # . - so tokens like c++, c#, node.js and e-commerce survive.
// A token must start with a letter or digit and be at least two runes long.
func Tokens(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		w = strings.TrimLeftFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		w = strings.TrimRight(w, ".-")
		if len([]rune(w)) >= 2 {
			tokens = append(tokens, w)
		}
	}
	for _, r := range Fold(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' || r == '-' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// Result is one normalization pass over a text.
type Result struct {
	// Tokens is every folded word token in order, stop words included.
	Tokens []string
	// Phrases is the 2- and 3-token windows over Tokens that contain no
	// stop word, bigrams first. Many library keywords are phrases.
	Phrases []string
	// Canonical is Tokens joined by single spaces.
	Canonical string
}

// Normalize folds, tokenizes and windows text for the given language.
// Deterministic and idempotent: normalizing a Result's Canonical text
// reproduces the same Result.
func Normalize(text string, lang types.Language) Result {
	tokens := Tokens(text)
	return Result{
		Tokens:    tokens,
		Phrases:   Phrases(tokens, lang),
		Canonical: strings.Join(tokens, " "),
	}
}

// Phrases returns the 2- and 3-token windows over tokens, skipping any
// window that contains a stop word of the given language.
func Phrases(tokens []string, lang types.Language) []string {
	var phrases []string
	for _, n := range []int{2, 3} {
		for i := 0; i+n <= len(tokens); i++ {
			window := tokens[i : i+n]
			if containsStopWord(window, lang) {
				continue
			}
			phrases = append(phrases, strings.Join(window, " "))
		}
	}
	return phrases
}

func containsStopWord(window []string, lang types.Language) bool {
	for _, w := range window {
		if IsStopWord(w, lang) {
			return true
		}
	}
	return false
}
