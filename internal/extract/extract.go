// Package extract pulls ranked keywords out of job-description text. Two
// candidate sources feed the ranking: members of the active effective keyword
// set found in the text, and frequent free-form tokens and phrases. Library
// members carry a score boost so curated terms outrank noise.
package extract

import (
	"sort"
	"strings"

	"github.com/mihai/cvscope/internal/config"
	"github.com/mihai/cvscope/internal/normalize"
	"github.com/mihai/cvscope/internal/types"
)

// Free-form candidates longer than this are headline fragments, not
// keywords.
const maxCandidateLen = 42

// Options are the extractor tunables, usually taken from config.
type Options struct {
	// MaxKeywords caps the ranked output length.
	MaxKeywords int
	// FrequencyWeight scales the raw occurrence count.
	FrequencyWeight float64
	// LibraryBoost is added once to candidates from the effective set.
	LibraryBoost float64
}

// OptionsFromConfig copies the extractor knobs out of a Config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MaxKeywords:     cfg.MaxKeywords,
		FrequencyWeight: cfg.FrequencyWeight,
		LibraryBoost:    cfg.LibraryBoost,
	}
}

// candidate accumulates one keyword's evidence during extraction.
type candidate struct {
	display  string
	freq     int
	firstPos int
	library  bool
	score    float64
}

// Extract returns the ranked keywords of jdText, descending by score. Ties
// break by first appearance in the text, earlier wins. Empty input returns an
// empty slice, never an error: an empty JD is a state, not a failure.
func Extract(jdText string, lang types.Language, effective types.EffectiveKeywordSet, opts Options) []types.RankedKeyword {
	res := normalize.Normalize(jdText, lang)
	if len(res.Tokens) == 0 {
		return []types.RankedKeyword{}
	}

	// Padding turns substring search into whole-token search: every match
	// of " term " in " canonical " sits on token boundaries.
	haystack := " " + res.Canonical + " "

	byCanonical := make(map[string]*candidate)
	var order []string

	add := func(canonical, display string, freq, firstPos int, library bool) {
		if existing, ok := byCanonical[canonical]; ok {
			// library spellings win over raw text forms
			if library && !existing.library {
				existing.library = true
				existing.display = display
			}
			return
		}
		byCanonical[canonical] = &candidate{display: display, freq: freq, firstPos: firstPos, library: library}
		order = append(order, canonical)
	}

	// library candidates first, so their curated spelling wins the display
	for _, kw := range effective.Keywords {
		canonical := canonicalTerm(kw)
		if canonical == "" {
			continue
		}
		freq, pos := countTerm(haystack, canonical)
		if freq == 0 {
			continue
		}
		add(canonical, kw, freq, pos, true)
	}

	for _, tok := range res.Tokens {
		if !keepToken(tok, lang) {
			continue
		}
		freq, pos := countTerm(haystack, tok)
		add(tok, tok, freq, pos, false)
	}

	for _, phrase := range res.Phrases {
		if len(phrase) > maxCandidateLen {
			continue
		}
		freq, pos := countTerm(haystack, phrase)
		add(phrase, phrase, freq, pos, false)
	}

	scored := make([]*candidate, 0, len(order))
	for _, canonical := range order {
		c := byCanonical[canonical]
		c.score = float64(c.freq) * opts.FrequencyWeight
		if c.library {
			c.score += opts.LibraryBoost
		}
		scored = append(scored, c)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.firstPos != b.firstPos {
			return a.firstPos < b.firstPos
		}
		// a token and a phrase opening with it share the same first
		// position, so equal-score candidates can still collide here
		return a.display < b.display
	})

	if opts.MaxKeywords > 0 && len(scored) > opts.MaxKeywords {
		scored = scored[:opts.MaxKeywords]
	}

	ranked := make([]types.RankedKeyword, 0, len(scored))
	for _, c := range scored {
		source := types.KeywordSourceText
		if c.library {
			source = types.KeywordSourceLibrary
		}
		ranked = append(ranked, types.RankedKeyword{
			Keyword:   c.display,
			Score:     c.score,
			Frequency: c.freq,
			Source:    source,
		})
	}
	return ranked
}

// keepToken filters single-token candidates: no stop words, no pure numbers,
// nothing shorter than three runes unless it is a known tech term.
func keepToken(tok string, lang types.Language) bool {
	if normalize.IsStopWord(tok, lang) {
		return false
	}
	if isNumeric(tok) {
		return false
	}
	if len([]rune(tok)) <= 2 && !IsTechHint(tok) {
		return false
	}
	return true
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// canonicalTerm folds and re-tokenizes a keyword so library spellings compare
// equal to JD text ("Incident Response" == "incident response").
func canonicalTerm(kw string) string {
	return strings.Join(normalize.Tokens(kw), " ")
}

// countTerm counts whole-token occurrences of term and returns the byte
// offset of the first one, or -1 when absent. haystack must carry the space
// padding applied in Extract.
func countTerm(haystack, term string) (int, int) {
	padded := " " + term + " "
	first := strings.Index(haystack, padded)
	if first < 0 {
		return 0, -1
	}
	count := 0
	for at := first; at >= 0; {
		count++
		next := strings.Index(haystack[at+1:], padded)
		if next < 0 {
			break
		}
		at += 1 + next
	}
	return count, first
}
