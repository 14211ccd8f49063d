// Package coverage measures how much of an effective keyword set a CV
// already contains, and appends what is missing.
package coverage

import (
	"strings"

	"github.com/mihai/cvscope/internal/normalize"
	"github.com/mihai/cvscope/internal/types"
)

// Score partitions the effective keyword set into keywords present in cvText
// and keywords missing from it. Matching runs over the normalized CV text on
// whole-token boundaries, with a light plural fallback for single-token
// keywords (dashboard matches dashboards).
//
// Ratio is |present| / |set|. An empty keyword set scores 1.0 by convention:
// nothing was asked for, so nothing is missing.
func Score(cvText string, effective types.EffectiveKeywordSet) types.CoverageReport {
	if effective.Size() == 0 {
		return types.CoverageReport{Present: []string{}, Missing: []string{}, Ratio: 1.0}
	}

	lang := effective.Language
	res := normalize.Normalize(cvText, lang)
	haystack := " " + res.Canonical + " "

	stems := make(map[string]bool, len(res.Tokens))
	for _, tok := range res.Tokens {
		stems[normalize.Stem(tok, lang)] = true
	}

	report := types.CoverageReport{Present: []string{}, Missing: []string{}}
	for _, kw := range effective.Keywords {
		if contains(haystack, stems, kw, lang) {
			report.Present = append(report.Present, kw)
		} else {
			report.Missing = append(report.Missing, kw)
		}
	}
	report.Ratio = float64(len(report.Present)) / float64(effective.Size())
	return report
}

func contains(haystack string, stems map[string]bool, kw string, lang types.Language) bool {
	tokens := normalize.Tokens(kw)
	if len(tokens) == 0 {
		return false
	}
	canonical := strings.Join(tokens, " ")
	if strings.Contains(haystack, " "+canonical+" ") {
		return true
	}
	if len(tokens) == 1 {
		return stems[normalize.Stem(tokens[0], lang)]
	}
	return false
}
