// Package detect classifies the dominant language of free text using small
// per-language marker token sets. Heuristic on purpose: no model, no external
// lookups, one pass over the tokens.
package detect

import (
	"github.com/mihai/cvscope/internal/normalize"
	"github.com/mihai/cvscope/internal/types"
)

// Marker sets hold folded tokens that strongly indicate one language in job
// postings. The Romanian entries are the folded spellings of common
// diacritic-bearing words.
var (
	markersEN = map[string]bool{
		"responsibilities": true,
		"requirements":     true,
		"experience":       true,
		"skills":           true,
		"ability":          true,
	}
	markersRO = map[string]bool{
		"si":               true,
		"sa":               true,
		"intre":            true,
		"cunoastere":       true,
		"responsabilitati": true,
		"experienta":       true,
		"competente":       true,
	}
)

// Detect returns the dominant language of text by counting marker token
// occurrences. Romanian wins only on a strictly higher count; ties, empty
// and marker-free input fall back to the engine default. Never fails.
func Detect(text string) types.Language {
	return DetectWithDefault(text, types.DefaultLanguage)
}

// DetectWithDefault is Detect with a configurable fallback: ties, empty and
// marker-free input return fallback instead of the engine default. An invalid
// fallback is replaced by the engine default.
func DetectWithDefault(text string, fallback types.Language) types.Language {
	if !fallback.Valid() {
		fallback = types.DefaultLanguage
	}
	var enHits, roHits int
	for _, tok := range normalize.Tokens(text) {
		if markersEN[tok] {
			enHits++
		}
		if markersRO[tok] {
			roHits++
		}
	}
	if roHits > enHits {
		return types.LanguageRomanian
	}
	if enHits > roHits {
		return types.LanguageEnglish
	}
	return fallback
}
