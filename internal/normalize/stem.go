package normalize

import (
	"strings"

	"github.com/mihai/cvscope/internal/types"
)

// Romanian plural and definite-article suffixes, longest first so the most
// specific form wins.
var roSuffixes = []string{"urilor", "urile", "ilor", "elor", "uri", "ele", "lui", "ul"}

// Stem applies a light plural/article strip used for fuzzy keyword
// equivalence: two tokens match when their stems are equal. It is
// deliberately not part of Normalize — stripping is not idempotent on its
// own output, and canonical text must round-trip unchanged.
func Stem(token string, lang types.Language) string {
	if len(token) < 4 || strings.ContainsAny(token, "+#.") {
		return token
	}
	if lang == types.LanguageRomanian {
		return stemRO(token)
	}
	return stemEN(token)
}

func stemEN(token string) string {
	switch {
	case len(token) > 4 && strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "ss"):
		return token
	case strings.HasSuffix(token, "s"):
		return token[:len(token)-1]
	}
	return token
}

func stemRO(token string) string {
	for _, suf := range roSuffixes {
		if strings.HasSuffix(token, suf) && len(token)-len(suf) >= 3 {
			return token[:len(token)-len(suf)]
		}
	}
	// collapse the final vowel so singular/plural pairs like
	// competenta/competente share a stem
	if len(token) > 4 && strings.ContainsAny(token[len(token)-1:], "aei") {
		return token[:len(token)-1]
	}
	return token
}
