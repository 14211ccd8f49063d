package coverage

import (
	"strings"

	"github.com/mihai/cvscope/internal/normalize"
	"github.com/mihai/cvscope/internal/types"
)

// ApplyMissing returns a copy of cv with up to limit missing keywords
// appended to the extra-keywords section. Existing content is never touched,
// and a keyword already present anywhere in the CV (case- and
// diacritic-insensitive) is never appended again. limit <= 0 means no limit.
func ApplyMissing(cv *types.CV, missing []string, limit int) *types.CV {
	out := cv.Clone()
	if out == nil {
		out = &types.CV{}
	}
	if len(missing) == 0 {
		return out
	}

	// token folding is language independent, so the dedupe haystack is too
	haystack := " " + strings.Join(normalize.Tokens(out.PlainText()), " ") + " "

	added := 0
	for _, kw := range missing {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if limit > 0 && added >= limit {
			break
		}
		tokens := normalize.Tokens(kw)
		if len(tokens) == 0 {
			continue
		}
		canonical := " " + strings.Join(tokens, " ") + " "
		if strings.Contains(haystack, canonical) {
			continue
		}
		out.ExtraKeywords = append(out.ExtraKeywords, kw)
		// keep the haystack current so one call cannot add a duplicate
		haystack += canonical
		added++
	}
	return out
}
