package types

import "time"

// Analysis is the result of analyzing one job-description text: detected
// language plus the ranked keyword list. Entries are owned by the analysis
// cache and keyed by JDHash; callers hold references only.
type Analysis struct {
	JDHash     string          `json:"jd_hash"`
	Language   Language        `json:"language"`
	Keywords   []RankedKeyword `json:"keywords"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
}

// KeywordStrings returns just the keyword texts in ranked order.
func (a *Analysis) KeywordStrings() []string {
	out := make([]string, 0, len(a.Keywords))
	for _, k := range a.Keywords {
		out = append(out, k.Keyword)
	}
	return out
}
