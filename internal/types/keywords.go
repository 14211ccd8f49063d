package types

// Candidate sources for extracted keywords.
const (
	KeywordSourceLibrary = "library" // member of the active effective keyword set
	KeywordSourceText    = "text"    // frequent free-form token or phrase
)

// RankedKeyword is one extracted job-description keyword with its relevance score.
type RankedKeyword struct {
	Keyword   string  `json:"keyword"`
	Score     float64 `json:"score"`
	Frequency int     `json:"frequency"`
	Source    string  `json:"source"`
}

// EffectiveKeywordSet is the merged Core → Domain → Profile keyword list for
// one profile and one language. Order is significant: first occurrence wins,
// later sources only append.
type EffectiveKeywordSet struct {
	ProfileID string   `json:"profile_id"`
	Language  Language `json:"language"`
	Keywords  []string `json:"keywords"`
}

// Size returns the number of keywords in the set.
func (s EffectiveKeywordSet) Size() int {
	return len(s.Keywords)
}
