package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai/cvscope/internal/lexicon"
	"github.com/mihai/cvscope/internal/types"
)

// stubResolver serves two hand-built profiles in declaration order.
type stubResolver struct {
	profiles []lexicon.Profile
	sets     map[string][]string
}

func (s *stubResolver) Profiles(domainFilter string) []lexicon.Profile {
	if domainFilter == "" {
		return s.profiles
	}
	var out []lexicon.Profile
	for _, p := range s.profiles {
		if p.Domain == domainFilter {
			out = append(out, p)
		}
	}
	return out
}

func (s *stubResolver) ResolveEffectiveKeywords(profileID string, lang types.Language) (types.EffectiveKeywordSet, error) {
	return types.EffectiveKeywordSet{
		ProfileID: profileID,
		Language:  lang,
		Keywords:  s.sets[profileID],
	}, nil
}

func newStub() *stubResolver {
	return &stubResolver{
		profiles: []lexicon.Profile{
			{ID: "soc_analyst", Domain: "cyber_security", Title: lexicon.Label{EN: "SOC Analyst"}},
			{ID: "financial_analyst", Domain: "finance", Title: lexicon.Label{EN: "Financial Analyst"}},
		},
		sets: map[string][]string{
			"soc_analyst":       {"SIEM", "incident response", "threat detection", "firewall"},
			"financial_analyst": {"budgeting", "Excel", "forecasting", "IFRS"},
		},
	}
}

func jdKeywords() []types.RankedKeyword {
	return []types.RankedKeyword{
		{Keyword: "SIEM", Score: 3.5, Source: types.KeywordSourceLibrary},
		{Keyword: "incident response", Score: 3.5, Source: types.KeywordSourceLibrary},
		{Keyword: "threat detection", Score: 3.5, Source: types.KeywordSourceLibrary},
		{Keyword: "specialist", Score: 1.0, Source: types.KeywordSourceText},
	}
}

func TestSuggest_CyberJDRanksCyberProfileFirst(t *testing.T) {
	scores, err := Suggest(newStub(), jdKeywords(), types.LanguageEnglish)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	assert.Equal(t, "soc_analyst", scores[0].ProfileID)
	assert.Greater(t, scores[0].Score, scores[1].Score)
	assert.Equal(t, []string{"SIEM", "incident response", "threat detection"}, scores[0].Matched)
	assert.Zero(t, scores[1].Score)
}

func TestSuggest_NormalizesByProfileSize(t *testing.T) {
	stub := newStub()
	// same single match, but the bloated profile carries 8 keywords
	stub.sets["soc_analyst"] = []string{"SIEM", "a1", "a2", "a3", "a4", "a5", "a6", "a7"}
	stub.sets["financial_analyst"] = []string{"SIEM", "budgeting"}

	scores, err := Suggest(stub, jdKeywords(), types.LanguageEnglish)
	require.NoError(t, err)

	// 3.5/2 beats 3.5/8
	assert.Equal(t, "financial_analyst", scores[0].ProfileID)
	assert.InDelta(t, 3.5/2, scores[0].Score, 1e-9)
	assert.InDelta(t, 3.5/8, scores[1].Score, 1e-9)
}

func TestSuggest_EmptyJDKeywordsKeepsDeclaredOrder(t *testing.T) {
	scores, err := Suggest(newStub(), nil, types.LanguageEnglish)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	assert.Equal(t, "soc_analyst", scores[0].ProfileID)
	assert.Equal(t, "financial_analyst", scores[1].ProfileID)
	assert.Zero(t, scores[0].Score)
	assert.Zero(t, scores[1].Score)
}

func TestSuggest_TieKeepsDeclaredOrder(t *testing.T) {
	stub := newStub()
	stub.sets["soc_analyst"] = []string{"SIEM"}
	stub.sets["financial_analyst"] = []string{"SIEM"}

	scores, err := Suggest(stub, jdKeywords(), types.LanguageEnglish)
	require.NoError(t, err)

	assert.Equal(t, "soc_analyst", scores[0].ProfileID)
	assert.InDelta(t, scores[0].Score, scores[1].Score, 1e-9)
}

func TestSuggest_MatchIsCaseAndDiacriticInsensitive(t *testing.T) {
	stub := newStub()
	stub.sets["soc_analyst"] = []string{"răspuns la incidente"}

	kws := []types.RankedKeyword{{Keyword: "Raspuns la Incidente", Score: 2.0}}
	scores, err := Suggest(stub, kws, types.LanguageRomanian)
	require.NoError(t, err)

	assert.Equal(t, "soc_analyst", scores[0].ProfileID)
	assert.InDelta(t, 2.0, scores[0].Score, 1e-9)
}

func TestBest(t *testing.T) {
	_, ok := Best(nil)
	assert.False(t, ok)

	top, ok := Best([]types.ProfileScore{{ProfileID: "x"}, {ProfileID: "y"}})
	assert.True(t, ok)
	assert.Equal(t, "x", top.ProfileID)
}
