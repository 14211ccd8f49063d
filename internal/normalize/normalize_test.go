package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai/cvscope/internal/types"
)

func TestFold_StripsDiacriticsAndCase(t *testing.T) {
	assert.Equal(t, "experienta", Fold("Experiență"))
	assert.Equal(t, "stiinta", Fold("Știință"))
	assert.Equal(t, "competente", Fold("competențe"))
	assert.Equal(t, "plain ascii", Fold("Plain ASCII"))
}

func TestFold_HandlesLegacyCedillaLetters(t *testing.T) {
	// U+015F / U+0163 are the pre-Unicode-3.0 Romanian letters
	assert.Equal(t, "si", Fold("şi"))
	assert.Equal(t, "tara", Fold("ţară"))
}

func TestTokens_KeepsTechPunctuation(t *testing.T) {
	tokens := Tokens("We need C++ and C#, plus node.js experience.")
	assert.Equal(t, []string{"we", "need", "c++", "and", "c#", "plus", "node.js", "experience"}, tokens)
}

func TestTokens_DropsSingleRuneAndLeadingPunctuation(t *testing.T) {
	tokens := Tokens("a R --incident +++ b2")
	assert.Equal(t, []string{"incident", "b2"}, tokens)
}

func TestTokens_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokens(""))
	assert.Empty(t, Tokens("   \n\t  "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"We need a SIEM specialist for incident response and threat detection!",
		"Căutăm analist SOC cu experiență în securitate și răspuns la incidente.",
		"C++/C# developer (node.js, AWS)",
		"",
	}
	for _, in := range inputs {
		first := Normalize(in, types.LanguageEnglish)
		second := Normalize(first.Canonical, types.LanguageEnglish)
		assert.Equal(t, first.Tokens, second.Tokens, "tokens changed on second pass for %q", in)
		assert.Equal(t, first.Phrases, second.Phrases, "phrases changed on second pass for %q", in)
		assert.Equal(t, first.Canonical, second.Canonical, "canonical changed on second pass for %q", in)
	}
}

func TestNormalize_CanonicalJoinsTokens(t *testing.T) {
	res := Normalize("  Incident   Response,\nthreat detection ", types.LanguageEnglish)
	assert.Equal(t, "incident response threat detection", res.Canonical)
}

func TestPhrases_SkipsWindowsWithStopWords(t *testing.T) {
	tokens := []string{"incident", "response", "and", "threat", "detection"}
	phrases := Phrases(tokens, types.LanguageEnglish)
	assert.Equal(t, []string{"incident response", "threat detection"}, phrases)
}

func TestPhrases_BigramsBeforeTrigrams(t *testing.T) {
	tokens := []string{"security", "incident", "response"}
	phrases := Phrases(tokens, types.LanguageEnglish)
	require.Len(t, phrases, 3)
	assert.Equal(t, "security incident", phrases[0])
	assert.Equal(t, "incident response", phrases[1])
	assert.Equal(t, "security incident response", phrases[2])
}

func TestPhrases_ShortInput(t *testing.T) {
	assert.Empty(t, Phrases([]string{"solo"}, types.LanguageEnglish))
	assert.Empty(t, Phrases(nil, types.LanguageRomanian))
}

func TestIsStopWord_PerLanguageTables(t *testing.T) {
	assert.True(t, IsStopWord("the", types.LanguageEnglish))
	assert.False(t, IsStopWord("the", types.LanguageRomanian))
	assert.True(t, IsStopWord("si", types.LanguageRomanian))
	assert.False(t, IsStopWord("si", types.LanguageEnglish))
	assert.False(t, IsStopWord("siem", types.LanguageEnglish))
}
