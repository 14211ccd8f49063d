package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mihai/cvscope/internal/types"
)

func set(lang types.Language, keywords ...string) types.EffectiveKeywordSet {
	return types.EffectiveKeywordSet{Language: lang, Keywords: keywords}
}

func TestScore_PartitionsPresentAndMissing(t *testing.T) {
	cv := "Monitored SIEM dashboards and automated alerts in Python."

	report := Score(cv, set(types.LanguageEnglish, "SIEM", "IncidentResponse", "Python"))

	assert.Equal(t, []string{"SIEM", "Python"}, report.Present)
	assert.Equal(t, []string{"IncidentResponse"}, report.Missing)
	assert.InDelta(t, 2.0/3.0, report.Ratio, 1e-9)
}

func TestScore_EmptyKeywordSetIsFullCoverage(t *testing.T) {
	report := Score("any cv text", set(types.LanguageEnglish))
	assert.InDelta(t, 1.0, report.Ratio, 1e-9)
	assert.Empty(t, report.Present)
	assert.Empty(t, report.Missing)
}

func TestScore_EmptyCVMissesEverything(t *testing.T) {
	report := Score("", set(types.LanguageEnglish, "SIEM", "firewall"))
	assert.Empty(t, report.Present)
	assert.Len(t, report.Missing, 2)
	assert.Zero(t, report.Ratio)
}

func TestScore_RatioBounds(t *testing.T) {
	cases := []struct {
		cv       string
		keywords []string
	}{
		{"", nil},
		{"", []string{"a1"}},
		{"siem python siem", []string{"SIEM", "Python"}},
		{"unrelated words entirely", []string{"SIEM"}},
	}
	for _, tc := range cases {
		report := Score(tc.cv, set(types.LanguageEnglish, tc.keywords...))
		assert.GreaterOrEqual(t, report.Ratio, 0.0)
		assert.LessOrEqual(t, report.Ratio, 1.0)
	}
}

func TestScore_WholeTokenMatchOnly(t *testing.T) {
	// "go" must not match inside "mongodb"
	report := Score("We use MongoDB daily", set(types.LanguageEnglish, "go"))
	assert.Equal(t, []string{"go"}, report.Missing)
}

func TestScore_PhraseMatch(t *testing.T) {
	report := Score("Led incident response drills", set(types.LanguageEnglish, "incident response"))
	assert.Equal(t, []string{"incident response"}, report.Present)
}

func TestScore_PluralLightMatch(t *testing.T) {
	report := Score("Built executive dashboards", set(types.LanguageEnglish, "dashboard"))
	assert.Equal(t, []string{"dashboard"}, report.Present)
}

func TestScore_DiacriticInsensitive(t *testing.T) {
	report := Score("Experienta cu raspuns la incidente",
		set(types.LanguageRomanian, "răspuns la incidente"))
	assert.Equal(t, []string{"răspuns la incidente"}, report.Present)
}
