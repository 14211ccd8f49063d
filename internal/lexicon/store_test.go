package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai/cvscope/internal/types"
)

// writeTree lays down a minimal valid lexicon tree in a temp dir. Individual
// tests overwrite files to break it.
func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "domains_index.yaml", `
groups:
  - id: it
    label: {en: IT, ro: IT}
    domains:
      - id: cyber_security
        label: {en: Cyber Security, ro: Securitate}
        library: libraries/domains/cyber_security.yaml
        profiles: [soc_analyst]
  - id: business
    domains:
      - id: finance
        label: {en: Finance, ro: Finanțe}
        library: libraries/domains/finance.yaml
        profiles: [financial_analyst]
`)
	writeFile(t, dir, "libraries/core_en_ro.yaml", `
id: core
keywords:
  en: [communication, teamwork]
  ro: [comunicare, lucru în echipă]
action_verbs: [led, improved]
`)
	writeFile(t, dir, "libraries/domains/cyber_security.yaml", `
id: cyber_security
keywords:
  en: [SIEM, incident response, threat detection]
  ro: [SIEM, răspuns la incidente, detectarea amenințărilor]
`)
	writeFile(t, dir, "libraries/domains/finance.yaml", `
id: finance
keywords:
  en: [budgeting, Excel]
  ro: [bugetare, Excel]
`)
	writeFile(t, dir, "profiles/soc_analyst.yaml", `
id: soc_analyst
domain: cyber_security
title: {en: SOC Analyst, ro: Analist SOC}
keywords:
  en: [Splunk, alert triage, Communication]
  ro: [Splunk, triajul alertelor]
`)
	writeFile(t, dir, "profiles/financial_analyst.yaml", `
id: financial_analyst
domain: finance
title: {en: Financial Analyst, ro: Analist Financiar}
keywords:
  en: [financial modeling, P&L]
  ro: [modelare financiară, P&L]
`)
	return dir
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestLoad_ValidTree(t *testing.T) {
	store, err := Load(writeTree(t))
	require.NoError(t, err)

	domains := store.Domains()
	require.Len(t, domains, 2)
	assert.Equal(t, "cyber_security", domains[0].ID)
	assert.Equal(t, "it", domains[0].Group)
	assert.Equal(t, "finance", domains[1].ID)

	profiles := store.Profiles("")
	require.Len(t, profiles, 2)
	assert.Equal(t, "soc_analyst", profiles[0].ID)
	assert.Equal(t, "financial_analyst", profiles[1].ID)

	finance := store.Profiles("finance")
	require.Len(t, finance, 1)
	assert.Equal(t, "financial_analyst", finance[0].ID)

	assert.True(t, store.HasProfile("soc_analyst"))
	assert.False(t, store.HasProfile("barista"))
}

func TestLoad_MissingIndex(t *testing.T) {
	_, err := Load(t.TempDir())

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "domains_index.yaml", cfgErr.File)
}

func TestLoad_MissingDomainLibrary(t *testing.T) {
	dir := writeTree(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "libraries", "domains", "finance.yaml")))

	_, err := Load(dir)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "libraries/domains/finance.yaml", cfgErr.File)
}

func TestLoad_DuplicateProfileID(t *testing.T) {
	dir := writeTree(t)
	writeFile(t, dir, "domains_index.yaml", `
groups:
  - id: it
    domains:
      - id: cyber_security
        library: libraries/domains/cyber_security.yaml
        profiles: [soc_analyst, soc_analyst]
`)

	_, err := Load(dir)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Message, "duplicate profile id")
}

func TestLoad_ProfileDomainMismatch(t *testing.T) {
	dir := writeTree(t)
	writeFile(t, dir, "profiles/soc_analyst.yaml", `
id: soc_analyst
domain: finance
keywords:
  en: [Splunk]
`)

	_, err := Load(dir)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "domain", cfgErr.Field)
}

func TestLoad_ProfileIDMismatchesFileName(t *testing.T) {
	dir := writeTree(t)
	writeFile(t, dir, "profiles/soc_analyst.yaml", `
id: something_else
domain: cyber_security
keywords:
  en: [Splunk]
`)

	_, err := Load(dir)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "id", cfgErr.Field)
}

func TestLoad_EmptyKeywordList(t *testing.T) {
	dir := writeTree(t)
	writeFile(t, dir, "libraries/core_en_ro.yaml", `
id: core
keywords: {}
`)

	_, err := Load(dir)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "keywords", cfgErr.Field)
}

func TestResolveEffectiveKeywords_MergeOrder(t *testing.T) {
	store, err := Load(writeTree(t))
	require.NoError(t, err)

	set, err := store.ResolveEffectiveKeywords("soc_analyst", types.LanguageEnglish)
	require.NoError(t, err)

	// Core first, then domain, then profile. "Communication" in the profile
	// collapses into core's "communication" (first spelling wins).
	assert.Equal(t, []string{
		"communication", "teamwork",
		"SIEM", "incident response", "threat detection",
		"Splunk", "alert triage",
	}, set.Keywords)
	assert.Equal(t, "soc_analyst", set.ProfileID)
	assert.Equal(t, types.LanguageEnglish, set.Language)
}

func TestResolveEffectiveKeywords_MergeMonotonic(t *testing.T) {
	store, err := Load(writeTree(t))
	require.NoError(t, err)

	for _, lang := range types.SupportedLanguages() {
		core := store.CoreKeywords(lang)
		for _, p := range store.Profiles("") {
			set, err := store.ResolveEffectiveKeywords(p.ID, lang)
			require.NoError(t, err)
			for _, kw := range core.Keywords {
				assert.Contains(t, set.Keywords, kw,
					"core keyword %q missing from %s/%s", kw, p.ID, lang)
			}
		}
	}
}

func TestResolveEffectiveKeywords_UnknownProfile(t *testing.T) {
	store, err := Load(writeTree(t))
	require.NoError(t, err)

	_, err = store.ResolveEffectiveKeywords("barista", types.LanguageEnglish)

	var unknownErr *UnknownProfileError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "barista", unknownErr.ProfileID)
}

func TestResolveProfile_MergesWritingAids(t *testing.T) {
	store, err := Load(writeTree(t))
	require.NoError(t, err)

	prof, err := store.ResolveProfile("soc_analyst", types.LanguageRomanian)
	require.NoError(t, err)

	assert.Equal(t, "Analist SOC", prof.Title.For(types.LanguageRomanian))
	// core action_verbs were a bare list, so they attach to both locales
	assert.Equal(t, []string{"led", "improved"}, prof.ActionVerbs)
	assert.Contains(t, prof.Keywords, "triajul alertelor")
}

func TestCoreKeywords_NoProfileFallback(t *testing.T) {
	store, err := Load(writeTree(t))
	require.NoError(t, err)

	set := store.CoreKeywords(types.LanguageRomanian)
	assert.Empty(t, set.ProfileID)
	assert.Equal(t, []string{"comunicare", "lucru în echipă"}, set.Keywords)
}

func TestLoadDefault_EmbeddedTree(t *testing.T) {
	store, err := LoadDefault()
	require.NoError(t, err)

	assert.True(t, store.HasProfile("soc_analyst"))
	assert.True(t, store.HasProfile("financial_analyst"))

	set, err := store.ResolveEffectiveKeywords("soc_analyst", types.LanguageEnglish)
	require.NoError(t, err)
	assert.Contains(t, set.Keywords, "SIEM")
	assert.Contains(t, set.Keywords, "incident response")
}

func TestConfigurationError_NamesFileAndField(t *testing.T) {
	err := &ConfigurationError{File: "profiles/x.yaml", Field: "keywords", Message: "empty"}
	assert.Contains(t, err.Error(), "profiles/x.yaml")
	assert.Contains(t, err.Error(), "keywords")

	cause := errors.New("boom")
	wrapped := &ConfigurationError{File: "f", Message: "m", Cause: cause}
	assert.ErrorIs(t, wrapped, cause)
}
