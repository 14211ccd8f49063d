// Package session owns the state of one editing session: the in-memory CV,
// the single shared job-description string and the selected profile. Every
// engine feature reads the session; only the editor writes it. The analysis
// cache keyed by content hash is what keeps repeated reads cheap, not a lock:
// the whole system runs one session at a time.
package session

import (
	"github.com/google/uuid"

	"github.com/mihai/cvscope/internal/analysis"
	"github.com/mihai/cvscope/internal/config"
	"github.com/mihai/cvscope/internal/coverage"
	"github.com/mihai/cvscope/internal/detect"
	"github.com/mihai/cvscope/internal/extract"
	"github.com/mihai/cvscope/internal/lexicon"
	"github.com/mihai/cvscope/internal/types"
)

// Session is one editing session. Zero-value fields mean an empty editor.
type Session struct {
	ID             string
	CV             *types.CV
	JobDescription string
	ProfileID      string

	store *lexicon.Store
	cfg   *config.Config
	cache *analysis.Cache
}

// New returns an empty session backed by the given store and configuration.
func New(store *lexicon.Store, cfg *config.Config) *Session {
	return &Session{
		ID:    uuid.NewString(),
		CV:    &types.CV{},
		store: store,
		cfg:   cfg,
		cache: analysis.NewCache(analysis.NewAnalyzer(extract.OptionsFromConfig(cfg), cfg.Language())),
	}
}

// SetJobDescription replaces the shared JD text. Clearing it drops the cached
// analysis; any other change is handled by the content hash on the next read.
func (s *Session) SetJobDescription(text string) {
	s.JobDescription = text
	if text == "" {
		s.cache.Invalidate()
	}
}

// SetProfile switches the active profile. The cached analysis is invalidated:
// a different effective keyword set changes extraction. Unknown ids are
// rejected and leave the session unchanged; an empty id selects the core-only
// set.
func (s *Session) SetProfile(profileID string) error {
	if profileID != "" && !s.store.HasProfile(profileID) {
		return &lexicon.UnknownProfileError{ProfileID: profileID}
	}
	if profileID != s.ProfileID {
		s.cache.Invalidate()
	}
	s.ProfileID = profileID
	return nil
}

// EffectiveKeywords resolves the active keyword set for lang: the selected
// profile's merged set, or core-only when no profile is selected.
func (s *Session) EffectiveKeywords(lang types.Language) (types.EffectiveKeywordSet, error) {
	if s.ProfileID == "" {
		return s.store.CoreKeywords(lang), nil
	}
	return s.store.ResolveEffectiveKeywords(s.ProfileID, lang)
}

// detectLanguage returns the current JD's language. A valid cache slot
// already carries the detected language, so a JD whose hash is unchanged is
// never re-scanned; otherwise detection runs with the configured fallback.
func (s *Session) detectLanguage() types.Language {
	if cached := s.cache.Cached(); cached != nil && cached.JDHash == analysis.Hash(s.JobDescription) {
		return cached.Language
	}
	return detect.DetectWithDefault(s.JobDescription, s.cfg.Language())
}

// Analyze returns the analysis of the current JD, cached while the JD's
// content hash is unchanged.
func (s *Session) Analyze() (*types.Analysis, error) {
	lang := s.detectLanguage()
	set, err := s.EffectiveKeywords(lang)
	if err != nil {
		return nil, err
	}
	return s.cache.GetOrCompute(s.JobDescription, set), nil
}

// Coverage scores the session CV against the active effective keyword set in
// the JD's detected language. Reports are owned by the caller; nothing is
// cached because CV edits are exactly what must re-score.
func (s *Session) Coverage() (types.CoverageReport, error) {
	lang := s.detectLanguage()
	set, err := s.EffectiveKeywords(lang)
	if err != nil {
		return types.CoverageReport{}, err
	}
	return coverage.Score(s.CV.PlainText(), set), nil
}

// ApplyMissing appends up to the configured limit of missing keywords to the
// session CV's extra-keywords section and returns how many were added.
func (s *Session) ApplyMissing(missing []string) int {
	before := len(s.CV.ExtraKeywords)
	s.CV = coverage.ApplyMissing(s.CV, missing, s.cfg.ApplyLimit)
	return len(s.CV.ExtraKeywords) - before
}
