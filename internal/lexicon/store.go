// Package lexicon loads, validates and merges the bilingual keyword
// libraries and profile definitions the matching engine runs on. The store
// is loaded once at startup and read-only afterwards; every deterministic
// ordering downstream (profile listings, suggester tie-breaks) comes from
// the declaration order in domains_index.yaml.
package lexicon

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mihai/cvscope/internal/normalize"
	"github.com/mihai/cvscope/internal/types"
)

const (
	indexFile   = "domains_index.yaml"
	coreLibFile = "libraries/core_en_ro.yaml"
	profilesDir = "profiles"
)

// Domain is one loaded domain tag with its library and profile ids.
type Domain struct {
	ID       string
	Group    string
	Label    Label
	Library  string
	Profiles []string
}

// Profile describes one loaded role archetype.
type Profile struct {
	ID     string
	Domain string
	Title  Label
}

// ResolvedProfile is a profile with its merged Core → Domain → Profile
// content for one language.
type ResolvedProfile struct {
	Profile
	Language        types.Language
	Keywords        []string
	JobTitles       []string
	ActionVerbs     []string
	Metrics         []string
	BulletTemplates []string
}

type profileEntry struct {
	doc    *profileDoc
	domain string
}

// Store owns every loaded library and profile for the process lifetime.
// A Store only exists if the whole tree validated: on any violation Load
// returns a ConfigurationError and no store, so a half-loaded store can
// never serve resolution calls.
type Store struct {
	domains    []Domain
	profiles   []Profile
	entries    map[string]profileEntry
	domainLibs map[string]*libraryDoc
	core       *libraryDoc
}

// Load reads a lexicon tree rooted at dir: domains_index.yaml, libraries/
// (core plus one file per domain) and profiles/ (one file per profile).
func Load(dir string) (*Store, error) {
	return loadFS(os.DirFS(dir))
}

type loader struct {
	fsys     fs.FS
	validate *validator.Validate
}

func loadFS(fsys fs.FS) (*Store, error) {
	ld := &loader{fsys: fsys, validate: validator.New()}

	var idx indexDoc
	if err := ld.readYAML(indexFile, &idx); err != nil {
		return nil, err
	}
	if err := ld.validate.Struct(&idx); err != nil {
		return nil, &ConfigurationError{File: indexFile, Field: firstErrorField(err), Message: "invalid domain index"}
	}

	core, err := ld.loadLibrary(coreLibFile)
	if err != nil {
		return nil, err
	}

	store := &Store{
		entries:    make(map[string]profileEntry),
		domainLibs: make(map[string]*libraryDoc),
		core:       core,
	}

	seenDomains := make(map[string]bool)
	for _, group := range idx.Groups {
		for _, dom := range group.Domains {
			if seenDomains[dom.ID] {
				return nil, &ConfigurationError{
					File:    indexFile,
					Field:   "groups." + group.ID + ".domains",
					Message: "duplicate domain id " + dom.ID,
				}
			}
			seenDomains[dom.ID] = true

			lib, err := ld.loadLibrary(dom.Library)
			if err != nil {
				return nil, err
			}
			store.domainLibs[dom.ID] = lib
			store.domains = append(store.domains, Domain{
				ID:       dom.ID,
				Group:    group.ID,
				Label:    dom.Label,
				Library:  dom.Library,
				Profiles: append([]string(nil), dom.Profiles...),
			})

			for _, pid := range dom.Profiles {
				if _, dup := store.entries[pid]; dup {
					return nil, &ConfigurationError{
						File:    indexFile,
						Field:   "groups." + group.ID + ".domains." + dom.ID + ".profiles",
						Message: "duplicate profile id " + pid,
					}
				}
				prof, err := ld.loadProfile(pid, dom.ID)
				if err != nil {
					return nil, err
				}
				store.entries[pid] = profileEntry{doc: prof, domain: dom.ID}
				store.profiles = append(store.profiles, Profile{
					ID:     pid,
					Domain: dom.ID,
					Title:  prof.Title,
				})
			}
		}
	}

	return store, nil
}

func (ld *loader) readYAML(file string, out any) error {
	if !fs.ValidPath(file) {
		return &ConfigurationError{File: file, Message: "path escapes the lexicon tree"}
	}
	data, err := fs.ReadFile(ld.fsys, path.Clean(file))
	if err != nil {
		return &ConfigurationError{File: file, Message: "missing or unreadable file", Cause: err}
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return &ConfigurationError{File: file, Message: "invalid YAML", Cause: err}
	}
	return nil
}

func (ld *loader) loadLibrary(file string) (*libraryDoc, error) {
	var lib libraryDoc
	if err := ld.readYAML(file, &lib); err != nil {
		return nil, err
	}
	if lib.Keywords.Empty() {
		return nil, &ConfigurationError{File: file, Field: "keywords", Message: "must define at least one language list"}
	}
	return &lib, nil
}

func (ld *loader) loadProfile(pid, domainID string) (*profileDoc, error) {
	file := path.Join(profilesDir, pid+".yaml")
	var prof profileDoc
	if err := ld.readYAML(file, &prof); err != nil {
		return nil, err
	}
	if prof.ID == "" {
		prof.ID = pid
	}
	if prof.ID != pid {
		return nil, &ConfigurationError{File: file, Field: "id", Message: "id " + prof.ID + " does not match file name"}
	}
	if err := ld.validate.Struct(&prof); err != nil {
		return nil, &ConfigurationError{File: file, Field: firstErrorField(err), Message: "invalid profile"}
	}
	// a declared domain must agree with the index placement
	if prof.Domain != "" && prof.Domain != domainID {
		return nil, &ConfigurationError{File: file, Field: "domain", Message: "domain " + prof.Domain + " does not match the domain index"}
	}
	prof.Domain = domainID
	if prof.Keywords.Empty() {
		return nil, &ConfigurationError{File: file, Field: "keywords", Message: "must define at least one language list"}
	}
	return &prof, nil
}

// firstErrorField extracts the first offending field path from a
// validator error, without the root struct name.
func firstErrorField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ns := verrs[0].Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			return ns[i+1:]
		}
		return ns
	}
	return ""
}

// ResolveEffectiveKeywords merges Core → Domain → Profile keyword lists for
// one language. Later sources only append: duplicates collapse case- and
// diacritic-insensitively with the first spelling winning its position.
func (s *Store) ResolveEffectiveKeywords(profileID string, lang types.Language) (types.EffectiveKeywordSet, error) {
	entry, ok := s.entries[profileID]
	if !ok {
		return types.EffectiveKeywordSet{}, &UnknownProfileError{ProfileID: profileID}
	}
	merged := mergeKeywordLists(
		s.core.Keywords.For(lang),
		s.domainLibs[entry.domain].Keywords.For(lang),
		entry.doc.Keywords.For(lang),
	)
	return types.EffectiveKeywordSet{ProfileID: profileID, Language: lang, Keywords: merged}, nil
}

// CoreKeywords returns the core-only keyword set, the fallback callers use
// when no profile is selected or a profile id is unknown.
func (s *Store) CoreKeywords(lang types.Language) types.EffectiveKeywordSet {
	return types.EffectiveKeywordSet{
		Language: lang,
		Keywords: mergeKeywordLists(s.core.Keywords.For(lang)),
	}
}

// ResolveProfile returns the profile with all merged library content for one
// language: keywords plus the writing aids (job titles, action verbs,
// metrics, bullet templates). Identity fields come from the profile alone;
// libraries never override them.
func (s *Store) ResolveProfile(profileID string, lang types.Language) (*ResolvedProfile, error) {
	entry, ok := s.entries[profileID]
	if !ok {
		return nil, &UnknownProfileError{ProfileID: profileID}
	}
	set, err := s.ResolveEffectiveKeywords(profileID, lang)
	if err != nil {
		return nil, err
	}
	doc := entry.doc
	lib := s.domainLibs[entry.domain]
	return &ResolvedProfile{
		Profile:         Profile{ID: doc.ID, Domain: entry.domain, Title: doc.Title},
		Language:        lang,
		Keywords:        set.Keywords,
		JobTitles:       mergeKeywordLists(doc.JobTitles.For(lang)),
		ActionVerbs:     mergeKeywordLists(s.core.ActionVerbs.For(lang), lib.ActionVerbs.For(lang), doc.ActionVerbs.For(lang)),
		Metrics:         mergeKeywordLists(s.core.Metrics.For(lang), lib.Metrics.For(lang), doc.Metrics.For(lang)),
		BulletTemplates: mergeKeywordLists(s.core.BulletTemplates.For(lang), lib.BulletTemplates.For(lang), doc.BulletTemplates.For(lang)),
	}, nil
}

// Profiles returns loaded profiles in declaration order, optionally filtered
// by domain id. An empty filter returns everything.
func (s *Store) Profiles(domainFilter string) []Profile {
	if domainFilter == "" {
		return append([]Profile(nil), s.profiles...)
	}
	var out []Profile
	for _, p := range s.profiles {
		if p.Domain == domainFilter {
			out = append(out, p)
		}
	}
	return out
}

// Domains returns loaded domains in declaration order.
func (s *Store) Domains() []Domain {
	return append([]Domain(nil), s.domains...)
}

// HasProfile reports whether a profile id is loaded.
func (s *Store) HasProfile(profileID string) bool {
	_, ok := s.entries[profileID]
	return ok
}

func mergeKeywordLists(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, kw := range list {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			key := normalize.Fold(kw)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, kw)
		}
	}
	return out
}
