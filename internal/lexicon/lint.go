package lexicon

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Finding severities.
const (
	LevelError   = "error"
	LevelWarning = "warning"
)

// Finding is one lint result for a lexicon tree file.
type Finding struct {
	Level   string `json:"level"`
	File    string `json:"file"`
	Message string `json:"message"`
}

// Report is the full lint result for one tree. Unlike Load, linting does not
// stop at the first violation: editors fix a whole tree in one pass.
type Report struct {
	Findings []Finding `json:"findings"`
}

// OK reports whether the tree carries no error-level findings. Warnings do
// not block loading.
func (r *Report) OK() bool {
	return r.CountLevel(LevelError) == 0
}

// CountLevel returns the number of findings at the given severity.
func (r *Report) CountLevel(level string) int {
	n := 0
	for _, f := range r.Findings {
		if f.Level == level {
			n++
		}
	}
	return n
}

func (r *Report) errorf(file, format string, args ...any) {
	r.add(LevelError, file, format, args...)
}

func (r *Report) warnf(file, format string, args ...any) {
	r.add(LevelWarning, file, format, args...)
}

func (r *Report) add(level, file, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Level: level, File: file, Message: fmt.Sprintf(format, args...)})
}

// Lint inspects a lexicon tree rooted at dir and reports every problem it can
// find, errors and warnings alike.
func Lint(dir string) *Report {
	return LintFS(os.DirFS(dir))
}

// LintFS is Lint over an abstract filesystem (used for the embedded tree).
func LintFS(fsys fs.FS) *Report {
	r := &Report{}

	var idx indexDoc
	if !lintYAML(fsys, r, indexFile, &idx) {
		return r
	}
	if len(idx.Groups) == 0 {
		r.errorf(indexFile, "no groups declared")
		return r
	}

	lintLibrary(fsys, r, coreLibFile)

	referenced := make(map[string]bool)
	seenDomains := make(map[string]bool)
	for _, group := range idx.Groups {
		if group.ID == "" {
			r.errorf(indexFile, "group without an id")
		}
		for _, dom := range group.Domains {
			if dom.ID == "" {
				r.errorf(indexFile, "domain without an id in group %s", group.ID)
				continue
			}
			if seenDomains[dom.ID] {
				r.errorf(indexFile, "duplicate domain id %s", dom.ID)
			}
			seenDomains[dom.ID] = true

			if dom.Library == "" {
				r.errorf(indexFile, "domain %s declares no library", dom.ID)
			} else {
				lintLibrary(fsys, r, dom.Library)
			}
			if len(dom.Profiles) == 0 {
				r.warnf(indexFile, "domain %s declares no profiles", dom.ID)
			}
			for _, pid := range dom.Profiles {
				file := path.Join(profilesDir, pid+".yaml")
				if referenced[pid] {
					r.errorf(indexFile, "duplicate profile id %s", pid)
					continue
				}
				referenced[pid] = true
				lintProfile(fsys, r, file, pid, dom.ID)
			}
		}
	}

	// profile files nobody references are dead weight, not errors
	entries, err := fs.ReadDir(fsys, profilesDir)
	if err == nil {
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
				continue
			}
			pid := strings.TrimSuffix(name, ".yaml")
			if !referenced[pid] {
				r.warnf(path.Join(profilesDir, name), "not referenced by any domain in %s", indexFile)
			}
		}
	}

	return r
}

func lintYAML(fsys fs.FS, r *Report, file string, out any) bool {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		r.errorf(file, "missing or unreadable: %v", err)
		return false
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		r.errorf(file, "invalid YAML: %v", err)
		return false
	}
	return true
}

func lintLibrary(fsys fs.FS, r *Report, file string) {
	var lib libraryDoc
	if !lintYAML(fsys, r, file, &lib) {
		return
	}
	if lib.Keywords.Empty() {
		r.errorf(file, "keywords must define at least one language list")
		return
	}
	warnSingleLocale(r, file, "keywords", lib.Keywords)
}

func lintProfile(fsys fs.FS, r *Report, file, pid, domainID string) {
	var prof profileDoc
	if !lintYAML(fsys, r, file, &prof) {
		return
	}
	if prof.ID != "" && prof.ID != pid {
		r.errorf(file, "id %s does not match file name", prof.ID)
	}
	if prof.Domain != "" && prof.Domain != domainID {
		r.errorf(file, "domain %s does not match the domain index (%s)", prof.Domain, domainID)
	}
	if prof.Keywords.Empty() {
		r.errorf(file, "keywords must define at least one language list")
		return
	}
	if prof.Title.EN == "" && prof.Title.RO == "" {
		r.warnf(file, "no title in either language")
	}
	warnSingleLocale(r, file, "keywords", prof.Keywords)
}

// warnSingleLocale flags asymmetric bilingual lists: legal (the present
// locale serves both) but usually an oversight in a hand-edited tree.
func warnSingleLocale(r *Report, file, field string, list BilingualList) {
	if len(list.EN) > 0 && len(list.RO) == 0 {
		r.warnf(file, "%s has only an en list; ro falls back to en", field)
	}
	if len(list.RO) > 0 && len(list.EN) == 0 {
		r.warnf(file, "%s has only a ro list; en falls back to ro", field)
	}
}
