package lexicon

import (
	"gopkg.in/yaml.v3"

	"github.com/mihai/cvscope/internal/types"
)

// Label is a bilingual display string. A missing locale falls back to the
// other one rather than failing, matching the keyword fallback rule.
type Label struct {
	EN string `yaml:"en" json:"en"`
	RO string `yaml:"ro" json:"ro"`
}

// For returns the label text for lang, falling back to the other locale.
func (l Label) For(lang types.Language) string {
	if lang == types.LanguageRomanian && l.RO != "" {
		return l.RO
	}
	if l.EN != "" {
		return l.EN
	}
	return l.RO
}

// BilingualList holds one keyword list per locale. Entries may specify both
// languages or a single one; For attaches a single-language list to both
// locale keys.
type BilingualList struct {
	EN []string `yaml:"en" json:"en,omitempty"`
	RO []string `yaml:"ro" json:"ro,omitempty"`
}

// For returns the list for lang, falling back to the other locale when the
// requested one is absent.
func (b BilingualList) For(lang types.Language) []string {
	if lang == types.LanguageRomanian {
		if len(b.RO) > 0 {
			return b.RO
		}
		return b.EN
	}
	if len(b.EN) > 0 {
		return b.EN
	}
	return b.RO
}

// Empty reports whether neither locale carries any entries.
func (b BilingualList) Empty() bool {
	return len(b.EN) == 0 && len(b.RO) == 0
}

// UnmarshalYAML accepts either the full per-locale mapping or a bare list,
// which attaches to both locales.
func (b *BilingualList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var both []string
		if err := node.Decode(&both); err != nil {
			return err
		}
		b.EN = both
		b.RO = both
		return nil
	}
	type plain BilingualList
	return node.Decode((*plain)(b))
}

// indexDoc is the on-disk shape of domains_index.yaml. Groups and domains
// are ordered lists: declaration order drives every deterministic tie-break
// downstream.
type indexDoc struct {
	Groups []groupDoc `yaml:"groups" validate:"required,min=1,dive"`
}

type groupDoc struct {
	ID      string      `yaml:"id" validate:"required"`
	Label   Label       `yaml:"label"`
	Domains []domainDoc `yaml:"domains" validate:"required,min=1,dive"`
}

type domainDoc struct {
	ID       string   `yaml:"id" validate:"required"`
	Label    Label    `yaml:"label"`
	Library  string   `yaml:"library" validate:"required"`
	Profiles []string `yaml:"profiles" validate:"required,min=1"`
}

// libraryDoc is the shared shape of the core library and every domain
// library: pure ATS content, no profile identity.
type libraryDoc struct {
	ID              string        `yaml:"id"`
	Keywords        BilingualList `yaml:"keywords"`
	ActionVerbs     BilingualList `yaml:"action_verbs"`
	Metrics         BilingualList `yaml:"metrics"`
	BulletTemplates BilingualList `yaml:"bullet_templates"`
}

// profileDoc is the on-disk shape of profiles/<id>.yaml.
type profileDoc struct {
	ID              string        `yaml:"id" validate:"required"`
	Domain          string        `yaml:"domain"`
	Title           Label         `yaml:"title"`
	JobTitles       BilingualList `yaml:"job_titles"`
	Keywords        BilingualList `yaml:"keywords"`
	ActionVerbs     BilingualList `yaml:"action_verbs"`
	Metrics         BilingualList `yaml:"metrics"`
	BulletTemplates BilingualList `yaml:"bullet_templates"`
}
