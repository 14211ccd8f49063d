package lexicon

import (
	"embed"
	"io/fs"
)

// Bundled default library tree, compiled into the binary so the engine works
// out of the box. A user-maintained directory passed to Load always takes
// precedence over this tree.
//
//go:embed ats_profiles
var defaultTree embed.FS

// LoadDefault loads the library tree bundled with the binary.
func LoadDefault() (*Store, error) {
	sub, err := fs.Sub(defaultTree, "ats_profiles")
	if err != nil {
		return nil, err
	}
	return loadFS(sub)
}

// LintDefault lints the bundled tree. Kept alongside LoadDefault so the
// validate command works without a --root argument.
func LintDefault() (*Report, error) {
	sub, err := fs.Sub(defaultTree, "ats_profiles")
	if err != nil {
		return nil, err
	}
	return LintFS(sub), nil
}
