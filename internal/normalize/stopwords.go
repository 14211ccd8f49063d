package normalize

import "github.com/mihai/cvscope/internal/types"

// Stop-word tables are keyed by folded token. The Romanian set is written
// without diacritics because tokens are folded before lookup.
var stopWordsEN = map[string]bool{
	"and": true, "or": true, "the": true, "a": true, "an": true, "to": true,
	"of": true, "in": true, "on": true, "for": true, "with": true, "as": true,
	"at": true, "by": true, "from": true, "is": true, "are": true, "be": true,
	"will": true, "you": true, "we": true, "our": true, "your": true,
	"this": true, "that": true, "these": true, "those": true, "it": true,
	"they": true, "their": true, "them": true, "us": true, "who": true,
	"what": true, "when": true, "where": true, "job": true, "role": true,
	"work": true, "team": true, "years": true, "year": true,
	"experience": true, "skills": true, "skill": true,
	"responsibilities": true, "responsibility": true,
}

var stopWordsRO = map[string]bool{
	"si": true, "sau": true, "un": true, "o": true, "unei": true, "ale": true,
	"al": true, "a": true, "la": true, "in": true, "pe": true, "pentru": true,
	"cu": true, "ca": true, "din": true, "este": true, "sunt": true,
	"fi": true, "vei": true, "voi": true, "tu": true, "noi": true,
	"nostru": true, "noastra": true, "acest": true, "aceasta": true,
	"aceste": true, "acestia": true, "job": true, "rol": true, "munca": true,
	"echipa": true, "ani": true, "an": true, "experienta": true,
	"abilitati": true, "competente": true, "responsabilitati": true,
	"responsabilitate": true,
}

// IsStopWord reports whether the folded token is a stop word in lang.
func IsStopWord(token string, lang types.Language) bool {
	if lang == types.LanguageRomanian {
		return stopWordsRO[token]
	}
	return stopWordsEN[token]
}
