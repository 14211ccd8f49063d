package extract

// techHints lists short tokens that are real technology terms, exempt from
// the minimum-length filter. Folded form, like every token.
var techHints = map[string]bool{
	"c#": true, "c++": true, "go": true, "js": true, "ts": true,
	"ai": true, "ml": true, "bi": true, "qa": true, "ui": true, "ux": true,
	"ci": true, "cd": true, "db": true, "os": true,
	"aws": true, "gcp": true, "sql": true, "php": true, "api": true,
	"etl": true, "sap": true, "crm": true, "erp": true, "seo": true,
	"kpi": true, "ios": true, "vm": true, "3d": true,
}

// IsTechHint reports whether a folded token is on the tech whitelist.
func IsTechHint(token string) bool {
	return techHints[token]
}
