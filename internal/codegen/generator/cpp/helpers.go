package cpp

import (
	"strings"
	"text/template"
)

func tplFuncs() template.FuncMap {
	return template.FuncMap{
		"cquote": cQuote,
	}
}

var cEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// cQuote renders s as a C string literal. Header identifiers never need
// escaping, so for them this is just s wrapped in double quotes.
func cQuote(s string) string {
	return `"` + cEscaper.Replace(s) + `"`
}
