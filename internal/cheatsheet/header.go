package cheatsheet

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// headerData is the value a header template is executed against.
type headerData struct {
	Total  int
	Groups int
	Keys   []string
	Format string
}

// renderHeader executes tmpl with sprig's function map. Trailing whitespace is
// trimmed so the header is separated from the body by exactly one blank line.
func renderHeader(tmpl string, data headerData) (string, error) {
	t, err := template.New("header").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), " \t\n"), nil
}
