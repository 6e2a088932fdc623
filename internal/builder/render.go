// internal/builder/render.go
package builder

import (
	"bytes"
	"fmt"
	"html/template"
)

// Render parses a template source and executes it with the given
// variables. Templates reference record fields directly ({{.name}},
// {{range .data}}...); a referenced field the data does not carry is a
// render error rather than a silent blank, so broken templates abort
// the build instead of producing half-empty pages.
func Render(name, src string, vars map[string]any) (string, error) {
	tmpl, err := template.New(name).Funcs(Funcs()).Option("missingkey=error").Parse(src)
	if err != nil {
		return "", fmt.Errorf("could not parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("could not render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Funcs returns the helper functions available inside every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"abbrev": Abbrev,
	}
}

// Abbrev truncates a string to at most max characters, trimming a
// trailing space before appending the ellipsis.
func Abbrev(s string, max int) string {
	if len(s) < max {
		return s
	}
	truncated := s[:max-2]
	if truncated[len(truncated)-1] == ' ' {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated + ".."
}
