// Package web holds the embedded HTML views.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Funcs are available to every view.
//
// raw marks a value as already escaped: text fields are HTML-escaped when
// they are validated, so printing them through the template escaper again
// would double-encode them.
var Funcs = template.FuncMap{
	"raw": func(s string) template.HTML { return template.HTML(s) },
}

// Templates parses every view. Each file is addressable by its base name
// (e.g. "author_list.html"); layout.html contributes the shared partials.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}
