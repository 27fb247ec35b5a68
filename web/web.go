// Package web embeds the single-page UI: the HTML template plus the CSS
// animations and client script that render classification results.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates static
var FS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(FS, "templates/*.html"))
}
