// Package templates embeds the storefront page so the binary ships with it.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.gohtml
var files embed.FS

const Index = "index.gohtml"

func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.gohtml")
}
