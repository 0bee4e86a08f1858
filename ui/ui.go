// Package ui embeds the HTML templates and static assets.
package ui

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed html static
var files embed.FS

// Templates holds every page template, parsed once at startup.
var Templates = template.Must(template.ParseFS(files, "html/*.html"))

// Static returns the asset tree served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
