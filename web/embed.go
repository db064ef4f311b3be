// Package web embeds the page templates and static assets of the admin UI.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static templates
var content embed.FS

// StaticFS returns the stylesheet and other static assets.
func StaticFS() fs.FS {
	return sub("static")
}

// TemplatesFS returns the layout and page templates.
func TemplatesFS() fs.FS {
	return sub("templates")
}

// sub panics on error: both directories are embedded at build time, so a
// failure means the binary itself is broken.
func sub(dir string) fs.FS {
	f, err := fs.Sub(content, dir)
	if err != nil {
		panic("web: " + dir + ": " + err.Error())
	}
	return f
}
