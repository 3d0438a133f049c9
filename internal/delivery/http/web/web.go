// Package web serves the server-rendered landing page and its inquiry form.
// The form works without JavaScript; static/inquiry.js only adds location detection.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"year":  func() int { return time.Now().Year() },
		"lower": strings.ToLower,
	}).ParseFS(templateFS, "templates/*.html")
}

// Static returns the embedded assets rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
