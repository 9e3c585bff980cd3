// Package view renders HTML pages from templates embedded in the binary. It
// implements echo.Renderer so handlers can call c.Render with a template
// name and a data mapping.
package view

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var content embed.FS

// Renderer executes the embedded templates by base file name.
type Renderer struct {
	templates *template.Template
}

// New parses every embedded template. Templates are addressed by their base
// file name ("home.html", "show_venue.html"), which is unique across the
// pages, forms and errors directories.
func New() (*Renderer, error) {
	t := template.New("").Funcs(template.FuncMap{
		"datetime": FormatDateTime,
	})
	t, err := t.ParseFS(content, "templates/*.html", "templates/*/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// FormatDateTime renders a timestamp for display. The "full" format spells
// out the weekday and month; "medium" (the default) is the compact variant
// used in show listings.
func FormatDateTime(t time.Time, format string) string {
	switch format {
	case "full":
		return t.Format("Monday January, 2, 2006 at 3:04PM")
	default: // medium
		return t.Format("Mon 01, 02, 2006 3:04PM")
	}
}
