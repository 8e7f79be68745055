// Package chrome renders and mounts the UI pieces that are not part of the page markup:
// the floating back-to-top control and the load-time preloader overlay.
package chrome

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed styles/*.css
var styleFS embed.FS

// Style sheet names.
const (
	StyleBackToTop = "back_to_top"
	StylePreloader = "preloader"
)

type controlData struct {
	Class string
	Label string
	Glyph string
}

// Renderer turns the embedded templates into markup.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse chrome templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// BackToTop renders the back-to-top button.
func (r *Renderer) BackToTop() (string, error) {
	return r.render("back_to_top", controlData{Class: "back-to-top", Label: "Back to top", Glyph: "↑"})
}

// Preloader renders the preloader overlay with its spinner.
func (r *Renderer) Preloader() (string, error) {
	return r.render("preloader", controlData{Class: "preloader", Label: "Loading"})
}

// Stylesheet returns the raw CSS for name.
func Stylesheet(name string) (string, error) {
	data, err := styleFS.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("read stylesheet %s: %w", name, err)
	}
	return string(data), nil
}

// StyleBlock wraps the named stylesheet in a style element tagged with its name.
func StyleBlock(name string) (string, error) {
	css, err := Stylesheet(name)
	if err != nil {
		return "", err
	}
	return `<style data-chrome="` + name + `">` + css + `</style>`, nil
}
