// Package views renders the embedded HTML templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

// Template names.
const (
	Home = "home.html"
	Form = "form.html"
)

const mimeHTML = "text/html"

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the parsed template set. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	min  *minify.M
}

// NewRenderer parses the embedded templates. When minifyOutput is set the
// rendered documents are passed through an HTML minifier.
func NewRenderer(minifyOutput bool) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r := &Renderer{tmpl: tmpl}
	if minifyOutput {
		m := minify.New()
		m.AddFunc(mimeHTML, html.Minify)
		r.min = m
	}
	return r, nil
}

// Render executes the named template with data and returns the document.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute template %q: %w", name, err)
	}
	raw := buf.Bytes()
	if r.min == nil {
		return raw, nil
	}

	var out bytes.Buffer
	if err := r.min.Minify(mimeHTML, &out, bytes.NewReader(raw)); err != nil {
		// minification is cosmetic; fall back to the raw document
		return raw, nil
	}
	return out.Bytes(), nil
}
