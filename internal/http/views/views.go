// Package views renders the dashboard's HTML pages.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var files embed.FS

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders minor units as a dollar amount, e.g. 255099 -> "$2,550.99".
func FormatUSD(amount int64) string {
	return usd.Sprintf("$%d.%02d", amount/100, amount%100)
}

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"usd": FormatUSD,
	}).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}

	return nil
}
