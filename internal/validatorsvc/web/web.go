package web

import (
	"embed"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"join": strings.Join,
}).ParseFS(templateFS, "templates/*.html"))

// Page is the view model of the upload form.
type Page struct {
	Flashes         []string
	Submitted       bool
	ValidCount      int
	InvalidMessages []string
	DuplicateGroups [][]string
	OriginalText    string
}

func RenderIndex(w io.Writer, p Page) error {
	return tmpl.ExecuteTemplate(w, "index.html", p)
}
