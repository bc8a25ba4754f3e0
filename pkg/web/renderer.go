package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"dreamweaver/pkg/schema"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates *template.Template
}

var funcs = template.FuncMap{
	"year": func() int { return time.Now().Year() },
	"formatTime": func(ms int64) string {
		return time.UnixMilli(ms).Format("Jan 2, 2006 15:04")
	},
	"genres":    func() []schema.Genre { return schema.Genres },
	"lengths":   func() []schema.Length { return schema.Lengths },
	"languages": func() []schema.Language { return schema.Languages },
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template. name is the file name, e.g. "index.html".
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	tmpl := r.templates.Lookup(name)
	if tmpl == nil {
		log.Error("template not found", "name", name)
		return fmt.Errorf("template %s not found", name)
	}
	if err := tmpl.Execute(w, data); err != nil {
		log.Error("failed to execute template", "name", name, "error", err)
		return err
	}
	return nil
}
