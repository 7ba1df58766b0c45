package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer plugs the embedded pages into echo. The markup is deliberately
// minimal; the pages exist to carry the view models below.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.New("").ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

type TaskView struct {
	ID    uint
	Title string
}

type AuthPage struct {
	Flash string
}

type DashboardPage struct {
	Username string
	Sort     string
	Tasks    []TaskView
	Flash    string
}

type EditPage struct {
	Task  TaskView
	Flash string
}
