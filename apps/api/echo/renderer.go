package echoapi

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/ratiba/core/timetable"
)

const (
	indexTemplate = "index.gohtml"
	errorTemplate = "error.gohtml"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type (
	templateRenderer struct {
		appName   string
		templates *template.Template
	}

	indexPage struct {
		AppName string
		View    *timetable.View
	}

	errorPage struct {
		AppName string
		Code    int
		Status  string
		Message interface{}
	}
)

var _ echo.Renderer = (*templateRenderer)(nil)

func newTemplateRenderer(appName string) *templateRenderer {
	return &templateRenderer{
		appName:   appName,
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.gohtml")),
	}
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	switch page := data.(type) {
	case indexPage:
		page.AppName = r.appName
		data = page
	case errorPage:
		page.AppName = r.appName
		data = page
	}
	return r.templates.ExecuteTemplate(w, name, data)
}
