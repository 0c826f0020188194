package handler

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/daap14/wcdash/internal/dashboard"
	"github.com/daap14/wcdash/internal/render"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

const (
	pageTitle   = "FIFA World Cup Dashboard"
	pageHeading = "FIFA World Cup Winners & Runner-Ups"
	viewURL     = "/api/view"
)

type pageData struct {
	Title     string
	Heading   string
	Countries []string
	Years     []int
	Status    string
	Figure    render.Figure
	ViewURL   string
}

// PageHandler serves the dashboard page with the empty selection pre-rendered.
type PageHandler struct {
	catalog  Catalog
	renderer Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(catalog Catalog, renderer Renderer) *PageHandler {
	return &PageHandler{
		catalog:  catalog,
		renderer: renderer,
	}
}

// ServeHTTP handles GET /.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view := h.renderer.Render(dashboard.Selection{})
	viewsCounter.WithLabelValues(string(view.Mode)).Inc()

	teams := h.catalog.Teams()
	countries := make([]string, 0, len(teams))
	for _, t := range teams {
		countries = append(countries, t.Name)
	}

	data := pageData{
		Title:     pageTitle,
		Heading:   pageHeading,
		Countries: countries,
		Years:     h.catalog.Years(),
		Status:    view.Status,
		Figure:    render.FigureFor(view.Map),
		ViewURL:   viewURL,
	}

	templ.Handler(pageComponent(data)).ServeHTTP(w, r)
}

func pageComponent(data pageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return pageTemplate.Execute(w, data)
	})
}
