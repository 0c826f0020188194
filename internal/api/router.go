package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/daap14/wcdash/internal/api/handler"
	"github.com/daap14/wcdash/internal/api/middleware"
	"github.com/daap14/wcdash/internal/dashboard"
	"github.com/daap14/wcdash/internal/worldcup"
)

// Catalog is the team table the router serves; *worldcup.Store satisfies it.
type Catalog interface {
	handler.Catalog
	handler.DatasetInspector
}

var _ Catalog = (*worldcup.Store)(nil)

var _ handler.Renderer = (*dashboard.ViewModel)(nil)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Catalog        Catalog
	Renderer       handler.Renderer
	Version        string
	OpenAPISpec    []byte
	MetricsEnabled bool
	MCPHandler     http.Handler
	MCPPath        string
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	if deps.MetricsEnabled {
		r.Use(middleware.Metrics)
	}

	healthHandler := handler.NewHealthHandler(deps.Catalog, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec)
		r.Get("/openapi.json", openapiHandler.ServeHTTP)
	}

	if deps.Catalog != nil && deps.Renderer != nil {
		pageHandler := handler.NewPageHandler(deps.Catalog, deps.Renderer)
		r.Get("/", pageHandler.ServeHTTP)

		dashHandler := handler.NewDashboardHandler(deps.Catalog, deps.Renderer)
		r.Route("/api", func(r chi.Router) {
			r.Get("/teams", dashHandler.ListTeams)
			r.Get("/teams/{name}", dashHandler.GetTeam)
			r.Get("/years", dashHandler.ListYears)
			r.Get("/view", dashHandler.View)
		})
	}

	if deps.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	if deps.MCPHandler != nil && deps.MCPPath != "" {
		r.Handle(deps.MCPPath, deps.MCPHandler)
	}

	return r
}
