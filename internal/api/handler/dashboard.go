package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/daap14/wcdash/internal/api/middleware"
	"github.com/daap14/wcdash/internal/api/response"
	"github.com/daap14/wcdash/internal/api/validation"
	"github.com/daap14/wcdash/internal/dashboard"
	"github.com/daap14/wcdash/internal/render"
	"github.com/daap14/wcdash/internal/worldcup"
)

var viewsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "wcdash",
	Subsystem: "dashboard",
	Name:      "views_total",
	Help:      "The total number of dashboard views rendered",
}, []string{"mode"})

// Catalog is the read-only team table served by the API.
type Catalog interface {
	Team(name string) (worldcup.Team, error)
	Teams() []worldcup.Team
	Years() []int
}

// Renderer computes the dashboard view for a filter selection.
type Renderer interface {
	Render(sel dashboard.Selection) dashboard.View
}

type teamResponse struct {
	Name          string `json:"name"`
	ISO           string `json:"iso"`
	Wins          int    `json:"wins"`
	RunnersUp     int    `json:"runnersUp"`
	YearsWon      []int  `json:"yearsWon"`
	YearsRunnerUp []int  `json:"yearsRunnerUp"`
}

func toTeamResponse(t worldcup.Team) teamResponse {
	return teamResponse{
		Name:          t.Name,
		ISO:           t.ISO,
		Wins:          t.Wins,
		RunnersUp:     t.RunnersUp,
		YearsWon:      nonNil(t.YearsWon),
		YearsRunnerUp: nonNil(t.YearsRunnerUp),
	}
}

func nonNil(years []int) []int {
	if years == nil {
		return []int{}
	}
	return years
}

type viewResponse struct {
	Mode   dashboard.Mode    `json:"mode"`
	Status string            `json:"status"`
	Map    dashboard.MapSpec `json:"map"`
	Figure render.Figure     `json:"figure"`
}

func toViewResponse(v dashboard.View) viewResponse {
	return viewResponse{
		Mode:   v.Mode,
		Status: v.Status,
		Map:    v.Map,
		Figure: render.FigureFor(v.Map),
	}
}

// DashboardHandler serves the team table and computed views.
type DashboardHandler struct {
	catalog  Catalog
	renderer Renderer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(catalog Catalog, renderer Renderer) *DashboardHandler {
	return &DashboardHandler{
		catalog:  catalog,
		renderer: renderer,
	}
}

// ListTeams handles GET /api/teams.
func (h *DashboardHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	teams := h.catalog.Teams()
	items := make([]teamResponse, 0, len(teams))
	for _, t := range teams {
		items = append(items, toTeamResponse(t))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), 1, len(items), requestID)
}

// GetTeam handles GET /api/teams/{name}.
func (h *DashboardHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	name = strings.TrimSpace(name)
	if name == "" {
		response.Err(w, http.StatusBadRequest, "INVALID_NAME", "name must not be blank", requestID)
		return
	}

	t, err := h.catalog.Team(name)
	if err != nil {
		if errors.Is(err, worldcup.ErrTeamNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("%s is not in the data.", name), requestID)
			return
		}
		slog.Error("failed to look up team", "error", err, "name", name)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to look up team", requestID)
		return
	}

	response.Success(w, http.StatusOK, toTeamResponse(t), requestID)
}

// ListYears handles GET /api/years.
func (h *DashboardHandler) ListYears(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	years := nonNil(h.catalog.Years())
	response.SuccessList(w, http.StatusOK, years, len(years), 1, len(years), requestID)
}

// View handles GET /api/view.
func (h *DashboardHandler) View(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sel, fieldErrors := validation.ParseViewQuery(validation.ViewQuery{
		Country: r.URL.Query().Get("country"),
		Year:    r.URL.Query().Get("year"),
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	view := h.renderer.Render(sel)
	viewsCounter.WithLabelValues(string(view.Mode)).Inc()
	slog.Debug("rendered dashboard view", "mode", view.Mode, "country", sel.Country, "requestId", requestID)

	response.Success(w, http.StatusOK, toViewResponse(view), requestID)
}
