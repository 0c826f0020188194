package handler

import (
	"net/http"

	"github.com/daap14/wcdash/internal/api/middleware"
	"github.com/daap14/wcdash/internal/api/response"
)

// DatasetInspector reports the size of the loaded team table.
type DatasetInspector interface {
	Len() int
	Years() []int
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	dataset DatasetInspector
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(dataset DatasetInspector, version string) *HealthHandler {
	return &HealthHandler{
		dataset: dataset,
		version: version,
	}
}

type datasetStatus struct {
	Teams int `json:"teams"`
	Years int `json:"years"`
}

type healthData struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Dataset datasetStatus `json:"dataset"`
}

// ServeHTTP handles the health check request.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var ds datasetStatus
	if h.dataset != nil {
		ds = datasetStatus{Teams: h.dataset.Len(), Years: len(h.dataset.Years())}
	}

	status := "healthy"
	if ds.Teams == 0 {
		status = "degraded"
	}

	data := healthData{
		Status:  status,
		Version: h.version,
		Dataset: ds,
	}

	response.Success(w, http.StatusOK, data, requestID)
}
