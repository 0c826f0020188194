package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daap14/wcdash/internal/api/handler"
)

// mockDataset implements handler.DatasetInspector for testing.
type mockDataset struct {
	teams int
	years []int
}

func (m *mockDataset) Len() int     { return m.teams }
func (m *mockDataset) Years() []int { return m.years }

func TestHealthHandler_Healthy(t *testing.T) {
	// Arrange
	h := handler.NewHealthHandler(loadStore(t), "0.1.0")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	env := parseEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "0.1.0", data["version"])

	dataset := data["dataset"].(map[string]interface{})
	assert.Equal(t, float64(13), dataset["teams"])
	assert.Equal(t, float64(22), dataset["years"])

	assert.Nil(t, env["error"])
	assert.NotNil(t, env["meta"])
}

func TestHealthHandler_DegradedWhenEmpty(t *testing.T) {
	h := handler.NewHealthHandler(&mockDataset{}, "0.1.0")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "degraded", data["status"])
}

func TestHealthHandler_DegradedWithoutDataset(t *testing.T) {
	h := handler.NewHealthHandler(nil, "dev")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "degraded", data["status"])
	assert.Equal(t, "dev", data["version"])
}

func TestHealthHandler_ResponseEnvelopeStructure(t *testing.T) {
	h := handler.NewHealthHandler(&mockDataset{teams: 2, years: []int{1930}}, "0.1.0")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	env := parseEnvelope(t, w)

	// Top-level keys: data, error, meta
	assert.Contains(t, env, "data")
	assert.Contains(t, env, "error")
	assert.Contains(t, env, "meta")

	meta := env["meta"].(map[string]interface{})
	assert.Contains(t, meta, "requestId")
	assert.Contains(t, meta, "timestamp")

	data := env["data"].(map[string]interface{})
	assert.Contains(t, data, "status")
	assert.Contains(t, data, "version")
	assert.Contains(t, data, "dataset")
}
