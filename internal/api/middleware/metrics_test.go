package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/daap14/wcdash/internal/api/middleware"
)

func requestsCount(t *testing.T, method, route, status string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gathering metrics: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "wcdash_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["method"] == method && labels["route"] == route && labels["status"] == status {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.Metrics)
	r.Get("/probe/{name}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	before := requestsCount(t, http.MethodGet, "/probe/{name}", "202")

	for _, name := range []string{"Brazil", "Italy"} {
		req := httptest.NewRequest(http.MethodGet, "/probe/"+name, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusAccepted, w.Code)
	}

	assert.Equal(t, before+2, requestsCount(t, http.MethodGet, "/probe/{name}", "202"))
}

func TestMetrics_ImplicitOK(t *testing.T) {
	h := middleware.Metrics(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	before := requestsCount(t, http.MethodGet, "unmatched", "200")

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, before+1, requestsCount(t, http.MethodGet, "unmatched", "200"))

	n, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "wcdash_http_request_duration_seconds")
	assert.NoError(t, err)
	assert.Positive(t, n)
}
