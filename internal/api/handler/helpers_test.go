package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/daap14/wcdash/internal/dashboard"
	"github.com/daap14/wcdash/internal/worldcup"
)

func loadStore(t *testing.T) *worldcup.Store {
	t.Helper()
	s, err := worldcup.LoadEmbedded()
	require.NoError(t, err)
	return s
}

func newDeps(t *testing.T) (*worldcup.Store, *dashboard.ViewModel) {
	t.Helper()
	s := loadStore(t)
	return s, dashboard.New(s)
}

func makeChiRequest(method, path string, params map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req, w
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, "failed to parse response body")
	return env
}
