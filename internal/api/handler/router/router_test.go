package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/metrics-api/pkg/apiErrors"
)

func TestRouter(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:    "/healthcheck",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}, Route{
		Path:   "/v1/goals",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}),
		Middlewares: []Middleware{mark("first"), mark("second")},
	}))

	tests := []struct {
		name     string
		method   string
		path     string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "middlewares na ordem declarada",
			method: http.MethodGet,
			path:   "/v1/goals",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, []string{"first", "second", "handler"}, order)
			},
		},
		{
			name:   "rota inexistente",
			method: http.MethodGet,
			path:   "/v1/unknown",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrNotFound)
			},
		},
		{
			name:   "método não permitido",
			method: http.MethodPost,
			path:   "/v1/goals",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order = nil
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			tt.validate(t, rec)
		})
	}
}

func TestRouter_Routes(t *testing.T) {
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rt := New(
		WithRoutes(Route{Method: http.MethodPost, Path: "/v1/transactions", Handler: noop}),
		WithRoutes(Route{Method: http.MethodGet, Path: "/healthcheck", Handler: noop}),
	)

	assert.Equal(t, []string{"GET /healthcheck", "POST /v1/transactions"}, rt.Routes())
}

func TestRouter_Match(t *testing.T) {
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rt := New(WithRoutes(
		Route{Method: http.MethodGet, Path: "/v1/transactions", Handler: noop},
		Route{Method: http.MethodGet, Path: "/v1/transactions/:id", Handler: noop},
		Route{Method: http.MethodGet, Path: "/v1/shares/shared-with-me", Handler: noop},
		Route{Method: http.MethodPost, Path: "/v1/shares/:code/accept", Handler: noop},
		Route{Method: http.MethodDelete, Path: "/v1/shares/:code", Handler: noop},
	))

	tests := []struct {
		name     string
		method   string
		path     string
		expected string
		ok       bool
	}{
		{name: "rota fixa", method: http.MethodGet, path: "/v1/transactions", expected: "/v1/transactions", ok: true},
		{name: "parâmetro vira marcador", method: http.MethodGet, path: "/v1/transactions/5f1c", expected: "/v1/transactions/:id", ok: true},
		{name: "segmento fixo", method: http.MethodGet, path: "/v1/shares/shared-with-me", expected: "/v1/shares/shared-with-me", ok: true},
		{name: "parâmetro no meio", method: http.MethodPost, path: "/v1/shares/ABCD2345/accept", expected: "/v1/shares/:code/accept", ok: true},
		{name: "método sem rota", method: http.MethodPut, path: "/v1/transactions", ok: false},
		{name: "caminho desconhecido", method: http.MethodGet, path: "/x/123", ok: false},
		{name: "segmento extra", method: http.MethodGet, path: "/v1/transactions/5f1c/extra", ok: false},
		{name: "barra final", method: http.MethodGet, path: "/v1/transactions/", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, ok := rt.Match(tt.method, tt.path)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, pattern)
		})
	}
}
