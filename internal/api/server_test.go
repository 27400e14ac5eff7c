package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metrics-api/internal/calendar"
	"github.com/vfg2006/metrics-api/internal/config"
	"github.com/vfg2006/metrics-api/pkg/log"
	"github.com/vfg2006/metrics-api/pkg/middleware"
)

func newTestServer(t *testing.T, rateLimit config.RateLimit) http.Handler {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{
		Server: config.Server{
			Host:           "localhost",
			Port:           "0",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		RateLimit: rateLimit,
	}

	srv, err := New(cfg, calendar.New(), Services{})
	require.NoError(t, err)

	return srv.Handler()
}

func TestServer_MiddlewareChain(t *testing.T) {
	tests := []struct {
		name     string
		request  func() *http.Request
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "healthcheck é público",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
			},
		},
		{
			name: "rota protegida sem identificação",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/v1/goals", nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
		{
			name: "preflight de origem permitida",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodOptions, "/v1/transactions", nil)
				req.Header.Set("Origin", "http://localhost:3000")
				return req
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name: "rota inexistente",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/v1/unknown", nil)
				req.Header.Set(middleware.OwnerIDHeader, "owner-1")
				return req
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
			},
		},
	}

	handler := newTestServer(t, config.RateLimit{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, tt.request())
			tt.validate(t, rec)
		})
	}
}

func TestServer_RateLimitPerOwner(t *testing.T) {
	handler := newTestServer(t, config.RateLimit{Enabled: true, RequestsPerSecond: 0.001, Burst: 1})

	request := func(owner string) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/unknown", nil)
		req.Header.Set(middleware.OwnerIDHeader, owner)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNotFound, request("owner-1"))
	assert.Equal(t, http.StatusTooManyRequests, request("owner-1"))
	assert.Equal(t, http.StatusNotFound, request("owner-2"))
}
