package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// rotas fixas para os testes, no formato devolvido pelo router
type staticRoutes map[string]string

func (s staticRoutes) Match(method, path string) (string, bool) {
	pattern, ok := s[method+" "+path]
	return pattern, ok
}

var testRoutes = staticRoutes{
	"GET /v1/transactions/abc": "/v1/transactions/:id",
}

func TestInstrument_CountsRequests(t *testing.T) {
	handler := Instrument(testRoutes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/v1/transactions/:id", "418"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/transactions/abc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/v1/transactions/:id", "418")))
}

func TestInstrument_UnmatchedPathsShareOneSeries(t *testing.T) {
	handler := Instrument(testRoutes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	serve := func(method, path string) {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, path, nil))
	}

	// garante que as séries "other" já existem antes da contagem
	serve(http.MethodGet, "/warmup")
	serve("PROPFIND", "/warmup")
	series := testutil.CollectAndCount(httpRequests)
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", unmatchedPath, "404"))
	beforeOther := testutil.ToFloat64(httpRequests.WithLabelValues("OTHER", unmatchedPath, "404"))

	for i := 0; i < 20; i++ {
		serve(http.MethodGet, fmt.Sprintf("/x/%d/%d", i, i*7))
		serve("PROPFIND", fmt.Sprintf("/v1/transactions/abc/%d", i))
	}

	assert.Equal(t, series, testutil.CollectAndCount(httpRequests))
	assert.Equal(t, before+20, testutil.ToFloat64(httpRequests.WithLabelValues("GET", unmatchedPath, "404")))
	assert.Equal(t, beforeOther+20, testutil.ToFloat64(httpRequests.WithLabelValues("OTHER", unmatchedPath, "404")))
}

func TestRecordTransaction(t *testing.T) {
	before := testutil.ToFloat64(transactionsRecorded.WithLabelValues("unknown"))

	RecordTransaction("")

	assert.Equal(t, before+1, testutil.ToFloat64(transactionsRecorded.WithLabelValues("unknown")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	RecordSnapshotSync(0, true)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "metrics_api_snapshot_sync_runs_total")
}
