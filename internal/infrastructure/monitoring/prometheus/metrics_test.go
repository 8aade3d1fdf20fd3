package prometheus

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservePrediction(t *testing.T) {
	m := New()

	m.ObservePrediction(PathModel, "possible", 50*time.Millisecond)
	m.ObservePrediction(PathModel, "possible", 70*time.Millisecond)
	m.ObservePrediction(PathFallback, "no effect", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PredictionsTotal.WithLabelValues(PathModel, "possible")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PredictionsTotal.WithLabelValues(PathFallback, "no effect")))
}

func TestObserveSourceAndCache(t *testing.T) {
	m := New()

	m.ObserveSource("cactus", "ok")
	m.ObserveSource("usda", "timeout")
	m.ObserveCache("hit")
	m.ObserveCache("hit")
	m.ObserveCache("miss")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SourceRequestsTotal.WithLabelValues("cactus", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SourceRequestsTotal.WithLabelValues("usda", "timeout")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheOpsTotal.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheOpsTotal.WithLabelValues("miss")))
}

func TestHandlerServesMetrics(t *testing.T) {
	m := New()
	m.HTTPRequestsTotal.WithLabelValues("GET", "/healthz", "200").Inc()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "dfi_http_requests_total")
}
