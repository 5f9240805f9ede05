package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsIndependentRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	m1 := NewMetrics()
	m2 := NewMetrics()

	m1.RequestsTotal.WithLabelValues("/health", "200").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(m1.RequestsTotal.WithLabelValues("/health", "200")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m2.RequestsTotal.WithLabelValues("/health", "200")))
}

func TestObserveUpstream(t *testing.T) {
	m := NewMetrics()

	m.ObserveUpstream(OutcomeSuccess, 1.5)
	m.ObserveUpstream(OutcomeError, 0.2)
	m.ObserveUpstream(OutcomeError, 0.3)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.UpstreamRequests.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.UpstreamRequests.WithLabelValues(OutcomeError)))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.UpstreamRequests.WithLabelValues(OutcomeTimeout)))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveUpstream(OutcomeSuccess, 1) })
}

func TestHandler(t *testing.T) {
	m := NewMetrics()
	m.RequestsTotal.WithLabelValues("/api/generate", "200").Inc()
	m.ErrorsTotal.WithLabelValues("server_error").Inc()

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	for _, metric := range []string{
		"promptgate_http_requests_total",
		"promptgate_errors_total",
		"promptgate_upstream_requests_total",
		"go_goroutines",
	} {
		assert.Contains(t, string(body), metric, "response should contain metric '%s'", metric)
	}
}
