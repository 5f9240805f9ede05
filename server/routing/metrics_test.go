package routing

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/teilomillet/promptgate/server/metrics"
)

func TestRegisterMetricsRoutes(t *testing.T) {
	// Create new metrics instance for testing
	m := metrics.NewMetrics()

	r := chi.NewRouter()
	RegisterMetricsRoutes(r, m)

	// Create test server
	server := httptest.NewServer(r)
	defer server.Close()

	m.RequestsTotal.WithLabelValues("/api/generate", "200").Inc()
	m.ErrorsTotal.WithLabelValues("server_error").Inc()
	m.ObserveUpstream(metrics.OutcomeSuccess, 1.5)

	// Test metrics endpoint
	resp, err := http.Get(server.URL + "/metrics")
	assert.NoError(t, err)
	defer resp.Body.Close()

	// Check response code
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Check content type
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	bodyStr := string(body)
	expectedMetrics := []string{
		"promptgate_http_requests_total",
		"promptgate_errors_total",
		"promptgate_upstream_requests_total",
		"promptgate_upstream_request_duration_seconds",
		"go_goroutines",
	}
	for _, metric := range expectedMetrics {
		assert.Contains(t, bodyStr, metric)
	}
}
