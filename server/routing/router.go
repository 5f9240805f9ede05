// Package routing wires the promptgate handlers and middleware into a chi
// router.
package routing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teilomillet/promptgate/errors"
	"github.com/teilomillet/promptgate/server/handlers"
	"github.com/teilomillet/promptgate/server/metrics"
	"github.com/teilomillet/promptgate/server/middleware"
	"go.uber.org/zap"
)

// Router is the root HTTP handler of the server.
type Router struct {
	router chi.Router
	logger *zap.Logger
}

// NewRouter creates the router serving:
//   - POST /api/generate: relay a prompt to the upstream client
//   - GET /health: liveness
//   - GET /metrics: Prometheus exposition
//
// Every route shares the global middleware stack, including open CORS.
func NewRouter(client handlers.Completer, m *metrics.Metrics, logger *zap.Logger) *Router {
	r := &Router{
		router: chi.NewRouter(),
		logger: logger,
	}

	// Add global middleware stack. Logging and metrics wrap Recovery so
	// recovered panics are still counted as 500s.
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RequestTimer)
	r.router.Use(middleware.Logging(logger))
	r.router.Use(middleware.PrometheusMetrics(m))
	r.router.Use(middleware.Recovery(logger))
	r.router.Use(middleware.CORS())

	r.router.NotFound(routeError("Not found", http.StatusNotFound))
	r.router.MethodNotAllowed(routeError("Method not allowed", http.StatusMethodNotAllowed))

	r.setupRoutes(client, m)

	return r
}

// routeError answers requests chi could not route, in the usual error shape.
func routeError(message string, code int) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		errors.WriteError(w, errors.NewError(
			errors.ValidationError,
			message,
			code,
			middleware.GetRequestID(req.Context()),
			nil,
		))
	}
}

func (r *Router) setupRoutes(client handlers.Completer, m *metrics.Metrics) {
	r.router.Method(http.MethodPost, "/api/generate", handlers.NewGenerateHandler(client, r.logger))
	r.router.Get("/health", handlers.Health(r.logger))
	RegisterMetricsRoutes(r.router, m)
}

// ServeHTTP implements the http.Handler interface.
// Delegates request handling to the underlying Chi router.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
