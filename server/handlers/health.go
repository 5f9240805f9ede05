package handlers

import (
	"net/http"

	"github.com/teilomillet/promptgate/server/middleware"
	"go.uber.org/zap"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health answers liveness probes. It never touches the upstream provider.
func Health(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"}, middleware.GetRequestID(r.Context()), logger)
	}
}
