package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel zapcore.Level
	}{
		{name: "success", status: http.StatusOK, body: `{"status":"ok"}`, wantLevel: zapcore.InfoLevel},
		{name: "client error", status: http.StatusBadRequest, body: `{"error":"Prompt is required"}`, wantLevel: zapcore.InfoLevel},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`, wantLevel: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			handler := RequestID(Logging(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/generate", nil))

			entries := logs.All()
			if assert.Len(t, entries, 1) {
				entry := entries[0]
				fields := entry.ContextMap()
				assert.Equal(t, tt.wantLevel, entry.Level)
				assert.Equal(t, "Request completed", entry.Message)
				assert.Equal(t, int64(tt.status), fields["status"])
				assert.Equal(t, int64(len(tt.body)), fields["size"])
				assert.Equal(t, "/api/generate", fields["path"])
				assert.Equal(t, rec.Header().Get(RequestIDHeader), fields["request_id"])
			}
		})
	}
}
