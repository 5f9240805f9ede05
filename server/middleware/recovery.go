package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/teilomillet/promptgate/errors"
	"go.uber.org/zap"
)

// Recovery middleware recovers from panics, logs them and answers 500.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				requestID := GetRequestID(r.Context())
				logger.Error("Panic recovered",
					zap.Any("error", rec),
					zap.ByteString("stack", debug.Stack()),
					zap.String("request_id", requestID),
				)

				errors.WriteError(w, errors.NewInternalError(
					requestID,
					fmt.Errorf("internal server error: %v", rec),
				))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
