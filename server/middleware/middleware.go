package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
)

// timerWriter stamps X-Response-Time just before the header is sent.
type timerWriter struct {
	http.ResponseWriter
	start       time.Time
	wroteHeader bool
}

func (tw *timerWriter) stamp() {
	if !tw.wroteHeader {
		tw.wroteHeader = true
		tw.Header().Set("X-Response-Time", time.Since(tw.start).String())
	}
}

func (tw *timerWriter) WriteHeader(code int) {
	tw.stamp()
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *timerWriter) Write(b []byte) (int, error) {
	tw.stamp()
	return tw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (tw *timerWriter) Unwrap() http.ResponseWriter {
	return tw.ResponseWriter
}

// RequestTimer measures request processing time and reports it in the
// X-Response-Time header.
func RequestTimer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &timerWriter{ResponseWriter: w, start: time.Now()}
		next.ServeHTTP(tw, r)
		tw.stamp()
	})
}

// CORS permits cross-origin requests from any origin. The service has no
// credentials or cookies so a wildcard origin is intended.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader, "X-Response-Time"},
		MaxAge:         300,
	})
}
