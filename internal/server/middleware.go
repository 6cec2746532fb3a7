package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/gitdash/internal/logging"
)

// RequestIDHeader carries the request id to and from clients
const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger tags each request with an id and logs it once it completes
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		// Everything logged while serving the request carries its id
		ctx := logging.WithContext(r.Context(), "request_id", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		logging.FromContext(ctx).Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"repo", r.URL.Query().Get("repo"),
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
