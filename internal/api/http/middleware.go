package http

import (
	"net/http"
	"time"

	"biblioteca-backend/internal/logger"

	"github.com/google/uuid"
)

// RequestLogger tags every request with a generated id and logs method, path,
// and duration at debug level.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		logger.WithRequest(requestID).Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
