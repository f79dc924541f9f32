package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"linetrack.dev/internal/logging"
)

const requestIDHeader = "X-Request-ID"

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// NewRequestLoggingMiddleware creates middleware that logs HTTP requests.
// Each request gets an id, taken from X-Request-ID when the client sent one,
// that is echoed back and attached to the request-scoped logger.
func NewRequestLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, requestID)

			reqLogger := logger.With(slog.String("request_id", requestID))
			r = r.WithContext(logging.WithLogger(r.Context(), reqLogger))

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			logging.LogHTTPRequest(reqLogger,
				r.Method,
				r.URL.Path, // Path without query parameters
				wrapped.statusCode,
				float64(time.Since(start).Nanoseconds())/1e6,
				slog.String("user_agent", r.Header.Get("User-Agent")),
				logging.Component("http_server"))
		})
	}
}
