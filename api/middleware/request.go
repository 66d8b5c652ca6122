package middleware

import (
	"context"
	"net/http"
	"strconv"

	"cosmossdk.io/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Uchechukwu-Ekezie/mini-ajo/metrics"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID reuses the caller's request id or assigns a new one
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// RequestIDFromContext returns the id assigned by RequestID
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// CORS allows browser clients from any origin
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Logging logs each request and records its latency. It runs as router
// middleware so the route template is known.
func Logging(logger log.Logger, collector *metrics.Collector) mux.MiddlewareFunc {
	logger = logger.With("module", "api")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timer := metrics.NewTimer()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					path = tmpl
				}
			}

			elapsed := timer.ElapsedMs()
			if collector != nil {
				collector.RecordAPIRequest(r.Method, path, strconv.Itoa(sw.status), elapsed)
				if sw.status >= http.StatusBadRequest {
					collector.RecordAPIError(r.Method, path, http.StatusText(sw.status))
				}
			}

			logger.Debug("request",
				"method", r.Method,
				"path", path,
				"status", sw.status,
				"latency_ms", elapsed,
				"request_id", RequestIDFromContext(r.Context()),
			)
		})
	}
}
