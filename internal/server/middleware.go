package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pratik30111991/chatgpt-automation-vps/internal/display"
)

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		display.LogRequest(r.Method, r.URL.Path, rec.status, time.Since(start), r.RemoteAddr)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin(r.Header.Get("Origin")))
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allowedOrigin echoes a configured origin back, or "*" when no
// origin list is configured.
func (s *Server) allowedOrigin(origin string) string {
	origins := s.svcCfg.Server.CORSOrigins
	if len(origins) == 0 {
		return "*"
	}
	for _, o := range origins {
		if o == origin || o == "*" {
			return o
		}
	}
	return origins[0]
}

func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverMiddleware turns a handler panic into an opaque 500. The panic
// value is logged server-side; the response never carries a stack trace.
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				display.ErrorMsg(fmt.Sprintf("panic serving %s %s: %v", r.Method, r.URL.Path, rec))
				writeError(w, http.StatusInternalServerError, "Server error", "internal failure")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
