package server

import (
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"

	"github.com/Brownie44l1/webserver/internal/request"
	"github.com/Brownie44l1/webserver/internal/response"
)

// Middleware wraps a Handler
type Middleware func(next Handler) Handler

// RecoveryMiddleware recovers from handler panics. If nothing was written
// yet the client still gets the not-found page, so every request is
// answered.
func RecoveryMiddleware(logger zerolog.Logger, metrics *Metrics) Middleware {
	return func(next Handler) Handler {
		return func(w *response.Writer, req *request.Request) {
			defer func() {
				if err := recover(); err != nil {
					metrics.PanicsTotal.Add(1)
					logger.Error().
						Interface("error", err).
						Str("stack", string(debug.Stack())).
						Str("path", pathOf(req)).
						Msg("panic recovered")

					if !w.Written() {
						w.NotFound()
					}
				}
			}()

			next(w, req)
		}
	}
}

// LoggingMiddleware logs each request at debug level
func LoggingMiddleware(logger zerolog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(w *response.Writer, req *request.Request) {
			start := time.Now()

			next(w, req)

			logger.Debug().
				Str("method", methodOf(req)).
				Str("path", pathOf(req)).
				Stringer("outcome", w.Outcome()).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Bool("write_error", w.HadError()).
				Msg("request handled")
		}
	}
}

// MetricsMiddleware records request metrics
func MetricsMiddleware(metrics *Metrics) Middleware {
	return func(next Handler) Handler {
		return func(w *response.Writer, req *request.Request) {
			start := time.Now()

			next(w, req)

			metrics.RecordRequest(w.Outcome(), time.Since(start))
		}
	}
}

func methodOf(req *request.Request) string {
	if req == nil {
		return ""
	}
	return sanitizeValue(req.Method)
}

func pathOf(req *request.Request) string {
	if req == nil {
		return ""
	}
	return sanitizeValue(req.Path)
}
