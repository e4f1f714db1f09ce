package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/vfg2006/meta-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/meta-backoffice-api/pkg/log"
)

// CorrelationIDHeader permite que o frontend propague o próprio ID de correlação
const CorrelationIDHeader = "X-Correlation-ID"

// slowRequestThreshold marca requisições lentas; chamadas ao Graph costumam dominar o tempo
const slowRequestThreshold = 2 * time.Second

// LoggingMiddleware abre o contexto de correlação e registra início e fim de cada requisição.
// Em desenvolvimento o próprio logger descarta os campos verbosos.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(CorrelationIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			logger.WithFields(log.Fields{
				"remote_addr":    r.RemoteAddr,
				"query":          r.URL.RawQuery,
				"user_agent":     r.UserAgent(),
				"content_length": r.ContentLength,
			}).Debug("→ Requisição iniciada")

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			startTime := time.Now()

			next.ServeHTTP(recorder, r)

			elapsed := time.Since(startTime)
			logger = logger.WithFields(log.Fields{
				"status_code": recorder.status,
				"duration_ms": elapsed.Milliseconds(),
			})

			message := fmt.Sprintf("%s %s em %s", statusSymbol(recorder.status), http.StatusText(recorder.status), formatDuration(elapsed))
			switch {
			case recorder.status >= http.StatusInternalServerError:
				logger.Error(message)
			case recorder.status >= http.StatusBadRequest:
				logger.Warn(message)
			default:
				logger.Info(message)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("⚠ Requisição lenta (%s)", formatDuration(elapsed))
			}
		})
	}
}

func statusSymbol(status int) string {
	if status >= http.StatusBadRequest {
		return "✗"
	}
	return "✓"
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder guarda o status escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware converte panics em 500 com o envelope de erro padrão
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					stack := make([]byte, 4096)
					stack = stack[:runtime.Stack(stack, false)]

					log.ForContext(r.Context()).WithFields(log.Fields{
						"panic_error": recovered,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(stack),
					}).Error("❌ Panic não tratado na aplicação")

					apiErrors.WriteError(
						w,
						apiErrors.ErrInternalServer,
						"Internal server error",
						"An unexpected error occurred",
						"Please try again later",
					)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
