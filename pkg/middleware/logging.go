package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fluxweave-api/pkg/apiErrors"
	"github.com/vfg2006/fluxweave-api/pkg/log"
)

// CorrelationIDHeader propaga o ID de correlação entre cliente e servidor
const CorrelationIDHeader = "X-Correlation-ID"

// Acima deste tempo a requisição é marcada como lenta
const slowRequestThreshold = 30 * time.Second

// LoggingMiddleware abre o contexto de log da requisição e registra o desfecho.
// Handlers e casos de uso herdam o correlation_id via log.ForContext.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(CorrelationIDHeader))
			ctx = log.ContextWithFields(ctx, log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			log.ForContext(ctx).Debug("Requisição recebida")

			next.ServeHTTP(recorder, r)

			elapsed := time.Since(start)
			entry := log.ForContext(ctx).WithFields(log.Fields{
				"status_code": recorder.status,
				"duration_ms": elapsed.Milliseconds(),
			})
			if elapsed > slowRequestThreshold {
				entry = entry.WithField("slow", true)
			}

			entry.Log(levelForStatus(recorder.status), "Requisição finalizada")
		})
	}
}

func levelForStatus(status int) logrus.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return logrus.ErrorLevel
	case status >= http.StatusBadRequest:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
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

// LogPanicMiddleware converte um panic do handler em 500 padronizado
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					entry := log.ForContext(r.Context()).WithField("panic_error", recovered)
					if !log.IsDevelopment() {
						entry = entry.WithField("stack_trace", string(debug.Stack()))
					}
					entry.Error("Erro não tratado na aplicação")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
