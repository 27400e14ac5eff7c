package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/vfg2006/metrics-api/pkg/apiErrors"
	"github.com/vfg2006/metrics-api/pkg/log"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"

	slowRequestThreshold = 500 * time.Millisecond
)

// LoggingMiddleware gera o correlation id da requisição e registra a chegada e a
// conclusão com status, bytes e duração. Em desenvolvimento o filtro do pacote
// log reduz os campos aos essenciais.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			reqLogger := log.L.WithContext(ctx).WithFields(log.Fields{
				"owner_id": r.Header.Get(OwnerIDHeader),
				"method":   r.Method,
				"path":     r.URL.Path,
			})
			reqLogger.WithFields(log.Fields{
				"query":       r.URL.RawQuery,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.UserAgent(),
			}).Debug("Requisição recebida")

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			elapsed := time.Since(start)
			done := reqLogger.WithFields(log.Fields{
				"status_code":   sw.status,
				"duration_ms":   elapsed.Milliseconds(),
				"response_size": sw.written,
			})

			switch {
			case sw.status >= http.StatusInternalServerError:
				done.Error("Requisição concluída com erro")
			case sw.status >= http.StatusBadRequest:
				done.Warn("Requisição rejeitada")
			default:
				done.Info("Requisição concluída")
			}

			if elapsed > slowRequestThreshold {
				done.Warnf("Requisição lenta (%s)", elapsed.Round(time.Millisecond))
			}
		})
	}
}

// statusWriter guarda o status e o total de bytes escritos na resposta
type statusWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	sw.written += n
	return n, err
}

// LogPanicMiddleware converte um panic do handler em 500 com o stack no log
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				log.L.WithContext(r.Context()).WithFields(log.Fields{
					"error":       rec,
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(debug.Stack()),
				}).Error("Panic ao processar requisição")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
