package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/vfg2006/metrics-api/pkg/apiErrors"
	"github.com/vfg2006/metrics-api/pkg/log"
	"golang.org/x/time/rate"
)

// maxLimiters limita a quantidade de vendedores mantidos em memória antes da limpeza
const maxLimiters = 10000

// RateLimiter aplica um limite de requisições por vendedor
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}

	return limiter
}

// Handler usa o vendedor como chave e cai para o endereço remoto nas rotas públicas
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		if !rl.getLimiter(key).Allow() {
			log.L.WithFields(log.Fields{
				"correlation_id": log.GetCorrelationID(r.Context()),
				"owner_key":      key,
				"method":         r.Method,
				"path":           r.URL.Path,
			}).Warn("Limite de requisições excedido")

			w.Header().Set("Retry-After", "1")
			apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Limite de requisições excedido", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey identifica o vendedor ou, sem ele, o host remoto sem a porta, que muda a cada conexão
func clientKey(r *http.Request) string {
	if owner := OwnerFromContext(r.Context()); owner != "" {
		return "owner:" + owner
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// Cleanup descarta os limitadores quando o mapa cresce demais
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if len(rl.limiters) > maxLimiters {
		rl.limiters = make(map[string]*rate.Limiter)
	}
}

// StartCleanup executa Cleanup periodicamente até o contexto ser cancelado
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup()
			}
		}
	}()
}
