package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/metrics-api/pkg/apiErrors"
	"github.com/vfg2006/metrics-api/pkg/log"
)

const (
	OwnerIDHeader   = "X-Owner-ID"
	OwnerNameHeader = "X-Owner-Name"
)

type contextKey string

const (
	ownerIDKey   contextKey = "ownerID"
	ownerNameKey contextKey = "ownerName"
)

// publicPaths não exigem identificação do vendedor
var publicPaths = map[string]bool{
	"/healthcheck": true,
	"/metrics":     true,
}

// OwnerMiddleware identifica o vendedor pelo cabeçalho X-Owner-ID. Não há verificação de
// identidade, o cabeçalho apenas separa os dados de cada vendedor.
func OwnerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			ownerID := strings.TrimSpace(r.Header.Get(OwnerIDHeader))
			if ownerID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingOwner, "Cabeçalho X-Owner-ID é obrigatório", nil)
				return
			}

			ownerName := strings.TrimSpace(r.Header.Get(OwnerNameHeader))

			ctx := WithOwner(r.Context(), ownerID, ownerName)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithOwner guarda a identificação do vendedor no contexto, inclusive para os logs
func WithOwner(ctx context.Context, ownerID, ownerName string) context.Context {
	ctx = log.WithOwnerID(ctx, ownerID)
	ctx = context.WithValue(ctx, ownerIDKey, ownerID)
	return context.WithValue(ctx, ownerNameKey, ownerName)
}

func OwnerFromContext(ctx context.Context) string {
	ownerID, _ := ctx.Value(ownerIDKey).(string)
	return ownerID
}

func OwnerNameFromContext(ctx context.Context) string {
	ownerName, _ := ctx.Value(ownerNameKey).(string)
	return ownerName
}
