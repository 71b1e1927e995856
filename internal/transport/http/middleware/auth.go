package httpmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

type ctxKey string

const (
	ctxKeyToken    ctxKey = "token"
	ctxKeyIdentity ctxKey = "identity"
	ctxKeyReqID    ctxKey = "req_id"
)

type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (domain.Identity, error)
}

// Auth требует Bearer access token и кладёт пользователя в контекст.
func Auth(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") || len(auth) <= 7 {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			token := strings.TrimSpace(auth[7:])

			id, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				slog.Error("httpmw.Auth.Resolve:", slog.Any("err", err))
				writeError(w, http.StatusServiceUnavailable, "identity lookup failed")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyToken, token)
			ctx = context.WithValue(ctx, ctxKeyIdentity, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func IdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(domain.Identity)
	return id, ok
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
