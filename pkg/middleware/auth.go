package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/authorizing"
	"github.com/mannersmaketh/ga-audit-v2/pkg/apiErrors"
	"github.com/pkg/errors"
)

type contextKey string

const (
	// ContextKeySession guarda a sessão de credenciais resolvida para a requisição
	ContextKeySession contextKey = "session"
)

// SessionMiddleware resolve o handle JWT apresentado pelo navegador para a
// sessão de credenciais correspondente. Rotas de autorização e o healthcheck
// não exigem sessão, já que existem justamente para criá-la.
func SessionMiddleware(authorizer authorizing.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthcheck" || strings.HasPrefix(r.URL.Path, "/v1/auth/") {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrSessionRequired, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrSessionRequired, "Token Bearer é obrigatório", nil)
				return
			}

			session, err := authorizer.SessionFromToken(tokenString)
			if err != nil {
				if errors.Is(err, authorizing.ErrReauthorizationRequired) {
					apiErrors.WriteError(w, apiErrors.ErrSessionExpired, "Sessão expirada, reautorize a conta", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidSession, "Sessão inválida", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext recupera a sessão resolvida pelo middleware
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(*domain.Session)
	return session, ok
}
