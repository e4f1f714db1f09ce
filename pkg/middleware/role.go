package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-backoffice-api/pkg/apiErrors"
)

// AdminChecker decide se o email da sessão pertence à allowlist
type AdminChecker interface {
	IsAdmin(email string) bool
}

// AdminOnly restringe a rota aos emails da allowlist de administradores.
// A allowlist é conferida a cada requisição para que uma remoção valha mesmo com token ativo.
func AdminOnly(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				writeNotAuthenticated(w)
				return
			}

			if !checker.IsAdmin(claims.UserEmail) {
				logrus.Warningf("Acesso negado para usuário ID=%s, Email=%s", claims.UserID, claims.UserEmail)
				apiErrors.WriteError(
					w,
					apiErrors.ErrInsufficientPrivilege,
					"Forbidden",
					"Você não tem permissão para acessar este recurso",
					"Peça a um administrador para incluir seu email na allowlist",
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
