package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden if the context user is not admin.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly guards a handler with RequireAdmin. It must run after Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch err := RequireAdmin(r.Context()); err {
		case nil:
			next.ServeHTTP(w, r)
		case domain.ErrUnauthorized:
			writeError(w, http.StatusUnauthorized, "bearer token required")
		default:
			writeError(w, http.StatusForbidden, "admin access required")
		}
	})
}
