package middleware

import (
	"context"
	"net/http"

	"github.com/andriawan/minibank-backend/internal/api/httpx"
	"github.com/andriawan/minibank-backend/internal/auth"
)

type adminKeyType struct{}

var adminCtxKey adminKeyType

// IsAdmin reports the caller identity established by AdminIdentity.
func IsAdmin(ctx context.Context) bool {
	v, _ := ctx.Value(adminCtxKey).(bool)
	return v
}

// AdminIdentity resolves the caller's identity from the X-Admin-Key header
// and stores it in the request context. It never rejects by itself; both
// admin-only routes (RequireAdmin) and admin-barred views (the service
// layer) read the flag.
func AdminIdentity(v *auth.AdminVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isAdmin := v.Verify(r.Header.Get("X-Admin-Key"))
			ctx := context.WithValue(r.Context(), adminCtxKey, isAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates the directory surface: only the shared admin
// credential may provision or manage accounts.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid admin key", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
