package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Bamimore2000/borokini/config"
	"github.com/Bamimore2000/borokini/pkg/auth"
	"github.com/Bamimore2000/borokini/pkg/logger"
	"github.com/Bamimore2000/borokini/pkg/response"
)

type claimsKey struct{}

// ClaimsFromCtx returns the JWT claims stored by AuthMiddleware, if any.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

// AuthMiddleware requires a valid bearer token and stores its claims in the
// request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.Replace(r.Header.Get("Authorization"), "Bearer ", "", 1)

		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminGate checks that the authenticated operator has the admin role.
//
// The storefront this backend replaces only logged non-admin access without
// blocking it. That behaviour is kept as the default ("soft"); setting
// ADMIN_GATE=strict rejects non-admins with a 403 instead.
func AdminGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromCtx(r.Context())
		if ok && claims.Role == "admin" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.WithCtx(r.Context())
		if config.AdminGate() == "strict" {
			log.Warn("admin gate: non-admin access blocked",
				"path", r.URL.Path,
				"role", roleOf(claims),
			)
			response.Forbidden(w)
			return
		}

		log.Warn("admin gate: non-admin access allowed (soft gate)",
			"path", r.URL.Path,
			"role", roleOf(claims),
		)
		next.ServeHTTP(w, r)
	})
}

func roleOf(c *auth.Claims) string {
	if c == nil {
		return ""
	}
	return c.Role
}
