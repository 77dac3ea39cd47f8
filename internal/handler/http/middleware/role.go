package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

// RequireRole allows only the listed roles through.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	allowed := make(map[user.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok || !allowed[user.Role(roleStr)] {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin allows SUPER_ADMIN and HR.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(user.RoleSuperAdmin, user.RoleHR)(next)
}

// RequireReviewer allows the roles that may decide leave requests.
func RequireReviewer(next http.Handler) http.Handler {
	return RequireRole(user.RoleSuperAdmin, user.RoleHR, user.RoleManager)(next)
}
