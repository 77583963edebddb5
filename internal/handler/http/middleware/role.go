package middleware

import (
	"net/http"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/user"
	"github.com/tuankiet2005-art/CSW303-Project/internal/handler/http/response"
)

// RequireManager requires manager role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := RoleFromContext(r)
		if !ok || role != string(user.RoleManager) {
			response.Forbidden(w, "Manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// IsManager reports whether the caller holds the manager role.
func IsManager(r *http.Request) bool {
	role, ok := RoleFromContext(r)
	return ok && role == string(user.RoleManager)
}
