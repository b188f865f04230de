package middleware

import (
	"net/http"

	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/handler/http/response"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
)

func requireClaims(allowed func(jwt.Claims) bool, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := jwt.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid token")
				return
			}

			if !allowed(claims) {
				response.Forbidden(w, message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isAdmin(c jwt.Claims) bool {
	return c.Role == string(worker.RoleAdmin)
}

func isWorker(c jwt.Claims) bool {
	return c.Role == string(worker.RoleWorker)
}

func isManager(c jwt.Claims) bool {
	return worker.IsManagerClaim(c.Role, c.Position)
}

// RequireAdmin requires the station admin role
var RequireAdmin = requireClaims(isAdmin, "Admin access required")

// RequireWorker requires a shift worker account
var RequireWorker = requireClaims(isWorker, "Worker access required")

// RequireManagerPosition requires a worker whose position is manager
var RequireManagerPosition = requireClaims(isManager, "Manager access required")

// RequireAdminOrManager lets the admin read what managers record
var RequireAdminOrManager = requireClaims(func(c jwt.Claims) bool {
	return isAdmin(c) || isManager(c)
}, "Admin or manager access required")
