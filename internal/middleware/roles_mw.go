package middleware

import (
	"log"
	"net/http"

	"dochouse/internal/model"
	"dochouse/internal/repository"

	"github.com/gin-gonic/gin"
)

// RequireRole creates a middleware enforcing that the caller's CURRENT
// stored role is one of allowedRoles. The role embedded in the token is
// never consulted: roles can change after a token is issued, so the
// guard re-fetches the record by the claims email on every call. Must
// be composed after JWTAuthMiddleware.
func RequireRole(userRepo repository.UserRepository, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No verified identity, ensure JWT middleware runs first"})
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			log.Printf("Error looking up user %s for role check: %v", claims.Email, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify permissions"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			return
		}

		isAllowed := false
		for _, allowedRole := range allowedRoles {
			if user.Role == allowedRole {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			return
		}

		c.Next()
	}
}

// RequireAdmin enforces the admin role
func RequireAdmin(userRepo repository.UserRepository) gin.HandlerFunc {
	return RequireRole(userRepo, model.RoleAdmin)
}
