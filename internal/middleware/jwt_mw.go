package middleware

import (
	"net/http"
	"strings"

	"dochouse/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthClaimsKey holds the verified *utils.JWTClaims for the request.
// A request either carries verified claims under this key or is
// anonymous; handlers must go through CurrentClaims rather than
// probing loose context fields.
const AuthClaimsKey = "authClaims"

// JWTAuthMiddleware creates a middleware for JWT authentication.
// It performs no store access; verification is purely cryptographic.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		tokenString := parts[1]
		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(AuthClaimsKey, claims)

		c.Next()
	}
}

// CurrentClaims returns the verified claims attached by JWTAuthMiddleware,
// or false if the request is anonymous.
func CurrentClaims(c *gin.Context) (*utils.JWTClaims, bool) {
	val, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*utils.JWTClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}
