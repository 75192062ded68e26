package delivery

import (
	"net/http"
	"strings"

	authdomain "contactbook-backend/internal/auth/domain"
	"contactbook-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards a route group with access-scoped bearer tokens.
// Why a token failed (signature, expiry, scope) is never revealed.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		user, err := authUsecase.CurrentUser(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authdomain.ErrUnauthenticated.Error()})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// CurrentUser pulls the authenticated user set by AuthMiddleware.
func CurrentUser(c *gin.Context) *authdomain.User {
	return c.MustGet("user").(*authdomain.User)
}
