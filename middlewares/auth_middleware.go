package middlewares

import (
	"net/http"
	"strings"

	"github.com/TaniaW777/zenfit/services"

	"github.com/gin-gonic/gin"
)

// AuthRequired rejects any request that does not carry a verifiable
// `Authorization: Bearer <token>` header. It runs before every
// protected handler; nothing downstream touches the database without a
// resolved user id in the context.
func AuthRequired(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, ok := tokens.Verify(tokenString)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
