package middleware

import (
	"net/http"
	"strings"

	"simple-sns/pkg/apperrors"
	"simple-sns/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the authenticated
// username in the request context. Services downstream never see the token.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": string(apperrors.KindInvalidToken)})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": string(apperrors.KindInvalidToken)})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": string(apperrors.KindInvalidToken)})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
