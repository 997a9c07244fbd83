package middleware

import (
	"github.com/gin-gonic/gin"
	"juarapay/pkg/utils"
	"net/http"
	"strings"
)

func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)

		if err != nil || claims.UserID == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
