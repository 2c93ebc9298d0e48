package middlewares

import (
	"net/http"

	"github.com/ColdCodePlay/FoodFusion/utils"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware checks the JWT from either the query string or the
// Authorization header; browsers cannot set headers on WebSocket dials, so
// the token usually arrives as ?token=.
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			tokenStr = bearerToken(c)
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token"})
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil || claims.UserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			return
		}

		c.Set("userId", claims.UserID)
		c.Next()
	}
}
