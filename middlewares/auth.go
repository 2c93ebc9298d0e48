package middlewares

import (
	"net/http"
	"strings"

	"github.com/ColdCodePlay/FoodFusion/entity"
	"github.com/ColdCodePlay/FoodFusion/utils"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

// AuthMiddleware rejects requests without a valid token and stores the user
// id in the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil || claims.UserID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Next()
	}
}

// IdentityMiddleware resolves the caller to a user id without requiring a
// token: a valid bearer token yields the real identity, anything else the
// guest sentinel. Cart routes run under this.
func IdentityMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := entity.GuestUserID
		if tokenStr := bearerToken(c); tokenStr != "" {
			if claims, err := utils.ParseToken(tokenStr, secret); err == nil && claims.UserID != "" {
				userID = claims.UserID
			}
		}
		c.Set("userId", userID)
		c.Next()
	}
}
