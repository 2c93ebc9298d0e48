package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/ColdCodePlay/FoodFusion/entity"
)

// CurrentUserID reads the identity set by the auth middlewares. Routes that
// allow anonymous access fall back to the shared guest identity.
func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get("userId"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return entity.GuestUserID
}
