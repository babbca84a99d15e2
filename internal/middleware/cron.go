package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
)

// CronAuth guards maintenance endpoints with a shared-secret bearer
// token, exact string match
func CronAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			common.ErrorResponse(c, 503, "Cron endpoints disabled", nil)
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" ||
			subtle.ConstantTimeCompare([]byte(parts[1]), []byte(secret)) != 1 {
			common.ErrorResponse(c, 401, "Invalid cron secret", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
