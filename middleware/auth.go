package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"fixdesk/config"
	"fixdesk/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token, rejects revoked tokens and
// attaches the user ID to the request context. Token issuance lives in the
// hosting platform; this service only verifies.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		user, err := utils.ExtractUserFromToken(tokenString)
		if err != nil || user.UserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		// Revoked tokens are recorded in the auth cache by the platform's
		// sign-out flow. Without Redis there is no revocation list to check.
		if config.AppConfig.RedisAddr != "" {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			revoked, err := utils.GetAuthCacheClient().Exists(ctx, utils.AuthCachePrefix+utils.HashToken(tokenString)).Result()
			if err == nil && revoked > 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
				return
			}
		}

		c.Set("userID", user.UserID)
		c.Set("sessionUser", user)
		c.Next()
	}
}
