package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"timegrid.app/scheduler/common/logger"
)

const userIDHeader = "X-User-ID"

const userIDKey = "userID"

// RequireUser resolves the acting user from the X-User-ID header. Identity
// verification happens upstream at the gateway; this only binds the id to the
// request so every store call below is user-scoped.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(userIDHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + userIDHeader + " header"})
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid " + userIDHeader + " header"})
			return
		}

		c.Set(userIDKey, userID)

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			UserID: logger.Ptr(userID),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// UserID returns the id bound by RequireUser. Zero means the middleware did
// not run, which is a routing bug.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
