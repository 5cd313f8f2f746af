package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/teamspace-dev/teamspace-api/internal/constants"
	apierrors "github.com/teamspace-dev/teamspace-api/internal/errors"
)

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)

		if userID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store identity in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		if isGuest, ok := session.Get(constants.ContextKeyIsGuest).(bool); ok {
			c.Set(constants.ContextKeyIsGuest, isGuest)
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetIsGuest reports whether the current user holds the guest role
func GetIsGuest(c *gin.Context) bool {
	isGuest, exists := c.Get(constants.ContextKeyIsGuest)
	if !exists {
		return false
	}

	v, ok := isGuest.(bool)
	return ok && v
}
