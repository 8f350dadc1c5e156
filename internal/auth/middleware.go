package auth

import (
	"github.com/gin-gonic/gin"
)

const sessionCookieName = "session_id"

const contextKeyUserID = "user_id"

// UserIDFromContext returns the current user ID set by OptionalSession. 0 if not set.
func UserIDFromContext(c *gin.Context) int64 {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// OptionalSession resolves the session cookie to a user id when present.
// No route is gated on it; an anonymous request simply carries user id 0.
func OptionalSession(sessions *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookieName)
		if err == nil && sessionID != "" {
			if userID, ok := sessions.GetUserID(c.Request.Context(), sessionID); ok {
				c.Set(contextKeyUserID, userID)
			}
		}
		c.Next()
	}
}
