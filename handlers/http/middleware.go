package httpHandler

import (
	"net/http"
	"strings"

	"kanban-server/services"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// AuthRequired validates the bearer token and stores the caller's user id in
// the request context. Missing, malformed or expired tokens get a 401.
func AuthRequired(tokens services.TokenGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response{Success: false, Message: "missing or invalid access token"})
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response{Success: false, Message: "missing or invalid access token"})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// CallerID returns the authenticated user id placed by AuthRequired.
func CallerID(c *gin.Context) uint {
	return c.GetUint(userIDKey)
}
