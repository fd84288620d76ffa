package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskify-app/taskify-api/internal/auth"
	"github.com/taskify-app/taskify-api/internal/dto"
)

// ContextUserIDKey is the gin context key holding the caller's user id.
const ContextUserIDKey = "userID"

// RequireAuth extracts and validates the bearer token and stores the
// resolved caller id in the request context. Missing, malformed, invalid and
// expired tokens are all rejected before any handler runs.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse("Authorization header required"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse("Invalid authorization header format"))
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse("Invalid or expired token"))
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse("Invalid or expired token"))
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint64)
	if !ok {
		return 0, false
	}

	return userID, true
}
