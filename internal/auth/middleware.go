package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

// Middleware provides JWT authentication middleware
type Middleware struct {
	tokens *TokenService
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(tokens *TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth validates bearer tokens and sets the caller identity on the
// request context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":     "Unauthorized",
				"message":    "Authorization denied",
				"statusCode": http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			// Tolerate a bare token for callers that skip the scheme
			tokenString = authHeader
		}

		claims, err := m.tokens.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":     "Unauthorized",
				"message":    "Invalid token",
				"statusCode": http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the request context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}
