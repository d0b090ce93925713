// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"strings"

	"gin-jobs/internal/authz"
	"gin-jobs/internal/models"
	"gin-jobs/pkg/auth"
	"gin-jobs/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UserIDKey = "userID"
	UserKey   = "user"
)

// UserLoader resolves an authenticated user ID into the full account.
type UserLoader interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// Auth returns a middleware that validates JWT tokens and loads the
// authenticated user into the request context.
func Auth(jwtManager auth.TokenManager, loader UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// Validate token
		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		// A valid token for a deleted account is still unauthorized.
		user, err := loader.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Unauthorized(c, "user no longer exists")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserKey, user)

		c.Next()
	}
}

// RequireRoles returns a middleware that restricts a route to the given
// roles. It must run after Auth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		if !authz.Authorize(user.Role, roles...) {
			response.Forbidden(c, "role "+user.Role+" is not allowed to access this resource")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	return userID.(string)
}

// GetUser retrieves the authenticated user from the context.
// Returns nil if not found.
func GetUser(c *gin.Context) *models.User {
	user, exists := c.Get(UserKey)
	if !exists {
		return nil
	}
	return user.(*models.User)
}
