package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	HeaderAdminKey  = "X-Admin-Key"
	HeaderAdminUser = "X-Admin-User"

	ContextKeyAdminUser = "admin_user"

	// DefaultAdminUser is recorded as the editor when no X-Admin-User is sent.
	DefaultAdminUser = "admin"
)

// RequireAdmin returns middleware that compares the X-Admin-Key header
// against a bcrypt hash. An empty hash rejects every request.
func RequireAdmin(keyHash string) gin.HandlerFunc {
	hash := []byte(strings.TrimSpace(keyHash))
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAdminKey)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing admin key"},
			})
			return
		}
		if len(hash) == 0 || bcrypt.CompareHashAndPassword(hash, []byte(key)) != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "invalid admin key"},
			})
			return
		}

		user := strings.TrimSpace(c.GetHeader(HeaderAdminUser))
		if user == "" {
			user = DefaultAdminUser
		}
		c.Set(ContextKeyAdminUser, user)
		c.Next()
	}
}

// GetAdminUser returns the editor name set by RequireAdmin.
func GetAdminUser(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyAdminUser); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return DefaultAdminUser
}
