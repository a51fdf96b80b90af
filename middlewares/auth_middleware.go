package middlewares

import (
	"context"
	"net/http"
	"strings"

	"medimeal/config"
	"medimeal/models"
	"medimeal/utils"

	"github.com/gin-gonic/gin"
)

const userKey = "currentUser"

// UserFinder resolves token claims to a user record.
type UserFinder interface {
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthMiddleware is stage one of the gate: bearer token → valid signature and
// expiry → live, non-deactivated user. Anything short of that stops the
// request with 401.
func AuthMiddleware(cfg *config.Config, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenString, cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := users.FindUserByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil || !user.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found or deactivated"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRoles is stage two: an explicit allow-list per route group. admin
// covers every role (models.Role.Covers), so it is never listed separately.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		for _, role := range roles {
			if user.Role.Covers(role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not authorized for this resource"})
	}
}

// CurrentUser returns the authenticated user set by AuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
