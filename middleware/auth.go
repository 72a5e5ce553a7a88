// auth.go - Bearer-token authentication and role gating
//
// The original storefront parsed the Authorization header ad hoc inside
// every controller. Here that lives in exactly one place: AuthMiddleware
// resolves the token to a user id in the request context, RequireRole
// layers a role-membership check on top. Both fail closed.

package middleware

import (
	"net/http"
	"strings"

	"go-shop-backend/config"
	"go-shop-backend/database"
	"go-shop-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "user_id"

// AuthMiddleware validates the "Authorization: Bearer <token>" header and
// stores the authenticated user id in the gin context. Missing, malformed
// or expired tokens all produce a uniform 401.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		// JWT numbers decode as float64.
		id, ok := claims[userIDKey].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userIDKey, uint(id))
		c.Next()
	}
}

// RequireRole allows the request through only when the authenticated user
// holds the named role. Must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		var user models.User
		if err := database.DB.Preload("Roles").First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		if !user.HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": role + " access required"})
			return
		}

		c.Next()
	}
}

// UserID returns the authenticated user id stored by AuthMiddleware.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
