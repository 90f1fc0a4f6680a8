package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"unijobs_backend/internal/auth"
	"unijobs_backend/internal/models"
	"unijobs_backend/pkg/contextkeys"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(contextkeys.GinUserIDKey, claims.UserID)
		c.Set(contextkeys.GinUserTypeKey, claims.UserType)
		c.Next()
	}
}

// RequireUserType - middleware ограничения по типу аккаунта
func RequireUserType(required models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		typeVal, exists := c.Get(contextkeys.GinUserTypeKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no user type"})
			return
		}

		userType, ok := typeVal.(models.UserType)
		if !ok {
			typeStr, isString := typeVal.(string)
			if !isString {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid user type"})
				return
			}
			userType = models.UserType(typeStr)
		}

		if userType != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}
