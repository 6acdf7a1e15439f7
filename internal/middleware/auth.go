package middleware

import (
	"net/http"
	"strings"

	"github.com/bosesayankolkata/dairyexpress/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "user_id"
	ContextUserType = "user_type"
)

// Authenticate validates the bearer token and stores the identity on the
// request context.
func Authenticate(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication credentials"})
			return
		}

		identity, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication credentials"})
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextUserType, identity.UserType)
		c.Next()
	}
}

// RequireUserType gates a route group to one user type.
func RequireUserType(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserType) != userType {
			message := "Admin access required"
			if userType == services.UserTypeDeliveryPerson {
				message = "Delivery person access required"
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}
		c.Next()
	}
}
