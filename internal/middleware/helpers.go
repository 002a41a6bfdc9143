// internal/middleware/helpers.go
package middleware

import (
	"github.com/gin-gonic/gin"

	domain "rxautos-service/internal/domain/account"
)

// MustGetUserID gets the user id from context or panics
func MustGetUserID(c *gin.Context) string {
	userID, exists := GetUserID(c)
	if !exists {
		panic("user_id not found in context")
	}
	return userID
}

// MustGetToken gets the session token from context or panics
func MustGetToken(c *gin.Context) string {
	token, exists := GetToken(c)
	if !exists {
		panic("token not found in context")
	}
	return token
}

// GetUser gets the resolved user from context
func GetUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := value.(*domain.User)
	return user, ok
}

// IsAuthenticated checks if request is authenticated
func IsAuthenticated(c *gin.Context) bool {
	_, exists := c.Get("user_id")
	return exists
}
