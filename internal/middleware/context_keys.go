package middleware

import "github.com/gin-gonic/gin"

// authUserIDKey is the key used to store the authenticated identity-provider
// subject in the request context. Using a custom type prevents collisions.
const authUserIDKey = contextKey("authUserID")

// GetAuthUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetAuthUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(authUserIDKey)
	if userIDVal == nil {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		// This should not happen if the auth middleware sets it correctly
		return "", false
	}

	return userID, true
}
