package delivery

import (
	"net/http"

	"storefront-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is the gin context key holding the authenticated user id.
const ContextUserIDKey = "userID"

// AuthMiddleware verifies the raw token carried in the Authorization header
// (no "Bearer " prefix) and attaches the user id to the request context.
// Expired tokens are reported the same as invalid ones.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		userID, err := authUsecase.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
