package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "luyona.backend/internal/domain/errors"
	"luyona.backend/internal/domain/repositories"
)

// RequireAdmin gates the admin surface. The caller's email is re-read from
// the database on every request and checked against the allow-list, so a
// token minted before an account change cannot keep admin access.
func RequireAdmin(userRepo repositories.UserRepository, adminEmails []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"error": "User not found",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "internal server error",
			})
			return
		}

		for _, admin := range adminEmails {
			if user.Email == admin {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Admin access required",
		})
	}
}
