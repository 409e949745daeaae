package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
)

// RequireRole returns a gin middleware that rejects requests unless the
// authenticated account holds the given role. It must run after Auth.
// The role is read from the user record rather than the token, so a
// demotion takes effect on the next request instead of at token expiry.
func RequireRole(users domain.UserRepository, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(GetAuthUserID(c), 10, 64)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := users.GetByID(c.Request.Context(), uint(id))
		if err != nil || user == nil || user.Role != role {
			abortForbidden(c)
			return
		}

		c.Next()
	}
}

func abortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"code":    http.StatusForbidden,
		"message": "forbidden",
		"data":    nil,
	})
}
