package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

const (
	authUserIDContextKey = "auth_user_id"
	bearerPrefix         = "Bearer "
)

// Auth returns a gin middleware that validates the Authorization bearer
// token and stores the authenticated user id in the gin context.
// publicPaths are exact request paths that bypass the check.
func Auth(jwtSvc jwt.Service, publicPaths []string) gin.HandlerFunc {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := public[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c)
			return
		}

		token, err := jwtSvc.ValidateAndParse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil || token == nil {
			abortUnauthorized(c)
			return
		}

		c.Set(authUserIDContextKey, token.UserID)
		c.Next()
	}
}

// GetAuthUserID extracts the authenticated user id from the gin.Context.
// Returns an empty string when the request is unauthenticated.
func GetAuthUserID(c *gin.Context) string {
	if v, exists := c.Get(authUserIDContextKey); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": "unauthorized",
		"data":    nil,
	})
}
