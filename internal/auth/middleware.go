package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIPasswordMiddleware guards API routes with a single shared password,
// checked against a configured bcrypt hash. Clients send the password as
// a bearer token:
//
//	Authorization: Bearer <password>
//
// With an empty hash the middleware is a no-op, which is the default for
// local single-user deployments.
func APIPasswordMiddleware(passwordHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if passwordHash == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		if err := CheckPassword(token, passwordHash); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		c.Next()
	}
}
