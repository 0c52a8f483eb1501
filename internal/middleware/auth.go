package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/kevaluacion/project-management-api/internal/errors"
	"github.com/kevaluacion/project-management-api/internal/utils"
)

const contextKeyIdentity = "identity"

// Identity is the authenticated subject resolved from a validated token.
// It is threaded explicitly into service calls, never read from ambient state.
type Identity struct {
	Email string
	Role  string
}

// Authenticate resolves a bearer token into an Identity when one is present
// and valid, and attaches it to the request context. Requests without a
// usable token proceed anonymously; operations that need an identity reject
// them later via RequireAuth.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			// Expired, malformed or tampered tokens are treated as absent.
			c.Next()
			return
		}

		c.Set(contextKeyIdentity, Identity{
			Email: claims.Subject,
			Role:  claims.Role,
		})
		c.Next()
	}
}

// RequireAuth rejects requests that reached an identity-gated operation
// without an authenticated identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetIdentity(c); !ok {
			apierrors.Unauthorized(c, "")
			return
		}
		c.Next()
	}
}

// GetIdentity retrieves the authenticated identity from the request context.
func GetIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(contextKeyIdentity)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
