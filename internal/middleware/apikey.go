package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// ActorKey is the context key under which the key-gate middlewares store the
// resolved role for audit attribution.
const ActorKey = "actor"

const (
	apiKeyHeader = "X-Api-Key"
	apiKeyQuery  = "adminApiKey"
)

type Authorizer interface {
	IsAdmin(key string) bool
	IsStaff(key string) bool
}

// APIKey extracts the shared secret from the request: the adminApiKey query
// parameter, or the X-Api-Key header.
func APIKey(c *ginext.Context) string {
	if key := c.Query(apiKeyQuery); key != "" {
		return key
	}
	return c.GetHeader(apiKeyHeader)
}

// RequireAdmin gates a route behind the admin secret.
func RequireAdmin(a Authorizer) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if !a.IsAdmin(APIKey(c)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or missing api key"},
			)
			return
		}

		c.Set(ActorKey, "admin")
		c.Next()
	}
}

// RequireManagement admits either the admin or the staff secret. The two are
// independent credentials; the resolved role is recorded for the audit trail.
func RequireManagement(a Authorizer) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		key := APIKey(c)

		switch {
		case a.IsAdmin(key):
			c.Set(ActorKey, "admin")
		case a.IsStaff(key):
			c.Set(ActorKey, "staff")
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or missing api key"},
			)
			return
		}

		c.Next()
	}
}
