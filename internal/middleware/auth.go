package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gahette/judo-library/internal/failure"
	"github.com/gahette/judo-library/internal/httperr"
	"github.com/gahette/judo-library/internal/service"
)

// ClaimsKey is the gin context key under which verified claims are stored.
const ClaimsKey = "claims"

// Auth creates a Gin middleware that gates a route behind a bearer token.
// On success the token's claims are attached to the request context.
func Auth(tokens *service.TokenService, errs *httperr.Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errs.Write(c, failure.ErrNoToken)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			errs.Write(c, failure.ErrNoToken)
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			errs.Write(c, failure.ErrInvalidToken)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
