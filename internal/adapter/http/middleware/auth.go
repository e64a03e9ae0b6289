package middleware

import (
	"net/http"
	"strings"

	"sapataria_xpto/internal/usecase/interfaces"
	"sapataria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// ClaimsContextKey is where RequireAuth stores the decoded claims in the gin
// context.
const ClaimsContextKey = "authClaims"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// RequireAuth validates the Authorization bearer token and stores the decoded
// claims in the gin context for downstream handlers.
func RequireAuth(tokens interfaces.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		claims, err := tokens.ParseAccessToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the authenticated caller's claims, set by RequireAuth.
func ClaimsFrom(c *gin.Context) (interfaces.AuthClaims, bool) {
	v, ok := c.Get(ClaimsContextKey)
	if !ok {
		return interfaces.AuthClaims{}, false
	}
	claims, ok := v.(interfaces.AuthClaims)
	return claims, ok
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
