package interfaces

import "sapataria_xpto/internal/domain/entities"

// AuthClaims is the decoded identity carried by a bearer token.
type AuthClaims struct {
	Sub   string
	Email string
	Role  string
}

// ITokenService issues and validates the JWT pair used by the API.
//
// Access tokens carry sub/email/role; refresh tokens carry only sub and are
// signed with a separate secret.

type ITokenService interface {
	GenerateAccessToken(u entities.User) (string, error)
	GenerateRefreshToken(u entities.User) (string, error)
	ParseAccessToken(token string) (AuthClaims, error)
	ParseRefreshToken(token string) (sub string, err error)
}
