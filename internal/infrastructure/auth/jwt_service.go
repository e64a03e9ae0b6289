package auth

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

var ErrTokenInvalido = errors.New("token invalido ou expirado")

// JWTService issues the HS256 token pair used by the API.
//
// Access and refresh tokens are signed with separate secrets (JWT_SECRET and
// JWT_REFRESH_SECRET) so a leaked refresh secret cannot mint access tokens.
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
}

var _ interfaces.ITokenService = (*JWTService)(nil)

func NewJWTService() *JWTService {
	access := os.Getenv("JWT_SECRET")
	refresh := os.Getenv("JWT_REFRESH_SECRET")
	if access == "" {
		access = "dev-secret"
		log.Printf("[auth][jwt] JWT_SECRET not set, using insecure dev default")
	}
	if refresh == "" {
		refresh = access + "-refresh"
	}
	return &JWTService{accessSecret: []byte(access), refreshSecret: []byte(refresh)}
}

func (s *JWTService) GenerateAccessToken(u entities.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  u.Role,
		"type":  "access",
		"iat":   now.Unix(),
		"exp":   now.Add(accessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
}

func (s *JWTService) GenerateRefreshToken(u entities.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"type": "refresh",
		"iat":  now.Unix(),
		"exp":  now.Add(refreshTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.refreshSecret)
}

func (s *JWTService) ParseAccessToken(token string) (interfaces.AuthClaims, error) {
	claims, err := s.parse(token, s.accessSecret, "access")
	if err != nil {
		return interfaces.AuthClaims{}, err
	}
	out := interfaces.AuthClaims{}
	out.Sub, _ = claims["sub"].(string)
	out.Email, _ = claims["email"].(string)
	out.Role, _ = claims["role"].(string)
	if out.Sub == "" {
		return interfaces.AuthClaims{}, ErrTokenInvalido
	}
	return out, nil
}

func (s *JWTService) ParseRefreshToken(token string) (string, error) {
	claims, err := s.parse(token, s.refreshSecret, "refresh")
	if err != nil {
		return "", err
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrTokenInvalido
	}
	return sub, nil
}

func (s *JWTService) parse(raw string, secret []byte, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalido
	}
	if typ, _ := claims["type"].(string); typ != wantType {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}
