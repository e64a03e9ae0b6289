package auth

import (
	"errors"
	"testing"

	"sapataria_xpto/internal/domain/entities"
)

func TestJWTService_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")
	svc := NewJWTService()

	user := entities.User{ID: "u-1", Email: "maria@example.com", Role: "admin"}

	t.Run("access token carries identity claims", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims, err := svc.ParseAccessToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Sub != "u-1" || claims.Email != "maria@example.com" || claims.Role != "admin" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	})

	t.Run("refresh token carries only the subject", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sub, err := svc.ParseRefreshToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub != "u-1" {
			t.Fatalf("unexpected sub %q", sub)
		}
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrTokenInvalido) {
			t.Fatalf("expected ErrTokenInvalido, got %v", err)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, err := svc.ParseAccessToken("not-a-jwt"); !errors.Is(err, ErrTokenInvalido) {
			t.Fatalf("expected ErrTokenInvalido, got %v", err)
		}
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		other := &JWTService{accessSecret: []byte("other"), refreshSecret: []byte("other-refresh")}
		if _, err := other.ParseAccessToken(token); !errors.Is(err, ErrTokenInvalido) {
			t.Fatalf("expected ErrTokenInvalido, got %v", err)
		}
	})
}
