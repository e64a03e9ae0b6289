package response

import (
	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/usecase"
)

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nome  string `json:"nome"`
	Role  string `json:"role"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Nome: u.Nome, Role: u.Role}
}

type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

func FromTokenPair(p usecase.TokenPair) TokenResponse {
	return TokenResponse{Token: p.Token, RefreshToken: p.RefreshToken}
}

type RefreshResponse struct {
	Token string `json:"token"`
}
