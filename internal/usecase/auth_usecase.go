package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCredenciaisInvalidas = errors.New("invalid credentials")
	ErrEmailObrigatorio     = errors.New("email and password are required")
	ErrUsuarioJaExiste      = errors.New("user already exists")
	ErrUsuarioNotFound      = errors.New("user not found")
	ErrRefreshInvalido      = errors.New("invalid refresh token")
)

// TokenPair is the login result.
type TokenPair struct {
	Token        string
	RefreshToken string
}

// IAuthUseCase covers register/login/refresh.

type IAuthUseCase interface {
	Register(ctx context.Context, email, password, nome, role string) (entities.User, error)
	Login(ctx context.Context, email, password string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
	tokens interfaces.ITokenService
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenService) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

func (u *AuthUseCase) Register(ctx context.Context, email, password, nome, role string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.User{}, ErrEmailObrigatorio
	}
	if role == "" {
		role = "funcionario"
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUsuarioJaExiste
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hash,
		Nome:     nome,
		Role:     strings.ToLower(role),
	}
	created, err := u.users.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	log.Printf("[auth][usecase] user registered id=%s role=%s", created.ID, created.Role)
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return TokenPair{}, ErrEmailObrigatorio
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return TokenPair{}, err
	}
	if user.ID == "" {
		return TokenPair{}, ErrCredenciaisInvalidas
	}
	if err := u.hasher.Compare(user.Password, password); err != nil {
		return TokenPair{}, ErrCredenciaisInvalidas
	}

	token, err := u.tokens.GenerateAccessToken(user)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := u.tokens.GenerateRefreshToken(user)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Token: token, RefreshToken: refresh}, nil
}

func (u *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return "", ErrRefreshInvalido
	}
	sub, err := u.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", ErrRefreshInvalido
	}
	user, err := u.users.GetByID(ctx, sub)
	if err != nil {
		return "", err
	}
	if user.ID == "" {
		return "", ErrUsuarioNotFound
	}
	return u.tokens.GenerateAccessToken(user)
}
