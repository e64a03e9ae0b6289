package handlers

import (
	"errors"
	"log"
	"net/http"

	request "sapataria_xpto/internal/adapter/http/dto/request"
	response "sapataria_xpto/internal/adapter/http/dto/response"
	"sapataria_xpto/internal/usecase"
	"sapataria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid auth payload", http.StatusBadRequest)
)

// AuthHandler handles register/login/refresh.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Register godoc
// @Summary  Register a user
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    user body request.RegisterRequest true "User payload"
// @Success  201 {object} response.UserResponse
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.Email, payload.Password, payload.Nome, payload.Role)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

// Login godoc
// @Summary  Exchange credentials for a token pair
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    credentials body request.LoginRequest true "Credentials"
// @Success  200 {object} response.TokenResponse
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	pair, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		log.Printf("[auth][handler] login failed email=%s err=%v", payload.Email, err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTokenPair(pair))
}

// Refresh godoc
// @Summary  Exchange a refresh token for a new access token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    token body request.RefreshRequest true "Refresh token"
// @Success  200 {object} response.RefreshResponse
// @Router   /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var payload request.RefreshRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	token, err := h.usecase.Refresh(c.Request.Context(), payload.RefreshToken)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.RefreshResponse{Token: token})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmailObrigatorio):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Email and password are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCredenciaisInvalidas):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrRefreshInvalido), errors.Is(err, usecase.ErrUsuarioNotFound):
		return pkg.NewDomainErrorSimple("INVALID_REFRESH_TOKEN", "Refresh token is invalid or expired", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUsuarioJaExiste):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "A user with this email already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
