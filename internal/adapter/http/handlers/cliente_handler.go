package handlers

import (
	"errors"
	"net/http"

	request "sapataria_xpto/internal/adapter/http/dto/request"
	"sapataria_xpto/internal/usecase"
	"sapataria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClientePayload = pkg.NewDomainErrorSimple("INVALID_CLIENTE_INPUT", "Invalid cliente payload", http.StatusBadRequest)
)

// ClienteHandler handles HTTP requests for customers.

type ClienteHandler struct {
	usecase usecase.IClienteUseCase
}

func NewClienteHandler(uc usecase.IClienteUseCase) *ClienteHandler {
	return &ClienteHandler{usecase: uc}
}

// CreateCliente godoc
// @Summary  Register a customer
// @Tags     clientes
// @Accept   json
// @Produce  json
// @Param    cliente body request.ClienteRequest true "Customer payload"
// @Success  201 {object} entities.Cliente
// @Security Bearer
// @Router   /clientes [post]
func (h *ClienteHandler) CreateCliente(c *gin.Context) {
	var payload request.ClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ClienteHandler) GetCliente(c *gin.Context) {
	cliente, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) ListClientes(c *gin.Context) {
	clientes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) UpdateCliente(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ClienteHandler) DeleteCliente(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapClienteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClienteID),
		errors.Is(err, usecase.ErrNomeObrigatorio),
		errors.Is(err, usecase.ErrNenhumCampo):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
