package handlers

import (
	"errors"
	"log"
	"net/http"

	request "sapataria_xpto/internal/adapter/http/dto/request"
	response "sapataria_xpto/internal/adapter/http/dto/response"
	"sapataria_xpto/internal/adapter/http/middleware"
	"sapataria_xpto/internal/domain/workflow"
	"sapataria_xpto/internal/usecase"
	"sapataria_xpto/internal/usecase/interfaces"
	"sapataria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPedidoPayload = pkg.NewDomainErrorSimple("INVALID_PEDIDO_INPUT", "Invalid pedido payload", http.StatusBadRequest)
)

// PedidoHandler handles HTTP requests for orders, including the kanban and
// legacy board views and the role-gated status transition.

type PedidoHandler struct {
	usecase usecase.IPedidoUseCase
}

func NewPedidoHandler(uc usecase.IPedidoUseCase) *PedidoHandler {
	return &PedidoHandler{usecase: uc}
}

// CreatePedido godoc
// @Summary  Create an order
// @Tags     pedidos
// @Accept   json
// @Produce  json
// @Param    pedido body request.PedidoRequest true "Order payload"
// @Success  201 {object} entities.Pedido
// @Security Bearer
// @Router   /pedidos [post]
func (h *PedidoHandler) CreatePedido(c *gin.Context) {
	var payload request.PedidoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetPedido godoc
// @Summary  Fetch one order
// @Tags     pedidos
// @Produce  json
// @Param    id path string true "Order id"
// @Success  200 {object} entities.Pedido
// @Security Bearer
// @Router   /pedidos/{id} [get]
func (h *PedidoHandler) GetPedido(c *gin.Context) {
	pedido, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, pedido)
}

// ListPedidos godoc
// @Summary  List all orders (raw)
// @Tags     pedidos
// @Produce  json
// @Success  200 {array} entities.Pedido
// @Security Bearer
// @Router   /pedidos [get]
func (h *PedidoHandler) ListPedidos(c *gin.Context) {
	pedidos, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

// ListKanban godoc
// @Summary  List orders grouped in kanban columns for the caller's role
// @Tags     pedidos
// @Produce  json
// @Success  200 {object} response.KanbanResponse
// @Security Bearer
// @Router   /pedidos/kanban/status [get]
func (h *PedidoHandler) ListKanban(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	colunas, err := h.usecase.ListKanban(c.Request.Context(), claims.Role)
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromColunas(colunas))
}

// ListAtribuidos returns the legacy assigned-orders view for the caller.
func (h *PedidoHandler) ListAtribuidos(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	pedidos, err := h.usecase.ListAtribuidos(c.Request.Context(), claims.Role, claims.Sub)
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

// UpdatePedido godoc
// @Summary  Partially update an order (allow-listed fields)
// @Tags     pedidos
// @Accept   json
// @Produce  json
// @Param    id path string true "Order id"
// @Success  200 {object} entities.Pedido
// @Security Bearer
// @Router   /pedidos/{id} [patch]
func (h *PedidoHandler) UpdatePedido(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	claims, _ := middleware.ClaimsFrom(c)
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), fields, claims.Role, actorFrom(claims))
	if err != nil {
		var dfe *usecase.DisallowedFieldsError
		if errors.As(err, &dfe) {
			appErr := pkg.NewDomainErrorSimple("DISALLOWED_FIELDS", "Update contains fields that cannot be changed", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.WithDetails(dfe.Fields))
			return
		}
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateStatus godoc
// @Summary  Move an order to a new workflow status
// @Tags     pedidos
// @Accept   json
// @Produce  json
// @Param    id path string true "Order id"
// @Param    status body request.StatusUpdateRequest true "Target status"
// @Success  200 {object} entities.Pedido
// @Security Bearer
// @Router   /pedidos/{id}/status [patch]
func (h *PedidoHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	claims, _ := middleware.ClaimsFrom(c)
	log.Printf("[pedido][handler] status change pedido_id=%s target=%q role=%s", c.Param("id"), payload.Status, claims.Role)
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status, claims.Role, actorFrom(claims))
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePedido godoc
// @Summary  Delete an order
// @Tags     pedidos
// @Param    id path string true "Order id"
// @Success  204
// @Security Bearer
// @Router   /pedidos/{id} [delete]
func (h *PedidoHandler) DeletePedido(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func actorFrom(claims interfaces.AuthClaims) workflow.Actor {
	return workflow.Actor{ID: claims.Sub, Nome: claims.Email}
}

func mapPedidoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPedidoID),
		errors.Is(err, usecase.ErrClienteObrigatorio),
		errors.Is(err, usecase.ErrModeloObrigatorio),
		errors.Is(err, usecase.ErrServicosObrigatorios),
		errors.Is(err, usecase.ErrServicoInvalido),
		errors.Is(err, usecase.ErrStatusObrigatorio),
		errors.Is(err, usecase.ErrNenhumCampo):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransicaoNaoPermitida):
		return pkg.NewDomainErrorSimple("TRANSITION_NOT_ALLOWED", "Role cannot move the order to this status", http.StatusForbidden)
	case errors.Is(err, workflow.ErrRoleDesconhecida):
		return pkg.NewDomainErrorSimple("UNKNOWN_ROLE", "Role has no access to this view", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
