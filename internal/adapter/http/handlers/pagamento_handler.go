package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	request "sapataria_xpto/internal/adapter/http/dto/request"
	response "sapataria_xpto/internal/adapter/http/dto/response"
	"sapataria_xpto/internal/usecase"
	"sapataria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// PagamentoHandler processes the order deposit (sinal) through the payment
// gateway.

type PagamentoHandler struct {
	usecase usecase.IPagamentoUseCase
}

func NewPagamentoHandler(uc usecase.IPagamentoUseCase) *PagamentoHandler {
	return &PagamentoHandler{usecase: uc}
}

// PagarSinal godoc
// @Summary  Charge the order deposit via the payment provider
// @Tags     pagamentos
// @Accept   json
// @Produce  json
// @Param    id path string true "Order id"
// @Param    sinal body request.SinalRequest true "Deposit value and provider payload"
// @Success  200 {object} response.SinalResponse
// @Security Bearer
// @Router   /pedidos/{id}/sinal [post]
func (h *PagamentoHandler) PagarSinal(c *gin.Context) {
	pedidoID := c.Param("id")
	log.Printf("[pagamento][handler] sinal start pedido_id=%s", pedidoID)

	var payload request.SinalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		// An empty body means "charge the recorded sinal with an empty
		// provider payload"; only malformed JSON is rejected.
		if !errors.Is(err, io.EOF) {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}
	if len(payload.MPPayload) == 0 {
		payload.MPPayload = json.RawMessage("{}")
	}

	result, err := h.usecase.PagarSinal(c.Request.Context(), pedidoID, payload.Valor, payload.MPPayload)
	if err != nil {
		log.Printf("[pagamento][handler] sinal failed pedido_id=%s err=%v", pedidoID, err)
		appErr := mapPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pagamento][handler] sinal success pedido_id=%s provider_payment_id=%s", pedidoID, result.ProviderPaymentID)

	c.JSON(http.StatusOK, response.FromSinalResult(result))
}

func mapPagamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPedidoID),
		errors.Is(err, usecase.ErrInvalidMPPayload),
		errors.Is(err, usecase.ErrValorSinalInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPagamentoRecusado):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment was not approved by the provider", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayIndisponivel):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
