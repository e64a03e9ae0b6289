package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidMPPayload    = errors.New("invalid mercado pago payload")
	ErrValorSinalInvalido  = errors.New("invalid sinal value")
	ErrPagamentoRecusado   = errors.New("payment was not approved")
	ErrGatewayIndisponivel = errors.New("payment gateway not configured")
)

// SinalResult is the outcome of a processed deposit payment.
type SinalResult struct {
	Pedido            entities.Pedido
	ProviderPaymentID string
	ProviderStatus    string
	ProviderResponse  json.RawMessage
}

// IPagamentoUseCase processes the deposit (sinal) of an order through the
// payment gateway and records the paid value on the pedido.

type IPagamentoUseCase interface {
	PagarSinal(ctx context.Context, pedidoID string, valor float64, mpPayload json.RawMessage) (SinalResult, error)
}

type PagamentoUseCase struct {
	pedidos interfaces.IPedidoRepository
	gateway interfaces.IPaymentGateway
}

var _ IPagamentoUseCase = (*PagamentoUseCase)(nil)

func NewPagamentoUseCase(pedidos interfaces.IPedidoRepository, gateway interfaces.IPaymentGateway) *PagamentoUseCase {
	return &PagamentoUseCase{pedidos: pedidos, gateway: gateway}
}

func (u *PagamentoUseCase) PagarSinal(ctx context.Context, pedidoID string, valor float64, mpPayload json.RawMessage) (SinalResult, error) {
	log.Printf("[pagamento][usecase] sinal start pedido_id=%q valor=%v payload_len=%d", pedidoID, valor, len(mpPayload))
	pedidoID = strings.TrimSpace(pedidoID)
	if pedidoID == "" {
		return SinalResult{}, ErrInvalidPedidoID
	}
	if len(mpPayload) > 0 && !json.Valid(mpPayload) {
		return SinalResult{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		return SinalResult{}, ErrGatewayIndisponivel
	}

	pedido, err := u.pedidos.GetByID(ctx, pedidoID)
	if err != nil {
		return SinalResult{}, err
	}
	if pedido.ID == "" {
		return SinalResult{}, ErrPedidoNotFound
	}

	if valor == 0 {
		valor = pedido.ValorSinal
	}
	if valor <= 0 || valor > pedido.PrecoTotal {
		return SinalResult{}, ErrValorSinalInvalido
	}
	if len(mpPayload) == 0 {
		mpPayload = json.RawMessage("{}")
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[pagamento][usecase] gateway falhou pedido_id=%s err=%v", pedidoID, err)
		return SinalResult{}, err
	}
	if providerStatus != "approved" {
		log.Printf("[pagamento][usecase] sinal recusado pedido_id=%s provider_status=%s", pedidoID, providerStatus)
		return SinalResult{ProviderPaymentID: providerID, ProviderStatus: providerStatus, ProviderResponse: providerResp}, ErrPagamentoRecusado
	}

	// No arithmetic invariant is enforced on stored records, but a confirmed
	// deposit recomputes the remainder from the current total.
	atualizado, err := u.pedidos.UpdateFields(ctx, pedidoID, map[string]any{
		"valorSinal":    valor,
		"valorRestante": pedido.PrecoTotal - valor,
		"updatedAt":     time.Now().UTC(),
	})
	if err != nil {
		return SinalResult{}, err
	}
	if atualizado.ID == "" {
		return SinalResult{}, ErrPedidoNotFound
	}

	log.Printf("[pagamento][usecase] sinal aprovado pedido_id=%s provider_payment_id=%s valor=%v", pedidoID, providerID, valor)
	return SinalResult{
		Pedido:            atualizado,
		ProviderPaymentID: providerID,
		ProviderStatus:    providerStatus,
		ProviderResponse:  providerResp,
	}, nil
}
