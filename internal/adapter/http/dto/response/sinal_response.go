package response

import (
	"encoding/json"

	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/usecase"
)

type SinalResponse struct {
	Success           bool            `json:"success"`
	Pedido            entities.Pedido `json:"pedido"`
	ProviderPaymentID string          `json:"providerPaymentId"`
	ProviderStatus    string          `json:"providerStatus"`
	ProviderResponse  json.RawMessage `json:"providerResponse,omitempty"`
}

func FromSinalResult(r usecase.SinalResult) SinalResponse {
	return SinalResponse{
		Success:           true,
		Pedido:            r.Pedido,
		ProviderPaymentID: r.ProviderPaymentID,
		ProviderStatus:    r.ProviderStatus,
		ProviderResponse:  r.ProviderResponse,
	}
}
