package request

import (
	"strings"

	"sapataria_xpto/internal/domain/entities"
)

type ServicoRequest struct {
	ID        string  `json:"id" binding:"required"`
	Nome      string  `json:"nome" binding:"required"`
	Preco     float64 `json:"preco"`
	Descricao string  `json:"descricao"`
}

type GarantiaRequest struct {
	Ativa   bool    `json:"ativa"`
	Preco   float64 `json:"preco"`
	Duracao string  `json:"duracao"`
	Data    string  `json:"data"`
}

// PedidoRequest is the order creation payload.
//
// precoTotal is optional; when omitted the usecase derives it from the service
// prices. Legacy single-service fields are accepted for older frontends.
type PedidoRequest struct {
	ClienteID           string           `json:"clienteId" binding:"required"`
	ModeloTenis         string           `json:"modeloTenis" binding:"required"`
	Servicos            []ServicoRequest `json:"servicos" binding:"required"`
	Fotos               []string         `json:"fotos"`
	PrecoTotal          float64          `json:"precoTotal"`
	ValorSinal          float64          `json:"valorSinal"`
	ValorRestante       float64          `json:"valorRestante"`
	DataPrevistaEntrega string           `json:"dataPrevistaEntrega"`
	Departamento        string           `json:"departamento"`
	Observacoes         string           `json:"observacoes"`
	Garantia            GarantiaRequest  `json:"garantia"`
	Acessorios          []string         `json:"acessorios"`
	Status              string           `json:"status"`

	TipoServico       string  `json:"tipoServico"`
	DescricaoServicos string  `json:"descricaoServicos"`
	Preco             float64 `json:"preco"`
}

func (r PedidoRequest) ToEntity() entities.Pedido {
	servicos := make([]entities.Servico, 0, len(r.Servicos))
	for _, s := range r.Servicos {
		servicos = append(servicos, entities.Servico{
			ID:        strings.TrimSpace(s.ID),
			Nome:      strings.TrimSpace(s.Nome),
			Preco:     s.Preco,
			Descricao: s.Descricao,
		})
	}
	return entities.Pedido{
		ClienteID:           r.ClienteID,
		ModeloTenis:         r.ModeloTenis,
		Servicos:            servicos,
		Fotos:               r.Fotos,
		PrecoTotal:          r.PrecoTotal,
		ValorSinal:          r.ValorSinal,
		ValorRestante:       r.ValorRestante,
		DataPrevistaEntrega: r.DataPrevistaEntrega,
		Departamento:        r.Departamento,
		Observacoes:         r.Observacoes,
		Garantia: entities.Garantia{
			Ativa:   r.Garantia.Ativa,
			Preco:   r.Garantia.Preco,
			Duracao: r.Garantia.Duracao,
			Data:    r.Garantia.Data,
		},
		Acessorios:        r.Acessorios,
		Status:            strings.TrimSpace(r.Status),
		TipoServico:       r.TipoServico,
		DescricaoServicos: r.DescricaoServicos,
		Preco:             r.Preco,
	}
}

// StatusUpdateRequest is the body of the status-only transition endpoint.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
