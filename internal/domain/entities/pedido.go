package entities

import "time"

// Servico is a single service line item of an order.
type Servico struct {
	ID        string  `json:"id" dynamodbav:"id"`
	Nome      string  `json:"nome" dynamodbav:"nome"`
	Preco     float64 `json:"preco" dynamodbav:"preco"`
	Descricao string  `json:"descricao,omitempty" dynamodbav:"descricao"`
}

// Garantia holds optional warranty terms sold with the order.
type Garantia struct {
	Ativa   bool    `json:"ativa" dynamodbav:"ativa"`
	Preco   float64 `json:"preco" dynamodbav:"preco"`
	Duracao string  `json:"duracao" dynamodbav:"duracao"`
	Data    string  `json:"data" dynamodbav:"data"`
}

// StatusEntry is one audit record of the order status history.
//
// Entries are append-only; insertion order is chronological order and the last
// entry always mirrors the current Pedido.Status when changes go through the
// workflow recorder.
type StatusEntry struct {
	Status   string `json:"status" dynamodbav:"status"`
	Date     string `json:"date" dynamodbav:"date"`
	Time     string `json:"time" dynamodbav:"time"`
	UserID   string `json:"userId" dynamodbav:"userId"`
	UserName string `json:"userName" dynamodbav:"userName"`
}

// Pedido is the order aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Status vocabulary is role-namespaced: the substring before " - " names the
// owning department (e.g. "Lavagem - Em Andamento").
//
// JSON tags follow the wire format the frontend already consumes, so legacy
// single-service fields (tipoServico/descricaoServicos/preco) are kept.
type Pedido struct {
	ID                  string        `json:"id" dynamodbav:"id"`
	ClienteID           string        `json:"clienteId" dynamodbav:"clienteId"`
	ClientName          string        `json:"clientName,omitempty" dynamodbav:"clientName"`
	ModeloTenis         string        `json:"modeloTenis" dynamodbav:"modeloTenis"`
	Servicos            []Servico     `json:"servicos" dynamodbav:"servicos"`
	Fotos               []string      `json:"fotos" dynamodbav:"fotos"`
	PrecoTotal          float64       `json:"precoTotal" dynamodbav:"precoTotal"`
	ValorSinal          float64       `json:"valorSinal" dynamodbav:"valorSinal"`
	ValorRestante       float64       `json:"valorRestante" dynamodbav:"valorRestante"`
	DataPrevistaEntrega string        `json:"dataPrevistaEntrega,omitempty" dynamodbav:"dataPrevistaEntrega"`
	Departamento        string        `json:"departamento" dynamodbav:"departamento"`
	Observacoes         string        `json:"observacoes" dynamodbav:"observacoes"`
	Garantia            Garantia      `json:"garantia" dynamodbav:"garantia"`
	Acessorios          []string      `json:"acessorios" dynamodbav:"acessorios"`
	Status              string        `json:"status" dynamodbav:"status"`
	StatusHistory       []StatusEntry `json:"statusHistory" dynamodbav:"statusHistory"`
	DataCriacao         time.Time     `json:"dataCriacao" dynamodbav:"dataCriacao"`
	CreatedAt           time.Time     `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt" dynamodbav:"updatedAt"`

	// Campos antigos mantidos para compatibilidade.
	TipoServico       string  `json:"tipoServico,omitempty" dynamodbav:"tipoServico"`
	DescricaoServicos string  `json:"descricaoServicos,omitempty" dynamodbav:"descricaoServicos"`
	Preco             float64 `json:"preco,omitempty" dynamodbav:"preco"`
}

// DescricaoResumida returns a short service description for notifications and
// documents, preferring the legacy free-text field when present.
func (p Pedido) DescricaoResumida() string {
	if p.DescricaoServicos != "" {
		return p.DescricaoServicos
	}
	out := ""
	for i, s := range p.Servicos {
		if i > 0 {
			out += ", "
		}
		out += s.Nome
	}
	if out == "" {
		out = p.TipoServico
	}
	return out
}
