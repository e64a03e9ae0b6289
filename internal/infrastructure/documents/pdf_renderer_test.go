package documents

import (
	"bytes"
	"testing"
	"time"

	"sapataria_xpto/internal/domain/entities"
)

func pedidoFixture() entities.Pedido {
	return entities.Pedido{
		ID:          "6f9a2c10-aaaa-bbbb-cccc-000000000001",
		ClienteID:   "c-1",
		ModeloTenis: "Air Jordan 1",
		Servicos: []entities.Servico{
			{ID: "s-1", Nome: "Limpeza Profunda", Preco: 40},
			{ID: "s-2", Nome: "Pintura Personalizada", Preco: 120},
		},
		PrecoTotal:    160,
		ValorSinal:    60,
		ValorRestante: 100,
		Status:        "Lavagem - Em Andamento",
		Garantia:      entities.Garantia{Ativa: true, Preco: 20, Duracao: "90 dias"},
		StatusHistory: []entities.StatusEntry{
			{Status: "Atendimento - Recebido", Date: "2026-08-01", Time: "10:00", UserName: "Maria"},
			{Status: "Lavagem - Em Andamento", Date: "2026-08-02", Time: "09:30", UserName: "João"},
		},
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func clienteFixture() entities.Cliente {
	return entities.Cliente{
		ID:       "c-1",
		Nome:     "José da Conceição",
		CPF:      "123.456.789-00",
		Telefone: "5511999990000",
		Email:    "jose@example.com",
	}
}

func TestPedidoPDFRenderer_Render(t *testing.T) {
	r := NewPedidoPDFRenderer()

	out, err := r.Render(pedidoFixture(), clienteFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:min(8, len(out))])
	}
	if len(out) < 1000 {
		t.Fatalf("suspiciously small PDF: %d bytes", len(out))
	}
}

func TestPedidoPDFRenderer_RenderLegacyPedido(t *testing.T) {
	r := NewPedidoPDFRenderer()

	pedido := entities.Pedido{
		ID:                "p-legacy",
		ClienteID:         "c-1",
		ModeloTenis:       "Samba",
		TipoServico:       "lavagem",
		DescricaoServicos: "Limpeza simples",
		Preco:             35,
		Status:            "finalizado",
	}

	out, err := r.Render(pedido, clienteFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestPedidoPDFRenderer_RenderSimplificado(t *testing.T) {
	r := NewPedidoPDFRenderer()

	out, err := r.RenderSimplificado(pedidoFixture(), clienteFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}
