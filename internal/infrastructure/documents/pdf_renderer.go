package documents

import (
	"bytes"
	"fmt"
	"time"

	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

// PedidoPDFRenderer renders order receipts with gofpdf.
//
// Render is the full receipt (header, client block, services table, totals,
// warranty, status history). RenderSimplificado drops the table and history
// and is used as fallback when the full layout fails.
type PedidoPDFRenderer struct{}

var _ interfaces.IDocumentRenderer = (*PedidoPDFRenderer)(nil)

func NewPedidoPDFRenderer() *PedidoPDFRenderer {
	return &PedidoPDFRenderer{}
}

func (r *PedidoPDFRenderer) Render(pedido entities.Pedido, cliente entities.Cliente) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	writeHeader(pdf, tr, pedido)
	writeClienteBlock(pdf, tr, cliente)
	writePedidoBlock(pdf, tr, pedido)
	writeServicosTable(pdf, tr, pedido)
	writeTotais(pdf, tr, pedido)
	if pedido.Garantia.Ativa {
		writeGarantia(pdf, tr, pedido.Garantia)
	}
	writeStatusHistory(pdf, tr, pedido.StatusHistory)
	writeFooter(pdf, tr)

	return output(pdf)
}

func (r *PedidoPDFRenderer) RenderSimplificado(pedido entities.Pedido, cliente entities.Cliente) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	writeHeader(pdf, tr, pedido)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Cliente: %s", cliente.Nome)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Telefone: %s", cliente.Telefone)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Modelo: %s", pedido.ModeloTenis)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Serviços: %s", pedido.DescricaoResumida())), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Status: %s", pedido.Status)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeTotais(pdf, tr, pedido)
	writeFooter(pdf, tr)

	return output(pdf)
}

func writeHeader(pdf *gofpdf.Fpdf, tr func(string) string, pedido entities.Pedido) {
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, tr("Sapataria XPTO"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Comprovante de Pedido #%s", shortID(pedido.ID))), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Emitido em %s", time.Now().Format("02/01/2006 15:04"))), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)
}

func writeClienteBlock(pdf *gofpdf.Fpdf, tr func(string) string, cliente entities.Cliente) {
	sectionTitle(pdf, tr, "Cliente")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Nome: %s", cliente.Nome)), "", 1, "L", false, 0, "")
	if cliente.CPF != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("CPF: %s", cliente.CPF)), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Telefone: %s", cliente.Telefone)), "", 1, "L", false, 0, "")
	if cliente.Email != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Email: %s", cliente.Email)), "", 1, "L", false, 0, "")
	}
	if endereco := cliente.EnderecoCompleto(); endereco != "" {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Endereço: %s", endereco)), "", "L", false)
	}
	pdf.Ln(3)
}

func writePedidoBlock(pdf *gofpdf.Fpdf, tr func(string) string, pedido entities.Pedido) {
	sectionTitle(pdf, tr, "Pedido")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Modelo do tênis: %s", pedido.ModeloTenis)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Status atual: %s", pedido.Status)), "", 1, "L", false, 0, "")
	if pedido.DataPrevistaEntrega != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Previsão de entrega: %s", pedido.DataPrevistaEntrega)), "", 1, "L", false, 0, "")
	}
	if len(pedido.Acessorios) > 0 {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Acessórios: %s", joinComma(pedido.Acessorios))), "", "L", false)
	}
	if pedido.Observacoes != "" {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Observações: %s", pedido.Observacoes)), "", "L", false)
	}
	pdf.Ln(3)
}

func writeServicosTable(pdf *gofpdf.Fpdf, tr func(string) string, pedido entities.Pedido) {
	sectionTitle(pdf, tr, "Serviços")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(130, 7, tr("Serviço"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 7, tr("Preço"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	if len(pedido.Servicos) == 0 {
		pdf.CellFormat(130, 7, tr(pedido.DescricaoResumida()), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, tr(formatBRL(pedido.Preco)), "1", 1, "R", false, 0, "")
	}
	for _, s := range pedido.Servicos {
		nome := s.Nome
		if s.Descricao != "" {
			nome = fmt.Sprintf("%s (%s)", s.Nome, s.Descricao)
		}
		pdf.CellFormat(130, 7, tr(nome), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, tr(formatBRL(s.Preco)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)
}

func writeTotais(pdf *gofpdf.Fpdf, tr func(string) string, pedido entities.Pedido) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(130, 7, tr("Total"), "", 0, "R", false, 0, "")
	pdf.CellFormat(60, 7, tr(formatBRL(pedido.PrecoTotal)), "", 1, "R", false, 0, "")
	if pedido.ValorSinal > 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(130, 6, tr("Sinal pago"), "", 0, "R", false, 0, "")
		pdf.CellFormat(60, 6, tr(formatBRL(pedido.ValorSinal)), "", 1, "R", false, 0, "")
		pdf.CellFormat(130, 6, tr("Restante"), "", 0, "R", false, 0, "")
		pdf.CellFormat(60, 6, tr(formatBRL(pedido.ValorRestante)), "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)
}

func writeGarantia(pdf *gofpdf.Fpdf, tr func(string) string, g entities.Garantia) {
	sectionTitle(pdf, tr, "Garantia")
	pdf.SetFont("Arial", "", 10)
	linha := fmt.Sprintf("Garantia contratada: %s", g.Duracao)
	if g.Preco > 0 {
		linha += fmt.Sprintf(" (%s)", formatBRL(g.Preco))
	}
	if g.Data != "" {
		linha += fmt.Sprintf(" - válida a partir de %s", g.Data)
	}
	pdf.MultiCell(0, 6, tr(linha), "", "L", false)
	pdf.Ln(3)
}

func writeStatusHistory(pdf *gofpdf.Fpdf, tr func(string) string, history []entities.StatusEntry) {
	if len(history) == 0 {
		return
	}
	sectionTitle(pdf, tr, "Histórico")
	pdf.SetFont("Arial", "", 9)
	for _, entry := range history {
		linha := fmt.Sprintf("%s %s - %s", entry.Date, entry.Time, entry.Status)
		if entry.UserName != "" {
			linha += fmt.Sprintf(" (%s)", entry.UserName)
		}
		pdf.CellFormat(0, 5, tr(linha), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func writeFooter(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, tr("Obrigado pela preferência! Apresente este comprovante na retirada."), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func sectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatBRL(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func joinComma(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
