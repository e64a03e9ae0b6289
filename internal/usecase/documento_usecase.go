package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"sapataria_xpto/internal/usecase/interfaces"
)

var ErrDocumentoFalhou = errors.New("document rendering failed")

// DocumentoGerado is the result of a PDF generation: the bytes streamed back
// to the caller plus where the copy was archived.
type DocumentoGerado struct {
	Conteudo []byte
	Key      string
	URL      string
}

// IDocumentoUseCase renders order PDFs and archives them in blob storage.

type IDocumentoUseCase interface {
	GerarPDF(ctx context.Context, pedidoID string) (DocumentoGerado, error)
	ListarPDFs(ctx context.Context, pedidoID string) ([]interfaces.StoredObject, error)
}

type DocumentoUseCase struct {
	pedidos  interfaces.IPedidoRepository
	clientes interfaces.IClienteRepository
	renderer interfaces.IDocumentRenderer
	storage  interfaces.IBlobStorage
}

var _ IDocumentoUseCase = (*DocumentoUseCase)(nil)

func NewDocumentoUseCase(pedidos interfaces.IPedidoRepository, clientes interfaces.IClienteRepository, renderer interfaces.IDocumentRenderer, storage interfaces.IBlobStorage) *DocumentoUseCase {
	return &DocumentoUseCase{pedidos: pedidos, clientes: clientes, renderer: renderer, storage: storage}
}

func (u *DocumentoUseCase) GerarPDF(ctx context.Context, pedidoID string) (DocumentoGerado, error) {
	pedidoID = strings.TrimSpace(pedidoID)
	if pedidoID == "" {
		return DocumentoGerado{}, ErrInvalidPedidoID
	}

	pedido, err := u.pedidos.GetByID(ctx, pedidoID)
	if err != nil {
		return DocumentoGerado{}, err
	}
	if pedido.ID == "" {
		return DocumentoGerado{}, ErrPedidoNotFound
	}
	cliente, err := u.clientes.GetByID(ctx, pedido.ClienteID)
	if err != nil {
		return DocumentoGerado{}, err
	}
	if cliente.ID == "" {
		return DocumentoGerado{}, ErrClienteNotFound
	}

	conteudo, err := u.renderer.Render(pedido, cliente)
	if err != nil {
		// Two-tier fallback: retry once with the simplified layout before
		// giving up.
		log.Printf("[documento][usecase] render completo falhou pedido_id=%s err=%v", pedido.ID, err)
		conteudo, err = u.renderer.RenderSimplificado(pedido, cliente)
		if err != nil {
			log.Printf("[documento][usecase] render simplificado falhou pedido_id=%s err=%v", pedido.ID, err)
			return DocumentoGerado{}, fmt.Errorf("%w: %v", ErrDocumentoFalhou, err)
		}
	}

	key := fmt.Sprintf("clientes/%s/pedidos/%s/pedido-%s-%d.pdf",
		cliente.ID, pedido.ID, pedido.ID, time.Now().UTC().Unix())
	url, err := u.storage.Put(ctx, key, conteudo, "application/pdf")
	if err != nil {
		return DocumentoGerado{}, err
	}

	log.Printf("[documento][usecase] pdf gerado pedido_id=%s key=%s bytes=%d", pedido.ID, key, len(conteudo))
	return DocumentoGerado{Conteudo: conteudo, Key: key, URL: url}, nil
}

func (u *DocumentoUseCase) ListarPDFs(ctx context.Context, pedidoID string) ([]interfaces.StoredObject, error) {
	pedidoID = strings.TrimSpace(pedidoID)
	if pedidoID == "" {
		return nil, ErrInvalidPedidoID
	}

	pedido, err := u.pedidos.GetByID(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido.ID == "" {
		return nil, ErrPedidoNotFound
	}

	prefix := fmt.Sprintf("clientes/%s/pedidos/%s/", pedido.ClienteID, pedido.ID)
	return u.storage.List(ctx, prefix)
}
