package interfaces

import "sapataria_xpto/internal/domain/entities"

// IDocumentRenderer renders an order as a PDF byte stream.
//
// Render produces the full layout (client block, services table, warranty,
// status history). RenderSimplificado is the degraded layout the usecase
// falls back to when the full rendering fails.

type IDocumentRenderer interface {
	Render(pedido entities.Pedido, cliente entities.Cliente) ([]byte, error)
	RenderSimplificado(pedido entities.Pedido, cliente entities.Cliente) ([]byte, error)
}
