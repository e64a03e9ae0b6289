package interfaces

import (
	"context"

	"sapataria_xpto/internal/domain/entities"
)

// IPedidoRepository abstracts DynamoDB persistence for Pedido.
//
// Zero-value returns (Pedido{ID: ""}) mean "not found"; callers translate
// that into their own sentinel errors.
//
// UpdateFields applies a sparse attribute map and returns the full
// post-update record (ALL_NEW semantics). Read-modify-write sequences built
// on top of it (status history append) are not transactional; concurrent
// status changes on the same pedido can lose an update, which is accepted.

type IPedidoRepository interface {
	Create(ctx context.Context, p entities.Pedido) (entities.Pedido, error)
	GetByID(ctx context.Context, id string) (entities.Pedido, error)
	List(ctx context.Context) ([]entities.Pedido, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (entities.Pedido, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	CountByStatusAndDay(ctx context.Context, status, day string) (int, error)
}
