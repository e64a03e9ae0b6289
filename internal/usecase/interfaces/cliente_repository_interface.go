package interfaces

import (
	"context"

	"sapataria_xpto/internal/domain/entities"
)

// IClienteRepository abstracts DynamoDB persistence for Cliente.

type IClienteRepository interface {
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	List(ctx context.Context) ([]entities.Cliente, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (entities.Cliente, error)
	Delete(ctx context.Context, id string) (bool, error)
}
