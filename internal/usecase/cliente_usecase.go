package usecase

import (
	"context"
	"errors"
	"strings"

	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClienteNotFound  = errors.New("cliente not found")
	ErrInvalidClienteID = errors.New("invalid cliente id")
	ErrNomeObrigatorio  = errors.New("nome is required")
)

// IClienteUseCase exposes customer CRUD.
//
// Deleting a cliente does not cascade to its pedidos.

type IClienteUseCase interface {
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	List(ctx context.Context) ([]entities.Cliente, error)
	Update(ctx context.Context, id string, fields map[string]any) (entities.Cliente, error)
	Delete(ctx context.Context, id string) error
}

type ClienteUseCase struct {
	repo interfaces.IClienteRepository
}

var _ IClienteUseCase = (*ClienteUseCase)(nil)

func NewClienteUseCase(repo interfaces.IClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

func (u *ClienteUseCase) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	if strings.TrimSpace(c.Nome) == "" {
		return entities.Cliente{}, ErrNomeObrigatorio
	}
	c.ID = uuid.NewString()
	return u.repo.Create(ctx, c)
}

func (u *ClienteUseCase) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	return c, nil
}

func (u *ClienteUseCase) List(ctx context.Context) ([]entities.Cliente, error) {
	return u.repo.List(ctx)
}

func (u *ClienteUseCase) Update(ctx context.Context, id string, fields map[string]any) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}
	delete(fields, "id")
	if len(fields) == 0 {
		return entities.Cliente{}, ErrNenhumCampo
	}
	c, err := u.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	return c, nil
}

func (u *ClienteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClienteID
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrClienteNotFound
	}
	return nil
}
