package usecase

import (
	"context"
	"errors"
	"testing"

	"sapataria_xpto/internal/domain/entities"
	mock_interfaces "sapataria_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClienteUseCase_Create(t *testing.T) {
	t.Run("missing nome", func(t *testing.T) {
		uc := NewClienteUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Cliente{Nome: "   "})
		if !errors.Is(err, ErrNomeObrigatorio) {
			t.Fatalf("expected ErrNomeObrigatorio, got %v", err)
		}
	})

	t.Run("assigns id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cliente) (entities.Cliente, error) {
				if c.ID == "" {
					t.Fatalf("expected generated id")
				}
				return c, nil
			})

		created, err := uc.Create(context.Background(), entities.Cliente{Nome: "João", Telefone: "11999990000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Nome != "João" {
			t.Fatalf("unexpected cliente: %+v", created)
		}
	})
}

func TestClienteUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewClienteUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidClienteID) {
			t.Fatalf("expected ErrInvalidClienteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Cliente{}, nil)

		_, err := uc.GetByID(context.Background(), "c-404")
		if !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})
}

func TestClienteUseCase_Update(t *testing.T) {
	t.Run("strips id and rejects empty patch", func(t *testing.T) {
		uc := NewClienteUseCase(nil)
		_, err := uc.Update(context.Background(), "c-1", map[string]any{"id": "c-2"})
		if !errors.Is(err, ErrNenhumCampo) {
			t.Fatalf("expected ErrNenhumCampo, got %v", err)
		}
	})

	t.Run("patches remaining fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().UpdateFields(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, fields map[string]any) (entities.Cliente, error) {
				if _, ok := fields["id"]; ok {
					t.Fatalf("id should never reach the repository")
				}
				if fields["telefone"] != "11888887777" {
					t.Fatalf("unexpected fields: %v", fields)
				}
				return entities.Cliente{ID: id, Telefone: "11888887777"}, nil
			})

		updated, err := uc.Update(context.Background(), "c-1", map[string]any{"id": "c-2", "telefone": "11888887777"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ID != "c-1" {
			t.Fatalf("unexpected cliente: %+v", updated)
		}
	})
}

func TestClienteUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClienteRepository(ctrl)
	uc := NewClienteUseCase(repo)

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().Delete(gomock.Any(), "c-404").Return(false, nil)
		if err := uc.Delete(context.Background(), "c-404"); !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		repo.EXPECT().Delete(gomock.Any(), "c-1").Return(true, nil)
		if err := uc.Delete(context.Background(), "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
