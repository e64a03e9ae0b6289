package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/usecase/interfaces"
	mock_interfaces "sapataria_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDocumentoUseCase_GerarPDF(t *testing.T) {
	pedido := entities.Pedido{ID: "p-1", ClienteID: "c-1"}
	cliente := entities.Cliente{ID: "c-1", Nome: "Ana"}

	t.Run("archives rendered pdf under the cliente prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		clientes := mock_interfaces.NewMockIClienteRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		storage := mock_interfaces.NewMockIBlobStorage(ctrl)
		uc := NewDocumentoUseCase(pedidos, clientes, renderer, storage)

		pedidos.EXPECT().GetByID(gomock.Any(), "p-1").Return(pedido, nil)
		clientes.EXPECT().GetByID(gomock.Any(), "c-1").Return(cliente, nil)
		renderer.EXPECT().Render(pedido, cliente).Return([]byte("%PDF-1.4"), nil)
		storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), "application/pdf").DoAndReturn(
			func(_ context.Context, key string, data []byte, _ string) (string, error) {
				if !strings.HasPrefix(key, "clientes/c-1/pedidos/p-1/") {
					t.Fatalf("unexpected key %q", key)
				}
				if !strings.HasSuffix(key, ".pdf") {
					t.Fatalf("key should end in .pdf, got %q", key)
				}
				if !bytes.Equal(data, []byte("%PDF-1.4")) {
					t.Fatalf("unexpected payload")
				}
				return "https://bucket/" + key, nil
			})

		doc, err := uc.GerarPDF(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Key == "" || doc.URL == "" || len(doc.Conteudo) == 0 {
			t.Fatalf("incomplete result: %+v", doc)
		}
	})

	t.Run("falls back to simplified layout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		clientes := mock_interfaces.NewMockIClienteRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		storage := mock_interfaces.NewMockIBlobStorage(ctrl)
		uc := NewDocumentoUseCase(pedidos, clientes, renderer, storage)

		pedidos.EXPECT().GetByID(gomock.Any(), "p-1").Return(pedido, nil)
		clientes.EXPECT().GetByID(gomock.Any(), "c-1").Return(cliente, nil)
		renderer.EXPECT().Render(pedido, cliente).Return(nil, errors.New("fonte corrompida"))
		renderer.EXPECT().RenderSimplificado(pedido, cliente).Return([]byte("simple"), nil)
		storage.EXPECT().Put(gomock.Any(), gomock.Any(), []byte("simple"), "application/pdf").Return("https://bucket/x", nil)

		doc, err := uc.GerarPDF(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(doc.Conteudo) != "simple" {
			t.Fatalf("expected simplified content, got %q", doc.Conteudo)
		}
	})

	t.Run("both renders fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		clientes := mock_interfaces.NewMockIClienteRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewDocumentoUseCase(pedidos, clientes, renderer, nil)

		pedidos.EXPECT().GetByID(gomock.Any(), "p-1").Return(pedido, nil)
		clientes.EXPECT().GetByID(gomock.Any(), "c-1").Return(cliente, nil)
		renderer.EXPECT().Render(pedido, cliente).Return(nil, errors.New("boom"))
		renderer.EXPECT().RenderSimplificado(pedido, cliente).Return(nil, errors.New("boom again"))

		_, err := uc.GerarPDF(context.Background(), "p-1")
		if !errors.Is(err, ErrDocumentoFalhou) {
			t.Fatalf("expected ErrDocumentoFalhou, got %v", err)
		}
	})

	t.Run("pedido not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewDocumentoUseCase(pedidos, nil, nil, nil)

		pedidos.EXPECT().GetByID(gomock.Any(), "p-404").Return(entities.Pedido{}, nil)

		_, err := uc.GerarPDF(context.Background(), "p-404")
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})
}

func TestDocumentoUseCase_ListarPDFs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
	storage := mock_interfaces.NewMockIBlobStorage(ctrl)
	uc := NewDocumentoUseCase(pedidos, nil, nil, storage)

	pedidos.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Pedido{ID: "p-1", ClienteID: "c-9"}, nil)
	storage.EXPECT().List(gomock.Any(), "clientes/c-9/pedidos/p-1/").Return([]interfaces.StoredObject{{Key: "a.pdf"}}, nil)

	objs, err := uc.ListarPDFs(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(objs) != 1 || objs[0].Key != "a.pdf" {
		t.Fatalf("unexpected objects: %+v", objs)
	}
}
