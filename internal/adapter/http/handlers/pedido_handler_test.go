package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sapataria_xpto/internal/adapter/http/handlers/mocks"
	"sapataria_xpto/internal/adapter/http/middleware"
	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/domain/workflow"
	"sapataria_xpto/internal/usecase"
	"sapataria_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func withClaims(claims interfaces.AuthClaims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ClaimsContextKey, claims)
		c.Next()
	}
}

func TestPedidoHandler_CreatePedido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.POST("/pedidos", h.CreatePedido)

		req := httptest.NewRequest(http.MethodPost, "/pedidos", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Pedido{ID: "p-1", ModeloTenis: "AJ1"}, nil)

		r := gin.New()
		r.POST("/pedidos", h.CreatePedido)

		body := `{"clienteId":"c-1","modeloTenis":"AJ1","servicos":[{"nome":"Limpeza","preco":40}]}`
		req := httptest.NewRequest(http.MethodPost, "/pedidos", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestPedidoHandler_UpdatePedido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("disallowed fields are listed in details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "p-1", gomock.Any(), "admin", gomock.Any()).
			Return(entities.Pedido{}, &usecase.DisallowedFieldsError{Fields: []string{"foo"}})

		r := gin.New()
		r.Use(withClaims(interfaces.AuthClaims{Sub: "u-1", Role: "admin"}))
		r.PATCH("/pedidos/:id", h.UpdatePedido)

		req := httptest.NewRequest(http.MethodPatch, "/pedidos/p-1", bytes.NewBufferString(`{"foo":"bar"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Code    string   `json:"code"`
			Details []string `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Code != "DISALLOWED_FIELDS" {
			t.Fatalf("unexpected code %q", body.Code)
		}
		if len(body.Details) != 1 || body.Details[0] != "foo" {
			t.Fatalf("details should list the rejected field, got %v", body.Details)
		}
	})

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "p-1", gomock.Any(), "atendimento", gomock.Any()).
			Return(entities.Pedido{ID: "p-1", Observacoes: "sola trocada"}, nil)

		r := gin.New()
		r.Use(withClaims(interfaces.AuthClaims{Sub: "u-2", Role: "atendimento"}))
		r.PATCH("/pedidos/:id", h.UpdatePedido)

		req := httptest.NewRequest(http.MethodPatch, "/pedidos/p-1", bytes.NewBufferString(`{"observacoes":"sola trocada"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestPedidoHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("transition denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "p-1", workflow.StatusPinturaAFazer, "lavagem", gomock.Any()).
			Return(entities.Pedido{}, usecase.ErrTransicaoNaoPermitida)

		r := gin.New()
		r.Use(withClaims(interfaces.AuthClaims{Sub: "u-3", Role: "lavagem"}))
		r.PATCH("/pedidos/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/pedidos/p-1/status", bytes.NewBufferString(`{"status":"Pintura - A Fazer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d body=%s", w.Code, w.Body.String())
		}
		var body struct {
			Code string `json:"code"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "TRANSITION_NOT_ALLOWED" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.Use(withClaims(interfaces.AuthClaims{Sub: "u-3", Role: "lavagem"}))
		r.PATCH("/pedidos/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/pedidos/p-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("moved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "p-1", workflow.StatusLavagemEmAndamento, "lavagem", workflow.Actor{ID: "u-3", Nome: "lava@example.com"}).
			Return(entities.Pedido{ID: "p-1", Status: workflow.StatusLavagemEmAndamento}, nil)

		r := gin.New()
		r.Use(withClaims(interfaces.AuthClaims{Sub: "u-3", Email: "lava@example.com", Role: "lavagem"}))
		r.PATCH("/pedidos/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/pedidos/p-1/status", bytes.NewBufferString(`{"status":"Lavagem - Em Andamento"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestPedidoHandler_ListKanban(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		uc.EXPECT().ListKanban(gomock.Any(), "estoque").Return(nil, workflow.ErrRoleDesconhecida)

		r := gin.New()
		r.Use(withClaims(interfaces.AuthClaims{Sub: "u-9", Role: "estoque"}))
		r.GET("/pedidos/kanban/status", h.ListKanban)

		req := httptest.NewRequest(http.MethodGet, "/pedidos/kanban/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("columns for role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		colunas := []workflow.ColunaKanban{
			{Status: workflow.StatusLavagemAFazer, Pedidos: []entities.Pedido{{ID: "p-1"}}},
			{Status: workflow.StatusLavagemEmAndamento, Pedidos: []entities.Pedido{}},
		}
		uc.EXPECT().ListKanban(gomock.Any(), "lavagem").Return(colunas, nil)

		r := gin.New()
		r.Use(withClaims(interfaces.AuthClaims{Sub: "u-3", Role: "lavagem"}))
		r.GET("/pedidos/kanban/status", h.ListKanban)

		req := httptest.NewRequest(http.MethodGet, "/pedidos/kanban/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool `json:"success"`
			Data    []struct {
				Status  string            `json:"status"`
				Pedidos []entities.Pedido `json:"pedidos"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || len(body.Data) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.Data[0].Status != workflow.StatusLavagemAFazer || len(body.Data[0].Pedidos) != 1 {
			t.Fatalf("unexpected first column: %+v", body.Data[0])
		}
	})
}

func TestPedidoHandler_GetPedido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "p-404").Return(entities.Pedido{}, usecase.ErrPedidoNotFound)

		r := gin.New()
		r.GET("/pedidos/:id", h.GetPedido)

		req := httptest.NewRequest(http.MethodGet, "/pedidos/p-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPedidoHandler_DeletePedido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPedidoUseCase(ctrl)
	h := NewPedidoHandler(uc)

	uc.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

	r := gin.New()
	r.DELETE("/pedidos/:id", h.DeletePedido)

	req := httptest.NewRequest(http.MethodDelete, "/pedidos/p-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
