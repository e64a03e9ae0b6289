package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sapataria_xpto/internal/adapter/http/handlers/mocks"
	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPagamentoHandler_PagarSinal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body charges the recorded sinal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		uc.EXPECT().PagarSinal(gomock.Any(), "p-1", 0.0, json.RawMessage("{}")).
			Return(usecase.SinalResult{
				Pedido:            entities.Pedido{ID: "p-1", ValorSinal: 40, ValorRestante: 60},
				ProviderPaymentID: "mp-1",
				ProviderStatus:    "approved",
			}, nil)

		r := gin.New()
		r.POST("/pedidos/:id/sinal", h.PagarSinal)

		req := httptest.NewRequest(http.MethodPost, "/pedidos/p-1/sinal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.POST("/pedidos/:id/sinal", h.PagarSinal)

		req := httptest.NewRequest(http.MethodPost, "/pedidos/p-1/sinal", bytes.NewBufferString("{oops"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		uc.EXPECT().PagarSinal(gomock.Any(), "p-1", 40.0, gomock.Any()).
			Return(usecase.SinalResult{ProviderStatus: "rejected"}, usecase.ErrPagamentoRecusado)

		r := gin.New()
		r.POST("/pedidos/:id/sinal", h.PagarSinal)

		req := httptest.NewRequest(http.MethodPost, "/pedidos/p-1/sinal", bytes.NewBufferString(`{"valor":40}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		uc.EXPECT().PagarSinal(gomock.Any(), "p-1", 0.0, gomock.Any()).
			Return(usecase.SinalResult{}, usecase.ErrGatewayIndisponivel)

		r := gin.New()
		r.POST("/pedidos/:id/sinal", h.PagarSinal)

		req := httptest.NewRequest(http.MethodPost, "/pedidos/p-1/sinal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
