package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sapataria_xpto/internal/domain/workflow"
	"sapataria_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

func TestStatusHandler_GetColumns(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown role", func(t *testing.T) {
		h := NewStatusHandler()
		r := gin.New()
		r.Use(withClaims(interfaces.AuthClaims{Sub: "u-9", Role: "estoque"}))
		r.GET("/status/columns", h.GetColumns)

		req := httptest.NewRequest(http.MethodGet, "/status/columns", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("legacy role has no columns", func(t *testing.T) {
		h := NewStatusHandler()
		r := gin.New()
		r.Use(withClaims(interfaces.AuthClaims{Sub: "u-8", Role: "colagem"}))
		r.GET("/status/columns", h.GetColumns)

		req := httptest.NewRequest(http.MethodGet, "/status/columns", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("lavagem catalog", func(t *testing.T) {
		h := NewStatusHandler()
		r := gin.New()
		r.Use(withClaims(interfaces.AuthClaims{Sub: "u-3", Role: "lavagem"}))
		r.GET("/status/columns", h.GetColumns)

		req := httptest.NewRequest(http.MethodGet, "/status/columns", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool `json:"success"`
			Data    []struct {
				Status string `json:"status"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Data) != 3 {
			t.Fatalf("expected 3 columns for lavagem, got %d", len(body.Data))
		}
		if body.Data[0].Status != workflow.StatusLavagemAFazer {
			t.Fatalf("unexpected first column %q", body.Data[0].Status)
		}
	})

	t.Run("admin sees the whole board", func(t *testing.T) {
		h := NewStatusHandler()
		r := gin.New()
		r.Use(withClaims(interfaces.AuthClaims{Sub: "u-1", Role: "admin"}))
		r.GET("/status/columns", h.GetColumns)

		req := httptest.NewRequest(http.MethodGet, "/status/columns", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body struct {
			Data []json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Data) != 11 {
			t.Fatalf("expected 11 columns for admin, got %d", len(body.Data))
		}
	})
}
