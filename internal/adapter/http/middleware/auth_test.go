package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sapataria_xpto/internal/usecase/interfaces"
	mock_interfaces "sapataria_xpto/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(tokens interfaces.ITokenService) *gin.Engine {
		r := gin.New()
		r.Use(RequireAuth(tokens))
		r.GET("/private", func(c *gin.Context) {
			claims, ok := ClaimsFrom(c)
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.JSON(http.StatusOK, gin.H{"sub": claims.Sub, "role": claims.Role})
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		r := newRouter(nil)
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		r := newRouter(nil)
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		tokens.EXPECT().ParseAccessToken("expired").Return(interfaces.AuthClaims{}, errors.New("token expired"))

		r := newRouter(tokens)
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("claims reach the handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		tokens.EXPECT().ParseAccessToken("good").
			Return(interfaces.AuthClaims{Sub: "u-1", Email: "maria@example.com", Role: "admin"}, nil)

		r := newRouter(tokens)
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}
