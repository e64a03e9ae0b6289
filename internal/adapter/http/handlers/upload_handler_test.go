package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"sapataria_xpto/internal/adapter/http/handlers/mocks"
	"sapataria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartFotos(t *testing.T, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, name := range names {
		fw, err := mw.CreateFormFile("fotos", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("fake-jpeg-bytes")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestUploadHandler_UploadFotos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)
		h := NewUploadHandler(uc)

		r := gin.New()
		r.POST("/upload/fotos", h.UploadFotos)

		req := httptest.NewRequest(http.MethodPost, "/upload/fotos", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no photos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)
		h := NewUploadHandler(uc)

		uc.EXPECT().UploadFotos(gomock.Any(), gomock.Len(0)).Return(nil, usecase.ErrNenhumaFoto)

		r := gin.New()
		r.POST("/upload/fotos", h.UploadFotos)

		body, contentType := multipartFotos(t)
		req := httptest.NewRequest(http.MethodPost, "/upload/fotos", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stores files from the fotos field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)
		h := NewUploadHandler(uc)

		uc.EXPECT().UploadFotos(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, fotos []usecase.FotoUpload) ([]string, error) {
				if len(fotos) != 2 {
					t.Fatalf("expected 2 files, got %d", len(fotos))
				}
				if fotos[0].Nome != "frente.jpg" || len(fotos[0].Dados) == 0 {
					t.Fatalf("unexpected file: %+v", fotos[0])
				}
				return []string{"https://bucket/a", "https://bucket/b"}, nil
			})

		r := gin.New()
		r.POST("/upload/fotos", h.UploadFotos)

		body, contentType := multipartFotos(t, "frente.jpg", "sola.jpg")
		req := httptest.NewRequest(http.MethodPost, "/upload/fotos", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("https://bucket/a")) {
			t.Fatalf("urls missing from response: %s", w.Body.String())
		}
	})
}
