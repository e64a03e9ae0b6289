package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	response "sapataria_xpto/internal/adapter/http/dto/response"
	"sapataria_xpto/internal/usecase"
	"sapataria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidUpload = pkg.NewDomainErrorSimple("INVALID_UPLOAD", "Invalid multipart upload", http.StatusBadRequest)
)

// UploadHandler receives order photos as multipart form files ("fotos" field)
// and stores them in blob storage.

type UploadHandler struct {
	usecase usecase.IUploadUseCase
}

func NewUploadHandler(uc usecase.IUploadUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

// UploadFotos godoc
// @Summary  Upload order photos (max 5 files, 5MB each)
// @Tags     upload
// @Accept   multipart/form-data
// @Produce  json
// @Success  200 {object} response.UploadResponse
// @Security Bearer
// @Router   /upload/fotos [post]
func (h *UploadHandler) UploadFotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(errInvalidUpload.HTTPStatus, errInvalidUpload.ToHTTPError())
		return
	}

	files := form.File["fotos"]
	fotos := make([]usecase.FotoUpload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(errInvalidUpload.HTTPStatus, errInvalidUpload.ToHTTPError())
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(errInvalidUpload.HTTPStatus, errInvalidUpload.ToHTTPError())
			return
		}
		fotos = append(fotos, usecase.FotoUpload{
			Nome:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Dados:       data,
		})
	}

	urls, err := h.usecase.UploadFotos(c.Request.Context(), fotos)
	if err != nil {
		log.Printf("[upload][handler] upload failed files=%d err=%v", len(fotos), err)
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUploadURLs(urls))
}

func mapUploadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNenhumaFoto):
		return pkg.NewDomainErrorSimple("NO_PHOTOS", "No photo was sent", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMuitasFotos):
		return pkg.NewDomainErrorSimple("TOO_MANY_PHOTOS", "At most 5 photos per upload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFotoMuitoGrande):
		return pkg.NewDomainErrorSimple("PHOTO_TOO_LARGE", "Each photo must be at most 5MB", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFotoSemConteudo):
		return pkg.NewDomainErrorSimple("EMPTY_PHOTO", "Photo has no content", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
