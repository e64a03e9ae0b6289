package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "sapataria_xpto/internal/adapter/http/dto/request"
	response "sapataria_xpto/internal/adapter/http/dto/response"
	"sapataria_xpto/internal/usecase"
	"sapataria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDocumentoPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
)

// DocumentoHandler renders order PDFs and lists the archived copies.

type DocumentoHandler struct {
	usecase usecase.IDocumentoUseCase
}

func NewDocumentoHandler(uc usecase.IDocumentoUseCase) *DocumentoHandler {
	return &DocumentoHandler{usecase: uc}
}

// GerarPDF godoc
// @Summary  Render an order as PDF, archive it and stream it back
// @Tags     documentos
// @Accept   json
// @Produce  application/pdf
// @Param    pedido body request.DocumentoPDFRequest true "Order selector"
// @Success  200
// @Security Bearer
// @Router   /pedidos/document/pdf [post]
func (h *DocumentoHandler) GerarPDF(c *gin.Context) {
	var payload request.DocumentoPDFRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentoPayload.HTTPStatus, errInvalidDocumentoPayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.GerarPDF(c.Request.Context(), payload.PedidoID)
	if err != nil {
		appErr := mapDocumentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=pedido-%s.pdf", payload.PedidoID))
	c.Header("X-Pdf-Key", doc.Key)
	c.Header("X-Pdf-Url", doc.URL)
	c.Data(http.StatusOK, "application/pdf", doc.Conteudo)
}

// ListarPDFs godoc
// @Summary  List previously generated PDFs for an order
// @Tags     documentos
// @Produce  json
// @Param    id path string true "Order id"
// @Success  200 {object} response.PDFListResponse
// @Security Bearer
// @Router   /pedidos/{id}/pdfs [get]
func (h *DocumentoHandler) ListarPDFs(c *gin.Context) {
	objects, err := h.usecase.ListarPDFs(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStoredObjects(objects))
}

func mapDocumentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPedidoID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentoFalhou):
		return pkg.NewDomainError("DOCUMENT_RENDER_FAILED", "Could not render the order document", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
