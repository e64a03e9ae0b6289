package routes

import (
	"sapataria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPedidos = "/pedidos"
	PathStatus  = "/status"
)

func addPedidoRoutes(
	rg *gin.RouterGroup,
	pedidoHandler *handlers.PedidoHandler,
	statusHandler *handlers.StatusHandler,
	documentoHandler *handlers.DocumentoHandler,
	pagamentoHandler *handlers.PagamentoHandler,
) {
	pedidos := rg.Group(PathPedidos)
	{
		pedidos.GET("", pedidoHandler.ListPedidos)
		pedidos.POST("", pedidoHandler.CreatePedido)

		// Fixed segments before the :id wildcard.
		pedidos.GET("/kanban/status", pedidoHandler.ListKanban)
		pedidos.GET("/atribuidos", pedidoHandler.ListAtribuidos)
		pedidos.POST("/document/pdf", documentoHandler.GerarPDF)

		pedidos.GET("/:id", pedidoHandler.GetPedido)
		pedidos.PATCH("/:id", pedidoHandler.UpdatePedido)
		pedidos.PATCH("/:id/status", pedidoHandler.UpdateStatus)
		pedidos.DELETE("/:id", pedidoHandler.DeletePedido)
		pedidos.GET("/:id/pdfs", documentoHandler.ListarPDFs)
		pedidos.POST("/:id/sinal", pagamentoHandler.PagarSinal)
	}

	status := rg.Group(PathStatus)
	{
		status.GET("/columns", statusHandler.GetColumns)
	}
}
