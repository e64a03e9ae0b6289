package routes

import (
	"sapataria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathClientes = "/clientes"

func addClienteRoutes(rg *gin.RouterGroup, clienteHandler *handlers.ClienteHandler) {
	clientes := rg.Group(PathClientes)
	{
		clientes.GET("", clienteHandler.ListClientes)
		clientes.POST("", clienteHandler.CreateCliente)
		clientes.GET("/:id", clienteHandler.GetCliente)
		clientes.PATCH("/:id", clienteHandler.UpdateCliente)
		clientes.DELETE("/:id", clienteHandler.DeleteCliente)
	}
}
