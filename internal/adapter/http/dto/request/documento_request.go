package request

// DocumentoPDFRequest selects the order to render.
type DocumentoPDFRequest struct {
	PedidoID string `json:"pedidoId" binding:"required"`
}
