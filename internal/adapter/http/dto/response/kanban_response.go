package response

import (
	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/domain/workflow"
)

// ColunaResponse is one kanban board column. Columns come back as an ordered
// array (not a JSON object) so the board order survives serialization.
type ColunaResponse struct {
	Status  string            `json:"status"`
	Pedidos []entities.Pedido `json:"pedidos"`
}

type KanbanResponse struct {
	Success bool             `json:"success"`
	Data    []ColunaResponse `json:"data"`
}

func FromColunas(colunas []workflow.ColunaKanban) KanbanResponse {
	data := make([]ColunaResponse, 0, len(colunas))
	for _, col := range colunas {
		pedidos := col.Pedidos
		if pedidos == nil {
			pedidos = []entities.Pedido{}
		}
		data = append(data, ColunaResponse{Status: col.Status, Pedidos: pedidos})
	}
	return KanbanResponse{Success: true, Data: data}
}

// FromColumnCatalog shapes the empty column catalog of /status/columns.
func FromColumnCatalog(columns []string) KanbanResponse {
	data := make([]ColunaResponse, 0, len(columns))
	for _, status := range columns {
		data = append(data, ColunaResponse{Status: status, Pedidos: []entities.Pedido{}})
	}
	return KanbanResponse{Success: true, Data: data}
}
