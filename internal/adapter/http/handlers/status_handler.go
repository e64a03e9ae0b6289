package handlers

import (
	"net/http"

	response "sapataria_xpto/internal/adapter/http/dto/response"
	"sapataria_xpto/internal/adapter/http/middleware"
	"sapataria_xpto/internal/domain/workflow"
	"sapataria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// StatusHandler serves the kanban column catalog.

type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// GetColumns godoc
// @Summary  Ordered kanban column catalog for the caller's role
// @Tags     status
// @Produce  json
// @Success  200 {object} response.KanbanResponse
// @Security Bearer
// @Router   /status/columns [get]
func (h *StatusHandler) GetColumns(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	columns, err := workflow.Columns(claims.Role)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_ROLE", "Role has no kanban columns", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromColumnCatalog(columns))
}
