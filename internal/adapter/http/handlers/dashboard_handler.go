package handlers

import (
	"errors"
	"net/http"

	"sapataria_xpto/internal/adapter/http/middleware"
	"sapataria_xpto/internal/usecase"
	"sapataria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated board for the frontend home screen.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard godoc
// @Summary  Aggregated stats, recent orders and caller profile
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} usecase.DashboardData
// @Security Bearer
// @Router   /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	data, err := h.usecase.GetDashboard(c.Request.Context(), claims.Sub)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, data)
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
