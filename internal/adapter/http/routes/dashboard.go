package routes

import (
	"sapataria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathDashboard = "/dashboard"

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	rg.GET(PathDashboard, dashboardHandler.GetDashboard)
}
