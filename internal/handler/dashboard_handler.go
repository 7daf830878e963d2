package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hygienicomfort/shop_api/internal/service"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /v1/dashboard. Monetary figures are masked for
// accounts without the admin role.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.GetString("role"))
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Dashboard stats retrieved", stats)
}
