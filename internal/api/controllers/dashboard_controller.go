package controllers

import (
	"github.com/gin-gonic/gin"

	"gymflow/internal/services"
	"gymflow/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func (dc *DashboardController) StatsHandler(c *gin.Context) {
	stats, err := dc.dashboardService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Fetched dashboard stats successfully")
}
