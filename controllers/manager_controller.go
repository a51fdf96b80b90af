package controllers

import (
	"net/http"

	"medimeal/services"

	"github.com/gin-gonic/gin"
)

type ManagerController struct {
	Svc *services.DashboardService
}

func NewManagerController(svc *services.DashboardService) *ManagerController {
	return &ManagerController{Svc: svc}
}

func (h *ManagerController) DashboardStats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ManagerController) Reports(c *gin.Context) {
	report, err := h.Svc.Report(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
