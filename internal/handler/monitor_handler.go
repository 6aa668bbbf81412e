package handler

import (
	"net/http"

	"github.com/isrcorgin/ISRC-Backend/internal/monitor"

	"github.com/gin-gonic/gin"
)

type MonitorHandler interface {
	GetStats(c *gin.Context)
}

type monitorHandler struct {
	monitorService *monitor.Service
}

func NewMonitorHandler(monitorService *monitor.Service) MonitorHandler {
	return &monitorHandler{monitorService: monitorService}
}

func (h *monitorHandler) GetStats(c *gin.Context) {
	stats := h.monitorService.GetStats()

	c.JSON(http.StatusOK, gin.H{
		"HttpStatusCode": http.StatusOK,
		"ResponseBody":   stats,
		"IsSuccess":      true,
		"Message":        "Server statistics retrieved successfully",
	})
}
