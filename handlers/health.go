package handlers

import (
	"net/http"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/utils"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports the last Redis health snapshot. Any unreachable
// client degrades the status to 503.
func HealthCheck(c *gin.Context) {
	status := utils.GetHealthStatus()
	for _, ok := range status.Redis {
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "health": status})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "health": status})
}
