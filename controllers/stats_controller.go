package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/riley-tran/rileys-diner-api/config"
	"github.com/riley-tran/rileys-diner-api/models"
	"github.com/riley-tran/rileys-diner-api/services"
)

// GetDashboardStats handles GET /api/v1/dashboard/stats - the stat-card row
func GetDashboardStats(c *gin.Context) {
	db := config.GetDB()
	var orders []models.Order
	if err := db.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.ComputeStats(orders, time.Now()),
	})
}
