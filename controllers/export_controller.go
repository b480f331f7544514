package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riley-tran/rileys-diner-api/config"
	"github.com/riley-tran/rileys-diner-api/models"
	"github.com/riley-tran/rileys-diner-api/services"
)

// ExportOrderHistory handles GET /api/v1/orders/history/export - serializes
// the currently filtered history subset as CSV, writes it to the configured
// export sink, and returns the same bytes as a file download. The same
// filter query parameters as the history listing apply, so the export always
// matches what the table shows. An empty filtered set yields an empty file.
func ExportOrderHistory(c *gin.Context) {
	filter, ok := parseHistoryFilter(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var orders []models.Order
	if err := db.Where("settlement <> ?", "").Order("order_date desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load order history",
			},
		})
		return
	}

	views := make([]models.HistoryOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, o.HistoryView())
	}
	filtered := services.FilterHistory(views, filter)

	result, err := services.GetExportService().ExportHistory(filtered)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORT_ERROR",
				"message": "Failed to write export",
			},
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, services.CSVMimeType, []byte(result.Content))
}
