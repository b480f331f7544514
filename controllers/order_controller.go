package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/riley-tran/rileys-diner-api/config"
	"github.com/riley-tran/rileys-diner-api/models"
	"github.com/riley-tran/rileys-diner-api/services"
	"github.com/riley-tran/rileys-diner-api/utils"
)

// UpdateStatusRequest represents the request body for a status change.
// Cancelling an order (the overdue transition) destroys kitchen work, so it
// must be explicitly confirmed; declining leaves the order untouched.
type UpdateStatusRequest struct {
	Status  models.OperationalStatus `json:"status" binding:"required"`
	Confirm bool                     `json:"confirm"`
}

// ListActiveOrders handles GET /api/v1/orders/active - the kitchen view
func ListActiveOrders(c *gin.Context) {
	filter, ok := parseActiveFilter(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var orders []models.Order
	if err := db.Where("settlement = ?", "").Order("id").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load active orders",
			},
		})
		return
	}

	views := make([]models.ActiveOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, o.ActiveView())
	}
	filtered := services.FilterActive(views, filter)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"orders": filtered,
			"total":  len(filtered),
		},
	})
}

// ListOrderHistory handles GET /api/v1/orders/history - the settlement view
func ListOrderHistory(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"orders": filtered,
			"total":  len(filtered),
		},
	})
}

// GetOrder handles GET /api/v1/orders/:id - a single order record
func GetOrder(c *gin.Context) {
	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status. Two named
// actions come through here: mark-complete (direct) and cancel-to-overdue
// (requires the confirm flag).
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Unknown order status",
			},
		})
		return
	}

	if req.Status == models.StatusOverdue && !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CONFIRMATION_REQUIRED",
				"message": "Cancelling an order cannot be undone; resend with confirm set to true",
			},
		})
		return
	}

	db := config.GetDB()
	order, err := services.ApplyStatusUpdate(db, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ORDER_NOT_FOUND",
					"message": "Order not found",
				},
			})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_TRANSITION",
					"message": err.Error(),
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to update order status",
				},
			})
		}
		return
	}

	notifyStatusChange(order)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order.ActiveView(),
	})
}

// notifyStatusChange feeds the dashboard notification panel after a
// successful status update
func notifyStatusChange(order *models.Order) {
	store := services.GetNotificationStore()
	switch order.Status {
	case models.StatusCompleted:
		store.Add(models.NotificationOrderUpdate, "Order "+order.ID+" has been completed", time.Now())
	case models.StatusOverdue:
		store.Add(models.NotificationOverdue, "Order "+order.ID+" has been canceled as overdue", time.Now())
	}
}

// OpenOrderDetail handles POST /api/v1/orders/:id/select - opens the detail
// view on an order (row activation)
func OpenOrderDetail(c *gin.Context) {
	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	services.GetSelectionState().Open(order.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetOrderDetail handles GET /api/v1/orders/selection - returns the order
// currently open in the detail view, resolved against the live list so any
// status change made since opening is reflected.
func GetOrderDetail(c *gin.Context) {
	id, open := services.GetSelectionState().SelectedID()
	if !open {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    nil,
		})
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, "id = ?", id).Error; err != nil {
		// The selected order vanished from the backing list; treat it as
		// a closed detail view rather than an error
		services.GetSelectionState().Dismiss()
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// DismissOrderDetail handles DELETE /api/v1/orders/selection - closes the
// detail view. Dismissing when nothing is open is a no-op.
func DismissOrderDetail(c *gin.Context) {
	services.GetSelectionState().Dismiss()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    nil,
	})
}

// parseActiveFilter reads the kitchen-view filter query parameters. It
// writes the error response itself and reports ok=false on bad input.
func parseActiveFilter(c *gin.Context) (services.ActiveFilter, bool) {
	filter := services.ActiveFilter{SearchTerm: c.Query("search")}

	if raw := c.Query("type"); raw != "" {
		t := models.OrderType(raw)
		if !t.IsValid() {
			respondBadFilter(c, "Unknown order type")
			return filter, false
		}
		filter.Type = &t
	}

	if raw := c.Query("status"); raw != "" {
		s := models.OperationalStatus(raw)
		if !s.IsValid() {
			respondBadFilter(c, "Unknown order status")
			return filter, false
		}
		filter.Status = &s
	}

	return filter, true
}

// parseHistoryFilter reads the history-view filter query parameters. It
// writes the error response itself and reports ok=false on bad input.
func parseHistoryFilter(c *gin.Context) (services.HistoryFilter, bool) {
	filter := services.HistoryFilter{SearchTerm: c.Query("search")}

	if raw := c.Query("type"); raw != "" {
		t := models.OrderType(raw)
		if !t.IsValid() {
			respondBadFilter(c, "Unknown order type")
			return filter, false
		}
		filter.Type = &t
	}

	if raw := c.Query("status"); raw != "" {
		s := models.SettlementStatus(raw)
		if !s.IsValid() {
			respondBadFilter(c, "Unknown settlement status")
			return filter, false
		}
		filter.Status = &s
	}

	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(utils.CalendarDayLayout, raw)
		if err != nil {
			respondBadFilter(c, "Date must be in YYYY-MM-DD format")
			return filter, false
		}
		filter.Date = &d
	}

	return filter, true
}

func respondBadFilter(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": message,
		},
	})
}
