package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riley-tran/rileys-diner-api/services"
)

// ListNotifications handles GET /api/v1/notifications - the notifications
// panel feed plus the unread badge count
func ListNotifications(c *gin.Context) {
	store := services.GetNotificationStore()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"notifications": store.List(),
			"unread_count":  store.UnreadCount(),
		},
	})
}

// MarkAllNotificationsRead handles PUT /api/v1/notifications/read
func MarkAllNotificationsRead(c *gin.Context) {
	store := services.GetNotificationStore()
	store.MarkAllRead()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"unread_count": store.UnreadCount(),
		},
	})
}

// DismissNotification handles DELETE /api/v1/notifications/:id. Dismissing
// an unknown id is a no-op, matching the rest of the dashboard's posture.
func DismissNotification(c *gin.Context) {
	services.GetNotificationStore().Dismiss(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    nil,
	})
}
