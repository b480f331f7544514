package models

import "time"

// NotificationType categorizes dashboard notifications for display treatment
type NotificationType string

const (
	NotificationOrderUpdate NotificationType = "order_update"
	NotificationSystemAlert NotificationType = "system_alert"
	NotificationOverdue     NotificationType = "overdue"
)

// Notification represents an entry in the dashboard notifications panel.
// Notifications are session-scoped view state, not persisted rows, so the
// model carries no gorm mapping.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
