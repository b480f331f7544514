package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/riley-tran/rileys-diner-api/models"
)

// NotificationStore holds the dashboard notification feed. Notifications are
// session-scoped: they live in memory, seeded once, and only change through
// the narrow API below.
type NotificationStore struct {
	mu            sync.RWMutex
	notifications []models.Notification
}

// NewNotificationStore creates an empty notification store
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{}
}

// Seed replaces the store contents with the given notifications
func (s *NotificationStore) Seed(notifications []models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]models.Notification, len(notifications))
	copy(s.notifications, notifications)
}

// Add appends a new unread notification and returns it
func (s *NotificationStore) Add(nType models.NotificationType, message string, now time.Time) models.Notification {
	n := models.Notification{
		ID:        uuid.NewString(),
		Type:      nType,
		Message:   message,
		Timestamp: now,
		Read:      false,
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()

	return n
}

// List returns a copy of all notifications, newest first
func (s *NotificationStore) List() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Notification, len(s.notifications))
	// Stored oldest first; reverse for display
	for i, n := range s.notifications {
		result[len(s.notifications)-1-i] = n
	}
	return result
}

// UnreadCount returns the number of unread notifications
func (s *NotificationStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAllRead marks every notification as read
func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// Dismiss removes a notification by id. An unknown id is a no-op.
func (s *NotificationStore) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

var notificationStoreInstance = NewNotificationStore()

// GetNotificationStore returns the notification store instance
func GetNotificationStore() *NotificationStore {
	return notificationStoreInstance
}

// SetNotificationStore sets the notification store instance (primarily for testing)
func SetNotificationStore(s *NotificationStore) {
	notificationStoreInstance = s
}

// SeedNotifications loads the default notification feed shown on a fresh
// dashboard session
func SeedNotifications(store *NotificationStore, now time.Time) {
	store.Seed([]models.Notification{
		{
			ID:        uuid.NewString(),
			Type:      models.NotificationSystemAlert,
			Message:   "Low inventory alert: Chicken Wings",
			Timestamp: now.Add(-15 * time.Minute),
			Read:      true,
		},
		{
			ID:        uuid.NewString(),
			Type:      models.NotificationOrderUpdate,
			Message:   "Order ORD-101 has been completed",
			Timestamp: now.Add(-10 * time.Minute),
			Read:      false,
		},
		{
			ID:        uuid.NewString(),
			Type:      models.NotificationOverdue,
			Message:   "Order ORD-003 is overdue by 15 minutes",
			Timestamp: now.Add(-5 * time.Minute),
			Read:      false,
		},
	})
}
