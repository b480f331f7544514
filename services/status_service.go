package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/riley-tran/rileys-diner-api/models"
)

// ErrInvalidTransition is returned when a status change is not allowed by
// the operational lifecycle.
var ErrInvalidTransition = errors.New("invalid status transition")

// allowedTransitions is the operational lifecycle as a directed graph.
// Completed is terminal; an overdue order can still be finished.
var allowedTransitions = map[models.OperationalStatus][]models.OperationalStatus{
	models.StatusPending:    {models.StatusInProgress, models.StatusCompleted, models.StatusOverdue},
	models.StatusInProgress: {models.StatusCompleted, models.StatusOverdue},
	models.StatusOverdue:    {models.StatusCompleted},
	models.StatusCompleted:  {},
}

// CanTransition reports whether from -> to is an allowed operational status
// change. Setting a status to itself is always allowed.
func CanTransition(from, to models.OperationalStatus) bool {
	if from == to {
		return true
	}
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// UpdateStatus returns a new slice in which the order with the given id has
// its status replaced and every other field, and every other order, is
// untouched. An unknown id is a no-op: the returned slice equals the input.
// The input slice itself is never mutated, so callers holding the previous
// snapshot keep a consistent view.
func UpdateStatus(orders []models.Order, id string, newStatus models.OperationalStatus) []models.Order {
	updated := make([]models.Order, len(orders))
	copy(updated, orders)
	for i := range updated {
		if updated[i].ID == id {
			updated[i].Status = newStatus
			break
		}
	}
	return updated
}

// ApplyStatusUpdate persists a status change for a single order, enforcing
// the operational lifecycle. It returns the updated order, or
// gorm.ErrRecordNotFound / ErrInvalidTransition for the two failure cases.
func ApplyStatusUpdate(db *gorm.DB, id string, newStatus models.OperationalStatus) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if !CanTransition(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, newStatus)
	}

	if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	order.Status = newStatus

	return &order, nil
}
