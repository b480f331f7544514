package services

import (
	"strings"
	"time"

	"github.com/riley-tran/rileys-diner-api/models"
	"github.com/riley-tran/rileys-diner-api/utils"
)

// Filtering is a pure predicate scan: every call walks the input and keeps
// the orders that satisfy all active constraints, preserving relative order.
// Nothing is cached across calls; the working set is small and staleness is
// unacceptable. An unset (nil) constraint matches everything — nil pointers
// are the one canonical "no filter" sentinel in this codebase.

// HistoryFilter is the filter state for the order-history view
type HistoryFilter struct {
	SearchTerm string
	Type       *models.OrderType
	Status     *models.SettlementStatus
	Date       *time.Time
}

// Clear resets all four filter fields in one step
func (f *HistoryFilter) Clear() {
	*f = HistoryFilter{}
}

// IsActive reports whether any constraint is set
func (f HistoryFilter) IsActive() bool {
	return f.SearchTerm != "" || f.Type != nil || f.Status != nil || f.Date != nil
}

// ActiveFilter is the filter state for the kitchen (active orders) view.
// The kitchen view has no date constraint; active orders are all "today".
type ActiveFilter struct {
	SearchTerm string
	Type       *models.OrderType
	Status     *models.OperationalStatus
}

// Clear resets all filter fields in one step
func (f *ActiveFilter) Clear() {
	*f = ActiveFilter{}
}

// IsActive reports whether any constraint is set
func (f ActiveFilter) IsActive() bool {
	return f.SearchTerm != "" || f.Type != nil || f.Status != nil
}

// FilterHistory returns the subset of history orders satisfying every active
// constraint in f. The input is never modified and relative order is kept.
func FilterHistory(orders []models.HistoryOrderView, f HistoryFilter) []models.HistoryOrderView {
	result := make([]models.HistoryOrderView, 0, len(orders))
	for _, o := range orders {
		if !matchesSearch(o.ID, o.CustomerName, f.SearchTerm) {
			continue
		}
		if f.Type != nil && o.Type != *f.Type {
			continue
		}
		if f.Status != nil && o.Status != *f.Status {
			continue
		}
		if f.Date != nil && !utils.SameCalendarDay(o.OrderDate, *f.Date) {
			continue
		}
		result = append(result, o)
	}
	return result
}

// FilterActive returns the subset of active orders satisfying every active
// constraint in f. The input is never modified and relative order is kept.
func FilterActive(orders []models.ActiveOrderView, f ActiveFilter) []models.ActiveOrderView {
	result := make([]models.ActiveOrderView, 0, len(orders))
	for _, o := range orders {
		if !matchesSearch(o.ID, o.CustomerName, f.SearchTerm) {
			continue
		}
		if f.Type != nil && o.Type != *f.Type {
			continue
		}
		if f.Status != nil && o.Status != *f.Status {
			continue
		}
		result = append(result, o)
	}
	return result
}

// matchesSearch does a case-insensitive substring match against the order id
// or the customer name. An empty term matches everything.
func matchesSearch(id, customerName, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(id), needle) ||
		strings.Contains(strings.ToLower(customerName), needle)
}
