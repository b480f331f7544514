package services

import (
	"time"

	"github.com/riley-tran/rileys-diner-api/models"
	"github.com/riley-tran/rileys-diner-api/utils"
)

// DashboardStats backs the stat-card row at the top of the dashboard
type DashboardStats struct {
	ActiveOrders       int     `json:"active_orders"`
	OverdueOrders      int     `json:"overdue_orders"`
	CompletedToday     int     `json:"completed_today"`
	RevenueToday       float64 `json:"revenue_today"`
	AvgPrepTimeMinutes float64 `json:"avg_prep_time_minutes"`
}

// ComputeStats derives the dashboard aggregates from the full order set.
// Like filtering, this is recomputed from scratch on every call.
func ComputeStats(orders []models.Order, now time.Time) DashboardStats {
	var stats DashboardStats
	var prepTotal int

	for _, o := range orders {
		if o.IsSettled() {
			if o.Settlement == models.SettlementCompleted && utils.SameCalendarDay(o.OrderDate, now) {
				stats.CompletedToday++
				stats.RevenueToday += o.TotalAmount
			}
			continue
		}

		stats.ActiveOrders++
		prepTotal += o.PrepTimeMinutes
		if o.Status == models.StatusOverdue ||
			models.ClassifyUrgency(o.PrepTimeMinutes, o.ElapsedTimeMinutes) == models.UrgencyCritical {
			stats.OverdueOrders++
		}
	}

	if stats.ActiveOrders > 0 {
		stats.AvgPrepTimeMinutes = float64(prepTotal) / float64(stats.ActiveOrders)
	}
	return stats
}
