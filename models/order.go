package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/riley-tran/rileys-diner-api/utils"
)

// Order represents a single customer transaction record. One row carries an
// order through both lifecycles: the operational (kitchen) status while the
// order is being worked, and the settlement status once it has been closed
// out. Settlement stays empty until the order leaves the kitchen.
type Order struct {
	ID                 string            `gorm:"primaryKey" json:"id"` // e.g. "ORD-001"
	CustomerName       string            `gorm:"not null" json:"customer_name"`
	Type               OrderType         `gorm:"not null" json:"type"`
	Status             OperationalStatus `gorm:"not null;default:'pending'" json:"status"`
	Settlement         SettlementStatus  `gorm:"index" json:"settlement,omitempty"`
	Priority           Priority          `json:"priority"`
	TotalAmount        float64           `gorm:"check:total_amount >= 0" json:"total_amount"`
	PrepTimeMinutes    int               `json:"prep_time_minutes"`
	ElapsedTimeMinutes int               `json:"elapsed_time_minutes"`
	OrderDate          time.Time         `json:"order_date"`
	Items              []string          `gorm:"serializer:json" json:"items"`
	PaymentMethod      string            `json:"payment_method"`
	Notes              *string           `json:"notes,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	DeletedAt          gorm.DeletedAt    `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// IsSettled reports whether the order has left the operational lifecycle
// and belongs to the history view.
func (o Order) IsSettled() bool {
	return o.Settlement != ""
}

// ActiveOrderView is the kitchen-side projection of an order. It carries the
// operational status and the timing fields the urgency classifier needs.
type ActiveOrderView struct {
	ID                 string            `json:"id"`
	CustomerName       string            `json:"customer_name"`
	Type               OrderType         `json:"type"`
	Status             OperationalStatus `json:"status"`
	Priority           Priority          `json:"priority"`
	PrepTimeMinutes    int               `json:"prep_time_minutes"`
	ElapsedTimeMinutes int               `json:"elapsed_time_minutes"`
	Items              []string          `json:"items"`
	Notes              *string           `json:"notes,omitempty"`
	Urgency            UrgencyLevel      `json:"urgency"`
}

// HistoryOrderView is the settlement-side projection of an order. The
// display date is the human-readable form for on-screen tables; the CSV
// export uses its own machine-oriented timestamp format instead.
type HistoryOrderView struct {
	ID               string           `json:"id"`
	CustomerName     string           `json:"customer_name"`
	Type             OrderType        `json:"type"`
	Status           SettlementStatus `json:"status"`
	TotalAmount      float64          `json:"total_amount"`
	OrderDate        time.Time        `json:"order_date"`
	OrderDateDisplay string           `json:"order_date_display"`
	Items            []string         `json:"items"`
	PaymentMethod    string           `json:"payment_method"`
	Notes            *string          `json:"notes,omitempty"`
}

// ActiveView builds the kitchen projection of the order. Urgency is derived
// from the timing fields on every call, never stored.
func (o Order) ActiveView() ActiveOrderView {
	return ActiveOrderView{
		ID:                 o.ID,
		CustomerName:       o.CustomerName,
		Type:               o.Type,
		Status:             o.Status,
		Priority:           o.Priority,
		PrepTimeMinutes:    o.PrepTimeMinutes,
		ElapsedTimeMinutes: o.ElapsedTimeMinutes,
		Items:              o.Items,
		Notes:              o.Notes,
		Urgency:            ClassifyUrgency(o.PrepTimeMinutes, o.ElapsedTimeMinutes),
	}
}

// HistoryView builds the settlement projection of the order
func (o Order) HistoryView() HistoryOrderView {
	return HistoryOrderView{
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		Type:             o.Type,
		Status:           o.Settlement,
		TotalAmount:      o.TotalAmount,
		OrderDate:        o.OrderDate,
		OrderDateDisplay: utils.FormatDisplayDate(o.OrderDate),
		Items:            o.Items,
		PaymentMethod:    o.PaymentMethod,
		Notes:            o.Notes,
	}
}
