package models

// OrderType distinguishes how the customer receives the order
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeout  OrderType = "takeout"
	OrderTypeDelivery OrderType = "delivery"
)

// IsValid reports whether the order type is one of the known values
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeDineIn, OrderTypeTakeout, OrderTypeDelivery:
		return true
	}
	return false
}

// OperationalStatus is the kitchen-side lifecycle of an order. It is a
// separate vocabulary from SettlementStatus: an order is "completed" in the
// kitchen before it is settled in history.
type OperationalStatus string

const (
	StatusPending    OperationalStatus = "pending"
	StatusInProgress OperationalStatus = "in-progress"
	StatusCompleted  OperationalStatus = "completed"
	StatusOverdue    OperationalStatus = "overdue"
)

// IsValid reports whether the operational status is one of the known values
func (s OperationalStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

// SettlementStatus is the history-side lifecycle of an order. All three
// values are terminal.
type SettlementStatus string

const (
	SettlementCompleted SettlementStatus = "completed"
	SettlementCanceled  SettlementStatus = "canceled"
	SettlementRefunded  SettlementStatus = "refunded"
)

// IsValid reports whether the settlement status is one of the known values
func (s SettlementStatus) IsValid() bool {
	switch s {
	case SettlementCompleted, SettlementCanceled, SettlementRefunded:
		return true
	}
	return false
}

// Priority is the kitchen's triage level for an active order
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether the priority is one of the known values
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
