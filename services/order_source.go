package services

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/riley-tran/rileys-diner-api/models"
)

// OrderSource supplies the initial order dataset. It stands in for the
// external system of record (POS feed, ordering API); the dashboard core
// never cares where the rows came from, so a real backend can be swapped in
// without touching anything downstream.
type OrderSource interface {
	Orders() ([]models.Order, error)
}

// StaticOrderSource serves a fixed in-memory dataset. This is the default
// source for development and demos.
type StaticOrderSource struct{}

// NewStaticOrderSource creates a static order source
func NewStaticOrderSource() *StaticOrderSource {
	return &StaticOrderSource{}
}

// Orders returns the fixed seed dataset
func (s *StaticOrderSource) Orders() ([]models.Order, error) {
	burgerNotes := "No onions in burger"
	extraSauce := "Extra dipping sauce"
	return []models.Order{
		// Kitchen (unsettled) orders
		{
			ID:                 "ORD-001",
			CustomerName:       "John Doe",
			Type:               models.OrderTypeDineIn,
			Status:             models.StatusInProgress,
			Priority:           models.PriorityHigh,
			PrepTimeMinutes:    30,
			ElapsedTimeMinutes: 25,
			OrderDate:          time.Date(2024, 1, 16, 12, 10, 0, 0, time.UTC),
			Items:              []string{"Burger", "Fries", "Coke"},
			Notes:              &burgerNotes,
		},
		{
			ID:                 "ORD-002",
			CustomerName:       "Jane Smith",
			Type:               models.OrderTypeTakeout,
			Status:             models.StatusPending,
			Priority:           models.PriorityMedium,
			PrepTimeMinutes:    20,
			ElapsedTimeMinutes: 5,
			OrderDate:          time.Date(2024, 1, 16, 12, 25, 0, 0, time.UTC),
			Items:              []string{"Pizza", "Salad"},
		},
		{
			ID:                 "ORD-003",
			CustomerName:       "Carlos Rivera",
			Type:               models.OrderTypeDelivery,
			Status:             models.StatusOverdue,
			Priority:           models.PriorityHigh,
			PrepTimeMinutes:    25,
			ElapsedTimeMinutes: 40,
			OrderDate:          time.Date(2024, 1, 16, 11, 45, 0, 0, time.UTC),
			Items:              []string{"Chicken Wings", "Garlic Bread"},
			Notes:              &extraSauce,
		},
		{
			ID:                 "ORD-004",
			CustomerName:       "Priya Patel",
			Type:               models.OrderTypeDineIn,
			Status:             models.StatusPending,
			Priority:           models.PriorityLow,
			PrepTimeMinutes:    15,
			ElapsedTimeMinutes: 2,
			OrderDate:          time.Date(2024, 1, 16, 12, 40, 0, 0, time.UTC),
			Items:              []string{"Caesar Salad", "Iced Tea"},
		},
		// Settled orders (history view)
		{
			ID:            "ORD-101",
			CustomerName:  "John Doe",
			Type:          models.OrderTypeDineIn,
			Status:        models.StatusCompleted,
			Settlement:    models.SettlementCompleted,
			TotalAmount:   54.99,
			OrderDate:     time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
			Items:         []string{"Burger", "Fries", "Coke"},
			PaymentMethod: "Credit Card",
			Notes:         &burgerNotes,
		},
		{
			ID:            "ORD-102",
			CustomerName:  "Jane Smith",
			Type:          models.OrderTypeTakeout,
			Status:        models.StatusCompleted,
			Settlement:    models.SettlementCanceled,
			TotalAmount:   32.50,
			OrderDate:     time.Date(2024, 1, 14, 18, 45, 0, 0, time.UTC),
			Items:         []string{"Pizza", "Salad"},
			PaymentMethod: "Cash",
		},
		{
			ID:            "ORD-103",
			CustomerName:  "Aisha Brown",
			Type:          models.OrderTypeDelivery,
			Status:        models.StatusCompleted,
			Settlement:    models.SettlementRefunded,
			TotalAmount:   21.75,
			OrderDate:     time.Date(2024, 1, 14, 13, 5, 0, 0, time.UTC),
			Items:         []string{"Fish Tacos", "Lemonade"},
			PaymentMethod: "Credit Card",
		},
	}, nil
}

// SeedOrders fills an empty orders table from the given source. An already
// populated table is left alone so restarts don't duplicate data. Duplicate
// ids in the source are rejected outright since id is the sole identity key
// for every lookup downstream.
func SeedOrders(db *gorm.DB, source OrderSource) error {
	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check orders table: %w", err)
	}
	if count > 0 {
		log.Printf("Orders table already has %d rows, skipping seed", count)
		return nil
	}

	orders, err := source.Orders()
	if err != nil {
		return fmt.Errorf("failed to fetch seed orders: %w", err)
	}

	seen := make(map[string]bool, len(orders))
	for _, o := range orders {
		if seen[o.ID] {
			return fmt.Errorf("duplicate order id in seed data: %s", o.ID)
		}
		seen[o.ID] = true
	}

	if err := db.Create(&orders).Error; err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	log.Printf("Seeded %d orders", len(orders))
	return nil
}
