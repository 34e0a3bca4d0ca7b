package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus is the workflow state of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusRejected  OrderStatus = "rejected"
)

// IsValid reports whether the status is one of the recognized workflow states
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Order represents a customer order. FoodItems and Quantity hold the ordered
// item names and per-item counts as plain text: an order is a snapshot, not a
// foreign-key reference into the menu, so later menu edits never touch it.
type Order struct {
	ID           int         `json:"id" gorm:"primaryKey"`
	CustomerName string      `json:"customerName" gorm:"not null"`
	PhoneNumber  string      `json:"phoneNumber" gorm:"not null"`
	Total        float64     `json:"total" gorm:"not null"`
	Status       OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	OrderDate    time.Time   `json:"orderDate" gorm:"not null"`
	FoodItems    string      `json:"foodItems" gorm:"size:1000"`
	Quantity     string      `json:"quantity" gorm:"size:500"`
}

// TableName overrides the default table name used by GORM
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate stamps the order with the persistence-time clock reading.
// Caller-supplied values are discarded so OrderDate is always server-assigned.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	o.OrderDate = time.Now()
	if o.Status == "" {
		o.Status = StatusPending
	}
	return nil
}
