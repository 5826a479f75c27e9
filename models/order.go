package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fixed set of states an order can be in. Status changes
// are admin-driven and deliberately unrestricted: any value from the enum can
// be set from any other, since orders are confirmed informally over WhatsApp.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

var orderStatuses = map[OrderStatus]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// ValidOrderStatus reports whether s is a member of the status enum.
func ValidOrderStatus(s OrderStatus) bool {
	return orderStatuses[s]
}

type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

type Order struct {
	ID              uint         `json:"id" gorm:"primaryKey"`
	OrderNumber     string       `json:"order_number" gorm:"uniqueIndex;not null"`
	CustomerName    string       `json:"customer_name" gorm:"not null"`
	CustomerPhone   string       `json:"customer_phone" gorm:"not null"`
	CustomerAddress string       `json:"customer_address"`
	DeliveryType    DeliveryType `json:"delivery_type" gorm:"not null"`
	Subtotal        float64      `json:"subtotal" gorm:"not null"`
	DeliveryFee     float64      `json:"delivery_fee" gorm:"default:0"`
	Total           float64      `json:"total" gorm:"not null"`
	Status          OrderStatus  `json:"status" gorm:"not null;default:'pending'"`
	Notes           string       `json:"notes"`
	Items           []OrderItem  `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// OrderItem is a write-once line of an order. Name and price are copied from
// the product at order time so the line survives later product edits or
// deletion.
type OrderItem struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	OrderID      uint     `json:"order_id" gorm:"not null"`
	ProductID    uint     `json:"product_id" gorm:"not null"`
	Product      *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	ProductName  string   `json:"product_name" gorm:"not null"`
	ProductPrice float64  `json:"product_price" gorm:"not null"`
	Quantity     int      `json:"quantity" gorm:"not null"`
	Total        float64  `json:"total" gorm:"not null"`
}

// NewOrderNumber builds a human-shareable order number: a date prefix plus a
// short random suffix, e.g. ORD-20250131-7F3A. Uniqueness is enforced by the
// database index; callers retry on collision.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}
