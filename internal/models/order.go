package models

import (
	"strings"
	"time"
)

// OrderStatus represents the triage state of a pickup order.
type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "pending"
	OrderStatusAcknowledged OrderStatus = "acknowledged"
	OrderStatusCompleted    OrderStatus = "completed"
)

// ValidOrderStatus reports whether status is one of the triage states.
// The workflow is intended to run pending -> acknowledged -> completed,
// but any value in the set is accepted regardless of the current state.
func ValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderStatusPending, OrderStatusAcknowledged, OrderStatusCompleted:
		return true
	}
	return false
}

// Order is a customer pickup order. Line items and the total are a
// snapshot taken at creation time; later menu edits never touch them.
// Day and week are denormalized copies of the menu slot the order was
// placed against, with no referential tie to a published menu.
type Order struct {
	ID           string          `gorm:"primary_key" json:"id"`
	CustomerName string          `json:"customerName"`
	PhoneNumber  string          `json:"phoneNumber"`
	PickupTime   string          `json:"pickupTime"`
	Items        []OrderLineItem `gorm:"foreignkey:OrderID" json:"items"`
	TotalPrice   float64         `json:"totalPrice"`
	Status       string          `json:"status"`
	Day          string          `json:"day"`
	Week         string          `json:"week"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// OrderLineItem is one dish on an order. MenuItemID is informational
// only; the name and price here are the snapshot that counts.
type OrderLineItem struct {
	ID         uint    `gorm:"primary_key" json:"-"`
	OrderID    string  `gorm:"index" json:"-"`
	MenuItemID string  `json:"menuItemId,omitempty"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// ValidateOrderLineItem validates a single line item.
func ValidateOrderLineItem(item *OrderLineItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return NewValidationError("order item name is required")
	}
	if item.Price < 0 {
		return NewValidationError("order item price must not be negative")
	}
	if item.Quantity < 1 {
		return NewValidationError("order item quantity must be at least 1")
	}
	return nil
}

// ValidateOrder validates a new order before it enters the ledger.
// The total price is checked for sign only: it is the caller's asserted
// total and is deliberately not reconciled against the line items.
func ValidateOrder(order *Order) error {
	if strings.TrimSpace(order.CustomerName) == "" {
		return NewValidationError("customer name is required")
	}
	if strings.TrimSpace(order.PhoneNumber) == "" {
		return NewValidationError("phone number is required")
	}
	if strings.TrimSpace(order.PickupTime) == "" {
		return NewValidationError("pickup time is required")
	}
	if !ValidDay(order.Day) {
		return NewValidationError("invalid day: %s", order.Day)
	}
	if !ValidWeek(order.Week) {
		return NewValidationError("invalid week: %s", order.Week)
	}
	if len(order.Items) == 0 {
		return NewValidationError("order must contain at least one item")
	}
	for i := range order.Items {
		if err := ValidateOrderLineItem(&order.Items[i]); err != nil {
			return err
		}
	}
	if order.TotalPrice < 0 {
		return NewValidationError("total price must not be negative")
	}
	return nil
}
