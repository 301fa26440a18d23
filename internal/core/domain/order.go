package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderReceived  OrderStatus = "received"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Order types supported by the kitchen.
const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
)

// validTransitions defines the allowed state machine transitions.
// Cancellation is only possible before the kitchen finishes the order.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderReceived:  {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderDelivered},
}

var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is one product line on an order.
type OrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Order is the aggregate root for a customer order.
type Order struct {
	ID              int64       `json:"order_id"`
	UserID          int64       `json:"user_id"`
	Status          OrderStatus `json:"status"`
	OrderType       string      `json:"order_type"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	PizzeriaAddress string      `json:"pizzeria_address,omitempty"`
	Price           float64     `json:"price"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
