package ports

import (
	"context"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// OrderRepository defines persistence for orders and their items.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	FindItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	AddItem(ctx context.Context, orderID int64, item domain.OrderItem) error
	RemoveItem(ctx context.Context, orderID, productID int64) error
}

// CreateOrderInput carries the fields for a new order. UserID always comes
// from the authenticated principal, never from the payload.
type CreateOrderInput struct {
	UserID          int64
	OrderType       string
	DeliveryAddress string
	PizzeriaAddress string
	Price           float64
	Items           []domain.OrderItem
}

// UpdateOrderInput carries a partial order update (admin only).
type UpdateOrderInput struct {
	Status          *string
	OrderType       *string
	DeliveryAddress *string
	PizzeriaAddress *string
	Price           *float64
}

// OrderService manages orders. Operations that expose a specific order take
// the requesting principal so ownership can be enforced against the fetched
// row.
type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, requester domain.Principal, orderID int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	Update(ctx context.Context, orderID int64, input UpdateOrderInput) (*domain.Order, error)
	Delete(ctx context.Context, orderID int64) error
	ListItems(ctx context.Context, requester domain.Principal, orderID int64) ([]domain.OrderItem, error)
	AddItem(ctx context.Context, requester domain.Principal, orderID int64, item domain.OrderItem) error
	RemoveItem(ctx context.Context, requester domain.Principal, orderID, productID int64) error
}
