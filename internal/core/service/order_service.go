package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fastbite/ordering-api/internal/api/metrics"
	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// OrderService manages orders. Ownership of a specific order can only be
// decided after the row is fetched, so those checks live here rather than in
// route middleware: the requester must be an admin or the order's owner.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	now := time.Now().UTC()
	order := &domain.Order{
		UserID:          input.UserID,
		Status:          domain.OrderReceived,
		OrderType:       input.OrderType,
		DeliveryAddress: input.DeliveryAddress,
		PizzeriaAddress: input.PizzeriaAddress,
		Price:           input.Price,
		Items:           input.Items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(created.OrderType).Inc()
	s.logger.Info().Int64("order_id", created.ID).Int64("user_id", created.UserID).Str("order_type", created.OrderType).Msg("order created")
	return created, nil
}

func (s *OrderService) Get(ctx context.Context, requester domain.Principal, orderID int64) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !requester.IsAdmin() && !requester.Owns(order.UserID) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.repo.FindByUser(ctx, userID)
}

// Update applies a partial order update. Status changes must follow the
// order state machine.
func (s *OrderService) Update(ctx context.Context, orderID int64, input ports.UpdateOrderInput) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		next := domain.OrderStatus(*input.Status)
		if next != order.Status {
			if !order.Status.CanTransitionTo(next) {
				return nil, domain.ErrInvalidTransition
			}
			order.Status = next
		}
	}
	if input.OrderType != nil {
		order.OrderType = *input.OrderType
	}
	if input.DeliveryAddress != nil {
		order.DeliveryAddress = *input.DeliveryAddress
	}
	if input.PizzeriaAddress != nil {
		order.PizzeriaAddress = *input.PizzeriaAddress
	}
	if input.Price != nil {
		order.Price = *input.Price
	}
	order.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("order_id", orderID).Str("status", string(updated.Status)).Msg("order updated")
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, orderID int64) error {
	if err := s.repo.Delete(ctx, orderID); err != nil {
		return err
	}
	s.logger.Info().Int64("order_id", orderID).Msg("order deleted")
	return nil
}

func (s *OrderService) ListItems(ctx context.Context, requester domain.Principal, orderID int64) ([]domain.OrderItem, error) {
	if _, err := s.Get(ctx, requester, orderID); err != nil {
		return nil, err
	}
	return s.repo.FindItems(ctx, orderID)
}

func (s *OrderService) AddItem(ctx context.Context, requester domain.Principal, orderID int64, item domain.OrderItem) error {
	if _, err := s.Get(ctx, requester, orderID); err != nil {
		return err
	}
	return s.repo.AddItem(ctx, orderID, item)
}

func (s *OrderService) RemoveItem(ctx context.Context, requester domain.Principal, orderID, productID int64) error {
	if _, err := s.Get(ctx, requester, orderID); err != nil {
		return err
	}
	return s.repo.RemoveItem(ctx, orderID, productID)
}
