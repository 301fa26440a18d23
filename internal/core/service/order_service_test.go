package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

type stubOrderRepo struct {
	orders  map[int64]*domain.Order
	updated *domain.Order
}

func newStubOrderRepo(orders ...*domain.Order) *stubOrderRepo {
	m := make(map[int64]*domain.Order)
	for _, o := range orders {
		m[o.ID] = o
	}
	return &stubOrderRepo{orders: m}
}

func (s *stubOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	order.ID = int64(len(s.orders) + 1)
	s.orders[order.ID] = order
	return order, nil
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *stubOrderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) FindByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	s.orders[order.ID] = order
	s.updated = order
	return order, nil
}

func (s *stubOrderRepo) Delete(ctx context.Context, id int64) error {
	delete(s.orders, id)
	return nil
}

func (s *stubOrderRepo) FindItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o.Items, nil
}

func (s *stubOrderRepo) AddItem(ctx context.Context, orderID int64, item domain.OrderItem) error {
	return nil
}

func (s *stubOrderRepo) RemoveItem(ctx context.Context, orderID, productID int64) error {
	return nil
}

var (
	owner    = domain.Principal{UserID: 10, Role: domain.RoleUser}
	stranger = domain.Principal{UserID: 11, Role: domain.RoleUser}
	admin    = domain.Principal{UserID: 1, Role: domain.RoleAdmin}
)

func TestOrderService_Create_SetsInitialStatus(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zerolog.Nop())

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID:    10,
		OrderType: domain.OrderTypePickup,
		Price:     19.90,
		Items:     []domain.OrderItem{{ProductID: 1, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.Status != domain.OrderReceived {
		t.Fatalf("expected status received, got %s", order.Status)
	}
	if order.UserID != 10 {
		t.Fatalf("expected user 10, got %d", order.UserID)
	}
}

func TestOrderService_Get_Ownership(t *testing.T) {
	repo := newStubOrderRepo(&domain.Order{ID: 5, UserID: 10, Status: domain.OrderReceived})
	svc := NewOrderService(repo, zerolog.Nop())

	if _, err := svc.Get(context.Background(), owner, 5); err != nil {
		t.Fatalf("owner should see own order: %v", err)
	}
	if _, err := svc.Get(context.Background(), admin, 5); err != nil {
		t.Fatalf("admin should see any order: %v", err)
	}
	if _, err := svc.Get(context.Background(), stranger, 5); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}
}

func TestOrderService_Get_NotFound(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), admin, 99); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_Update_ValidTransition(t *testing.T) {
	repo := newStubOrderRepo(&domain.Order{ID: 5, UserID: 10, Status: domain.OrderReceived})
	svc := NewOrderService(repo, zerolog.Nop())

	status := string(domain.OrderPreparing)
	order, err := svc.Update(context.Background(), 5, ports.UpdateOrderInput{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if order.Status != domain.OrderPreparing {
		t.Fatalf("expected preparing, got %s", order.Status)
	}
}

func TestOrderService_Update_InvalidTransition(t *testing.T) {
	cases := []struct {
		from domain.OrderStatus
		to   domain.OrderStatus
	}{
		{domain.OrderReceived, domain.OrderDelivered},
		{domain.OrderReady, domain.OrderCancelled},
		{domain.OrderDelivered, domain.OrderPreparing},
		{domain.OrderCancelled, domain.OrderReceived},
	}

	for _, tc := range cases {
		repo := newStubOrderRepo(&domain.Order{ID: 5, UserID: 10, Status: tc.from})
		svc := NewOrderService(repo, zerolog.Nop())

		status := string(tc.to)
		_, err := svc.Update(context.Background(), 5, ports.UpdateOrderInput{Status: &status})
		if !errors.Is(err, domain.ErrInvalidTransition) {
			t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", tc.from, tc.to, err)
		}
	}
}

func TestOrderService_Update_SameStatusIsNoop(t *testing.T) {
	repo := newStubOrderRepo(&domain.Order{ID: 5, UserID: 10, Status: domain.OrderDelivered})
	svc := NewOrderService(repo, zerolog.Nop())

	status := string(domain.OrderDelivered)
	order, err := svc.Update(context.Background(), 5, ports.UpdateOrderInput{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if order.Status != domain.OrderDelivered {
		t.Fatalf("expected delivered, got %s", order.Status)
	}
}

func TestOrderService_ListItems_EnforcesOwnership(t *testing.T) {
	repo := newStubOrderRepo(&domain.Order{
		ID: 5, UserID: 10, Status: domain.OrderReceived,
		Items: []domain.OrderItem{{ProductID: 3, Quantity: 1}},
	})
	svc := NewOrderService(repo, zerolog.Nop())

	items, err := svc.ListItems(context.Background(), owner, 5)
	if err != nil {
		t.Fatalf("owner list items: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != 3 {
		t.Fatalf("unexpected items: %+v", items)
	}

	if _, err := svc.ListItems(context.Background(), stranger, 5); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
