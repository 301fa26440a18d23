package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// OrderRepository persists orders and their product lines.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Init creates the orders and order_products tables.
func (r *OrderRepository) Init(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id               BIGSERIAL PRIMARY KEY,
			user_id          BIGINT NOT NULL REFERENCES users(id),
			status           TEXT NOT NULL,
			order_type       TEXT NOT NULL,
			delivery_address TEXT NOT NULL DEFAULT '',
			pizzeria_address TEXT NOT NULL DEFAULT '',
			price            NUMERIC(10,2) NOT NULL,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS order_products (
			order_id   BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id BIGINT NOT NULL REFERENCES products(id),
			quantity   INT NOT NULL DEFAULT 1,
			PRIMARY KEY (order_id, product_id)
		)`)
	if err != nil {
		return fmt.Errorf("init orders: %w", err)
	}
	return nil
}

const orderColumns = "id, user_id, status, order_type, delivery_address, pizzeria_address, price, created_at, updated_at"

// Create inserts the order and its items in one transaction so a failed item
// insert never leaves a half-written order behind.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, status, order_type, delivery_address, pizzeria_address, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+orderColumns,
		order.UserID, order.Status, order.OrderType, order.DeliveryAddress,
		order.PizzeriaAddress, order.Price, order.CreatedAt, order.UpdatedAt,
	)

	created, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_products (order_id, product_id, quantity)
			VALUES ($1, $2, $3)
			ON CONFLICT (order_id, product_id) DO UPDATE SET quantity = order_products.quantity + EXCLUDED.quantity`,
			created.ID, item.ProductID, item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit order tx: %w", err)
	}
	created.Items = order.Items
	return created, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	items, err := r.FindItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE orders
		SET status = $1, order_type = $2, delivery_address = $3, pizzeria_address = $4, price = $5, updated_at = $6
		WHERE id = $7
		RETURNING `+orderColumns,
		order.Status, order.OrderType, order.DeliveryAddress, order.PizzeriaAddress,
		order.Price, order.UpdatedAt, order.ID,
	)

	updated, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	return updated, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) FindItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, quantity FROM order_products
		WHERE order_id = $1 ORDER BY product_id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *OrderRepository) AddItem(ctx context.Context, orderID int64, item domain.OrderItem) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO order_products (order_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id, product_id) DO UPDATE SET quantity = order_products.quantity + EXCLUDED.quantity`,
		orderID, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("add order item: %w", err)
	}
	return nil
}

func (r *OrderRepository) RemoveItem(ctx context.Context, orderID, productID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM order_products WHERE order_id = $1 AND product_id = $2`, orderID, productID)
	if err != nil {
		return fmt.Errorf("remove order item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.OrderType, &o.DeliveryAddress,
		&o.PizzeriaAddress, &o.Price, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
