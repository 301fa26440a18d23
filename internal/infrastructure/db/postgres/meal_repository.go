package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// MealRepository persists meals and their product links.
type MealRepository struct {
	pool *pgxpool.Pool
}

func NewMealRepository(pool *pgxpool.Pool) *MealRepository {
	return &MealRepository{pool: pool}
}

// Init creates the meals and meals_products tables.
func (r *MealRepository) Init(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS meals (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			price      NUMERIC(10,2) NOT NULL,
			filename   TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS meals_products (
			meal_id    BIGINT NOT NULL REFERENCES meals(id) ON DELETE CASCADE,
			product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			PRIMARY KEY (meal_id, product_id)
		)`)
	if err != nil {
		return fmt.Errorf("init meals: %w", err)
	}
	return nil
}

const mealColumns = "id, name, price, filename, created_at, updated_at"

func (r *MealRepository) Create(ctx context.Context, meal *domain.Meal) (*domain.Meal, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO meals (name, price, filename, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+mealColumns,
		meal.Name, meal.Price, meal.Filename, meal.CreatedAt, meal.UpdatedAt,
	)

	created, err := scanMeal(row)
	if err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}
	return created, nil
}

func (r *MealRepository) FindByID(ctx context.Context, id int64) (*domain.Meal, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+mealColumns+` FROM meals WHERE id = $1`, id)
	meal, err := scanMeal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMealNotFound
		}
		return nil, fmt.Errorf("find meal: %w", err)
	}
	return meal, nil
}

func (r *MealRepository) FindAll(ctx context.Context) ([]domain.Meal, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+mealColumns+` FROM meals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select meals: %w", err)
	}
	defer rows.Close()

	var meals []domain.Meal
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, *m)
	}
	return meals, rows.Err()
}

func (r *MealRepository) FindProducts(ctx context.Context, mealID int64) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.name, p.ingredients, p.price, p.category_id, p.description, p.filename, p.created_at, p.updated_at
		FROM products p
		JOIN meals_products mp ON mp.product_id = p.id
		WHERE mp.meal_id = $1
		ORDER BY p.id`, mealID)
	if err != nil {
		return nil, fmt.Errorf("select meal products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *MealRepository) Update(ctx context.Context, meal *domain.Meal) (*domain.Meal, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE meals
		SET name = $1, price = $2, filename = $3, updated_at = $4
		WHERE id = $5
		RETURNING `+mealColumns,
		meal.Name, meal.Price, meal.Filename, meal.UpdatedAt, meal.ID,
	)

	updated, err := scanMeal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMealNotFound
		}
		return nil, fmt.Errorf("update meal: %w", err)
	}
	return updated, nil
}

func (r *MealRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}

func (r *MealRepository) AddProduct(ctx context.Context, mealID, productID int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO meals_products (meal_id, product_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, mealID, productID)
	if err != nil {
		return fmt.Errorf("add meal product: %w", err)
	}
	return nil
}

func (r *MealRepository) RemoveProduct(ctx context.Context, mealID, productID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM meals_products WHERE meal_id = $1 AND product_id = $2`, mealID, productID)
	if err != nil {
		return fmt.Errorf("remove meal product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func scanMeal(row pgx.Row) (*domain.Meal, error) {
	var m domain.Meal
	err := row.Scan(&m.ID, &m.Name, &m.Price, &m.Filename, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
