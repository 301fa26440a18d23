package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// ProductRepository persists products and their tag links.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Init creates the products and products_tags tables.
func (r *ProductRepository) Init(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id          BIGSERIAL PRIMARY KEY,
			name        TEXT NOT NULL,
			ingredients TEXT NOT NULL DEFAULT '',
			price       NUMERIC(10,2) NOT NULL,
			category_id BIGINT NOT NULL REFERENCES categories(id),
			description TEXT NOT NULL DEFAULT '',
			filename    TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS products_tags (
			product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			tag_id     BIGINT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
			PRIMARY KEY (product_id, tag_id)
		)`)
	if err != nil {
		return fmt.Errorf("init products: %w", err)
	}
	return nil
}

const productColumns = "id, name, ingredients, price, category_id, description, filename, created_at, updated_at"

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, ingredients, price, category_id, description, filename, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+productColumns,
		product.Name, product.Ingredients, product.Price, product.CategoryID,
		product.Description, product.Filename, product.CreatedAt, product.UpdatedAt,
	)

	created, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return created, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	tags, err := r.productTags(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Tags = tags
	return product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE category_id = $1 ORDER BY id`, categoryID)
}

func (r *ProductRepository) FindByTag(ctx context.Context, tagID int64) ([]domain.Product, error) {
	return r.list(ctx, `
		SELECT p.id, p.name, p.ingredients, p.price, p.category_id, p.description, p.filename, p.created_at, p.updated_at
		FROM products p
		JOIN products_tags pt ON pt.product_id = p.id
		WHERE pt.tag_id = $1
		ORDER BY p.id`, tagID)
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE products
		SET name = $1, ingredients = $2, price = $3, category_id = $4,
		    description = $5, filename = $6, updated_at = $7
		WHERE id = $8
		RETURNING `+productColumns,
		product.Name, product.Ingredients, product.Price, product.CategoryID,
		product.Description, product.Filename, product.UpdatedAt, product.ID,
	)

	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) AddTag(ctx context.Context, productID, tagID int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO products_tags (product_id, tag_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, productID, tagID)
	if err != nil {
		return fmt.Errorf("add product tag: %w", err)
	}
	return nil
}

func (r *ProductRepository) RemoveTag(ctx context.Context, productID, tagID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products_tags WHERE product_id = $1 AND tag_id = $2`, productID, tagID)
	if err != nil {
		return fmt.Errorf("remove product tag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

func (r *ProductRepository) list(ctx context.Context, sql string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
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

func (r *ProductRepository) productTags(ctx context.Context, productID int64) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.title, t.color_hex, t.icon
		FROM tags t
		JOIN products_tags pt ON pt.tag_id = t.id
		WHERE pt.product_id = $1
		ORDER BY t.id`, productID)
	if err != nil {
		return nil, fmt.Errorf("select product tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Title, &t.ColorHex, &t.Icon); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Ingredients, &p.Price, &p.CategoryID,
		&p.Description, &p.Filename, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
