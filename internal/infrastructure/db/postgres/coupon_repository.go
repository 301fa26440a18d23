package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// CouponRepository persists discount coupons.
type CouponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

// Init creates the coupons table.
func (r *CouponRepository) Init(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS coupons (
			id                  BIGSERIAL PRIMARY KEY,
			code                TEXT NOT NULL,
			discount_percentage NUMERIC(5,2) NOT NULL,
			start_date          TEXT NOT NULL,
			end_date            TEXT NOT NULL,
			created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("init coupons: %w", err)
	}
	return nil
}

const couponColumns = "id, code, discount_percentage, start_date, end_date, created_at"

func (r *CouponRepository) Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO coupons (code, discount_percentage, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+couponColumns,
		coupon.Code, coupon.DiscountPercentage, coupon.StartDate, coupon.EndDate, coupon.CreatedAt,
	)

	created, err := scanCoupon(row)
	if err != nil {
		return nil, fmt.Errorf("insert coupon: %w", err)
	}
	return created, nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id int64) (*domain.Coupon, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id)
	coupon, err := scanCoupon(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("find coupon: %w", err)
	}
	return coupon, nil
}

func (r *CouponRepository) FindAll(ctx context.Context) ([]domain.Coupon, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select coupons: %w", err)
	}
	defer rows.Close()

	var coupons []domain.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		coupons = append(coupons, *c)
	}
	return coupons, rows.Err()
}

func (r *CouponRepository) Update(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE coupons
		SET code = $1, discount_percentage = $2, start_date = $3, end_date = $4
		WHERE id = $5
		RETURNING `+couponColumns,
		coupon.Code, coupon.DiscountPercentage, coupon.StartDate, coupon.EndDate, coupon.ID,
	)

	updated, err := scanCoupon(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("update coupon: %w", err)
	}
	return updated, nil
}

func (r *CouponRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCouponNotFound
	}
	return nil
}

func scanCoupon(row pgx.Row) (*domain.Coupon, error) {
	var c domain.Coupon
	err := row.Scan(&c.ID, &c.Code, &c.DiscountPercentage, &c.StartDate, &c.EndDate, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
