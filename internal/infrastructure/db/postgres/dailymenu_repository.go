package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// DailyMenuRepository persists the weekday-to-meal assignment. One row per
// weekday, upserted on assignment.
type DailyMenuRepository struct {
	pool *pgxpool.Pool
}

func NewDailyMenuRepository(pool *pgxpool.Pool) *DailyMenuRepository {
	return &DailyMenuRepository{pool: pool}
}

// Init creates the daily_menu table. It must run after the meals table.
func (r *DailyMenuRepository) Init(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS daily_menu (
			day     TEXT PRIMARY KEY,
			meal_id BIGINT NOT NULL REFERENCES meals(id) ON DELETE CASCADE
		)`)
	if err != nil {
		return fmt.Errorf("init daily_menu: %w", err)
	}
	return nil
}

const dailyMenuQuery = `
	SELECT dm.day, dm.meal_id, m.name, m.price, m.filename
	FROM daily_menu dm
	JOIN meals m ON m.id = dm.meal_id`

func (r *DailyMenuRepository) FindAll(ctx context.Context) ([]domain.DailyMenuEntry, error) {
	rows, err := r.pool.Query(ctx, dailyMenuQuery+` ORDER BY dm.day`)
	if err != nil {
		return nil, fmt.Errorf("select daily menu: %w", err)
	}
	defer rows.Close()

	var entries []domain.DailyMenuEntry
	for rows.Next() {
		e, err := scanDailyMenuEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan daily menu entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (r *DailyMenuRepository) FindByDay(ctx context.Context, day string) (*domain.DailyMenuEntry, error) {
	row := r.pool.QueryRow(ctx, dailyMenuQuery+` WHERE dm.day = $1`, day)
	entry, err := scanDailyMenuEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDailyMenuNotFound
		}
		return nil, fmt.Errorf("find daily menu entry: %w", err)
	}
	return entry, nil
}

func (r *DailyMenuRepository) Assign(ctx context.Context, day string, mealID int64) (*domain.DailyMenuEntry, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO daily_menu (day, meal_id) VALUES ($1, $2)
		ON CONFLICT (day) DO UPDATE SET meal_id = EXCLUDED.meal_id`,
		day, mealID)
	if err != nil {
		return nil, fmt.Errorf("assign daily menu: %w", err)
	}
	return r.FindByDay(ctx, day)
}

func scanDailyMenuEntry(row pgx.Row) (*domain.DailyMenuEntry, error) {
	var e domain.DailyMenuEntry
	err := row.Scan(&e.Day, &e.MealID, &e.MealName, &e.Price, &e.Filename)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
