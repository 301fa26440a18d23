package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// LocationRepository reads restaurant sites. Rows are seeded out of band, the
// API never writes them.
type LocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

// Init creates the locations table.
func (r *LocationRepository) Init(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS locations (
			id      BIGSERIAL PRIMARY KEY,
			name    TEXT NOT NULL,
			address TEXT NOT NULL,
			phone   TEXT NOT NULL DEFAULT ''
		)`)
	if err != nil {
		return fmt.Errorf("init locations: %w", err)
	}
	return nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id int64) (*domain.Location, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, name, address, phone FROM locations WHERE id = $1`, id)

	var l domain.Location
	err := row.Scan(&l.ID, &l.Name, &l.Address, &l.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("find location: %w", err)
	}
	return &l, nil
}

func (r *LocationRepository) FindAll(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, address, phone FROM locations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select locations: %w", err)
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Phone); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}
