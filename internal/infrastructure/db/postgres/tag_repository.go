package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// TagRepository persists product tags.
type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

// Init creates the tags table. It must run before the products_tags table.
func (r *TagRepository) Init(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tags (
			id        BIGSERIAL PRIMARY KEY,
			title     TEXT NOT NULL,
			color_hex TEXT NOT NULL,
			icon      TEXT NOT NULL DEFAULT ''
		)`)
	if err != nil {
		return fmt.Errorf("init tags: %w", err)
	}
	return nil
}

const tagColumns = "id, title, color_hex, icon"

func (r *TagRepository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tags (title, color_hex, icon) VALUES ($1, $2, $3)
		RETURNING `+tagColumns,
		tag.Title, tag.ColorHex, tag.Icon,
	)

	created, err := scanTag(row)
	if err != nil {
		return nil, fmt.Errorf("insert tag: %w", err)
	}
	return created, nil
}

func (r *TagRepository) FindByID(ctx context.Context, id int64) (*domain.Tag, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+tagColumns+` FROM tags WHERE id = $1`, id)
	tag, err := scanTag(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("find tag: %w", err)
	}
	return tag, nil
}

func (r *TagRepository) FindAll(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+tagColumns+` FROM tags ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, *t)
	}
	return tags, rows.Err()
}

func (r *TagRepository) Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tags SET title = $1, color_hex = $2, icon = $3 WHERE id = $4
		RETURNING `+tagColumns,
		tag.Title, tag.ColorHex, tag.Icon, tag.ID,
	)

	updated, err := scanTag(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("update tag: %w", err)
	}
	return updated, nil
}

func (r *TagRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

func scanTag(row pgx.Row) (*domain.Tag, error) {
	var t domain.Tag
	if err := row.Scan(&t.ID, &t.Title, &t.ColorHex, &t.Icon); err != nil {
		return nil, err
	}
	return &t, nil
}
