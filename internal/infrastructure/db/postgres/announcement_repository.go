package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// AnnouncementRepository persists front-page announcements.
type AnnouncementRepository struct {
	pool *pgxpool.Pool
}

func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{pool: pool}
}

// Init creates the announcements table.
func (r *AnnouncementRepository) Init(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS announcements (
			id         BIGSERIAL PRIMARY KEY,
			title      TEXT NOT NULL,
			text       TEXT NOT NULL,
			image      TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("init announcements: %w", err)
	}
	return nil
}

const announcementColumns = "id, title, text, image, created_at"

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO announcements (title, text, image, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING `+announcementColumns,
		a.Title, a.Text, a.Image, a.CreatedAt,
	)

	created, err := scanAnnouncement(row)
	if err != nil {
		return nil, fmt.Errorf("insert announcement: %w", err)
	}
	return created, nil
}

func (r *AnnouncementRepository) FindByID(ctx context.Context, id int64) (*domain.Announcement, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id)
	a, err := scanAnnouncement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("find announcement: %w", err)
	}
	return a, nil
}

func (r *AnnouncementRepository) FindAll(ctx context.Context) ([]domain.Announcement, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+announcementColumns+` FROM announcements ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("select announcements: %w", err)
	}
	defer rows.Close()

	var announcements []domain.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		announcements = append(announcements, *a)
	}
	return announcements, rows.Err()
}

func (r *AnnouncementRepository) Update(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE announcements SET title = $1, text = $2, image = $3 WHERE id = $4
		RETURNING `+announcementColumns,
		a.Title, a.Text, a.Image, a.ID,
	)

	updated, err := scanAnnouncement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("update announcement: %w", err)
	}
	return updated, nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAnnouncementNotFound
	}
	return nil
}

func scanAnnouncement(row pgx.Row) (*domain.Announcement, error) {
	var a domain.Announcement
	err := row.Scan(&a.ID, &a.Title, &a.Text, &a.Image, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
