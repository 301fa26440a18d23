package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// FeedbackRepository persists customer feedback.
type FeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

// Init creates the feedbacks table.
func (r *FeedbackRepository) Init(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS feedbacks (
			id       BIGSERIAL PRIMARY KEY,
			user_id  BIGINT NOT NULL REFERENCES users(id),
			email    TEXT NOT NULL,
			feedback TEXT NOT NULL,
			status   TEXT NOT NULL,
			received TIMESTAMPTZ NOT NULL DEFAULT now(),
			handled  BOOLEAN NOT NULL DEFAULT false
		)`)
	if err != nil {
		return fmt.Errorf("init feedbacks: %w", err)
	}
	return nil
}

const feedbackColumns = "id, user_id, email, feedback, status, received, handled"

func (r *FeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO feedbacks (user_id, email, feedback, status, received, handled)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+feedbackColumns,
		fb.UserID, fb.Email, fb.Feedback, fb.Status, fb.Received, fb.Handled,
	)

	created, err := scanFeedback(row)
	if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}
	return created, nil
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+feedbackColumns+` FROM feedbacks WHERE id = $1`, id)
	fb, err := scanFeedback(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	return fb, nil
}

func (r *FeedbackRepository) FindAll(ctx context.Context) ([]domain.Feedback, error) {
	return r.list(ctx, `SELECT `+feedbackColumns+` FROM feedbacks ORDER BY id`)
}

func (r *FeedbackRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Feedback, error) {
	return r.list(ctx, `SELECT `+feedbackColumns+` FROM feedbacks WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *FeedbackRepository) list(ctx context.Context, query string, args ...any) ([]domain.Feedback, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select feedbacks: %w", err)
	}
	defer rows.Close()

	var feedbacks []domain.Feedback
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		feedbacks = append(feedbacks, *fb)
	}
	return feedbacks, rows.Err()
}

func (r *FeedbackRepository) Update(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE feedbacks SET status = $1, handled = $2 WHERE id = $3
		RETURNING `+feedbackColumns,
		fb.Status, fb.Handled, fb.ID,
	)

	updated, err := scanFeedback(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("update feedback: %w", err)
	}
	return updated, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM feedbacks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

func scanFeedback(row pgx.Row) (*domain.Feedback, error) {
	var fb domain.Feedback
	err := row.Scan(&fb.ID, &fb.UserID, &fb.Email, &fb.Feedback, &fb.Status, &fb.Received, &fb.Handled)
	if err != nil {
		return nil, err
	}
	return &fb, nil
}
