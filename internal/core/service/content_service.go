package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// CouponService manages discount coupons.
type CouponService struct {
	repo   ports.CouponRepository
	logger zerolog.Logger
}

func NewCouponService(repo ports.CouponRepository, logger zerolog.Logger) *CouponService {
	return &CouponService{repo: repo, logger: logger}
}

func (s *CouponService) Create(ctx context.Context, coupon domain.Coupon) (*domain.Coupon, error) {
	coupon.CreatedAt = time.Now().UTC()
	created, err := s.repo.Create(ctx, &coupon)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("coupon_id", created.ID).Str("code", created.Code).Msg("coupon created")
	return created, nil
}

func (s *CouponService) Get(ctx context.Context, id int64) (*domain.Coupon, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CouponService) List(ctx context.Context) ([]domain.Coupon, error) {
	return s.repo.FindAll(ctx)
}

func (s *CouponService) Update(ctx context.Context, id int64, input ports.UpdateCouponInput) (*domain.Coupon, error) {
	coupon, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Code != nil {
		coupon.Code = *input.Code
	}
	if input.DiscountPercentage != nil {
		coupon.DiscountPercentage = *input.DiscountPercentage
	}
	if input.StartDate != nil {
		coupon.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		coupon.EndDate = *input.EndDate
	}
	return s.repo.Update(ctx, coupon)
}

func (s *CouponService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// FeedbackService manages customer feedback.
type FeedbackService struct {
	repo   ports.FeedbackRepository
	logger zerolog.Logger
}

func NewFeedbackService(repo ports.FeedbackRepository, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, logger: logger}
}

func (s *FeedbackService) Create(ctx context.Context, input ports.CreateFeedbackInput) (*domain.Feedback, error) {
	fb := &domain.Feedback{
		UserID:   input.UserID,
		Email:    input.Email,
		Feedback: input.Feedback,
		Status:   "open",
		Received: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, fb)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("feedback_id", created.ID).Int64("user_id", created.UserID).Msg("feedback received")
	return created, nil
}

func (s *FeedbackService) List(ctx context.Context) ([]domain.Feedback, error) {
	return s.repo.FindAll(ctx)
}

func (s *FeedbackService) ListByUser(ctx context.Context, userID int64) ([]domain.Feedback, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *FeedbackService) MarkHandled(ctx context.Context, id int64, handled bool) (*domain.Feedback, error) {
	fb, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fb.Handled = handled
	if handled {
		fb.Status = "handled"
	} else {
		fb.Status = "open"
	}
	return s.repo.Update(ctx, fb)
}

func (s *FeedbackService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// AnnouncementService manages front-page announcements.
type AnnouncementService struct {
	repo   ports.AnnouncementRepository
	logger zerolog.Logger
}

func NewAnnouncementService(repo ports.AnnouncementRepository, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, logger: logger}
}

func (s *AnnouncementService) Create(ctx context.Context, a domain.Announcement) (*domain.Announcement, error) {
	a.CreatedAt = time.Now().UTC()
	created, err := s.repo.Create(ctx, &a)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("announcement_id", created.ID).Str("title", created.Title).Msg("announcement created")
	return created, nil
}

func (s *AnnouncementService) Get(ctx context.Context, id int64) (*domain.Announcement, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AnnouncementService) List(ctx context.Context) ([]domain.Announcement, error) {
	return s.repo.FindAll(ctx)
}

func (s *AnnouncementService) Update(ctx context.Context, id int64, input ports.UpdateAnnouncementInput) (*domain.Announcement, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		a.Title = *input.Title
	}
	if input.Text != nil {
		a.Text = *input.Text
	}
	if input.Image != nil {
		a.Image = *input.Image
	}
	return s.repo.Update(ctx, a)
}

func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
