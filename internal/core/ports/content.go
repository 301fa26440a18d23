package ports

import (
	"context"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// CouponRepository defines persistence for discount coupons.
type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	FindByID(ctx context.Context, id int64) (*domain.Coupon, error)
	FindAll(ctx context.Context) ([]domain.Coupon, error)
	Update(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	Delete(ctx context.Context, id int64) error
}

// UpdateCouponInput carries a partial coupon update.
type UpdateCouponInput struct {
	Code               *string
	DiscountPercentage *float64
	StartDate          *string
	EndDate            *string
}

// CouponService manages discount coupons.
type CouponService interface {
	Create(ctx context.Context, coupon domain.Coupon) (*domain.Coupon, error)
	Get(ctx context.Context, id int64) (*domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	Update(ctx context.Context, id int64, input UpdateCouponInput) (*domain.Coupon, error)
	Delete(ctx context.Context, id int64) error
}

// FeedbackRepository defines persistence for customer feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error)
	FindByID(ctx context.Context, id int64) (*domain.Feedback, error)
	FindAll(ctx context.Context) ([]domain.Feedback, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Feedback, error)
	Update(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error)
	Delete(ctx context.Context, id int64) error
}

// CreateFeedbackInput carries the fields for new feedback. UserID comes from
// the authenticated principal.
type CreateFeedbackInput struct {
	UserID   int64
	Email    string
	Feedback string
}

// FeedbackService manages customer feedback.
type FeedbackService interface {
	Create(ctx context.Context, input CreateFeedbackInput) (*domain.Feedback, error)
	List(ctx context.Context) ([]domain.Feedback, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Feedback, error)
	MarkHandled(ctx context.Context, id int64, handled bool) (*domain.Feedback, error)
	Delete(ctx context.Context, id int64) error
}

// AnnouncementRepository defines persistence for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	FindByID(ctx context.Context, id int64) (*domain.Announcement, error)
	FindAll(ctx context.Context) ([]domain.Announcement, error)
	Update(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

// UpdateAnnouncementInput carries a partial announcement update.
type UpdateAnnouncementInput struct {
	Title *string
	Text  *string
	Image *string
}

// AnnouncementService manages front-page announcements.
type AnnouncementService interface {
	Create(ctx context.Context, a domain.Announcement) (*domain.Announcement, error)
	Get(ctx context.Context, id int64) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
	Update(ctx context.Context, id int64, input UpdateAnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

// LocationRepository defines read access to restaurant sites.
type LocationRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Location, error)
	FindAll(ctx context.Context) ([]domain.Location, error)
}

// LocationService exposes restaurant sites.
type LocationService interface {
	Get(ctx context.Context, id int64) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
}
