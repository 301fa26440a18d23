package domain

import "errors"

// Authentication and authorization errors. The HTTP layer maps these to
// status codes; services return them without knowing about HTTP.
var (
	// ErrUnauthorized means no usable credential was presented: a missing
	// Authorization header, a non-Bearer scheme, or a failed password check.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken means a Bearer token was presented but failed
	// verification (bad signature, expired, malformed).
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden means the caller is authenticated but the role or
	// ownership check failed.
	ErrForbidden = errors.New("forbidden")
)

// ErrEmailTaken is returned when registering with an email that already has
// an account.
var ErrEmailTaken = errors.New("email is already in use")

// Not-found errors, one per resource, so the HTTP layer can keep the
// per-resource messages the clients rely on.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrMealNotFound         = errors.New("meal not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrTagNotFound          = errors.New("tag not found")
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrFeedbackNotFound     = errors.New("feedback not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrDailyMenuNotFound    = errors.New("daily menu entry not found")
	ErrLocationNotFound     = errors.New("location not found")
)
