package domain

import "time"

// Coupon is a time-bounded discount code.
type Coupon struct {
	ID                 int64     `json:"coupon_id"`
	Code               string    `json:"coupon"`
	DiscountPercentage float64   `json:"discount_percentage"`
	StartDate          string    `json:"start_date"`
	EndDate            string    `json:"end_date"`
	CreatedAt          time.Time `json:"created_at"`
}

// Feedback is a message left by a customer, tracked until handled.
type Feedback struct {
	ID        int64     `json:"feedback_id"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Feedback  string    `json:"feedback"`
	Status    string    `json:"status"`
	Received  time.Time `json:"received"`
	Handled   bool      `json:"handled"`
}

// Announcement is a front-page notice, optionally with an image.
type Announcement struct {
	ID        int64     `json:"announcement_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Location is a restaurant site. Read-only: sites are seeded, not managed
// through the API.
type Location struct {
	ID      int64  `json:"location_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}
