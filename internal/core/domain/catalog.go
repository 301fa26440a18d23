package domain

import "time"

// Product is a single menu item (pizza, beverage, extra).
type Product struct {
	ID          int64     `json:"product_id"`
	Name        string    `json:"name"`
	Ingredients string    `json:"ingredients"`
	Price       float64   `json:"price"`
	CategoryID  int64     `json:"category_id"`
	Description string    `json:"description"`
	Filename    string    `json:"filename,omitempty"`
	Tags        []Tag     `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Meal is a bundle of products sold at one price.
type Meal struct {
	ID        int64     `json:"meal_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Filename  string    `json:"filename,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category groups products (pizzas, beverages, extras).
type Category struct {
	ID   int64  `json:"category_id"`
	Name string `json:"name"`
}

// Tag is a product label such as "vegan" or "spicy", rendered with a color
// and an icon on the menu.
type Tag struct {
	ID       int64  `json:"tag_id"`
	Title    string `json:"title"`
	ColorHex string `json:"color_hex"`
	Icon     string `json:"icon,omitempty"`
}

// DailyMenuEntry assigns one meal to one weekday.
type DailyMenuEntry struct {
	Day      string `json:"day"`
	MealID   int64  `json:"meal_id"`
	MealName string `json:"meal_name,omitempty"`
	Price    float64 `json:"meal_price,omitempty"`
	Filename string `json:"meal_filename,omitempty"`
}

// Weekdays accepted by the daily menu.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// IsWeekday reports whether day names a valid daily menu slot.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
