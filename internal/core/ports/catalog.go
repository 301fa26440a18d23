package ports

import (
	"context"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// Cache is a read-through cache for catalog listings. Implementations must
// degrade gracefully: a cache failure is never a request failure.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// ProductRepository defines persistence for products and their tag links.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	FindByTag(ctx context.Context, tagID int64) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	AddTag(ctx context.Context, productID, tagID int64) error
	RemoveTag(ctx context.Context, productID, tagID int64) error
}

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name        string
	Ingredients string
	Price       float64
	CategoryID  int64
	Description string
	Filename    string
}

// UpdateProductInput carries a partial product update.
type UpdateProductInput struct {
	Name        *string
	Ingredients *string
	Price       *float64
	CategoryID  *int64
	Description *string
	Filename    *string
}

// ProductService manages the product catalog.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	ListByTag(ctx context.Context, tagID int64) ([]domain.Product, error)
	Update(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	AddTag(ctx context.Context, productID, tagID int64) error
	RemoveTag(ctx context.Context, productID, tagID int64) error
}

// MealRepository defines persistence for meals and their product links.
type MealRepository interface {
	Create(ctx context.Context, meal *domain.Meal) (*domain.Meal, error)
	FindByID(ctx context.Context, id int64) (*domain.Meal, error)
	FindAll(ctx context.Context) ([]domain.Meal, error)
	FindProducts(ctx context.Context, mealID int64) ([]domain.Product, error)
	Update(ctx context.Context, meal *domain.Meal) (*domain.Meal, error)
	Delete(ctx context.Context, id int64) error
	AddProduct(ctx context.Context, mealID, productID int64) error
	RemoveProduct(ctx context.Context, mealID, productID int64) error
}

// CreateMealInput carries the fields for a new meal.
type CreateMealInput struct {
	Name     string
	Price    float64
	Filename string
}

// UpdateMealInput carries a partial meal update.
type UpdateMealInput struct {
	Name     *string
	Price    *float64
	Filename *string
}

// MealService manages meal bundles.
type MealService interface {
	Create(ctx context.Context, input CreateMealInput) (*domain.Meal, error)
	Get(ctx context.Context, id int64) (*domain.Meal, error)
	List(ctx context.Context) ([]domain.Meal, error)
	ListProducts(ctx context.Context, mealID int64) ([]domain.Product, error)
	Update(ctx context.Context, id int64, input UpdateMealInput) (*domain.Meal, error)
	Delete(ctx context.Context, id int64) error
	AddProduct(ctx context.Context, mealID, productID int64) error
	RemoveProduct(ctx context.Context, mealID, productID int64) error
}

// CategoryRepository defines persistence for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryService manages product categories.
type CategoryService interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id int64, name string) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// TagRepository defines persistence for tags.
type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	FindByID(ctx context.Context, id int64) (*domain.Tag, error)
	FindAll(ctx context.Context) ([]domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
}

// UpdateTagInput carries a partial tag update.
type UpdateTagInput struct {
	Title    *string
	ColorHex *string
	Icon     *string
}

// TagService manages product tags.
type TagService interface {
	Create(ctx context.Context, tag domain.Tag) (*domain.Tag, error)
	Get(ctx context.Context, id int64) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Update(ctx context.Context, id int64, input UpdateTagInput) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
}

// DailyMenuRepository defines persistence for the weekday meal assignment.
type DailyMenuRepository interface {
	FindAll(ctx context.Context) ([]domain.DailyMenuEntry, error)
	FindByDay(ctx context.Context, day string) (*domain.DailyMenuEntry, error)
	Assign(ctx context.Context, day string, mealID int64) (*domain.DailyMenuEntry, error)
}

// DailyMenuService manages the meal-of-the-day schedule.
type DailyMenuService interface {
	List(ctx context.Context) ([]domain.DailyMenuEntry, error)
	GetByDay(ctx context.Context, day string) (*domain.DailyMenuEntry, error)
	Assign(ctx context.Context, day string, mealID int64) (*domain.DailyMenuEntry, error)
}
