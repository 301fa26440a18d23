package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// CategoryService manages product categories.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	created, err := s.repo.Create(ctx, &domain.Category{Name: name})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("category_id", created.ID).Str("name", name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	return s.repo.Update(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// TagService manages product tags.
type TagService struct {
	repo   ports.TagRepository
	logger zerolog.Logger
}

func NewTagService(repo ports.TagRepository, logger zerolog.Logger) *TagService {
	return &TagService{repo: repo, logger: logger}
}

func (s *TagService) Create(ctx context.Context, tag domain.Tag) (*domain.Tag, error) {
	created, err := s.repo.Create(ctx, &tag)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("tag_id", created.ID).Str("title", created.Title).Msg("tag created")
	return created, nil
}

func (s *TagService) Get(ctx context.Context, id int64) (*domain.Tag, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	return s.repo.FindAll(ctx)
}

func (s *TagService) Update(ctx context.Context, id int64, input ports.UpdateTagInput) (*domain.Tag, error) {
	tag, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		tag.Title = *input.Title
	}
	if input.ColorHex != nil {
		tag.ColorHex = *input.ColorHex
	}
	if input.Icon != nil {
		tag.Icon = *input.Icon
	}
	return s.repo.Update(ctx, tag)
}

func (s *TagService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// DailyMenuService manages the meal-of-the-day schedule. Assignments are
// validated against the meal catalog so the menu never points at a missing
// meal.
type DailyMenuService struct {
	repo   ports.DailyMenuRepository
	meals  ports.MealRepository
	logger zerolog.Logger
}

func NewDailyMenuService(repo ports.DailyMenuRepository, meals ports.MealRepository, logger zerolog.Logger) *DailyMenuService {
	return &DailyMenuService{repo: repo, meals: meals, logger: logger}
}

func (s *DailyMenuService) List(ctx context.Context) ([]domain.DailyMenuEntry, error) {
	return s.repo.FindAll(ctx)
}

func (s *DailyMenuService) GetByDay(ctx context.Context, day string) (*domain.DailyMenuEntry, error) {
	if !domain.IsWeekday(day) {
		return nil, domain.ErrDailyMenuNotFound
	}
	return s.repo.FindByDay(ctx, day)
}

func (s *DailyMenuService) Assign(ctx context.Context, day string, mealID int64) (*domain.DailyMenuEntry, error) {
	if !domain.IsWeekday(day) {
		return nil, domain.ErrDailyMenuNotFound
	}
	if _, err := s.meals.FindByID(ctx, mealID); err != nil {
		return nil, err
	}

	entry, err := s.repo.Assign(ctx, day, mealID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("day", day).Int64("meal_id", mealID).Msg("daily menu assigned")
	return entry, nil
}

// LocationService exposes the read-only restaurant sites.
type LocationService struct {
	repo ports.LocationRepository
}

func NewLocationService(repo ports.LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

func (s *LocationService) Get(ctx context.Context, id int64) (*domain.Location, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	return s.repo.FindAll(ctx)
}
