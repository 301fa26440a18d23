package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

const mealsCacheKey = "catalog:meals"

// MealService manages meal bundles. Like products, the meal list is cached
// and invalidated on writes.
type MealService struct {
	repo   ports.MealRepository
	cache  ports.Cache
	logger zerolog.Logger
}

func NewMealService(repo ports.MealRepository, cache ports.Cache, logger zerolog.Logger) *MealService {
	return &MealService{repo: repo, cache: cache, logger: logger}
}

func (s *MealService) Create(ctx context.Context, input ports.CreateMealInput) (*domain.Meal, error) {
	now := time.Now().UTC()
	meal := &domain.Meal{
		Name:      input.Name,
		Price:     input.Price,
		Filename:  input.Filename,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, meal)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Int64("meal_id", created.ID).Str("name", created.Name).Msg("meal created")
	return created, nil
}

func (s *MealService) Get(ctx context.Context, id int64) (*domain.Meal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MealService) List(ctx context.Context) ([]domain.Meal, error) {
	var cached []domain.Meal
	if hit, err := s.cache.GetJSON(ctx, mealsCacheKey, &cached); err != nil {
		s.logger.Warn().Err(err).Msg("meal cache read failed")
	} else if hit {
		return cached, nil
	}

	meals, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, mealsCacheKey, meals); err != nil {
		s.logger.Warn().Err(err).Msg("meal cache write failed")
	}
	return meals, nil
}

func (s *MealService) ListProducts(ctx context.Context, mealID int64) ([]domain.Product, error) {
	return s.repo.FindProducts(ctx, mealID)
}

func (s *MealService) Update(ctx context.Context, id int64, input ports.UpdateMealInput) (*domain.Meal, error) {
	meal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		meal.Name = *input.Name
	}
	if input.Price != nil {
		meal.Price = *input.Price
	}
	if input.Filename != nil {
		meal.Filename = *input.Filename
	}
	meal.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, meal)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *MealService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info().Int64("meal_id", id).Msg("meal deleted")
	return nil
}

func (s *MealService) AddProduct(ctx context.Context, mealID, productID int64) error {
	return s.repo.AddProduct(ctx, mealID, productID)
}

func (s *MealService) RemoveProduct(ctx context.Context, mealID, productID int64) error {
	return s.repo.RemoveProduct(ctx, mealID, productID)
}

func (s *MealService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, mealsCacheKey); err != nil {
		s.logger.Warn().Err(err).Msg("meal cache invalidation failed")
	}
}
