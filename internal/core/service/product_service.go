package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

const productsCacheKey = "catalog:products"

// ProductService manages the product catalog. The full product list is
// read-heavy (every menu render) so it is served through the cache;
// any write invalidates it.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ports.Cache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ports.Cache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Ingredients: input.Ingredients,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		Description: input.Description,
		Filename:    input.Filename,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Int64("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	var cached []domain.Product
	if hit, err := s.cache.GetJSON(ctx, productsCacheKey, &cached); err != nil {
		s.logger.Warn().Err(err).Msg("product cache read failed")
	} else if hit {
		return cached, nil
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, productsCacheKey, products); err != nil {
		s.logger.Warn().Err(err).Msg("product cache write failed")
	}
	return products, nil
}

func (s *ProductService) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	return s.repo.FindByCategory(ctx, categoryID)
}

func (s *ProductService) ListByTag(ctx context.Context, tagID int64) ([]domain.Product, error) {
	return s.repo.FindByTag(ctx, tagID)
}

func (s *ProductService) Update(ctx context.Context, id int64, input ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Ingredients != nil {
		product.Ingredients = *input.Ingredients
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Filename != nil {
		product.Filename = *input.Filename
	}
	product.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) AddTag(ctx context.Context, productID, tagID int64) error {
	if err := s.repo.AddTag(ctx, productID, tagID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ProductService) RemoveTag(ctx context.Context, productID, tagID int64) error {
	if err := s.repo.RemoveTag(ctx, productID, tagID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, productsCacheKey); err != nil {
		s.logger.Warn().Err(err).Msg("product cache invalidation failed")
	}
}
