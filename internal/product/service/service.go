package service

import (
	"context"
	"errors"

	"github.com/vetrovegor/catalog-backend/internal/apperror"
	"github.com/vetrovegor/catalog-backend/internal/product"
	"github.com/vetrovegor/catalog-backend/internal/product/db"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockproductservice
type Repository interface {
	GetAll(ctx context.Context) ([]product.Product, error)
	GetByID(ctx context.Context, id int) (*product.Product, error)
	GetByUniqueKey(ctx context.Context, brandID int, skuCode, agskCode *string) (*product.Product, error)
	Search(ctx context.Context, q string) ([]product.Product, error)
	Create(ctx context.Context, data product.Product) (*product.Product, error)
	Update(ctx context.Context, data product.Product) error
	Delete(ctx context.Context, id int) error
}

type BrandService interface {
	CheckBrandExists(ctx context.Context, id int) error
}

type service struct {
	repository   Repository
	brandService BrandService
	logger       *zap.Logger
}

func New(repository Repository, brandService BrandService, logger *zap.Logger) *service {
	return &service{
		repository:   repository,
		brandService: brandService,
		logger:       logger,
	}
}

func (s *service) GetAll(ctx context.Context) ([]product.Product, error) {
	products, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching all products", zap.Error(err))

		return nil, err
	}

	return products, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*product.Product, error) {
	p, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching product by id", zap.Error(err))

		return nil, err
	}

	return p, nil
}

func (s *service) Search(ctx context.Context, q string) ([]product.Product, error) {
	products, err := s.repository.Search(ctx, q)
	if err != nil {
		s.logger.Error("unexpected error when searching products", zap.Error(err))

		return nil, err
	}

	return products, nil
}

// Create rejects unknown brands and returns the existing row unchanged when a
// product with the same (brand, sku, agsk) identity is already stored.
func (s *service) Create(ctx context.Context, data product.Product) (*product.Product, error) {
	if err := s.brandService.CheckBrandExists(ctx, data.BrandID); err != nil {
		return nil, err
	}

	existing, err := s.repository.GetByUniqueKey(ctx, data.BrandID, data.SKUCode, data.AGSKCode)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, db.ErrProductNotFound) {
		s.logger.Error("unexpected error when checking product uniqueness", zap.Error(err))

		return nil, err
	}

	createdProduct, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating product", zap.Error(err))

		return nil, err
	}

	return createdProduct, nil
}

func (s *service) Update(ctx context.Context, data product.Product) error {
	err := s.repository.Update(ctx, data)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when updating product", zap.Error(err))

		return err
	}

	return nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when deleting product", zap.Error(err))

		return err
	}

	return nil
}
