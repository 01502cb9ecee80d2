package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vetrovegor/catalog-backend/internal/apperror"
	"github.com/vetrovegor/catalog-backend/internal/brand"
	"github.com/vetrovegor/catalog-backend/internal/brand/db"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockbrandservice
type Repository interface {
	GetAll(ctx context.Context) ([]brand.Brand, error)
	GetByID(ctx context.Context, id int) (*brand.Brand, error)
	Create(ctx context.Context, name string) (*brand.Brand, error)
	Update(ctx context.Context, id int, name string) error
	Delete(ctx context.Context, id int) error
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(repository Repository, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

func (s *service) GetAll(ctx context.Context) ([]brand.Brand, error) {
	brands, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching all brands", zap.Error(err))

		return nil, err
	}

	return brands, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*brand.Brand, error) {
	b, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrBrandNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching brand by id", zap.Error(err))

		return nil, err
	}

	return b, nil
}

// CheckBrandExists reports whether the brand exists with a caller-facing error
// naming the missing id.
func (s *service) CheckBrandExists(ctx context.Context, id int) error {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		if errors.Is(err, db.ErrBrandNotFound) {
			return apperror.NewAppError(fmt.Sprintf("brand with id %d does not exist", id))
		}

		s.logger.Error("unexpected error when checking brand exists", zap.Error(err))

		return err
	}

	return nil
}

func (s *service) Create(ctx context.Context, name string) (*brand.Brand, error) {
	createdBrand, err := s.repository.Create(ctx, name)
	if err != nil {
		s.logger.Error("unexpected error when creating brand", zap.Error(err))

		return nil, err
	}

	return createdBrand, nil
}

func (s *service) Update(ctx context.Context, id int, name string) error {
	err := s.repository.Update(ctx, id, name)
	if err != nil {
		if errors.Is(err, db.ErrBrandNotFound) {
			return apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when updating brand", zap.Error(err))

		return err
	}

	return nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrBrandNotFound) {
			return apperror.ErrNotFound
		}

		if errors.Is(err, db.ErrBrandHasProducts) {
			return apperror.NewAppError(fmt.Sprintf("cannot delete brand %d: products still reference it", id))
		}

		s.logger.Error("unexpected error when deleting brand", zap.Error(err))

		return err
	}

	return nil
}
