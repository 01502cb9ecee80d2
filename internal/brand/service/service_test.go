package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrovegor/catalog-backend/internal/apperror"
	"github.com/vetrovegor/catalog-backend/internal/brand"
	"github.com/vetrovegor/catalog-backend/internal/brand/db"
	mockbrandservice "github.com/vetrovegor/catalog-backend/internal/brand/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const BrandID = 1

var ErrUnexpected = errors.New("unexpected error")

func TestGetByID(t *testing.T) {
	type mockBehavior func(mockRepo *mockbrandservice.MockRepository)

	testTable := []struct {
		name          string
		mockBehavior  mockBehavior
		expectedError error
		expectedBrand *brand.Brand
	}{
		{
			name: "success",
			mockBehavior: func(mockRepo *mockbrandservice.MockRepository) {
				mockRepo.EXPECT().GetByID(gomock.Any(), BrandID).Return(&brand.Brand{ID: BrandID, Name: "ACME"}, nil)
			},
			expectedBrand: &brand.Brand{ID: BrandID, Name: "ACME"},
		},
		{
			name: "missing brand maps to not found",
			mockBehavior: func(mockRepo *mockbrandservice.MockRepository) {
				mockRepo.EXPECT().GetByID(gomock.Any(), BrandID).Return(nil, db.ErrBrandNotFound)
			},
			expectedError: apperror.ErrNotFound,
		},
		{
			name: "repository error",
			mockBehavior: func(mockRepo *mockbrandservice.MockRepository) {
				mockRepo.EXPECT().GetByID(gomock.Any(), BrandID).Return(nil, ErrUnexpected)
			},
			expectedError: ErrUnexpected,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			mockRepo := mockbrandservice.NewMockRepository(c)
			tc.mockBehavior(mockRepo)

			service := New(mockRepo, zap.NewNop())

			b, err := service.GetByID(context.Background(), BrandID)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedBrand, b)
		})
	}
}

func TestCheckBrandExists(t *testing.T) {
	t.Run("missing brand yields an error naming the id", func(t *testing.T) {
		c := gomock.NewController(t)
		defer c.Finish()

		mockRepo := mockbrandservice.NewMockRepository(c)
		mockRepo.EXPECT().GetByID(gomock.Any(), 42).Return(nil, db.ErrBrandNotFound)

		service := New(mockRepo, zap.NewNop())

		err := service.CheckBrandExists(context.Background(), 42)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "brand with id 42 does not exist", appErr.Message)
	})

	t.Run("existing brand yields nil", func(t *testing.T) {
		c := gomock.NewController(t)
		defer c.Finish()

		mockRepo := mockbrandservice.NewMockRepository(c)
		mockRepo.EXPECT().GetByID(gomock.Any(), BrandID).Return(&brand.Brand{ID: BrandID, Name: "ACME"}, nil)

		service := New(mockRepo, zap.NewNop())

		assert.NoError(t, service.CheckBrandExists(context.Background(), BrandID))
	})
}

func TestDelete(t *testing.T) {
	type mockBehavior func(mockRepo *mockbrandservice.MockRepository)

	testTable := []struct {
		name          string
		mockBehavior  mockBehavior
		expectedError error
		expectAppErr  bool
	}{
		{
			name: "success",
			mockBehavior: func(mockRepo *mockbrandservice.MockRepository) {
				mockRepo.EXPECT().Delete(gomock.Any(), BrandID).Return(nil)
			},
		},
		{
			name: "missing brand maps to not found",
			mockBehavior: func(mockRepo *mockbrandservice.MockRepository) {
				mockRepo.EXPECT().Delete(gomock.Any(), BrandID).Return(db.ErrBrandNotFound)
			},
			expectedError: apperror.ErrNotFound,
		},
		{
			name: "referenced brand maps to a caller-facing error",
			mockBehavior: func(mockRepo *mockbrandservice.MockRepository) {
				mockRepo.EXPECT().Delete(gomock.Any(), BrandID).Return(db.ErrBrandHasProducts)
			},
			expectAppErr: true,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			mockRepo := mockbrandservice.NewMockRepository(c)
			tc.mockBehavior(mockRepo)

			service := New(mockRepo, zap.NewNop())

			err := service.Delete(context.Background(), BrandID)

			if tc.expectAppErr {
				var appErr *apperror.AppError
				assert.ErrorAs(t, err, &appErr)
				return
			}

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			assert.NoError(t, err)
		})
	}
}
