package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrovegor/catalog-backend/internal/apperror"
	"github.com/vetrovegor/catalog-backend/internal/product"
	"github.com/vetrovegor/catalog-backend/internal/product/db"
	mockproductservice "github.com/vetrovegor/catalog-backend/internal/product/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	BrandID   = 1
	ProductID = 10
)

var ErrUnexpected = errors.New("unexpected error")

func ptr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	input := product.Product{
		BrandID:  BrandID,
		SKUCode:  ptr("S1"),
		AGSKCode: ptr("A1"),
		Name:     ptr("Phone"),
	}

	existing := product.Product{ID: ProductID, BrandID: BrandID, BrandName: "ACME", SKUCode: ptr("S1"), AGSKCode: ptr("A1")}
	created := product.Product{ID: ProductID + 1, BrandID: BrandID, BrandName: "ACME", SKUCode: ptr("S1"), AGSKCode: ptr("A1"), Name: ptr("Phone")}

	type mockBehavior func(mockRepo *mockproductservice.MockRepository, mockBrands *mockproductservice.MockBrandService)

	testTable := []struct {
		name            string
		mockBehavior    mockBehavior
		expectedError   error
		expectedProduct *product.Product
	}{
		{
			name: "creates when no duplicate exists",
			mockBehavior: func(mockRepo *mockproductservice.MockRepository, mockBrands *mockproductservice.MockBrandService) {
				mockBrands.EXPECT().CheckBrandExists(gomock.Any(), BrandID).Return(nil)
				mockRepo.EXPECT().GetByUniqueKey(gomock.Any(), BrandID, input.SKUCode, input.AGSKCode).Return(nil, db.ErrProductNotFound)
				mockRepo.EXPECT().Create(gomock.Any(), input).Return(&created, nil)
			},
			expectedProduct: &created,
		},
		{
			name: "returns existing row unchanged on duplicate key",
			mockBehavior: func(mockRepo *mockproductservice.MockRepository, mockBrands *mockproductservice.MockBrandService) {
				mockBrands.EXPECT().CheckBrandExists(gomock.Any(), BrandID).Return(nil)
				mockRepo.EXPECT().GetByUniqueKey(gomock.Any(), BrandID, input.SKUCode, input.AGSKCode).Return(&existing, nil)
			},
			expectedProduct: &existing,
		},
		{
			name: "rejects unknown brand",
			mockBehavior: func(mockRepo *mockproductservice.MockRepository, mockBrands *mockproductservice.MockBrandService) {
				mockBrands.EXPECT().CheckBrandExists(gomock.Any(), BrandID).Return(apperror.NewAppError("brand with id 1 does not exist"))
			},
			expectedError: &apperror.AppError{},
		},
		{
			name: "repository error",
			mockBehavior: func(mockRepo *mockproductservice.MockRepository, mockBrands *mockproductservice.MockBrandService) {
				mockBrands.EXPECT().CheckBrandExists(gomock.Any(), BrandID).Return(nil)
				mockRepo.EXPECT().GetByUniqueKey(gomock.Any(), BrandID, input.SKUCode, input.AGSKCode).Return(nil, ErrUnexpected)
			},
			expectedError: ErrUnexpected,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			mockRepo := mockproductservice.NewMockRepository(c)
			mockBrands := mockproductservice.NewMockBrandService(c)
			tc.mockBehavior(mockRepo, mockBrands)

			service := New(mockRepo, mockBrands, zap.NewNop())

			p, err := service.Create(context.Background(), input)

			if tc.expectedError != nil {
				var appErr *apperror.AppError
				if errors.As(tc.expectedError, &appErr) {
					assert.ErrorAs(t, err, &appErr)
				} else {
					assert.ErrorIs(t, err, tc.expectedError)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedProduct, p)
		})
	}
}

func TestGetByID(t *testing.T) {
	t.Run("missing product maps to not found", func(t *testing.T) {
		c := gomock.NewController(t)
		defer c.Finish()

		mockRepo := mockproductservice.NewMockRepository(c)
		mockRepo.EXPECT().GetByID(gomock.Any(), ProductID).Return(nil, db.ErrProductNotFound)

		service := New(mockRepo, mockproductservice.NewMockBrandService(c), zap.NewNop())

		_, err := service.GetByID(context.Background(), ProductID)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestUpdate(t *testing.T) {
	data := product.Product{ID: ProductID, BrandID: BrandID, SKUCode: ptr("S1")}

	t.Run("success", func(t *testing.T) {
		c := gomock.NewController(t)
		defer c.Finish()

		mockRepo := mockproductservice.NewMockRepository(c)
		mockRepo.EXPECT().Update(gomock.Any(), data).Return(nil)

		service := New(mockRepo, mockproductservice.NewMockBrandService(c), zap.NewNop())

		assert.NoError(t, service.Update(context.Background(), data))
	})

	t.Run("missing product maps to not found", func(t *testing.T) {
		c := gomock.NewController(t)
		defer c.Finish()

		mockRepo := mockproductservice.NewMockRepository(c)
		mockRepo.EXPECT().Update(gomock.Any(), data).Return(db.ErrProductNotFound)

		service := New(mockRepo, mockproductservice.NewMockBrandService(c), zap.NewNop())

		assert.ErrorIs(t, service.Update(context.Background(), data), apperror.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	t.Run("missing product maps to not found", func(t *testing.T) {
		c := gomock.NewController(t)
		defer c.Finish()

		mockRepo := mockproductservice.NewMockRepository(c)
		mockRepo.EXPECT().Delete(gomock.Any(), ProductID).Return(db.ErrProductNotFound)

		service := New(mockRepo, mockproductservice.NewMockBrandService(c), zap.NewNop())

		assert.ErrorIs(t, service.Delete(context.Background(), ProductID), apperror.ErrNotFound)
	})
}
